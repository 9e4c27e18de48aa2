package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/billing-tracker/internal/audit"
	"github.com/BruksfildServices01/billing-tracker/internal/httperr"
	"github.com/BruksfildServices01/billing-tracker/internal/httpresp"
	"github.com/BruksfildServices01/billing-tracker/internal/models"
)

type ProjectTypeHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewProjectTypeHandler(db *gorm.DB, audit *audit.Dispatcher) *ProjectTypeHandler {
	return &ProjectTypeHandler{db: db, audit: audit}
}

type ProjectTypeRequest struct {
	Name string `json:"name" binding:"required,notblank,max=100"`
}

func (h *ProjectTypeHandler) List(c *gin.Context) {
	var types []models.ProjectType
	if err := h.db.WithContext(c.Request.Context()).
		Order("name ASC").
		Find(&types).Error; err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.List(c, types)
}

func (h *ProjectTypeHandler) Create(c *gin.Context) {
	var req ProjectTypeRequest
	if !bindJSON(c, &req) {
		return
	}

	pt := models.ProjectType{Name: req.Name}
	if err := h.db.WithContext(c.Request.Context()).Create(&pt).Error; err != nil {
		httperr.Respond(c, err)
		return
	}

	writeAudit(h.audit, audit.ActionCreated, "project_type", pt.ID, nil)
	httpresp.Created(c, pt)
}

func (h *ProjectTypeHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req ProjectTypeRequest
	if !bindJSON(c, &req) {
		return
	}

	db := h.db.WithContext(c.Request.Context())

	var pt models.ProjectType
	if err := db.First(&pt, id).Error; err != nil {
		respondLookup(c, err, "project type")
		return
	}

	pt.Name = req.Name
	if err := db.Save(&pt).Error; err != nil {
		httperr.Respond(c, err)
		return
	}

	writeAudit(h.audit, audit.ActionUpdated, "project_type", pt.ID, nil)
	httpresp.OK(c, pt)
}

// Delete fails with invalid_reference while projects still use the type.
func (h *ProjectTypeHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	db := h.db.WithContext(c.Request.Context())

	var inUse int64
	if err := db.Model(&models.Project{}).Where("project_type_id = ?", id).Count(&inUse).Error; err != nil {
		httperr.Respond(c, err)
		return
	}
	if inUse > 0 {
		httperr.Respond(c, httperr.InvalidReference("project type %d is used by %d project(s)", id, inUse))
		return
	}

	if err := deleteByID(db, &models.ProjectType{}, id); err != nil {
		respondLookup(c, err, "project type")
		return
	}

	writeAudit(h.audit, audit.ActionDeleted, "project_type", id, nil)
	httpresp.Deleted(c)
}
