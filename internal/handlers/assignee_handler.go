package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/billing-tracker/internal/audit"
	"github.com/BruksfildServices01/billing-tracker/internal/cache"
	"github.com/BruksfildServices01/billing-tracker/internal/httperr"
	"github.com/BruksfildServices01/billing-tracker/internal/httpresp"
	"github.com/BruksfildServices01/billing-tracker/internal/models"
)

type AssigneeHandler struct {
	db     *gorm.DB
	audit  *audit.Dispatcher
	cache  cache.SummaryCache
	logger *zap.Logger
}

func NewAssigneeHandler(
	db *gorm.DB,
	audit *audit.Dispatcher,
	cache cache.SummaryCache,
	logger *zap.Logger,
) *AssigneeHandler {
	return &AssigneeHandler{db: db, audit: audit, cache: cache, logger: logger}
}

type CreateAssigneeRequest struct {
	Name  string `json:"name" binding:"required,notblank,max=150"`
	Email string `json:"email" binding:"max=150"`
	Phone string `json:"phone" binding:"max=30"`
}

type UpdateAssigneeRequest struct {
	Name  *string `json:"name" binding:"omitempty,notblank,max=150"`
	Email *string `json:"email" binding:"omitempty,max=150"`
	Phone *string `json:"phone" binding:"omitempty,max=30"`
}

func (h *AssigneeHandler) List(c *gin.Context) {
	var list []models.Assignee
	if err := h.db.WithContext(c.Request.Context()).
		Order("name ASC").
		Find(&list).Error; err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.List(c, list)
}

func (h *AssigneeHandler) Create(c *gin.Context) {
	var req CreateAssigneeRequest
	if !bindJSON(c, &req) {
		return
	}

	a := models.Assignee{Name: req.Name, Email: req.Email, Phone: req.Phone}
	if err := h.db.WithContext(c.Request.Context()).Create(&a).Error; err != nil {
		httperr.Respond(c, err)
		return
	}

	writeAudit(h.audit, audit.ActionCreated, "assignee", a.ID, nil)
	httpresp.Created(c, a)
}

func (h *AssigneeHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateAssigneeRequest
	if !bindJSON(c, &req) {
		return
	}

	ctx := c.Request.Context()
	db := h.db.WithContext(ctx)

	var a models.Assignee
	if err := db.First(&a, id).Error; err != nil {
		respondLookup(c, err, "assignee")
		return
	}

	if req.Name != nil {
		a.Name = *req.Name
	}
	if req.Email != nil {
		a.Email = *req.Email
	}
	if req.Phone != nil {
		a.Phone = *req.Phone
	}

	if err := db.Save(&a).Error; err != nil {
		httperr.Respond(c, err)
		return
	}

	invalidateSummaries(ctx, h.cache, h.logger)
	writeAudit(h.audit, audit.ActionUpdated, "assignee", a.ID, nil)
	httpresp.OK(c, a)
}

// Delete cascades to the assignee's time entries.
func (h *AssigneeHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	if err := deleteByID(h.db.WithContext(ctx), &models.Assignee{}, id); err != nil {
		respondLookup(c, err, "assignee")
		return
	}

	invalidateSummaries(ctx, h.cache, h.logger)
	writeAudit(h.audit, audit.ActionDeleted, "assignee", id, nil)
	httpresp.Deleted(c)
}
