package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/billing-tracker/internal/audit"
	"github.com/BruksfildServices01/billing-tracker/internal/cache"
	"github.com/BruksfildServices01/billing-tracker/internal/httperr"
	"github.com/BruksfildServices01/billing-tracker/internal/httpresp"
	"github.com/BruksfildServices01/billing-tracker/internal/models"
)

type ProjectHandler struct {
	db     *gorm.DB
	audit  *audit.Dispatcher
	cache  cache.SummaryCache
	logger *zap.Logger
}

func NewProjectHandler(
	db *gorm.DB,
	audit *audit.Dispatcher,
	cache cache.SummaryCache,
	logger *zap.Logger,
) *ProjectHandler {
	return &ProjectHandler{db: db, audit: audit, cache: cache, logger: logger}
}

type CreateProjectRequest struct {
	Name          string           `json:"name" binding:"required,notblank,max=150"`
	ClientID      uint             `json:"client_id" binding:"required"`
	ProjectTypeID uint             `json:"project_type_id" binding:"required"`
	Budget        *decimal.Decimal `json:"budget"`
	BillingType   string           `json:"billing_type" binding:"omitempty,billing_type"`
	HourlyRate    *decimal.Decimal `json:"hourly_rate"`
	Description   string           `json:"description"`
	Status        string           `json:"status" binding:"omitempty,project_status"`
}

type UpdateProjectRequest struct {
	Name          *string          `json:"name" binding:"omitempty,notblank,max=150"`
	ClientID      *uint            `json:"client_id" binding:"omitempty,min=1"`
	ProjectTypeID *uint            `json:"project_type_id" binding:"omitempty,min=1"`
	Budget        *decimal.Decimal `json:"budget"`
	BillingType   *string          `json:"billing_type" binding:"omitempty,billing_type"`
	HourlyRate    *decimal.Decimal `json:"hourly_rate"`
	Description   *string          `json:"description"`
	Status        *string          `json:"status" binding:"omitempty,project_status"`
}

// validateProject checks the rules that span several fields.
func validateProject(p *models.Project) error {
	if p.Budget.IsNegative() {
		return httperr.Validation("budget must be zero or positive")
	}
	if err := checkNonNegative("hourly_rate", p.HourlyRate); err != nil {
		return err
	}
	if p.BillingType == models.BillingHourly && p.HourlyRate == nil {
		return httperr.Validation("hourly_rate is required for hourly billing")
	}
	return nil
}

func (h *ProjectHandler) checkRefs(db *gorm.DB, p *models.Project) error {
	if err := requireRef(db, &models.Client{}, p.ClientID, "client"); err != nil {
		return err
	}
	return requireRef(db, &models.ProjectType{}, p.ProjectTypeID, "project type")
}

func (h *ProjectHandler) load(db *gorm.DB, id uint) (*models.Project, error) {
	var p models.Project
	if err := db.
		Preload("Client").
		Preload("ProjectType").
		Preload("Milestones", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("due_date ASC")
		}).
		Preload("Milestones.Payments").
		First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// ======================================================
// LIST PROJECTS
// ======================================================
func (h *ProjectHandler) List(c *gin.Context) {
	clientID, err := uintQuery(c, "client_id")
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	q := h.db.WithContext(c.Request.Context()).
		Preload("Client").
		Preload("ProjectType").
		Preload("Milestones.Payments")

	if clientID != nil {
		q = q.Where("client_id = ?", *clientID)
	}
	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}

	var projects []models.Project
	if err := q.Order("created_at DESC").Find(&projects).Error; err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.List(c, projects)
}

// ======================================================
// GET PROJECT
// ======================================================
func (h *ProjectHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	p, err := h.load(h.db.WithContext(c.Request.Context()), id)
	if err != nil {
		respondLookup(c, err, "project")
		return
	}

	httpresp.OK(c, p)
}

// ======================================================
// CREATE PROJECT
// ======================================================
func (h *ProjectHandler) Create(c *gin.Context) {
	var req CreateProjectRequest
	if !bindJSON(c, &req) {
		return
	}

	if req.Budget == nil {
		httperr.BadRequest(c, "budget is required")
		return
	}

	p := models.Project{
		Name:          req.Name,
		ClientID:      req.ClientID,
		ProjectTypeID: req.ProjectTypeID,
		Budget:        *req.Budget,
		BillingType:   req.BillingType,
		HourlyRate:    req.HourlyRate,
		Description:   req.Description,
		Status:        req.Status,
	}
	if p.BillingType == "" {
		p.BillingType = models.BillingFixed
	}
	if p.Status == "" {
		p.Status = models.ProjectActive
	}

	if err := validateProject(&p); err != nil {
		httperr.Respond(c, err)
		return
	}

	ctx := c.Request.Context()
	db := h.db.WithContext(ctx)

	if err := h.checkRefs(db, &p); err != nil {
		httperr.Respond(c, err)
		return
	}

	if err := db.Omit(clause.Associations).Create(&p).Error; err != nil {
		httperr.Respond(c, err)
		return
	}

	created, err := h.load(db, p.ID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	invalidateSummaries(ctx, h.cache, h.logger)
	writeAudit(h.audit, audit.ActionCreated, "project", p.ID, nil)
	httpresp.Created(c, created)
}

// ======================================================
// UPDATE PROJECT
// ======================================================
func (h *ProjectHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateProjectRequest
	if !bindJSON(c, &req) {
		return
	}

	ctx := c.Request.Context()
	db := h.db.WithContext(ctx)

	var p models.Project
	if err := db.First(&p, id).Error; err != nil {
		respondLookup(c, err, "project")
		return
	}

	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.ClientID != nil {
		p.ClientID = *req.ClientID
	}
	if req.ProjectTypeID != nil {
		p.ProjectTypeID = *req.ProjectTypeID
	}
	if req.Budget != nil {
		p.Budget = *req.Budget
	}
	if req.BillingType != nil {
		p.BillingType = *req.BillingType
	}
	if req.HourlyRate != nil {
		p.HourlyRate = req.HourlyRate
	}
	if req.Description != nil {
		p.Description = *req.Description
	}
	if req.Status != nil {
		p.Status = *req.Status
	}

	if err := validateProject(&p); err != nil {
		httperr.Respond(c, err)
		return
	}

	if req.ClientID != nil || req.ProjectTypeID != nil {
		if err := h.checkRefs(db, &p); err != nil {
			httperr.Respond(c, err)
			return
		}
	}

	if err := db.Omit(clause.Associations).Save(&p).Error; err != nil {
		httperr.Respond(c, err)
		return
	}

	updated, err := h.load(db, p.ID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	invalidateSummaries(ctx, h.cache, h.logger)
	writeAudit(h.audit, audit.ActionUpdated, "project", p.ID, nil)
	httpresp.OK(c, updated)
}

// ======================================================
// DELETE PROJECT (cascades to milestones, payments, time entries)
// ======================================================
func (h *ProjectHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	if err := deleteByID(h.db.WithContext(ctx), &models.Project{}, id); err != nil {
		respondLookup(c, err, "project")
		return
	}

	invalidateSummaries(ctx, h.cache, h.logger)
	writeAudit(h.audit, audit.ActionDeleted, "project", id, nil)
	httpresp.Deleted(c)
}
