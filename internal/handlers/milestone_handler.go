package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/billing-tracker/internal/audit"
	"github.com/BruksfildServices01/billing-tracker/internal/domain/milestone"
	"github.com/BruksfildServices01/billing-tracker/internal/dto"
	"github.com/BruksfildServices01/billing-tracker/internal/httperr"
	"github.com/BruksfildServices01/billing-tracker/internal/httpresp"
	"github.com/BruksfildServices01/billing-tracker/internal/models"
)

type MilestoneHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
	loc   *time.Location
}

func NewMilestoneHandler(db *gorm.DB, audit *audit.Dispatcher, loc *time.Location) *MilestoneHandler {
	return &MilestoneHandler{db: db, audit: audit, loc: loc}
}

type CreateMilestoneRequest struct {
	Name        string           `json:"name" binding:"required,notblank,max=150"`
	ProjectID   uint             `json:"project_id" binding:"required"`
	Amount      *decimal.Decimal `json:"amount"`
	DueDate     string           `json:"due_date" binding:"required"`
	Description string           `json:"description"`
	Status      string           `json:"status" binding:"omitempty,milestone_status"`
}

type UpdateMilestoneRequest struct {
	Name        *string          `json:"name" binding:"omitempty,notblank,max=150"`
	ProjectID   *uint            `json:"project_id" binding:"omitempty,min=1"`
	Amount      *decimal.Decimal `json:"amount"`
	DueDate     *string          `json:"due_date"`
	Description *string          `json:"description"`
	Status      *string          `json:"status" binding:"omitempty,milestone_status"`
}

func (h *MilestoneHandler) load(db *gorm.DB, id uint) (*models.Milestone, error) {
	var m models.Milestone
	if err := db.
		Preload("Project.Client").
		Preload("Payments", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("payment_date DESC")
		}).
		First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

// ======================================================
// LIST MILESTONES
// ======================================================
func (h *MilestoneHandler) List(c *gin.Context) {
	projectID, err := uintQuery(c, "project_id")
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	q := h.db.WithContext(c.Request.Context()).
		Preload("Project.Client").
		Preload("Payments")

	if projectID != nil {
		q = q.Where("project_id = ?", *projectID)
	}
	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}

	var list []models.Milestone
	if err := q.Order("due_date ASC").Find(&list).Error; err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.List(c, dto.NewMilestoneBalances(list))
}

// ======================================================
// GET MILESTONE
// ======================================================
func (h *MilestoneHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	m, err := h.load(h.db.WithContext(c.Request.Context()), id)
	if err != nil {
		respondLookup(c, err, "milestone")
		return
	}

	httpresp.OK(c, dto.NewMilestoneBalance(*m))
}

// ======================================================
// CREATE MILESTONE
// ======================================================
// The status is stored as given (default pending); it is only derived from
// payments once a payment is recorded or removed.
func (h *MilestoneHandler) Create(c *gin.Context) {
	var req CreateMilestoneRequest
	if !bindJSON(c, &req) {
		return
	}

	if req.Amount == nil {
		httperr.BadRequest(c, "amount is required")
		return
	}
	if err := checkNonNegative("amount", req.Amount); err != nil {
		httperr.Respond(c, err)
		return
	}

	due, err := parseDateField("due_date", req.DueDate, h.loc)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	m := models.Milestone{
		Name:        req.Name,
		ProjectID:   req.ProjectID,
		Amount:      *req.Amount,
		DueDate:     due,
		Description: req.Description,
		Status:      req.Status,
	}
	if m.Status == "" {
		m.Status = string(milestone.InitialStatus())
	}

	db := h.db.WithContext(c.Request.Context())

	if err := requireRef(db, &models.Project{}, m.ProjectID, "project"); err != nil {
		httperr.Respond(c, err)
		return
	}

	if err := db.Omit(clause.Associations).Create(&m).Error; err != nil {
		httperr.Respond(c, err)
		return
	}

	created, err := h.load(db, m.ID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	writeAudit(h.audit, audit.ActionCreated, "milestone", m.ID, nil)
	httpresp.Created(c, dto.NewMilestoneBalance(*created))
}

// ======================================================
// UPDATE MILESTONE
// ======================================================
func (h *MilestoneHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateMilestoneRequest
	if !bindJSON(c, &req) {
		return
	}

	db := h.db.WithContext(c.Request.Context())

	var m models.Milestone
	if err := db.First(&m, id).Error; err != nil {
		respondLookup(c, err, "milestone")
		return
	}

	if req.Name != nil {
		m.Name = *req.Name
	}
	if req.ProjectID != nil {
		if err := requireRef(db, &models.Project{}, *req.ProjectID, "project"); err != nil {
			httperr.Respond(c, err)
			return
		}
		m.ProjectID = *req.ProjectID
	}
	if req.Amount != nil {
		if err := checkNonNegative("amount", req.Amount); err != nil {
			httperr.Respond(c, err)
			return
		}
		m.Amount = *req.Amount
	}
	if req.DueDate != nil {
		due, err := parseDateField("due_date", *req.DueDate, h.loc)
		if err != nil {
			httperr.Respond(c, err)
			return
		}
		m.DueDate = due
	}
	if req.Description != nil {
		m.Description = *req.Description
	}
	if req.Status != nil {
		m.Status = *req.Status
	}

	if err := db.Omit(clause.Associations).Save(&m).Error; err != nil {
		httperr.Respond(c, err)
		return
	}

	updated, err := h.load(db, m.ID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	writeAudit(h.audit, audit.ActionUpdated, "milestone", m.ID, nil)
	httpresp.OK(c, dto.NewMilestoneBalance(*updated))
}

// ======================================================
// DELETE MILESTONE (cascades to payments)
// ======================================================
func (h *MilestoneHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := deleteByID(h.db.WithContext(c.Request.Context()), &models.Milestone{}, id); err != nil {
		respondLookup(c, err, "milestone")
		return
	}

	writeAudit(h.audit, audit.ActionDeleted, "milestone", id, nil)
	httpresp.Deleted(c)
}
