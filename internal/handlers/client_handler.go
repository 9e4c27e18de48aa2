package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/billing-tracker/internal/audit"
	"github.com/BruksfildServices01/billing-tracker/internal/cache"
	"github.com/BruksfildServices01/billing-tracker/internal/httperr"
	"github.com/BruksfildServices01/billing-tracker/internal/httpresp"
	"github.com/BruksfildServices01/billing-tracker/internal/models"
)

type ClientHandler struct {
	db     *gorm.DB
	audit  *audit.Dispatcher
	cache  cache.SummaryCache
	logger *zap.Logger
}

// Summaries embed the client of each project, so renames and deletes
// invalidate them.
func NewClientHandler(
	db *gorm.DB,
	audit *audit.Dispatcher,
	cache cache.SummaryCache,
	logger *zap.Logger,
) *ClientHandler {
	return &ClientHandler{db: db, audit: audit, cache: cache, logger: logger}
}

type CreateClientRequest struct {
	Name    string `json:"name" binding:"required,notblank,max=150"`
	Email   string `json:"email" binding:"max=150"`
	Phone   string `json:"phone" binding:"max=30"`
	Address string `json:"address" binding:"max=255"`
}

type UpdateClientRequest struct {
	Name    *string `json:"name" binding:"omitempty,notblank,max=150"`
	Email   *string `json:"email" binding:"omitempty,max=150"`
	Phone   *string `json:"phone" binding:"omitempty,max=30"`
	Address *string `json:"address" binding:"omitempty,max=255"`
}

// ======================================================
// LIST CLIENTS
// ======================================================
func (h *ClientHandler) List(c *gin.Context) {
	var clients []models.Client
	if err := h.db.WithContext(c.Request.Context()).
		Preload("Projects.Milestones.Payments").
		Order("created_at DESC").
		Find(&clients).Error; err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.List(c, clients)
}

// ======================================================
// GET CLIENT
// ======================================================
func (h *ClientHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var client models.Client
	if err := h.db.WithContext(c.Request.Context()).
		Preload("Projects.ProjectType").
		Preload("Projects.Milestones.Payments").
		First(&client, id).Error; err != nil {
		respondLookup(c, err, "client")
		return
	}

	httpresp.OK(c, client)
}

// ======================================================
// CREATE CLIENT
// ======================================================
func (h *ClientHandler) Create(c *gin.Context) {
	var req CreateClientRequest
	if !bindJSON(c, &req) {
		return
	}

	client := models.Client{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
	}
	if err := h.db.WithContext(c.Request.Context()).Create(&client).Error; err != nil {
		httperr.Respond(c, err)
		return
	}

	writeAudit(h.audit, audit.ActionCreated, "client", client.ID, nil)
	httpresp.Created(c, client)
}

// ======================================================
// UPDATE CLIENT
// ======================================================
func (h *ClientHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateClientRequest
	if !bindJSON(c, &req) {
		return
	}

	db := h.db.WithContext(c.Request.Context())

	var client models.Client
	if err := db.First(&client, id).Error; err != nil {
		respondLookup(c, err, "client")
		return
	}

	if req.Name != nil {
		client.Name = *req.Name
	}
	if req.Email != nil {
		client.Email = *req.Email
	}
	if req.Phone != nil {
		client.Phone = *req.Phone
	}
	if req.Address != nil {
		client.Address = *req.Address
	}

	if err := db.Omit(clause.Associations).Save(&client).Error; err != nil {
		httperr.Respond(c, err)
		return
	}

	invalidateSummaries(c.Request.Context(), h.cache, h.logger)
	writeAudit(h.audit, audit.ActionUpdated, "client", client.ID, nil)
	httpresp.OK(c, client)
}

// ======================================================
// DELETE CLIENT (cascades to projects)
// ======================================================
func (h *ClientHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := deleteByID(h.db.WithContext(c.Request.Context()), &models.Client{}, id); err != nil {
		respondLookup(c, err, "client")
		return
	}

	invalidateSummaries(c.Request.Context(), h.cache, h.logger)
	writeAudit(h.audit, audit.ActionDeleted, "client", id, nil)
	httpresp.Deleted(c)
}
