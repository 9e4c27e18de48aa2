package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/billing-tracker/internal/logger"
)

type HealthHandler struct {
	db  *gorm.DB
	now func() time.Time
}

func NewHealthHandler(db *gorm.DB, now func() time.Time) *HealthHandler {
	return &HealthHandler{db: db, now: now}
}

func (h *HealthHandler) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := h.db.WithContext(ctx).Exec("SELECT 1").Error; err != nil {
		logger.FromGin(c).Error("health check failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":    "error",
			"message":   "database unreachable",
			"database":  "disconnected",
			"timestamp": h.now(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"message":   "service healthy",
		"database":  "connected",
		"timestamp": h.now(),
	})
}
