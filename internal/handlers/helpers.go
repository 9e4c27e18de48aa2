package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/billing-tracker/internal/httperr"
	"github.com/BruksfildServices01/billing-tracker/internal/validators"
)

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		httperr.BadRequest(c, "id must be a positive integer")
		return 0, false
	}
	return uint(id), true
}

func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		httperr.BadRequest(c, validators.Message(err))
		return false
	}
	return true
}

// uintQuery returns nil when the parameter is absent.
func uintQuery(c *gin.Context, key string) (*uint, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return nil, httperr.Validation("%s must be a positive integer", key)
	}
	id := uint(v)
	return &id, nil
}

// respondLookup turns a missing row into a not_found for entity.
func respondLookup(c *gin.Context, err error, entity string) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		httperr.Respond(c, httperr.NotFoundErr(entity))
		return
	}
	httperr.Respond(c, err)
}

func exists(db *gorm.DB, model any, id uint) (bool, error) {
	var count int64
	if err := db.Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// requireRef reports an invalid_reference when the row is absent.
func requireRef(db *gorm.DB, model any, id uint, entity string) error {
	ok, err := exists(db, model, id)
	if err != nil {
		return err
	}
	if !ok {
		return httperr.InvalidReference("%s %d does not exist", entity, id)
	}
	return nil
}

func checkNonNegative(name string, d *decimal.Decimal) error {
	if !validators.NonNegative(d) {
		return httperr.Validation("%s must be zero or positive", name)
	}
	return nil
}

// deleteByID hard-deletes one row; zero affected rows means it did not exist.
func deleteByID(db *gorm.DB, model any, id uint) error {
	res := db.Delete(model, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
