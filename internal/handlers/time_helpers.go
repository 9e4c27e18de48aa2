package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/billing-tracker/internal/httperr"
	"github.com/BruksfildServices01/billing-tracker/internal/timezone"
)

// --------------------------------------------------
// Dates in the application time zone
// --------------------------------------------------

func parseDateField(name, value string, loc *time.Location) (time.Time, error) {
	t, err := timezone.ParseDateOrTime(value, loc)
	if err != nil {
		return time.Time{}, httperr.Validation("%s must be YYYY-MM-DD or an RFC 3339 timestamp", name)
	}
	return t, nil
}

func optionalDateField(name string, value *string, loc *time.Location) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	t, err := parseDateField(name, *value, loc)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// dateQuery returns the zero time when the parameter is absent.
func dateQuery(c *gin.Context, key string, loc *time.Location) (time.Time, bool, error) {
	raw := c.Query(key)
	if raw == "" {
		return time.Time{}, false, nil
	}
	t, err := parseDateField(key, raw, loc)
	if err != nil {
		return time.Time{}, false, err
	}
	return t, true, nil
}

// intQuery returns def when the parameter is absent.
func intQuery(c *gin.Context, key string, def int) (int, error) {
	raw := c.Query(key)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, httperr.Validation("%s must be an integer", key)
	}
	return v, nil
}
