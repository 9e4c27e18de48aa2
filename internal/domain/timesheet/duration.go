package timesheet

import (
	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/billing-tracker/internal/domain"
)

const hoursScale = 4

var sixty = decimal.NewFromInt(60)

// ResolveHours derives hours from entryHour and entryMinute when both are
// given, otherwise it takes hours as supplied.
func ResolveHours(hours *decimal.Decimal, entryHour, entryMinute *int) (decimal.Decimal, error) {
	if entryHour != nil && entryMinute != nil {
		if *entryHour < 0 {
			return decimal.Zero, domain.Invalid("entry_hour must not be negative")
		}
		if *entryMinute < 0 || *entryMinute > 59 {
			return decimal.Zero, domain.Invalid("entry_minute must be between 0 and 59")
		}

		h := decimal.NewFromInt(int64(*entryHour)).
			Add(decimal.NewFromInt(int64(*entryMinute)).Div(sixty)).
			Round(hoursScale)
		if !h.IsPositive() {
			return decimal.Zero, domain.Invalid("duration must be greater than zero")
		}
		return h, nil
	}

	if hours == nil {
		return decimal.Zero, domain.Invalid("hours or entry_hour and entry_minute are required")
	}
	if !hours.IsPositive() {
		return decimal.Zero, domain.Invalid("hours must be greater than zero")
	}
	return hours.Round(hoursScale), nil
}
