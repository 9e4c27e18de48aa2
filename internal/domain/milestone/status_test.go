package milestone

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/BruksfildServices01/billing-tracker/internal/models"
)

func payments(amounts ...int64) []models.Payment {
	out := make([]models.Payment, 0, len(amounts))
	for _, a := range amounts {
		out = append(out, models.Payment{Amount: decimal.NewFromInt(a)})
	}
	return out
}

func TestResolveStatusScenarios(t *testing.T) {
	now := time.Date(2024, 6, 12, 10, 0, 0, 0, time.UTC)
	yesterday := now.AddDate(0, 0, -1)
	tomorrow := now.AddDate(0, 0, 1)
	amount := decimal.NewFromInt(1000)

	tests := []struct {
		name     string
		payments []models.Payment
		due      time.Time
		want     Status
	}{
		{"fully paid past due", payments(400, 600), yesterday, StatusPaid},
		{"partially paid past due", payments(300), yesterday, StatusOverdue},
		{"unpaid not yet due", payments(), tomorrow, StatusPending},
		{"overpaid", payments(1200), yesterday, StatusPaid},
		{"paid before due", payments(1000), tomorrow, StatusPaid},
		{"due exactly now is not overdue", payments(10), now, StatusPending},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveStatus(amount, tt.due, tt.payments, now))
		})
	}
}

func TestResolveStatusProperties(t *testing.T) {
	now := time.Date(2024, 6, 12, 10, 0, 0, 0, time.UTC)

	for amount := int64(0); amount <= 500; amount += 50 {
		for paid := int64(0); paid <= 500; paid += 25 {
			for _, offset := range []int{-3, -1, 0, 1, 3} {
				due := now.AddDate(0, 0, offset)
				got := ResolveStatus(decimal.NewFromInt(amount), due, payments(paid), now)

				switch {
				case paid >= amount:
					assert.Equal(t, StatusPaid, got)
				case now.After(due):
					assert.Equal(t, StatusOverdue, got)
				default:
					assert.Equal(t, StatusPending, got)
				}
			}
		}
	}
}

func TestResolveIsIdempotent(t *testing.T) {
	now := time.Date(2024, 6, 12, 10, 0, 0, 0, time.UTC)
	m := &models.Milestone{
		Amount:   decimal.NewFromInt(1000),
		DueDate:  now.AddDate(0, 0, -1),
		Payments: payments(300),
	}

	first := Resolve(m, now)
	m.Status = string(first)
	second := Resolve(m, now)

	assert.Equal(t, first, second)
}

func TestRemaining(t *testing.T) {
	assert.True(t, decimal.NewFromInt(300).Equal(Remaining(decimal.NewFromInt(1000), payments(400, 300))))
	assert.True(t, decimal.NewFromInt(-50).Equal(Remaining(decimal.NewFromInt(100), payments(150))))
	assert.True(t, TotalPaid(nil).IsZero())
}

func TestIsOverdue(t *testing.T) {
	now := time.Date(2024, 6, 12, 10, 0, 0, 0, time.UTC)

	assert.True(t, IsOverdue(&models.Milestone{Status: "overdue", DueDate: now.AddDate(0, 0, 5)}, now))
	assert.True(t, IsOverdue(&models.Milestone{Status: "pending", DueDate: now.AddDate(0, 0, -1)}, now))
	assert.False(t, IsOverdue(&models.Milestone{Status: "pending", DueDate: now.AddDate(0, 0, 1)}, now))
	assert.False(t, IsOverdue(&models.Milestone{Status: "paid", DueDate: now.AddDate(0, 0, -1)}, now))
}

func TestStatusValid(t *testing.T) {
	assert.True(t, StatusPaid.Valid())
	assert.False(t, Status("cancelled").Valid())
	assert.Equal(t, StatusPending, InitialStatus())
}
