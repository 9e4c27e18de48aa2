package validators

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name        string `validate:"notblank"`
	BillingType string `validate:"omitempty,billing_type"`
	Status      string `validate:"project_status"`
	Milestone   string `validate:"milestone_status"`
}

func newValidator(t *testing.T) *validator.Validate {
	t.Helper()
	v := validator.New()
	require.NoError(t, RegisterOn(v))
	return v
}

func TestCustomTags(t *testing.T) {
	v := newValidator(t)

	tests := []struct {
		name  string
		input sample
		ok    bool
	}{
		{"valid", sample{Name: "Site", BillingType: "hourly", Status: "on-hold", Milestone: "paid"}, true},
		{"empty enums pass", sample{Name: "Site"}, true},
		{"blank name", sample{Name: "   "}, false},
		{"unknown billing type", sample{Name: "Site", BillingType: "weekly"}, false},
		{"unknown project status", sample{Name: "Site", Status: "archived"}, false},
		{"overdue milestone", sample{Name: "Site", Milestone: "overdue"}, true},
		{"pending milestone", sample{Name: "Site", Milestone: "pending"}, true},
		{"unknown milestone status", sample{Name: "Site", Milestone: "late"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.input)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestRegisterOnGinEngine(t *testing.T) {
	assert.NoError(t, Register())
	assert.NoError(t, Register())
}

func TestDecimalHelpers(t *testing.T) {
	neg := decimal.NewFromInt(-1)
	zero := decimal.Zero

	assert.True(t, NonNegative(nil))
	assert.True(t, NonNegative(&zero))
	assert.False(t, NonNegative(&neg))
}

func TestMessage(t *testing.T) {
	v := newValidator(t)

	type req struct {
		Name        string `json:"name" validate:"notblank"`
		BillingType string `json:"billing_type" validate:"billing_type"`
	}

	err := v.Struct(req{BillingType: "weekly"})
	require.Error(t, err)

	msg := Message(err)
	assert.Contains(t, msg, "name is required")
	assert.Contains(t, msg, `billing_type has an unsupported value "weekly"`)

	assert.Equal(t, "plain", Message(errors.New("plain")))
}
