package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvalid(t *testing.T) {
	err := fmt.Errorf("save: %w", Invalid("hours must be greater than %d", 0))

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "hours must be greater than 0", ve.Message)
}
