package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocationFallsBackToUTC(t *testing.T) {
	assert.Equal(t, time.UTC, Location(""))
	assert.Equal(t, time.UTC, Location("Nowhere/Special"))
	assert.Equal(t, "Europe/Lisbon", Location("Europe/Lisbon").String())
}

func TestParseDateOrTime(t *testing.T) {
	loc := Location("America/Sao_Paulo")

	d, err := ParseDateOrTime("2024-06-12", loc)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 6, 12, 0, 0, 0, 0, loc), d)

	ts, err := ParseDateOrTime("2024-06-12T15:04:05Z", loc)
	require.NoError(t, err)
	assert.True(t, ts.Equal(time.Date(2024, 6, 12, 15, 4, 5, 0, time.UTC)))

	_, err = ParseDateOrTime("12/06/2024", loc)
	assert.Error(t, err)
}
