package timesheet

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeekContaining(t *testing.T) {
	wantStart := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	wantEnd := time.Date(2024, 6, 16, 23, 59, 59, 999_000_000, time.UTC)

	tests := []struct {
		name string
		at   time.Time
	}{
		{"wednesday", time.Date(2024, 6, 12, 15, 30, 0, 0, time.UTC)},
		{"monday midnight", wantStart},
		{"sunday last millisecond", wantEnd},
		{"sunday afternoon", time.Date(2024, 6, 16, 14, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := WeekContaining(tt.at)
			assert.True(t, wantStart.Equal(p.Start), "start %s", p.Start)
			assert.True(t, wantEnd.Equal(p.End), "end %s", p.End)
			assert.True(t, p.Contains(tt.at))
		})
	}
}

func TestWeekContainingKeepsLocation(t *testing.T) {
	loc, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)

	p := WeekContaining(time.Date(2024, 6, 12, 1, 0, 0, 0, loc))

	assert.Equal(t, loc, p.Start.Location())
	assert.Equal(t, time.Monday, p.Start.Weekday())
	assert.Equal(t, time.Sunday, p.End.Weekday())
}

func TestMonthOf(t *testing.T) {
	p := MonthOf(2024, time.February, time.UTC)

	assert.True(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC).Equal(p.Start))
	assert.True(t, time.Date(2024, 2, 29, 23, 59, 59, 999_000_000, time.UTC).Equal(p.End))
}

func TestNewPeriod(t *testing.T) {
	start := time.Date(2024, 6, 3, 13, 0, 0, 0, time.UTC)
	end := time.Date(2024, 6, 4, 9, 0, 0, 0, time.UTC)

	p, err := NewPeriod(start, end)
	require.NoError(t, err)
	assert.True(t, time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC).Equal(p.Start))
	assert.True(t, time.Date(2024, 6, 4, 23, 59, 59, 999_000_000, time.UTC).Equal(p.End))

	_, err = NewPeriod(end.AddDate(0, 0, 1), start)
	assert.True(t, isValidation(err))
}

func TestPeriodKeyIgnoresLocation(t *testing.T) {
	loc := time.FixedZone("X", 3*3600)
	instant := time.Date(2024, 6, 12, 12, 0, 0, 0, time.UTC)

	a := Period{Start: instant, End: instant.Add(time.Hour)}
	b := Period{Start: instant.In(loc), End: instant.Add(time.Hour).In(loc)}

	assert.Equal(t, a.Key(), b.Key())
}
