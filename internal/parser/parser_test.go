package parser

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/balkashynov/arc/internal/models"
)

func fixNow(t *testing.T, at time.Time) {
	t.Helper()
	prev := now
	now = func() time.Time { return at }
	t.Cleanup(func() { now = prev })
}

func TestParseDate(t *testing.T) {
	base := time.Date(2026, 10, 14, 9, 30, 0, 0, time.Local)
	fixNow(t, base)
	eod := func(days int) time.Time {
		return time.Date(2026, 10, 14, 23, 59, 59, 0, time.Local).AddDate(0, 0, days)
	}

	tests := []struct {
		in   string
		want time.Time
	}{
		{"15/12/2026", time.Date(2026, 12, 15, 23, 59, 59, 0, time.Local)},
		{"1/2/2027", time.Date(2027, 2, 1, 23, 59, 59, 0, time.Local)},
		{"today", eod(0)},
		{"Tomorrow", eod(1)},
		{"3 days", eod(3)},
		{"1 day", eod(1)},
		{"3d", eod(3)},
		{"3days", eod(3)},
		{"2 weeks", eod(14)},
		{"2w", eod(14)},
		{"5h", base.Add(5 * time.Hour)},
		{"24 hours", base.Add(24 * time.Hour)},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDate(tt.in)
			require.NoError(t, err)
			require.NotNil(t, got)
			assert.True(t, tt.want.Equal(*got), "want %v, got %v", tt.want, *got)
		})
	}
}

func TestParseDate_Empty(t *testing.T) {
	got, err := ParseDate("  ")
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestParseDate_Invalid(t *testing.T) {
	for _, in := range []string{"someday", "3 months", "12-12-2026", "d3"} {
		_, err := ParseDate(in)
		assert.ErrorIs(t, err, ErrInvalidDate, in)
	}

	for _, in := range []string{"31/02/2026", "32/01/2026", "01/13/2026", "01/01/1999", "400 days", "0 weeks"} {
		_, err := ParseDate(in)
		assert.Error(t, err, in)
	}
}

func TestParseEstimate(t *testing.T) {
	tests := []struct {
		in   string
		want time.Duration
	}{
		{"90m", 90 * time.Minute},
		{"2h", 2 * time.Hour},
		{"1h30m", 90 * time.Minute},
		{"2d", 48 * time.Hour},
		{"2D", 48 * time.Hour},
	}
	for _, tt := range tests {
		got, err := ParseEstimate(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, *got, tt.in)
	}

	got, err := ParseEstimate("")
	assert.NoError(t, err)
	assert.Nil(t, got)

	for _, in := range []string{"soon", "-1h", "0m", "0d"} {
		_, err := ParseEstimate(in)
		assert.ErrorIs(t, err, ErrInvalidDuration, in)
	}
}

func TestFormatEstimate(t *testing.T) {
	d := func(v time.Duration) *time.Duration { return &v }

	assert.Equal(t, "", FormatEstimate(nil))
	assert.Equal(t, "2h", FormatEstimate(d(2*time.Hour)))
	assert.Equal(t, "1h30m", FormatEstimate(d(90*time.Minute)))
	assert.Equal(t, "45m", FormatEstimate(d(45*time.Minute)))
	assert.Equal(t, "30s", FormatEstimate(d(30*time.Second)))
	assert.Equal(t, "2d", FormatEstimate(d(48*time.Hour)))
}

func TestFormatDueDate(t *testing.T) {
	fixNow(t, time.Date(2026, 10, 14, 9, 0, 0, 0, time.Local))
	at := func(y int, m time.Month, d int) *time.Time {
		v := time.Date(y, m, d, 23, 59, 59, 0, time.Local)
		return &v
	}

	assert.Equal(t, "", FormatDueDate(nil))
	assert.Contains(t, FormatDueDate(at(2026, 10, 10)), "OVERDUE")
	assert.Contains(t, FormatDueDate(at(2026, 10, 14)), "Due today")
	assert.Contains(t, FormatDueDate(at(2026, 10, 15)), "Due tomorrow")
	assert.Contains(t, FormatDueDate(at(2026, 10, 18)), "in 4 days")
	assert.Equal(t, "📅 Due 01/12/2026", FormatDueDate(at(2026, 12, 1)))
}

func TestParseTitle(t *testing.T) {
	fixNow(t, time.Date(2026, 10, 14, 9, 0, 0, 0, time.Local))

	p := ParseTitle("Write launch post +high !active due:3d start:today est:1h30m")
	assert.Empty(t, p.Errors)
	assert.Equal(t, "Write launch post", p.Title)
	require.NotNil(t, p.Priority)
	assert.Equal(t, 3, *p.Priority)
	assert.Equal(t, models.StatusActive, p.Status)
	require.NotNil(t, p.Due)
	assert.Equal(t, 17, p.Due.Day())
	require.NotNil(t, p.Start)
	assert.Equal(t, 14, p.Start.Day())
	require.NotNil(t, p.Est)
	assert.Equal(t, 90*time.Minute, *p.Est)

	sched := p.Schedule()
	assert.Same(t, p.Due, sched.Due)
}

func TestParseTitle_Plain(t *testing.T) {
	p := ParseTitle("  just   a task ")
	assert.Equal(t, "just a task", p.Title)
	assert.Nil(t, p.Priority)
	assert.Empty(t, p.Status)
	assert.Nil(t, p.Due)
	assert.Empty(t, p.Errors)
}

func TestParseTitle_NegativePriority(t *testing.T) {
	p := ParseTitle("someday maybe +-2")
	require.NotNil(t, p.Priority)
	assert.Equal(t, -2, *p.Priority)
	assert.Equal(t, "someday maybe", p.Title)
}

func TestParseTitle_Errors(t *testing.T) {
	p := ParseTitle("broken +urgent !done due:never est:forever")
	assert.Len(t, p.Errors, 4)
	assert.Equal(t, "broken", p.Title)
	assert.Nil(t, p.Priority)
	assert.Nil(t, p.Due)
	assert.Nil(t, p.Est)
}

func TestParsePriority(t *testing.T) {
	tests := map[string]int{
		"":       0,
		"none":   0,
		"low":    1,
		"Med":    2,
		"medium": 2,
		"HIGH":   3,
		"7":      7,
		"-4":     -4,
	}
	for in, want := range tests {
		got, err := ParsePriority(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParsePriority("urgent")
	assert.Error(t, err)
}

func TestPriorityLabel(t *testing.T) {
	assert.Equal(t, "", PriorityLabel(0))
	assert.Equal(t, "low", PriorityLabel(1))
	assert.Equal(t, "high", PriorityLabel(3))
	assert.Equal(t, "-1", PriorityLabel(-1))
	assert.Equal(t, "9", PriorityLabel(9))
}
