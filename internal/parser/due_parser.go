package parser

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	ErrInvalidDate     = errors.New("invalid date format. Use: dd/mm/yyyy, today, tomorrow, X days, X hours, X weeks (or 3d, 5h, 2w)")
	ErrInvalidDuration = errors.New("invalid duration. Use: 90m, 2h, 1h30m or 2d")
)

// now is replaced in tests
var now = time.Now

var (
	dateRegex     = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})$`)
	relativeRegex = regexp.MustCompile(`^(\d+)\s*(h|hour|hours|d|day|days|w|week|weeks)$`)
	dayDurRegex   = regexp.MustCompile(`^(\d+)d$`)
)

// ParseDate parses the date formats accepted for start and due fields.
// Supported formats:
// - dd/mm/yyyy (e.g., "15/12/2026")
// - today, tomorrow
// - X days (e.g., "3 days", "1 day", "3d")
// - X hours (e.g., "24 hours", "5h")
// - X weeks (e.g., "2 weeks", "2w")
// An empty input yields nil without error.
func ParseDate(input string) (*time.Time, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, nil
	}

	switch strings.ToLower(input) {
	case "today":
		d := endOfDay(now(), 0)
		return &d, nil
	case "tomorrow":
		d := endOfDay(now(), 1)
		return &d, nil
	}

	if d, err := parseDateFormat(input); err == nil {
		return d, nil
	} else if !errors.Is(err, ErrInvalidDate) {
		return nil, err
	}

	if d, err := parseRelativeTime(input); err == nil {
		return d, nil
	} else if !errors.Is(err, ErrInvalidDate) {
		return nil, err
	}

	return nil, ErrInvalidDate
}

// parseDateFormat parses dd/mm/yyyy format
func parseDateFormat(input string) (*time.Time, error) {
	matches := dateRegex.FindStringSubmatch(input)
	if len(matches) != 4 {
		return nil, ErrInvalidDate
	}

	day, _ := strconv.Atoi(matches[1])
	month, _ := strconv.Atoi(matches[2])
	year, _ := strconv.Atoi(matches[3])

	if day < 1 || day > 31 {
		return nil, fmt.Errorf("day must be between 1 and 31")
	}
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("month must be between 1 and 12")
	}
	if year < 2000 || year > 2100 {
		return nil, fmt.Errorf("year must be between 2000 and 2100")
	}

	d := time.Date(year, time.Month(month), day, 23, 59, 59, 0, time.Local)

	// time.Date normalizes 31/02 into March
	if d.Day() != day || d.Month() != time.Month(month) || d.Year() != year {
		return nil, fmt.Errorf("invalid date %s", input)
	}

	return &d, nil
}

// parseRelativeTime parses relative time formats like "3 days", "24 hours", "2w"
func parseRelativeTime(input string) (*time.Time, error) {
	matches := relativeRegex.FindStringSubmatch(strings.ToLower(input))
	if len(matches) != 3 {
		return nil, ErrInvalidDate
	}

	amount, err := strconv.Atoi(matches[1])
	if err != nil {
		return nil, ErrInvalidDate
	}

	t := now()
	switch matches[2] {
	case "h", "hour", "hours":
		if amount < 1 || amount > 8760 {
			return nil, fmt.Errorf("hours must be between 1 and 8760")
		}
		d := t.Add(time.Duration(amount) * time.Hour)
		return &d, nil

	case "d", "day", "days":
		if amount < 1 || amount > 365 {
			return nil, fmt.Errorf("days must be between 1 and 365")
		}
		d := endOfDay(t, amount)
		return &d, nil

	case "w", "week", "weeks":
		if amount < 1 || amount > 52 {
			return nil, fmt.Errorf("weeks must be between 1 and 52")
		}
		d := endOfDay(t, amount*7)
		return &d, nil
	}
	return nil, ErrInvalidDate
}

// endOfDay returns 23:59:59 on the day that is days after t.
func endOfDay(t time.Time, days int) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, t.Location())
	return day.AddDate(0, 0, days)
}

// ParseEstimate parses an effort estimate. It accepts Go durations
// ("90m", "1h30m") and whole days ("2d", counted as 24h each).
func ParseEstimate(input string) (*time.Duration, error) {
	input = strings.ToLower(strings.TrimSpace(input))
	if input == "" {
		return nil, nil
	}

	if m := dayDurRegex.FindStringSubmatch(input); m != nil {
		days, err := strconv.Atoi(m[1])
		if err != nil || days < 1 {
			return nil, ErrInvalidDuration
		}
		d := time.Duration(days) * 24 * time.Hour
		return &d, nil
	}

	d, err := time.ParseDuration(input)
	if err != nil || d <= 0 {
		return nil, ErrInvalidDuration
	}
	return &d, nil
}

// FormatDueDate formats a due date for display
func FormatDueDate(due *time.Time) string {
	if due == nil {
		return ""
	}

	t := now()
	today := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	dueDay := time.Date(due.Year(), due.Month(), due.Day(), 0, 0, 0, 0, due.Location())
	daysDiff := int(dueDay.Sub(today).Hours() / 24)

	dateStr := due.Format("02/01/2006")

	switch {
	case daysDiff < 0:
		return fmt.Sprintf("⚠️ OVERDUE (%s)", dateStr)
	case daysDiff == 0:
		return fmt.Sprintf("🔥 Due today (%s)", dateStr)
	case daysDiff == 1:
		return fmt.Sprintf("📅 Due tomorrow (%s)", dateStr)
	case daysDiff <= 7:
		return fmt.Sprintf("📅 Due %s (in %d days)", dateStr, daysDiff)
	default:
		return fmt.Sprintf("📅 Due %s", dateStr)
	}
}

// FormatEstimate renders an estimate compactly, e.g. "1h30m" or "2d".
func FormatEstimate(est *time.Duration) string {
	if est == nil {
		return ""
	}
	d := *est
	if d >= 24*time.Hour && d%(24*time.Hour) == 0 {
		return fmt.Sprintf("%dd", int(d/(24*time.Hour)))
	}
	s := d.String()
	if strings.HasSuffix(s, "m0s") {
		s = strings.TrimSuffix(s, "0s")
	}
	if strings.HasSuffix(s, "h0m") {
		s = strings.TrimSuffix(s, "0m")
	}
	return s
}
