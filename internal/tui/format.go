package tui

import (
	"fmt"
	"time"
)

// now is replaced in tests
var now = time.Now

// shortDue renders a due date to fit a narrow column
func shortDue(due *time.Time) string {
	if due == nil {
		return "-"
	}
	days := int(due.Sub(now()).Hours() / 24)
	switch {
	case due.Before(now()):
		return "OVERDUE"
	case days == 0:
		return "TODAY"
	case days == 1:
		return "TOMORROW"
	case days <= 7:
		return fmt.Sprintf("%dd", days)
	default:
		return due.Format("02/01")
	}
}

func dueColor(due *time.Time) string {
	if due == nil {
		return ColorDisabledText
	}
	days := int(due.Sub(now()).Hours() / 24)
	switch {
	case due.Before(now()):
		return ColorError
	case days <= 1:
		return ColorWarning
	case days <= 7:
		return ColorAccentBright
	default:
		return ColorPrimaryText
	}
}

func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	if width <= 3 {
		return string(r[:width])
	}
	return string(r[:width-3]) + "..."
}
