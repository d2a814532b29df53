package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/balkashynov/arc/internal/models"
)

// ParsedTask represents a task parsed from natural language
type ParsedTask struct {
	Title    string
	Notes    string
	Priority *int
	Status   models.Status
	Start    *time.Time
	Due      *time.Time
	Est      *time.Duration
	Errors   []string
}

var (
	priorityRegex = regexp.MustCompile(`(?:^|\s)\+(-?[a-zA-Z0-9]+)`)
	statusRegex   = regexp.MustCompile(`(?:^|\s)!([a-zA-Z]+)`)
	dueRegex      = regexp.MustCompile(`\bdue:(\S+)`)
	startRegex    = regexp.MustCompile(`\bstart:(\S+)`)
	estRegex      = regexp.MustCompile(`\best:(\S+)`)
)

// ParseTitle extracts metadata from a task title using natural syntax
// Syntax: "Task title +priority !status due:3days start:tomorrow est:2h"
func ParseTitle(input string) ParsedTask {
	result := ParsedTask{Errors: []string{}}

	if m := priorityRegex.FindStringSubmatch(input); len(m) > 1 {
		if p, err := ParsePriority(m[1]); err != nil {
			result.Errors = append(result.Errors, err.Error())
		} else {
			result.Priority = &p
		}
		input = priorityRegex.ReplaceAllString(input, " ")
	}

	if m := statusRegex.FindStringSubmatch(input); len(m) > 1 {
		if s, err := models.ParseStatus(m[1]); err != nil {
			result.Errors = append(result.Errors, "Invalid status '"+m[1]+"'")
		} else {
			result.Status = s
		}
		input = statusRegex.ReplaceAllString(input, " ")
	}

	if m := dueRegex.FindStringSubmatch(input); len(m) > 1 {
		if d, err := ParseDate(m[1]); err != nil {
			result.Errors = append(result.Errors, "Invalid due date '"+m[1]+"': "+err.Error())
		} else {
			result.Due = d
		}
		input = dueRegex.ReplaceAllString(input, "")
	}

	if m := startRegex.FindStringSubmatch(input); len(m) > 1 {
		if d, err := ParseDate(m[1]); err != nil {
			result.Errors = append(result.Errors, "Invalid start date '"+m[1]+"': "+err.Error())
		} else {
			result.Start = d
		}
		input = startRegex.ReplaceAllString(input, "")
	}

	if m := estRegex.FindStringSubmatch(input); len(m) > 1 {
		if d, err := ParseEstimate(m[1]); err != nil {
			result.Errors = append(result.Errors, "Invalid estimate '"+m[1]+"': "+err.Error())
		} else {
			result.Est = d
		}
		input = estRegex.ReplaceAllString(input, "")
	}

	result.Title = strings.Join(strings.Fields(input), " ")

	return result
}

// Schedule returns the parsed scheduling fields.
func (p ParsedTask) Schedule() models.Schedule {
	return models.Schedule{Start: p.Start, Due: p.Due, Est: p.Est}
}

// ParsePriority converts a priority to an int. Words map to the
// usual levels (low=1, medium=2, high=3); any integer is accepted as-is.
func ParsePriority(priority string) (int, error) {
	priority = strings.ToLower(strings.TrimSpace(priority))
	switch priority {
	case "", "none":
		return 0, nil
	case "low":
		return 1, nil
	case "medium", "med":
		return 2, nil
	case "high":
		return 3, nil
	}
	n, err := strconv.Atoi(priority)
	if err != nil {
		return 0, fmt.Errorf("invalid priority '%s'. Use: low, medium, high or an integer", priority)
	}
	return n, nil
}

// PriorityLabel renders a priority for display
func PriorityLabel(priority int) string {
	switch priority {
	case 0:
		return ""
	case 1:
		return "low"
	case 2:
		return "medium"
	case 3:
		return "high"
	default:
		return strconv.Itoa(priority)
	}
}
