package domain

import (
	"fmt"
	"strings"
	"time"
)

// Priority buckets a task for filtering and display.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// DefaultPriority applies when todo.add is given no priority flag.
const DefaultPriority = PriorityMedium

// Priorities lists the valid values in ascending urgency.
func Priorities() []Priority {
	return []Priority{PriorityLow, PriorityMedium, PriorityHigh}
}

// ParsePriority validates a raw priority value.
func ParsePriority(raw string) (Priority, error) {
	p := Priority(strings.ToLower(strings.TrimSpace(raw)))
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return p, nil
	default:
		return "", fmt.Errorf("%w: priority must be one of low, medium, high", ErrInvalid)
	}
}

// Task is a single todo item.
type Task struct {
	ID        string
	Text      string
	Priority  Priority
	Completed bool
	CreatedAt time.Time
}
