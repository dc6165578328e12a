package tasks

import (
	"strings"
	"time"
)

// Priority is the urgency level of a task
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Weight returns the numeric rank of a priority (high=3, medium=2, low=1).
// Unknown priorities weigh 0.
func (p Priority) Weight() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	default:
		return 0
	}
}

// Task is a unit of work as returned by the data store.
// The engine treats it as read-only.
type Task struct {
	ID          string     `yaml:"id" json:"id"`
	Title       string     `yaml:"title" json:"title"`
	Description string     `yaml:"description,omitempty" json:"description"`
	Category    string     `yaml:"category,omitempty" json:"category"`
	Priority    Priority   `yaml:"priority" json:"priority"`
	DueDate     *time.Time `yaml:"due_date,omitempty" json:"due_date,omitempty"`
	Completed   bool       `yaml:"completed" json:"completed"`
	CreatedAt   time.Time  `yaml:"created_at" json:"created_at"`
	UpdatedAt   time.Time  `yaml:"updated_at,omitempty" json:"updated_at,omitempty"`
}

// HasDueDate reports whether the task carries a comparable due date
func (t *Task) HasDueDate() bool {
	return t.DueDate != nil && !t.DueDate.IsZero()
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseTimestamp parses a stored timestamp. Values without a zone are read
// in loc (time.Local when nil). Returns nil for empty or unparseable input.
func ParseTimestamp(s string, loc *time.Location) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if loc == nil {
		loc = time.Local
	}
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return &t
		}
	}
	return nil
}
