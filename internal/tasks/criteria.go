package tasks

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidCriteria is returned when a filter value cannot be parsed
var ErrInvalidCriteria = errors.New("invalid filter criteria")

// DateRange restricts tasks by due date
type DateRange string

const (
	RangeAll      DateRange = "all"
	RangeToday    DateRange = "today"
	RangeTomorrow DateRange = "tomorrow"
	RangeThisWeek DateRange = "thisWeek"
	RangeOverdue  DateRange = "overdue"
	RangeUpcoming DateRange = "upcoming"
)

// SortKey selects the field used to order tasks
type SortKey string

const (
	SortByDueDate   SortKey = "dueDate"
	SortByPriority  SortKey = "priority"
	SortByCategory  SortKey = "category"
	SortByCreated   SortKey = "created"
	SortByTitle     SortKey = "title"
	SortByCompleted SortKey = "completed"
)

// SortOrder is the direction of a sort
type SortOrder string

const (
	Asc  SortOrder = "asc"
	Desc SortOrder = "desc"
)

// FilterCriteria is the caller-built bundle of filter and sort parameters
// for a single query. Zero values mean: no restriction, hide completed,
// sort by due date ascending.
type FilterCriteria struct {
	Categories    []string   `yaml:"categories,omitempty" json:"categories,omitempty"`
	Priorities    []Priority `yaml:"priorities,omitempty" json:"priorities,omitempty"`
	DateRange     DateRange  `yaml:"date_range,omitempty" json:"date_range,omitempty"`
	ShowCompleted bool       `yaml:"show_completed" json:"show_completed"`
	SortBy        SortKey    `yaml:"sort_by,omitempty" json:"sort_by,omitempty"`
	SortOrder     SortOrder  `yaml:"sort_order,omitempty" json:"sort_order,omitempty"`
}

// ParsePriority validates a priority string
func ParsePriority(s string) (Priority, error) {
	switch p := Priority(strings.ToLower(strings.TrimSpace(s))); p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return p, nil
	}
	return "", fmt.Errorf("%w: unknown priority %q", ErrInvalidCriteria, s)
}

// ParseDateRange validates a date range. Empty input means RangeAll.
func ParseDateRange(s string) (DateRange, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return RangeAll, nil
	}
	for _, r := range []DateRange{RangeAll, RangeToday, RangeTomorrow, RangeThisWeek, RangeOverdue, RangeUpcoming} {
		if strings.EqualFold(s, string(r)) {
			return r, nil
		}
	}
	return "", fmt.Errorf("%w: unknown date range %q", ErrInvalidCriteria, s)
}

// ParseSortKey validates a sort key. Empty input means SortByDueDate.
func ParseSortKey(s string) (SortKey, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return SortByDueDate, nil
	}
	for _, k := range []SortKey{SortByDueDate, SortByPriority, SortByCategory, SortByCreated, SortByTitle, SortByCompleted} {
		if strings.EqualFold(s, string(k)) {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: unknown sort key %q", ErrInvalidCriteria, s)
}

// ParseSortOrder validates a sort order. Empty input means Asc.
func ParseSortOrder(s string) (SortOrder, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "asc":
		return Asc, nil
	case "desc":
		return Desc, nil
	}
	return "", fmt.Errorf("%w: unknown sort order %q", ErrInvalidCriteria, s)
}

// CriteriaInput holds unparsed criteria values as they arrive from query
// parameters or command-line flags
type CriteriaInput struct {
	Categories    []string
	Priorities    []string
	DateRange     string
	ShowCompleted bool
	SortBy        string
	SortOrder     string
}

// Parse validates every field and builds FilterCriteria. Blank category and
// priority entries are ignored.
func (in CriteriaInput) Parse() (FilterCriteria, error) {
	var c FilterCriteria
	var err error

	for _, cat := range in.Categories {
		if cat = strings.TrimSpace(cat); cat != "" {
			c.Categories = append(c.Categories, cat)
		}
	}
	for _, raw := range in.Priorities {
		if strings.TrimSpace(raw) == "" {
			continue
		}
		p, err := ParsePriority(raw)
		if err != nil {
			return FilterCriteria{}, err
		}
		c.Priorities = append(c.Priorities, p)
	}
	if c.DateRange, err = ParseDateRange(in.DateRange); err != nil {
		return FilterCriteria{}, err
	}
	if c.SortBy, err = ParseSortKey(in.SortBy); err != nil {
		return FilterCriteria{}, err
	}
	if c.SortOrder, err = ParseSortOrder(in.SortOrder); err != nil {
		return FilterCriteria{}, err
	}
	c.ShowCompleted = in.ShowCompleted
	return c, nil
}
