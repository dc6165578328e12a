package tasks

import (
	"strings"
	"time"

	"golang.org/x/text/language"
)

// Engine filters, sorts, groups and summarizes task collections.
// The zero value is ready to use with the system clock, time.Local and
// English collation. Engine holds no mutable state and is safe for
// concurrent use.
type Engine struct {
	// Now returns the reference instant for day boundaries
	Now func() time.Time
	// Location defines where midnight falls
	Location *time.Location
	// Locale drives title and category collation
	Locale language.Tag
}

func (e *Engine) now() time.Time {
	if e.Now != nil {
		return e.Now()
	}
	return time.Now()
}

func (e *Engine) loc() *time.Location {
	if e.Location != nil {
		return e.Location
	}
	return time.Local
}

func (e *Engine) locale() language.Tag {
	if e.Locale == language.Und {
		return language.English
	}
	return e.Locale
}

func (e *Engine) bounds() dayBounds {
	return newDayBounds(e.now(), e.loc())
}

// Filter returns the tasks matching query and criteria, sorted per criteria.
// The input slice is not modified.
func (e *Engine) Filter(tasks []Task, criteria FilterCriteria, query string) []Task {
	b := e.bounds()
	needle := normalizeQuery(query)
	categories := stringSet(criteria.Categories)
	priorities := prioritySet(criteria.Priorities)

	result := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if needle != "" && !matchesQuery(&t, needle) {
			continue
		}
		if len(categories) > 0 && !categories[t.Category] {
			continue
		}
		if len(priorities) > 0 && !priorities[t.Priority] {
			continue
		}
		if !matchesDateRange(&t, criteria.DateRange, b) {
			continue
		}
		if !criteria.ShowCompleted && t.Completed {
			continue
		}
		result = append(result, t)
	}

	key := criteria.SortBy
	if key == "" {
		key = SortByDueDate
	}
	return e.Sort(result, key, criteria.SortOrder)
}

// Search returns the tasks whose title, description or category contain
// query, ignoring case. A blank query returns a copy of the input.
func (e *Engine) Search(tasks []Task, query string) []Task {
	needle := normalizeQuery(query)
	if needle == "" {
		out := make([]Task, len(tasks))
		copy(out, tasks)
		return out
	}
	result := []Task{}
	for _, t := range tasks {
		if matchesQuery(&t, needle) {
			result = append(result, t)
		}
	}
	return result
}

func normalizeQuery(q string) string {
	return strings.ToLower(strings.TrimSpace(q))
}

func matchesQuery(t *Task, needle string) bool {
	return strings.Contains(strings.ToLower(t.Title), needle) ||
		strings.Contains(strings.ToLower(t.Description), needle) ||
		strings.Contains(strings.ToLower(t.Category), needle)
}

func matchesDateRange(t *Task, r DateRange, b dayBounds) bool {
	if r == "" || r == RangeAll {
		return true
	}
	if !t.HasDueDate() {
		return false
	}
	due := *t.DueDate
	switch r {
	case RangeToday:
		return b.isToday(due)
	case RangeTomorrow:
		return b.isTomorrow(due)
	case RangeThisWeek:
		return b.isThisWeek(due)
	case RangeOverdue:
		return b.isBeforeToday(due) && !t.Completed
	case RangeUpcoming:
		return b.isOnOrAfterMidnightToday(due)
	default:
		return true
	}
}

func stringSet(values []string) map[string]bool {
	if len(values) == 0 {
		return nil
	}
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}

func prioritySet(values []Priority) map[Priority]bool {
	if len(values) == 0 {
		return nil
	}
	set := make(map[Priority]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}
