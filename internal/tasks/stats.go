package tasks

import (
	"math"
	"sort"
)

// TaskStats summarizes a task collection
type TaskStats struct {
	Total          int `yaml:"total" json:"total"`
	Completed      int `yaml:"completed" json:"completed"`
	Pending        int `yaml:"pending" json:"pending"`
	Overdue        int `yaml:"overdue" json:"overdue"`
	DueToday       int `yaml:"due_today" json:"due_today"`
	DueTomorrow    int `yaml:"due_tomorrow" json:"due_tomorrow"`
	CompletionRate int `yaml:"completion_rate" json:"completion_rate"`
}

// Stats computes aggregate counts. CompletionRate is a rounded percentage
// and is 0 for an empty collection.
func (e *Engine) Stats(tasks []Task) TaskStats {
	b := e.bounds()
	var s TaskStats
	for _, t := range tasks {
		s.Total++
		if t.Completed {
			s.Completed++
		}
		if !t.HasDueDate() {
			continue
		}
		due := *t.DueDate
		if !t.Completed && b.isBeforeToday(due) {
			s.Overdue++
		}
		if b.isToday(due) {
			s.DueToday++
		}
		if b.isTomorrow(due) {
			s.DueTomorrow++
		}
	}
	s.Pending = s.Total - s.Completed
	if s.Total > 0 {
		s.CompletionRate = int(math.Round(100 * float64(s.Completed) / float64(s.Total)))
	}
	return s
}

// IsOverdue reports whether an incomplete task was due before today's
// midnight. Completed tasks are never overdue.
func (e *Engine) IsOverdue(t Task) bool {
	if t.Completed || !t.HasDueDate() {
		return false
	}
	return e.bounds().isBeforeToday(*t.DueDate)
}

// IsDueToday reports whether the task is due on today's calendar day
func (e *Engine) IsDueToday(t Task) bool {
	return t.HasDueDate() && e.bounds().isToday(*t.DueDate)
}

// IsDueTomorrow reports whether the task is due on tomorrow's calendar day
func (e *Engine) IsDueTomorrow(t Task) bool {
	return t.HasDueDate() && e.bounds().isTomorrow(*t.DueDate)
}

// UpcomingTasks returns incomplete tasks due at or after the current instant,
// soonest first. A limit of zero or less returns all of them.
func (e *Engine) UpcomingTasks(tasks []Task, limit int) []Task {
	now := e.now()
	upcoming := []Task{}
	for _, t := range tasks {
		if t.Completed || !t.HasDueDate() {
			continue
		}
		if isAfterNow(*t.DueDate, now) {
			upcoming = append(upcoming, t)
		}
	}
	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].DueDate.Before(*upcoming[j].DueDate)
	})
	if limit > 0 && len(upcoming) > limit {
		upcoming = upcoming[:limit]
	}
	return upcoming
}
