package tasks

import (
	"sort"
	"time"

	"golang.org/x/text/collate"
)

// Sort returns a stably sorted copy of tasks. Desc reverses the comparator
// for every key, except that tasks with an invalid date for a time-based
// key always come last.
func (e *Engine) Sort(tasks []Task, key SortKey, order SortOrder) []Task {
	sorted := make([]Task, len(tasks))
	copy(sorted, tasks)
	cmp := e.comparator(key)
	sort.SliceStable(sorted, func(i, j int) bool {
		return compareWithOrder(cmp, &sorted[i], &sorted[j], order) < 0
	})
	return sorted
}

// comparison holds a base comparator and an optional validity probe. Tasks
// that fail the probe sort last in either direction.
type comparison struct {
	compare func(a, b *Task) int
	valid   func(t *Task) bool
}

func compareWithOrder(c comparison, a, b *Task, order SortOrder) int {
	if c.valid != nil {
		va, vb := c.valid(a), c.valid(b)
		switch {
		case !va && !vb:
			return 0
		case !va:
			return 1
		case !vb:
			return -1
		}
	}
	result := c.compare(a, b)
	if order == Desc {
		return -result
	}
	return result
}

func (e *Engine) comparator(key SortKey) comparison {
	switch key {
	case SortByPriority:
		return comparison{compare: ComparePriority}
	case SortByCategory:
		col := collate.New(e.locale())
		return comparison{compare: func(a, b *Task) int {
			return col.CompareString(a.Category, b.Category)
		}}
	case SortByTitle:
		col := collate.New(e.locale())
		return comparison{compare: func(a, b *Task) int {
			return col.CompareString(a.Title, b.Title)
		}}
	case SortByCreated:
		return comparison{
			compare: func(a, b *Task) int { return compareTimes(a.CreatedAt, b.CreatedAt) },
			valid:   func(t *Task) bool { return !t.CreatedAt.IsZero() },
		}
	case SortByCompleted:
		return comparison{compare: compareCompleted}
	default:
		return comparison{
			compare: func(a, b *Task) int { return compareTimes(*a.DueDate, *b.DueDate) },
			valid:   (*Task).HasDueDate,
		}
	}
}

// ComparePriority returns weight(b) - weight(a). Under Asc this places high
// before medium before low; Desc puts low first.
func ComparePriority(a, b *Task) int {
	return b.Priority.Weight() - a.Priority.Weight()
}

func compareCompleted(a, b *Task) int {
	switch {
	case a.Completed == b.Completed:
		return 0
	case !a.Completed:
		return -1
	default:
		return 1
	}
}

func compareTimes(a, b time.Time) int {
	switch {
	case a.Before(b):
		return -1
	case a.After(b):
		return 1
	default:
		return 0
	}
}
