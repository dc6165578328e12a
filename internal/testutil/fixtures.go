package testutil

import (
	"time"

	"github.com/amirphiladam2/Actionable-sub001/internal/tasks"
)

// FixedNow is the reference instant for fixtures: Wednesday 2025-03-12 14:30 UTC
var FixedNow = time.Date(2025, time.March, 12, 14, 30, 0, 0, time.UTC)

// Clock returns FixedNow
func Clock() time.Time {
	return FixedNow
}

// Engine returns a task engine pinned to FixedNow in UTC
func Engine() *tasks.Engine {
	return &tasks.Engine{Now: Clock, Location: time.UTC}
}

// Due returns a due date days after FixedNow's date at the given hour (UTC)
func Due(days, hour int) *time.Time {
	d := time.Date(2025, time.March, 12+days, hour, 0, 0, 0, time.UTC)
	return &d
}

// SampleTasks returns a small task set covering every date bucket:
//
//	1 overdue, 2 today, 3 tomorrow, 4 this week, 5 later,
//	6 no due date, 7 completed and past due
func SampleTasks() []tasks.Task {
	created := FixedNow.Add(-48 * time.Hour)
	mk := func(id, title, category string, p tasks.Priority, due *time.Time, completed bool, offset time.Duration) tasks.Task {
		return tasks.Task{
			ID:        id,
			Title:     title,
			Category:  category,
			Priority:  p,
			DueDate:   due,
			Completed: completed,
			CreatedAt: created.Add(offset),
			UpdatedAt: created.Add(offset),
		}
	}
	return []tasks.Task{
		mk("1", "File taxes", "Finance", tasks.PriorityHigh, Due(-2, 9), false, 1*time.Minute),
		mk("2", "Standup notes", "Work", tasks.PriorityMedium, Due(0, 18), false, 2*time.Minute),
		mk("3", "Buy groceries", "Personal", tasks.PriorityLow, Due(1, 10), false, 3*time.Minute),
		mk("4", "Quarterly review", "Work", tasks.PriorityHigh, Due(4, 12), false, 4*time.Minute),
		mk("5", "Renew passport", "Personal", tasks.PriorityMedium, Due(20, 9), false, 5*time.Minute),
		mk("6", "Read a book", "Personal", tasks.PriorityLow, nil, false, 6*time.Minute),
		mk("7", "Pay rent", "Finance", tasks.PriorityHigh, Due(-1, 9), true, 7*time.Minute),
	}
}
