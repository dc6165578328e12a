package tasks

import (
	"reflect"
	"testing"
	"time"
)

func TestStatsEmpty(t *testing.T) {
	e := testEngine()
	got := e.Stats(nil)
	if got != (TaskStats{}) {
		t.Errorf("Expected all-zero stats, got %+v", got)
	}
}

func TestStats(t *testing.T) {
	e := testEngine()
	got := e.Stats(sampleTasks())
	want := TaskStats{
		Total:          7,
		Completed:      1,
		Pending:        6,
		Overdue:        1,
		DueToday:       1,
		DueTomorrow:    1,
		CompletionRate: 14,
	}
	if got != want {
		t.Errorf("Expected %+v, got %+v", want, got)
	}
}

func TestStatsCompletionRateRounds(t *testing.T) {
	e := testEngine()
	tests := []struct {
		completed, total, want int
	}{
		{1, 3, 33},
		{2, 3, 67},
		{1, 2, 50},
		{1, 8, 13},
		{3, 3, 100},
	}
	for _, tt := range tests {
		var input []Task
		for i := 0; i < tt.total; i++ {
			input = append(input, Task{Completed: i < tt.completed})
		}
		if got := e.Stats(input).CompletionRate; got != tt.want {
			t.Errorf("%d/%d: expected %d, got %d", tt.completed, tt.total, tt.want, got)
		}
	}
}

func TestOverdueScenario(t *testing.T) {
	e := testEngine()
	task := Task{ID: "late", Title: "File taxes", DueDate: at(-1, 12)}

	if !e.IsOverdue(task) {
		t.Error("Expected task due yesterday to be overdue")
	}
	if got := ids(e.GroupByDate([]Task{task}).Overdue); !reflect.DeepEqual(got, []string{"late"}) {
		t.Errorf("Expected task in overdue group, got %v", got)
	}
	if got := e.Stats([]Task{task}).Overdue; got != 1 {
		t.Errorf("Expected overdue count 1, got %d", got)
	}
}

func TestPredicates(t *testing.T) {
	e := testEngine()
	tests := []struct {
		name                     string
		task                     Task
		overdue, today, tomorrow bool
	}{
		{"yesterday open", Task{DueDate: at(-1, 12)}, true, false, false},
		{"yesterday done", Task{DueDate: at(-1, 12), Completed: true}, false, false, false},
		{"earlier today", Task{DueDate: at(0, 8)}, false, true, false},
		{"tomorrow", Task{DueDate: at(1, 23)}, false, false, true},
		{"in two days", Task{DueDate: at(2, 0)}, false, false, false},
		{"no date", Task{}, false, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := e.IsOverdue(tt.task); got != tt.overdue {
				t.Errorf("IsOverdue: expected %v, got %v", tt.overdue, got)
			}
			if got := e.IsDueToday(tt.task); got != tt.today {
				t.Errorf("IsDueToday: expected %v, got %v", tt.today, got)
			}
			if got := e.IsDueTomorrow(tt.task); got != tt.tomorrow {
				t.Errorf("IsDueTomorrow: expected %v, got %v", tt.tomorrow, got)
			}
		})
	}
}

func TestUpcomingTasksUsesCurrentInstant(t *testing.T) {
	e := testEngine()
	input := []Task{
		{ID: "this-morning", DueDate: at(0, 9)},
		{ID: "tonight", DueDate: at(0, 20)},
		{ID: "next-week", DueDate: at(7, 9)},
		{ID: "tomorrow", DueDate: at(1, 9)},
		{ID: "done", DueDate: at(1, 9), Completed: true},
		{ID: "undated"},
	}

	got := ids(e.UpcomingTasks(input, 0))
	want := []string{"tonight", "tomorrow", "next-week"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}

	// The date-range filter truncates to midnight and keeps this-morning
	ranged := ids(e.Filter(input, FilterCriteria{DateRange: RangeUpcoming}, ""))
	if len(ranged) == 0 || ranged[0] != "this-morning" {
		t.Errorf("Expected upcoming range to include this-morning first, got %v", ranged)
	}
}

func TestUpcomingTasksLimit(t *testing.T) {
	e := testEngine()
	var input []Task
	for i := 1; i <= 8; i++ {
		input = append(input, Task{ID: string(rune('a' + i - 1)), DueDate: at(i, 0)})
	}

	if got := e.UpcomingTasks(input, 5); len(got) != 5 {
		t.Errorf("Expected 5 tasks, got %d", len(got))
	}
	if got := e.UpcomingTasks(input, 0); len(got) != 8 {
		t.Errorf("Expected all 8 tasks with limit 0, got %d", len(got))
	}
	if got := e.UpcomingTasks(input, -1); len(got) != 8 {
		t.Errorf("Expected all 8 tasks with negative limit, got %d", len(got))
	}
}

func TestUpcomingTasksAtExactNow(t *testing.T) {
	e := testEngine()
	now := testNow
	got := e.UpcomingTasks([]Task{{ID: "now", DueDate: &now}}, 0)
	if len(got) != 1 {
		t.Errorf("Expected task due exactly now to be upcoming, got %d", len(got))
	}
	past := testNow.Add(-time.Second)
	if got := e.UpcomingTasks([]Task{{ID: "past", DueDate: &past}}, 0); len(got) != 0 {
		t.Errorf("Expected task due a second ago to be excluded, got %d", len(got))
	}
}
