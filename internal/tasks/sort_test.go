package tasks

import (
	"reflect"
	"testing"
	"time"
)

func TestSortPriorityAscPutsHighFirst(t *testing.T) {
	e := testEngine()
	input := []Task{
		{ID: "low", Priority: PriorityLow},
		{ID: "high", Priority: PriorityHigh},
		{ID: "medium", Priority: PriorityMedium},
	}

	got := ids(e.Sort(input, SortByPriority, Asc))
	want := []string{"high", "medium", "low"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Asc: expected %v, got %v", want, got)
	}

	got = ids(e.Sort(input, SortByPriority, Desc))
	want = []string{"low", "medium", "high"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Desc: expected %v, got %v", want, got)
	}
}

func TestFilterPrioritySortViaCriteria(t *testing.T) {
	e := testEngine()
	input := []Task{
		{ID: "low", Priority: PriorityLow},
		{ID: "high", Priority: PriorityHigh},
		{ID: "medium", Priority: PriorityMedium},
	}
	got := ids(e.Filter(input, FilterCriteria{SortBy: SortByPriority, SortOrder: Asc}, ""))
	want := []string{"high", "medium", "low"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestComparePriority(t *testing.T) {
	high := &Task{Priority: PriorityHigh}
	low := &Task{Priority: PriorityLow}
	unknown := &Task{Priority: "urgent"}

	if got := ComparePriority(high, low); got != -2 {
		t.Errorf("Expected -2, got %d", got)
	}
	if got := ComparePriority(low, high); got != 2 {
		t.Errorf("Expected 2, got %d", got)
	}
	if got := ComparePriority(unknown, low); got != 1 {
		t.Errorf("Expected unknown priority to rank below low, got %d", got)
	}
}

func TestSortIsStable(t *testing.T) {
	e := testEngine()
	input := []Task{
		{ID: "a", Priority: PriorityHigh},
		{ID: "b", Priority: PriorityLow},
		{ID: "c", Priority: PriorityHigh},
		{ID: "d", Priority: PriorityLow},
		{ID: "e", Priority: PriorityHigh},
	}
	got := ids(e.Sort(input, SortByPriority, Asc))
	want := []string{"a", "c", "e", "b", "d"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestSortIsIdempotent(t *testing.T) {
	e := testEngine()
	keys := []SortKey{SortByDueDate, SortByPriority, SortByCategory, SortByCreated, SortByTitle, SortByCompleted}
	for _, key := range keys {
		for _, order := range []SortOrder{Asc, Desc} {
			once := e.Sort(sampleTasks(), key, order)
			twice := e.Sort(once, key, order)
			if !reflect.DeepEqual(ids(once), ids(twice)) {
				t.Errorf("%s/%s: %v != %v", key, order, ids(once), ids(twice))
			}
		}
	}
}

func TestSortDueDateInvalidLast(t *testing.T) {
	e := testEngine()
	input := []Task{
		{ID: "none", DueDate: nil},
		{ID: "late", DueDate: at(3, 0)},
		{ID: "zero", DueDate: &time.Time{}},
		{ID: "early", DueDate: at(-3, 0)},
	}

	got := ids(e.Sort(input, SortByDueDate, Asc))
	want := []string{"early", "late", "none", "zero"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Asc: expected %v, got %v", want, got)
	}

	got = ids(e.Sort(input, SortByDueDate, Desc))
	want = []string{"late", "early", "none", "zero"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Desc: expected %v, got %v", want, got)
	}
}

func TestSortCreated(t *testing.T) {
	e := testEngine()
	input := []Task{
		{ID: "new", CreatedAt: testNow},
		{ID: "unknown"},
		{ID: "old", CreatedAt: testNow.Add(-time.Hour)},
	}
	got := ids(e.Sort(input, SortByCreated, Asc))
	want := []string{"old", "new", "unknown"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Asc: expected %v, got %v", want, got)
	}
	got = ids(e.Sort(input, SortByCreated, Desc))
	want = []string{"new", "old", "unknown"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Desc: expected %v, got %v", want, got)
	}
}

func TestSortTitleUsesCollation(t *testing.T) {
	e := testEngine()
	input := []Task{
		{ID: "c", Title: "cherry"},
		{ID: "B", Title: "Banana"},
		{ID: "a", Title: "apple"},
		{ID: "empty"},
	}
	got := ids(e.Sort(input, SortByTitle, Asc))
	want := []string{"empty", "a", "B", "c"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestSortCategory(t *testing.T) {
	e := testEngine()
	input := []Task{
		{ID: "1", Category: "work"},
		{ID: "2", Category: "Health"},
		{ID: "3", Category: "personal"},
	}
	got := ids(e.Sort(input, SortByCategory, Desc))
	want := []string{"1", "3", "2"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestSortCompleted(t *testing.T) {
	e := testEngine()
	input := []Task{
		{ID: "done1", Completed: true},
		{ID: "open1"},
		{ID: "done2", Completed: true},
		{ID: "open2"},
	}
	got := ids(e.Sort(input, SortByCompleted, Asc))
	want := []string{"open1", "open2", "done1", "done2"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Asc: expected %v, got %v", want, got)
	}
	got = ids(e.Sort(input, SortByCompleted, Desc))
	want = []string{"done1", "done2", "open1", "open2"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Desc: expected %v, got %v", want, got)
	}
}
