package tasks

// DateGroups partitions tasks by due date. Every input task lands in
// exactly one bucket.
type DateGroups struct {
	Overdue  []Task `yaml:"overdue" json:"overdue"`
	Today    []Task `yaml:"today" json:"today"`
	Tomorrow []Task `yaml:"tomorrow" json:"tomorrow"`
	ThisWeek []Task `yaml:"this_week" json:"this_week"`
	Later    []Task `yaml:"later" json:"later"`
}

// CategoryGroup holds the tasks sharing one category
type CategoryGroup struct {
	Category string `yaml:"category" json:"category"`
	Tasks    []Task `yaml:"tasks" json:"tasks"`
}

// PriorityGroups buckets tasks by priority
type PriorityGroups struct {
	High   []Task `yaml:"high" json:"high"`
	Medium []Task `yaml:"medium" json:"medium"`
	Low    []Task `yaml:"low" json:"low"`
}

// GroupByDate partitions tasks into overdue, today, tomorrow, this week and
// later, checked in that order. Overdue wins over every other bucket for
// incomplete tasks. Completed past-due tasks and tasks without a valid due
// date go to Later.
func (e *Engine) GroupByDate(tasks []Task) DateGroups {
	b := e.bounds()
	groups := DateGroups{
		Overdue:  []Task{},
		Today:    []Task{},
		Tomorrow: []Task{},
		ThisWeek: []Task{},
		Later:    []Task{},
	}

	for _, t := range tasks {
		if !t.HasDueDate() {
			groups.Later = append(groups.Later, t)
			continue
		}
		due := *t.DueDate
		switch {
		case !t.Completed && b.isBeforeToday(due):
			groups.Overdue = append(groups.Overdue, t)
		case b.isToday(due):
			groups.Today = append(groups.Today, t)
		case b.isTomorrow(due):
			groups.Tomorrow = append(groups.Tomorrow, t)
		case b.isThisWeek(due):
			groups.ThisWeek = append(groups.ThisWeek, t)
		default:
			groups.Later = append(groups.Later, t)
		}
	}
	return groups
}

// GroupByCategory groups tasks by category in first-seen order
func (e *Engine) GroupByCategory(tasks []Task) []CategoryGroup {
	index := make(map[string]int)
	groups := []CategoryGroup{}
	for _, t := range tasks {
		i, ok := index[t.Category]
		if !ok {
			i = len(groups)
			index[t.Category] = i
			groups = append(groups, CategoryGroup{Category: t.Category})
		}
		groups[i].Tasks = append(groups[i].Tasks, t)
	}
	return groups
}

// GroupByPriority buckets tasks into high, medium and low. Tasks with any
// other priority value are dropped from the result.
func (e *Engine) GroupByPriority(tasks []Task) PriorityGroups {
	groups := PriorityGroups{
		High:   []Task{},
		Medium: []Task{},
		Low:    []Task{},
	}
	for _, t := range tasks {
		switch t.Priority {
		case PriorityHigh:
			groups.High = append(groups.High, t)
		case PriorityMedium:
			groups.Medium = append(groups.Medium, t)
		case PriorityLow:
			groups.Low = append(groups.Low, t)
		}
	}
	return groups
}
