// Package tasks implements the query engine behind the task list screens.
//
// # Query Pipeline
//
// Filter applies its steps in a fixed order:
//
//   - Search: trimmed, case-insensitive substring match on title, description
//     and category. An empty query matches everything.
//
//   - Category and priority inclusion. An empty set means no restriction.
//
//   - Date range (today, tomorrow, thisWeek, overdue, upcoming, all).
//
//   - Completed exclusion unless ShowCompleted is set.
//
//   - Stable sort by the requested key.
//
// # Day Boundaries
//
// All calendar comparisons truncate the engine clock to midnight in the
// engine location. Two policies exist and are intentionally kept apart:
// the upcoming date range compares against today's midnight, while
// UpcomingTasks compares against the current instant.
//
// # Invalid Dates
//
// A task with an absent or unparseable due date is never overdue, never
// due today or tomorrow, matches only the "all" range, lands in the Later
// group and sorts after every dated task regardless of sort order.
//
// # Usage
//
//	engine := tasks.Engine{}
//	visible := engine.Filter(all, tasks.FilterCriteria{DateRange: tasks.RangeToday}, "groceries")
//	groups := engine.GroupByDate(all)
//	stats := engine.Stats(all)
package tasks
