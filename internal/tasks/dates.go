package tasks

import "time"

const thisWeekDays = 7

// startOfDay truncates t to midnight in loc
func startOfDay(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// addDays moves a midnight forward by n calendar days. time.Date keeps the
// result on midnight across DST changes, unlike Add(24h).
func addDays(midnight time.Time, n int) time.Time {
	y, m, d := midnight.Date()
	return time.Date(y, m, d+n, 0, 0, 0, 0, midnight.Location())
}

// dayBounds holds the midnights used to classify a due date
type dayBounds struct {
	today    time.Time
	tomorrow time.Time
	weekEnd  time.Time
}

func newDayBounds(now time.Time, loc *time.Location) dayBounds {
	today := startOfDay(now, loc)
	return dayBounds{
		today:    today,
		tomorrow: addDays(today, 1),
		weekEnd:  addDays(today, thisWeekDays),
	}
}

func (b dayBounds) isToday(due time.Time) bool {
	return !due.Before(b.today) && due.Before(b.tomorrow)
}

func (b dayBounds) isTomorrow(due time.Time) bool {
	return !due.Before(b.tomorrow) && due.Before(addDays(b.tomorrow, 1))
}

// isThisWeek is inclusive at both ends: [today 00:00, today+7d 00:00]
func (b dayBounds) isThisWeek(due time.Time) bool {
	return !due.Before(b.today) && !due.After(b.weekEnd)
}

func (b dayBounds) isBeforeToday(due time.Time) bool {
	return due.Before(b.today)
}

// isOnOrAfterMidnightToday is the "upcoming" date range policy
func (b dayBounds) isOnOrAfterMidnightToday(due time.Time) bool {
	return !due.Before(b.today)
}

// isAfterNow is the UpcomingTasks policy. It compares against the current
// instant rather than midnight.
func isAfterNow(due, now time.Time) bool {
	return !due.Before(now)
}
