package analytics

import (
	"time"

	"github.com/cmlabs-hris/analytics-backend-go/internal/domain/analytics"
)

// Window is a resolved reporting range, both bounds inclusive at day
// boundaries (00:00:00.000 to 23:59:59.999 local time).
type Window struct {
	Start       time.Time
	End         time.Time
	WorkingDays int
}

// ResolveWindow maps a period and a reference instant to a concrete window.
//
// The today window always reports one working day, even on weekends. The
// dashboard shows "1 working day" for the current day regardless of weekday;
// changing that would silently shift every daily rate.
func ResolveWindow(p analytics.Period, now time.Time) Window {
	switch p {
	case analytics.PeriodMonth:
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		end := endOfDay(start.AddDate(0, 1, -1))
		return Window{Start: start, End: end, WorkingDays: countWeekdays(start, end)}
	case analytics.PeriodYear:
		start := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
		end := endOfDay(time.Date(now.Year(), time.December, 31, 0, 0, 0, 0, now.Location()))
		return Window{Start: start, End: end, WorkingDays: countWeekdays(start, end)}
	default:
		return Window{Start: startOfDay(now), End: endOfDay(now), WorkingDays: 1}
	}
}

// countWeekdays counts Monday-Friday days in [start, end] inclusive. No
// holiday calendar is consulted.
func countWeekdays(start, end time.Time) int {
	count := 0
	for d := startOfDay(start); !d.After(end); d = d.AddDate(0, 0, 1) {
		if wd := d.Weekday(); wd != time.Saturday && wd != time.Sunday {
			count++
		}
	}
	return count
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(999*time.Millisecond), t.Location())
}
