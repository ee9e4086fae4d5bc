package analytics

import (
	"fmt"
	"time"

	"github.com/cmlabs-hris/analytics-backend-go/internal/domain/analytics"
	"github.com/cmlabs-hris/analytics-backend-go/internal/domain/attendance"
)

// businessHours are the fixed hourly buckets of the today trend, 9 AM to 6 PM.
var businessHours = []int{9, 10, 11, 12, 13, 14, 15, 16, 17, 18}

// GenerateTrend builds the time-bucketed trend series from records already
// fetched for the whole window. Bucketing happens in memory; no per-bucket
// store queries.
//
// Year periods produce up to 12 monthly percentage buckets, month periods up
// to 5 weekly percentage buckets with the last week clipped to the window end.
// Today produces one bucket per business hour whose value is a raw count of
// distinct employees checking in within that hour, not a percentage; the
// consumer labels the series accordingly.
func GenerateTrend(p analytics.Period, w Window, records []attendance.Record) []analytics.TrendPoint {
	switch p {
	case analytics.PeriodYear:
		return monthlyTrend(w, records)
	case analytics.PeriodMonth:
		return weeklyTrend(w, records)
	default:
		return hourlyTrend(records)
	}
}

func monthlyTrend(w Window, records []attendance.Record) []analytics.TrendPoint {
	points := make([]analytics.TrendPoint, 0, 12)
	first := time.Date(w.Start.Year(), w.Start.Month(), 1, 0, 0, 0, 0, w.Start.Location())
	for i := 0; i < 12; i++ {
		start := first.AddDate(0, i, 0)
		if start.After(w.End) {
			break
		}
		end := endOfDay(start.AddDate(0, 1, -1))
		if end.After(w.End) {
			end = w.End
		}
		t := ReduceAttendance(recordsBetween(records, start, end))
		points = append(points, analytics.TrendPoint{
			Period:     start.Format("Jan"),
			Attendance: Percent(t.Present, t.Total),
		})
	}
	return points
}

func weeklyTrend(w Window, records []attendance.Record) []analytics.TrendPoint {
	points := make([]analytics.TrendPoint, 0, 5)
	for start, week := w.Start, 1; !start.After(w.End) && week <= 5; start, week = start.AddDate(0, 0, 7), week+1 {
		end := endOfDay(start.AddDate(0, 0, 6))
		if end.After(w.End) {
			end = w.End
		}
		t := ReduceAttendance(recordsBetween(records, start, end))
		points = append(points, analytics.TrendPoint{
			Period:     fmt.Sprintf("Week %d", week),
			Attendance: Percent(t.Present, t.Total),
		})
	}
	return points
}

func hourlyTrend(records []attendance.Record) []analytics.TrendPoint {
	points := make([]analytics.TrendPoint, 0, len(businessHours))
	for _, hour := range businessHours {
		seen := make(map[string]struct{})
		for _, rec := range records {
			if rec.ClockIn != nil && rec.ClockIn.Hour() == hour {
				seen[rec.EmployeeID] = struct{}{}
			}
		}
		points = append(points, analytics.TrendPoint{
			Period:     hourLabel(hour),
			Attendance: len(seen),
		})
	}
	return points
}

func recordsBetween(records []attendance.Record, start, end time.Time) []attendance.Record {
	var out []attendance.Record
	for _, rec := range records {
		if !rec.Date.Before(start) && !rec.Date.After(end) {
			out = append(out, rec)
		}
	}
	return out
}

// hourLabel renders a 24-hour value in 12-hour AM/PM form, e.g. 14 -> "2 PM".
func hourLabel(hour int) string {
	suffix := "AM"
	if hour >= 12 {
		suffix = "PM"
	}
	h := hour % 12
	if h == 0 {
		h = 12
	}
	return fmt.Sprintf("%d %s", h, suffix)
}
