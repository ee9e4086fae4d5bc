package analytics

import (
	"fmt"
	"math"
	"time"

	"github.com/cmlabs-hris/analytics-backend-go/internal/domain/attendance"
)

// Totals holds raw attendance status counts for a window. Total counts every
// record in range regardless of status value; statuses other than Present and
// Absent contribute to Total only.
type Totals struct {
	Present int
	Absent  int
	Total   int
}

// ReduceAttendance tallies status counts over raw records.
func ReduceAttendance(records []attendance.Record) Totals {
	var t Totals
	for _, rec := range records {
		t.Total++
		switch rec.Status {
		case attendance.StatusPresent:
			t.Present++
		case attendance.StatusAbsent:
			t.Absent++
		}
	}
	return t
}

// Percent returns part/total as a nearest-integer percentage, 0 when total is
// not positive.
func Percent(part, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}

// AggregateDailyTimes computes the average effective check-in and check-out
// across employee-days. Records are grouped per (employee, date); the earliest
// clock-in and latest clock-out of each group are that day's effective times.
// Averages are taken over minutes since local midnight and formatted "HH:MM".
// A nil result means no samples existed, which the caller renders as a
// placeholder rather than an error.
func AggregateDailyTimes(records []attendance.Record) (avgIn, avgOut *string) {
	type dayTimes struct {
		in  *time.Time
		out *time.Time
	}

	byDay := make(map[string]*dayTimes)
	for i := range records {
		rec := &records[i]
		key := rec.EmployeeID + "|" + rec.Date.Format("2006-01-02")
		d, ok := byDay[key]
		if !ok {
			d = &dayTimes{}
			byDay[key] = d
		}
		if rec.ClockIn != nil && (d.in == nil || rec.ClockIn.Before(*d.in)) {
			d.in = rec.ClockIn
		}
		if rec.ClockOut != nil && (d.out == nil || rec.ClockOut.After(*d.out)) {
			d.out = rec.ClockOut
		}
	}

	var ins, outs []int
	for _, d := range byDay {
		if d.in != nil {
			ins = append(ins, minutesSinceMidnight(*d.in))
		}
		if d.out != nil {
			outs = append(outs, minutesSinceMidnight(*d.out))
		}
	}
	return averageClock(ins), averageClock(outs)
}

// AvgWorkHours averages the non-null, non-zero worked hours across records,
// rounded to one decimal. Zero when no record qualifies.
func AvgWorkHours(records []attendance.Record) float64 {
	var sum float64
	var count int
	for _, rec := range records {
		if rec.WorkHours == nil || *rec.WorkHours == 0 {
			continue
		}
		sum += *rec.WorkHours
		count++
	}
	if count == 0 {
		return 0
	}
	return math.Round(sum/float64(count)*10) / 10
}

func minutesSinceMidnight(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

func averageClock(minutes []int) *string {
	if len(minutes) == 0 {
		return nil
	}
	sum := 0
	for _, m := range minutes {
		sum += m
	}
	mean := int(math.Round(float64(sum) / float64(len(minutes))))
	formatted := fmt.Sprintf("%02d:%02d", mean/60, mean%60)
	return &formatted
}
