package attendance

import (
	"math"
	"time"

	attendanceerrors "go-stationops/internal/attendance/errors"
)

const (
	DateLayout  = "2006-01-02"
	MonthLayout = "2006-01"
	ClockLayout = "15:04"

	// CutoffMinutes is 08:30; a clock-in after it is late.
	CutoffMinutes = 8*60 + 30

	// ConsistencyWindowDays counts the reported day itself.
	ConsistencyWindowDays = 30
)

func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, attendanceerrors.ErrInvalidDate
	}
	return d, nil
}

func ParseMonth(s string) (time.Time, error) {
	m, err := time.Parse(MonthLayout, s)
	if err != nil {
		return time.Time{}, attendanceerrors.ErrInvalidMonth
	}
	return m, nil
}

// ClockMinutes parses HH:MM into minutes after midnight.
func ClockMinutes(s string) (int, error) {
	t, err := time.Parse(ClockLayout, s)
	if err != nil {
		return 0, attendanceerrors.ErrInvalidClockTime
	}
	return t.Hour()*60 + t.Minute(), nil
}

// TotalHours is the time between both clock readings rounded to two
// decimals. It is zero unless both are set.
func TotalHours(clockIn, clockOut string) (float64, error) {
	if clockIn == "" || clockOut == "" {
		return 0, nil
	}
	in, err := ClockMinutes(clockIn)
	if err != nil {
		return 0, err
	}
	out, err := ClockMinutes(clockOut)
	if err != nil {
		return 0, err
	}
	if out < in {
		return 0, attendanceerrors.ErrClockOutBeforeClockIn
	}
	return round2(float64(out-in) / 60), nil
}

func MinutesLate(clockIn string) (int, error) {
	m, err := ClockMinutes(clockIn)
	if err != nil {
		return 0, err
	}
	return max(0, m-CutoffMinutes), nil
}

// ClassifyStatus turns a requested status into the stored one. Leave is
// kept as is; anything else with a clock-in after the cutoff becomes late.
func ClassifyStatus(requested Status, clockIn string) (Status, error) {
	if requested == StatusLeave || clockIn == "" {
		return requested, nil
	}
	late, err := MinutesLate(clockIn)
	if err != nil {
		return "", err
	}
	if late > 0 {
		return StatusLate, nil
	}
	return requested, nil
}

func Punctuality(status Status, clockIn string) int {
	switch {
	case status == StatusLeave:
		return 5
	case status == StatusAbsent, clockIn == "":
		return 1
	}
	late, err := MinutesLate(clockIn)
	if err != nil {
		return 1
	}
	switch {
	case late == 0:
		return 5
	case late <= 15:
		return 4
	case late <= 30:
		return 3
	case late <= 60:
		return 2
	default:
		return 1
	}
}

// Consistency scores the share of attended days among the events given,
// which the caller limits to the trailing window.
func Consistency(events []Event) int {
	if len(events) == 0 {
		return 1
	}
	attended := 0
	for _, e := range events {
		if e.Status.Attended() {
			attended++
		}
	}
	pct := float64(attended) * 100 / float64(len(events))
	switch {
	case pct >= 95:
		return 5
	case pct >= 90:
		return 4
	case pct >= 80:
		return 3
	case pct >= 70:
		return 2
	default:
		return 1
	}
}

// ConsecutiveDays counts the attended calendar days immediately before date
// in prior. A missing day or a non-attended day ends the run.
func ConsecutiveDays(date time.Time, prior []Event) int {
	byDate := make(map[string]Status, len(prior))
	for _, e := range prior {
		byDate[e.Date] = e.Status
	}

	n := 0
	for d := date.AddDate(0, 0, -1); ; d = d.AddDate(0, 0, -1) {
		s, ok := byDate[d.Format(DateLayout)]
		if !ok || !s.Attended() {
			return n
		}
		n++
	}
}

func Summarize(year int, month time.Month, events []Event) MonthSummary {
	sum := MonthSummary{Year: year, Month: int(month)}
	hours := 0.0
	for _, e := range events {
		switch e.Status {
		case StatusPresent:
			sum.PresentDays++
		case StatusLate:
			sum.LateDays++
		case StatusAbsent:
			sum.AbsentDays++
		case StatusLeave:
			sum.LeaveDays++
		}
		hours += e.TotalHours
	}
	sum.TotalHours = round2(hours)
	return sum
}

// MonthBounds returns the first and last calendar date of the month d is in.
func MonthBounds(d time.Time) (first, last time.Time) {
	first = time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, time.UTC)
	last = first.AddDate(0, 1, -1)
	return first, last
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
