package check

import "time"

const startHour = 8

// Window describes the check scheduling state at a given wall-clock time.
// Eligible means a check may start right now (working day, 08:00 or later).
// NextStart is the opening of the next window: same-day 08:00 before the
// window, otherwise the next working day's 08:00. Progress is the fraction
// of the midnight-to-08:00 run-up that has elapsed (0 on weekends, 1 once
// the window is open).
type Window struct {
	Eligible  bool      `json:"elegible"`
	NextStart time.Time `json:"proximo_inicio"`
	Progress  float64   `json:"progreso"`
}

func workday(d time.Weekday) bool { return d >= time.Monday && d <= time.Friday }

func at(t time.Time, hour int) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), hour, 0, 0, 0, t.Location())
}

func nextWorkdayStart(after time.Time) time.Time {
	d := at(after, startHour).AddDate(0, 0, 1)
	for !workday(d.Weekday()) {
		d = d.AddDate(0, 0, 1)
	}
	return d
}

// NextEligibleWindow is pure: the result depends only on now.
func NextEligibleWindow(now time.Time) Window {
	if !workday(now.Weekday()) {
		return Window{Eligible: false, NextStart: nextWorkdayStart(now), Progress: 0}
	}
	opens := at(now, startHour)
	if now.Before(opens) {
		elapsed := now.Sub(at(now, 0))
		total := opens.Sub(at(now, 0))
		return Window{Eligible: false, NextStart: opens, Progress: float64(elapsed) / float64(total)}
	}
	return Window{Eligible: true, NextStart: nextWorkdayStart(now), Progress: 1}
}
