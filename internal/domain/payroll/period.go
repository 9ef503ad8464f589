package payroll

import "time"

// WorkingDays counts the calendar dates in [start, end] inclusive that fall
// on a weekday. There is no holiday calendar; Saturdays and Sundays are the
// only non-working days.
func WorkingDays(start, end time.Time) int {
	days := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if wd := d.Weekday(); wd != time.Saturday && wd != time.Sunday {
			days++
		}
	}
	return days
}
