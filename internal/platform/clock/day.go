package clock

import "time"

const dayKeyLayout = "2006-01-02"

// Remaining is a non-negative whole-minute countdown.
type Remaining struct {
	Hours   int
	Minutes int
}

// DayKey identifies the calendar day of t in t's own location.
func DayKey(t time.Time) string {
	return t.Format(dayKeyLayout)
}

// NextUnlock returns the first hour:00:00 strictly after now, in now's
// location. time.Date normalizes day overflow and DST gaps.
func NextUnlock(now time.Time, hour int) time.Time {
	y, m, d := now.Date()
	today := time.Date(y, m, d, hour, 0, 0, 0, now.Location())
	if now.Before(today) {
		return today
	}
	return time.Date(y, m, d+1, hour, 0, 0, 0, now.Location())
}

// Until reports the time left before target, clamped at zero.
func Until(now, target time.Time) Remaining {
	diff := target.Sub(now)
	if diff <= 0 {
		return Remaining{}
	}
	total := int(diff / time.Minute)
	return Remaining{Hours: total / 60, Minutes: total % 60}
}

// GateDayKey names the ritual day now belongs to. A ritual day runs from one
// unlock instant to the next, so before the unlock hour the previous
// calendar day is still open. With hour 0 it equals DayKey.
func GateDayKey(now time.Time, hour int) string {
	next := NextUnlock(now, hour)
	y, m, d := next.Date()
	return DayKey(time.Date(y, m, d-1, 0, 0, 0, 0, next.Location()))
}
