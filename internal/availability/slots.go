package availability

import (
	"fmt"
	"time"

	"github.com/booking-page/backend/internal/domain"
)

// EnumerateSlots expands a window into its hourly candidate slots, [open, close).
func EnumerateSlots(window *domain.TimeInterval) ([]int, error) {
	openHour, closeHour := window.StartHour(), window.EndHour()
	if closeHour <= openHour {
		return nil, fmt.Errorf("%w: %d-%d on weekday %d", ErrInvalidWindow, window.StartMinute, window.EndMinute, window.WeekDay)
	}

	slots := make([]int, 0, closeHour-openHour)
	for hour := openHour; hour < closeHour; hour++ {
		slots = append(slots, hour)
	}
	return slots, nil
}

// Frame is the location whose wall clock the caller reads hours in.
//
// offsetMinutes follows Date.getTimezoneOffset: the minutes to add to local time to
// reach UTC, so UTC-3 is 180. A booked instant then lands on hour
// UTCHour - offsetMinutes/60 of the caller's day. A nil offset keeps the date's own
// location and no UTC normalization happens.
func Frame(date time.Time, offsetMinutes *int) *time.Location {
	if offsetMinutes == nil {
		return date.Location()
	}
	return time.FixedZone("", -*offsetMinutes*60)
}

// DayBounds returns the half-open instant range covering date's calendar day in loc.
func DayBounds(date time.Time, loc *time.Location) (time.Time, time.Time) {
	year, month, day := date.Date()
	start := time.Date(year, month, day, 0, 0, 0, 0, loc)
	return start, time.Date(year, month, day+1, 0, 0, 0, 0, loc)
}

// IsPastDay reports whether the whole calendar day of date has ended before now.
func IsPastDay(date time.Time, offsetMinutes *int, now time.Time) bool {
	_, end := DayBounds(date, Frame(date, offsetMinutes))
	return end.Add(-time.Nanosecond).Before(now)
}

// FilterSlots keeps the candidate hours of date that are neither booked nor in the past.
func FilterSlots(candidates []int, booked []time.Time, date time.Time, offsetMinutes *int, now time.Time) []int {
	available := make([]int, 0, len(candidates))
	if IsPastDay(date, offsetMinutes, now) {
		return available
	}

	loc := Frame(date, offsetMinutes)
	year, month, day := date.Date()

	blocked := make(map[int]struct{}, len(booked))
	for _, instant := range booked {
		local := instant.In(loc)
		if y, m, d := local.Date(); y == year && m == month && d == day {
			blocked[local.Hour()] = struct{}{}
		}
	}

	for _, hour := range candidates {
		if _, ok := blocked[hour]; ok {
			continue
		}
		if !time.Date(year, month, day, hour, 0, 0, 0, loc).After(now) {
			continue
		}
		available = append(available, hour)
	}

	return available
}
