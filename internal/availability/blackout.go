package availability

import (
	"fmt"
	"time"

	"github.com/booking-page/backend/internal/domain"
)

func ValidatePeriod(year, month int) error {
	if month < 1 || month > 12 {
		return fmt.Errorf("%w: month %d", ErrInvalidPeriod, month)
	}
	if year < 1 || year > 9999 {
		return fmt.Errorf("%w: year %d", ErrInvalidPeriod, year)
	}
	return nil
}

// AggregateMonth computes the weekdays without any window and the days of the month
// whose booking count reached the capacity of that weekday's window.
// dayCounts maps day of month to the number of bookings on it.
func AggregateMonth(windows []*domain.TimeInterval, dayCounts map[int]int, year, month int) (*domain.MonthBlackout, error) {
	if err := ValidatePeriod(year, month); err != nil {
		return nil, err
	}

	byWeekDay := make(map[int]*domain.TimeInterval, len(windows))
	for _, window := range windows {
		byWeekDay[window.WeekDay] = window
	}

	blockedWeekDays := make([]int, 0, 7)
	for weekDay := 0; weekDay < 7; weekDay++ {
		if _, ok := byWeekDay[weekDay]; !ok {
			blockedWeekDays = append(blockedWeekDays, weekDay)
		}
	}

	blockedDates := make([]int, 0)
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := first.AddDate(0, 1, -1).Day()
	for day := 1; day <= daysInMonth; day++ {
		count := dayCounts[day]
		if count == 0 {
			continue
		}

		weekDay := int(first.AddDate(0, 0, day-1).Weekday())
		window, ok := byWeekDay[weekDay]
		if !ok {
			// already covered by blockedWeekDays
			continue
		}

		capacity := window.Capacity()
		if capacity <= 0 {
			continue
		}
		if count >= capacity {
			blockedDates = append(blockedDates, day)
		}
	}

	return &domain.MonthBlackout{
		BlockedWeekDays: blockedWeekDays,
		BlockedDates:    blockedDates,
	}, nil
}
