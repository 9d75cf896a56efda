package utils

import (
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/booking-page/backend/internal/domain"
)

var usernamePattern = regexp.MustCompile(`^[a-z-]+$`)

// NormalizeUsername lowercases and trims a username before it is validated or stored.
func NormalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}

func IsValidUsername(username string) bool {
	return len(username) >= 3 && usernamePattern.MatchString(username)
}

func ValidateTimeIntervals(intervals []*domain.TimeInterval) error {
	// each window must be a whole number of hours inside one day
	for i, interval := range intervals {
		if interval.WeekDay < 0 || interval.WeekDay > 6 {
			return fmt.Errorf("interval %d has an invalid week day %d", i+1, interval.WeekDay)
		}
		if interval.StartMinute < 0 || interval.EndMinute > 24*60 {
			return fmt.Errorf("interval %d must be within a single day", i+1)
		}
		if interval.StartMinute%60 != 0 || interval.EndMinute%60 != 0 {
			return fmt.Errorf("interval %d must start and end on the hour", i+1)
		}
		if interval.EndMinute <= interval.StartMinute {
			return fmt.Errorf("interval %d must end after it starts", i+1)
		}
	}

	// at most one window per weekday
	seen := make([]int, 0, len(intervals))
	for i, interval := range intervals {
		if slices.Contains(seen, interval.WeekDay) {
			return fmt.Errorf("interval %d repeats week day %d", i+1, interval.WeekDay)
		}
		seen = append(seen, interval.WeekDay)
	}

	return nil
}
