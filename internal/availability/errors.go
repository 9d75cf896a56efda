package availability

import "errors"

var (
	// ErrNotConfigured means the user has no window for the weekday. It is not a failure:
	// callers answer with zero slots.
	ErrNotConfigured = errors.New("availability is not configured for this weekday")
	ErrInvalidWindow = errors.New("availability window does not open before it closes")
	ErrInvalidPeriod = errors.New("invalid period")
)
