package availability

import (
	"context"
	"database/sql"
	"errors"

	"github.com/booking-page/backend/internal/domain"
)

type WindowStore interface {
	GetTimeInterval(ctx context.Context, userID int64, weekDay int) (*domain.TimeInterval, error)
}

// ResolveWindow returns the window configured for weekDay, or ErrNotConfigured.
func ResolveWindow(ctx context.Context, store WindowStore, userID int64, weekDay int) (*domain.TimeInterval, error) {
	if weekDay < 0 || weekDay > 6 {
		return nil, ErrNotConfigured
	}

	window, err := store.GetTimeInterval(ctx, userID, weekDay)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotConfigured
		}
		return nil, err
	}

	return window, nil
}
