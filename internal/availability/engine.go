package availability

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/booking-page/backend/internal/domain"
	"golang.org/x/sync/errgroup"
)

type Store interface {
	WindowStore
	GetTimeIntervals(ctx context.Context, userID int64) ([]*domain.TimeInterval, error)
	GetBookingsInRange(ctx context.Context, userID int64, from, to time.Time) ([]*domain.Booking, error)
	CountBookingsByDay(ctx context.Context, userID int64, year, month int) (map[int]int, error)
}

// Engine answers availability queries on top of a Store. It holds no state between calls.
type Engine struct {
	store Store
}

func NewEngine(store Store) *Engine {
	return &Engine{store: store}
}

// DailyAvailability lists the slots of date and the ones still open for booking.
// offsetMinutes may be nil, see Frame.
func (e *Engine) DailyAvailability(ctx context.Context, userID int64, date time.Time, offsetMinutes *int, now time.Time) (*domain.DayAvailability, error) {
	if IsPastDay(date, offsetMinutes, now) {
		return domain.EmptyDayAvailability(), nil
	}

	from, to := DayBounds(date, Frame(date, offsetMinutes))

	var window *domain.TimeInterval
	var bookings []*domain.Booking

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		w, err := ResolveWindow(gctx, e.store, userID, int(date.Weekday()))
		if err != nil {
			return err
		}
		window = w
		return nil
	})
	g.Go(func() error {
		b, err := e.store.GetBookingsInRange(gctx, userID, from, to)
		if err != nil {
			return err
		}
		bookings = b
		return nil
	})
	if err := g.Wait(); err != nil {
		if errors.Is(err, ErrNotConfigured) {
			return domain.EmptyDayAvailability(), nil
		}
		return nil, err
	}

	possibleTimes, err := EnumerateSlots(window)
	if err != nil {
		slog.Error("stored availability window is invalid", "userID", userID, "error", err)
		return domain.EmptyDayAvailability(), nil
	}

	booked := make([]time.Time, 0, len(bookings))
	for _, booking := range bookings {
		booked = append(booked, booking.Date)
	}

	return &domain.DayAvailability{
		PossibleTimes:  possibleTimes,
		AvailableTimes: FilterSlots(possibleTimes, booked, date, offsetMinutes, now),
	}, nil
}

// MonthlyBlackout reports the blocked weekdays and fully booked days of a month.
func (e *Engine) MonthlyBlackout(ctx context.Context, userID int64, year, month int) (*domain.MonthBlackout, error) {
	if err := ValidatePeriod(year, month); err != nil {
		return nil, err
	}

	var windows []*domain.TimeInterval
	var dayCounts map[int]int

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		w, err := e.store.GetTimeIntervals(gctx, userID)
		if err != nil {
			return err
		}
		windows = w
		return nil
	})
	g.Go(func() error {
		c, err := e.store.CountBookingsByDay(gctx, userID, year, month)
		if err != nil {
			return err
		}
		dayCounts = c
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return AggregateMonth(windows, dayCounts, year, month)
}
