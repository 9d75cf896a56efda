package repository

import (
	"context"
	"time"

	"github.com/booking-page/backend/internal/domain"
	"github.com/google/uuid"
)

func (r *Repository) CreateBooking(ctx context.Context, booking *domain.Booking) error {
	if booking.ID == "" {
		booking.ID = uuid.NewString()
	}

	query := `
		INSERT INTO bookings (id, user_id, date, name, email, observations)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at
	`

	ctx, cancel := r.queryContext(ctx)
	defer cancel()

	args := []any{booking.ID, booking.UserID, booking.Date, booking.Name, booking.Email, booking.Observations}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&booking.CreatedAt); err != nil {
		return err
	}

	return nil
}

// GetBookingAt returns the booking occupying exactly date, or sql.ErrNoRows.
func (r *Repository) GetBookingAt(ctx context.Context, userID int64, date time.Time) (*domain.Booking, error) {
	query := `
		SELECT id, name, email, observations, created_at
		FROM bookings
		WHERE user_id = $1 AND date = $2
	`

	ctx, cancel := r.queryContext(ctx)
	defer cancel()

	booking := &domain.Booking{
		UserID: userID,
		Date:   date,
	}

	dst := []any{&booking.ID, &booking.Name, &booking.Email, &booking.Observations, &booking.CreatedAt}
	if err := r.dbpool.QueryRowContext(ctx, query, userID, date).Scan(dst...); err != nil {
		return nil, err
	}

	return booking, nil
}

// GetBookingsInRange lists the bookings with from <= date < to, oldest first.
func (r *Repository) GetBookingsInRange(ctx context.Context, userID int64, from, to time.Time) ([]*domain.Booking, error) {
	query := `
		SELECT id, date, name, email, observations, created_at
		FROM bookings
		WHERE user_id = $1 AND date >= $2 AND date < $3
		ORDER BY date
	`

	ctx, cancel := r.queryContext(ctx)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, userID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bookings := make([]*domain.Booking, 0)
	for rows.Next() {
		booking := &domain.Booking{UserID: userID}
		dst := []any{&booking.ID, &booking.Date, &booking.Name, &booking.Email, &booking.Observations, &booking.CreatedAt}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return bookings, nil
}

// CountBookingsByDay groups the bookings of a month by their UTC day of month.
func (r *Repository) CountBookingsByDay(ctx context.Context, userID int64, year, month int) (map[int]int, error) {
	query := `
		SELECT EXTRACT(DAY FROM date AT TIME ZONE 'UTC')::int AS day, COUNT(*)
		FROM bookings
		WHERE user_id = $1 AND date >= $2 AND date < $3
		GROUP BY day
	`

	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	ctx, cancel := r.queryContext(ctx)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, userID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[int]int)
	for rows.Next() {
		var day, count int
		if err := rows.Scan(&day, &count); err != nil {
			return nil, err
		}
		counts[day] = count
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return counts, nil
}
