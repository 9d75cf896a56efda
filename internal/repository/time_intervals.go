package repository

import (
	"context"

	"github.com/booking-page/backend/internal/domain"
)

// ReplaceTimeIntervals swaps the user's weekly windows for intervals in one transaction.
func (r *Repository) ReplaceTimeIntervals(ctx context.Context, userID int64, intervals []*domain.TimeInterval) error {
	ctx, cancel := r.transactionContext(ctx)
	defer cancel()

	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	query := `DELETE FROM user_time_intervals WHERE user_id = $1`
	if _, err := tx.ExecContext(ctx, query, userID); err != nil {
		return err
	}

	for _, interval := range intervals {
		query := `
			INSERT INTO user_time_intervals (user_id, week_day, start_minute, end_minute)
			VALUES ($1, $2, $3, $4)
			RETURNING id
		`
		if err := tx.QueryRowContext(ctx, query, userID, interval.WeekDay, interval.StartMinute, interval.EndMinute).Scan(&interval.ID); err != nil {
			return err
		}
		interval.UserID = userID
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetTimeInterval(ctx context.Context, userID int64, weekDay int) (*domain.TimeInterval, error) {
	query := `
		SELECT id, start_minute, end_minute
		FROM user_time_intervals
		WHERE user_id = $1 AND week_day = $2
	`

	ctx, cancel := r.queryContext(ctx)
	defer cancel()

	interval := &domain.TimeInterval{
		UserID:  userID,
		WeekDay: weekDay,
	}

	if err := r.dbpool.QueryRowContext(ctx, query, userID, weekDay).Scan(&interval.ID, &interval.StartMinute, &interval.EndMinute); err != nil {
		return nil, err
	}

	return interval, nil
}

func (r *Repository) GetTimeIntervals(ctx context.Context, userID int64) ([]*domain.TimeInterval, error) {
	query := `
		SELECT id, week_day, start_minute, end_minute
		FROM user_time_intervals
		WHERE user_id = $1
		ORDER BY week_day
	`

	ctx, cancel := r.queryContext(ctx)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	intervals := make([]*domain.TimeInterval, 0)
	for rows.Next() {
		interval := &domain.TimeInterval{UserID: userID}
		if err := rows.Scan(&interval.ID, &interval.WeekDay, &interval.StartMinute, &interval.EndMinute); err != nil {
			return nil, err
		}
		intervals = append(intervals, interval)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return intervals, nil
}
