package seed

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/booking-page/backend/internal/domain"
	"github.com/booking-page/backend/internal/repository"
	"github.com/booking-page/backend/internal/utils"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"
)

// bookings are spread over this many days from now
const bookingHorizonDays = 30

// Store is the subset of the repository the seeder writes to.
type Store interface {
	CreateUser(ctx context.Context, user *domain.User) error
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)
	ReplaceTimeIntervals(ctx context.Context, userID int64, intervals []*domain.TimeInterval) error
	CreateBooking(ctx context.Context, booking *domain.Booking) error
}

var _ Store = (*repository.Repository)(nil)

// SeedDemoHost makes sure a demo host exists, resets its weekly windows and inserts
// up to n random future bookings. It returns the number of bookings inserted.
func SeedDemoHost(ctx context.Context, s Store, username, password string, n int) (int, error) {
	host, err := ensureHost(ctx, s, utils.NormalizeUsername(username), password)
	if err != nil {
		return 0, err
	}

	intervals := utils.GenerateRandomTimeIntervals()
	if len(intervals) == 0 {
		// keep at least one bookable weekday
		intervals = append(intervals, &domain.TimeInterval{WeekDay: int(time.Monday), StartMinute: 9 * 60, EndMinute: 17 * 60})
	}
	if err := s.ReplaceTimeIntervals(ctx, host.ID, intervals); err != nil {
		return 0, err
	}
	slog.Info("time intervals seeded", "username", host.Username, "count", len(intervals))

	inserted := 0
	now := time.Now().UTC()
	for i := 0; i < n; i++ {
		booking := utils.GenerateRandomBooking(host.ID, intervals, now, bookingHorizonDays)
		if booking == nil {
			continue
		}
		booking.Date = booking.Date.UTC()

		if err := s.CreateBooking(ctx, booking); err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.ConstraintName == "bookings_user_id_date_key" {
				// random slot already taken
				continue
			}
			return inserted, err
		}
		inserted++
	}

	return inserted, nil
}

func ensureHost(ctx context.Context, s Store, username, password string) (*domain.User, error) {
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	name := utils.GenerateRandomName()
	host := &domain.User{
		Username:     username,
		Name:         name,
		Email:        utils.GenerateEmailFromName(name),
		PasswordHash: string(passwordHash),
	}

	if err := s.CreateUser(ctx, host); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.ConstraintName == "users_username_key" {
			// the host survives between runs
			return s.GetUserByUsername(ctx, username)
		}
		return nil, err
	}

	slog.Info("demo host created", "username", host.Username, "email", host.Email)
	return host, nil
}
