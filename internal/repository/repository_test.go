package repository_test

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/booking-page/backend/internal/config"
	"github.com/booking-page/backend/internal/domain"
	"github.com/booking-page/backend/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRepository(t *testing.T) (*repository.Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, dbMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	cfg := &config.Config{}
	cfg.Database.QueryTimeout = 5
	cfg.Database.TransactionTimeout = 5

	return repository.NewRepository(cfg, db), dbMock
}

func TestUsers(t *testing.T) {
	t.Parallel()

	t.Run("get user by username", func(t *testing.T) {
		t.Parallel()
		repo, dbMock := setupRepository(t)

		createdAt := time.Date(2030, time.January, 1, 0, 0, 0, 0, time.UTC)
		dbMock.ExpectQuery(regexp.QuoteMeta(`FROM users WHERE username = $1`)).
			WithArgs("ana").
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "password_hash", "bio", "calendar_email", "created_at", "version"}).
				AddRow(7, "Ana Souza", "ana@example.com", "hash", "hello", nil, createdAt, 1))

		user, err := repo.GetUserByUsername(context.Background(), "ana")
		require.NoError(t, err)
		require.NoError(t, dbMock.ExpectationsWereMet())
		assert.Equal(t, int64(7), user.ID)
		assert.Equal(t, "ana", user.Username)
		assert.Equal(t, "Ana Souza", user.Name)
		assert.Nil(t, user.CalendarEmail)
		assert.Equal(t, "ana@example.com", user.CalendarAddress())
		assert.Equal(t, createdAt, user.CreatedAt)
	})

	t.Run("unknown username", func(t *testing.T) {
		t.Parallel()
		repo, dbMock := setupRepository(t)

		dbMock.ExpectQuery(regexp.QuoteMeta(`FROM users WHERE username = $1`)).
			WithArgs("ghost").
			WillReturnError(sql.ErrNoRows)

		user, err := repo.GetUserByUsername(context.Background(), "ghost")
		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.Nil(t, user)
		require.NoError(t, dbMock.ExpectationsWereMet())
	})

	t.Run("create user", func(t *testing.T) {
		t.Parallel()
		repo, dbMock := setupRepository(t)

		createdAt := time.Now()
		dbMock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO users (username, name, email, password_hash)`)).
			WithArgs("ana", "Ana Souza", "ana@example.com", "hash").
			WillReturnRows(sqlmock.NewRows([]string{"id", "bio", "created_at", "version"}).AddRow(3, "", createdAt, 1))

		user := &domain.User{Username: "ana", Name: "Ana Souza", Email: "ana@example.com", PasswordHash: "hash"}
		require.NoError(t, repo.CreateUser(context.Background(), user))
		require.NoError(t, dbMock.ExpectationsWereMet())
		assert.Equal(t, int64(3), user.ID)
		assert.Equal(t, int32(1), user.Version)
	})
}

func TestTimeIntervals(t *testing.T) {
	t.Parallel()

	t.Run("replace intervals", func(t *testing.T) {
		t.Parallel()
		repo, dbMock := setupRepository(t)

		dbMock.ExpectBegin()
		dbMock.ExpectExec(regexp.QuoteMeta(`DELETE FROM user_time_intervals WHERE user_id = $1`)).
			WithArgs(1).
			WillReturnResult(sqlmock.NewResult(0, 2))
		dbMock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO user_time_intervals`)).
			WithArgs(1, 1, 540, 1020).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(10))
		dbMock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO user_time_intervals`)).
			WithArgs(1, 2, 540, 720).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))
		dbMock.ExpectCommit()

		intervals := []*domain.TimeInterval{
			{WeekDay: 1, StartMinute: 540, EndMinute: 1020},
			{WeekDay: 2, StartMinute: 540, EndMinute: 720},
		}
		require.NoError(t, repo.ReplaceTimeIntervals(context.Background(), 1, intervals))
		require.NoError(t, dbMock.ExpectationsWereMet())
		assert.Equal(t, int64(10), intervals[0].ID)
		assert.Equal(t, int64(11), intervals[1].ID)
		assert.Equal(t, int64(1), intervals[1].UserID)
	})

	t.Run("replace rolls back on failure", func(t *testing.T) {
		t.Parallel()
		repo, dbMock := setupRepository(t)

		dbMock.ExpectBegin()
		dbMock.ExpectExec(regexp.QuoteMeta(`DELETE FROM user_time_intervals`)).
			WithArgs(1).
			WillReturnResult(sqlmock.NewResult(0, 0))
		dbMock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO user_time_intervals`)).
			WithArgs(1, 1, 540, 1020).
			WillReturnError(errors.New("check constraint"))
		dbMock.ExpectRollback()

		err := repo.ReplaceTimeIntervals(context.Background(), 1, []*domain.TimeInterval{{WeekDay: 1, StartMinute: 540, EndMinute: 1020}})
		assert.EqualError(t, err, "check constraint")
		require.NoError(t, dbMock.ExpectationsWereMet())
	})

	t.Run("window for weekday", func(t *testing.T) {
		t.Parallel()
		repo, dbMock := setupRepository(t)

		dbMock.ExpectQuery(regexp.QuoteMeta(`WHERE user_id = $1 AND week_day = $2`)).
			WithArgs(1, 2).
			WillReturnRows(sqlmock.NewRows([]string{"id", "start_minute", "end_minute"}).AddRow(4, 540, 720))

		interval, err := repo.GetTimeInterval(context.Background(), 1, 2)
		require.NoError(t, err)
		require.NoError(t, dbMock.ExpectationsWereMet())
		assert.Equal(t, &domain.TimeInterval{ID: 4, UserID: 1, WeekDay: 2, StartMinute: 540, EndMinute: 720}, interval)
		assert.Equal(t, 3, interval.Capacity())
	})

	t.Run("list windows", func(t *testing.T) {
		t.Parallel()
		repo, dbMock := setupRepository(t)

		dbMock.ExpectQuery(regexp.QuoteMeta(`FROM user_time_intervals`)).
			WithArgs(1).
			WillReturnRows(sqlmock.NewRows([]string{"id", "week_day", "start_minute", "end_minute"}).
				AddRow(4, 1, 540, 1020).
				AddRow(5, 3, 600, 660))

		intervals, err := repo.GetTimeIntervals(context.Background(), 1)
		require.NoError(t, err)
		require.NoError(t, dbMock.ExpectationsWereMet())
		require.Len(t, intervals, 2)
		assert.Equal(t, 3, intervals[1].WeekDay)
	})
}

func TestBookings(t *testing.T) {
	t.Parallel()

	t.Run("create booking", func(t *testing.T) {
		t.Parallel()
		repo, dbMock := setupRepository(t)

		date := time.Date(2030, time.January, 8, 12, 0, 0, 0, time.UTC)
		createdAt := time.Now()
		dbMock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO bookings (id, user_id, date, name, email, observations)`)).
			WithArgs(sqlmock.AnyArg(), 1, date, "Bruno", "bruno@example.com", nil).
			WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(createdAt))

		booking := &domain.Booking{UserID: 1, Date: date, Name: "Bruno", Email: "bruno@example.com"}
		require.NoError(t, repo.CreateBooking(context.Background(), booking))
		require.NoError(t, dbMock.ExpectationsWereMet())
		assert.NotEmpty(t, booking.ID)
		assert.Equal(t, createdAt, booking.CreatedAt)
	})

	t.Run("bookings in range", func(t *testing.T) {
		t.Parallel()
		repo, dbMock := setupRepository(t)

		from := time.Date(2030, time.January, 8, 3, 0, 0, 0, time.UTC)
		to := from.AddDate(0, 0, 1)
		observations := "first call"
		dbMock.ExpectQuery(regexp.QuoteMeta(`WHERE user_id = $1 AND date >= $2 AND date < $3`)).
			WithArgs(1, from, to).
			WillReturnRows(sqlmock.NewRows([]string{"id", "date", "name", "email", "observations", "created_at"}).
				AddRow("b1", from.Add(9*time.Hour), "Bruno", "bruno@example.com", observations, from).
				AddRow("b2", from.Add(10*time.Hour), "Carla", "carla@example.com", nil, from))

		bookings, err := repo.GetBookingsInRange(context.Background(), 1, from, to)
		require.NoError(t, err)
		require.NoError(t, dbMock.ExpectationsWereMet())
		require.Len(t, bookings, 2)
		require.NotNil(t, bookings[0].Observations)
		assert.Equal(t, observations, *bookings[0].Observations)
		assert.Nil(t, bookings[1].Observations)
	})

	t.Run("count by day", func(t *testing.T) {
		t.Parallel()
		repo, dbMock := setupRepository(t)

		from := time.Date(2030, time.January, 1, 0, 0, 0, 0, time.UTC)
		to := time.Date(2030, time.February, 1, 0, 0, 0, 0, time.UTC)
		dbMock.ExpectQuery(regexp.QuoteMeta(`GROUP BY day`)).
			WithArgs(1, from, to).
			WillReturnRows(sqlmock.NewRows([]string{"day", "count"}).AddRow(8, 3).AddRow(15, 2))

		counts, err := repo.CountBookingsByDay(context.Background(), 1, 2030, 1)
		require.NoError(t, err)
		require.NoError(t, dbMock.ExpectationsWereMet())
		assert.Equal(t, map[int]int{8: 3, 15: 2}, counts)
	})

	t.Run("booking at instant", func(t *testing.T) {
		t.Parallel()
		repo, dbMock := setupRepository(t)

		date := time.Date(2030, time.January, 8, 12, 0, 0, 0, time.UTC)
		dbMock.ExpectQuery(regexp.QuoteMeta(`WHERE user_id = $1 AND date = $2`)).
			WithArgs(1, date).
			WillReturnError(sql.ErrNoRows)

		_, err := repo.GetBookingAt(context.Background(), 1, date)
		assert.ErrorIs(t, err, sql.ErrNoRows)
		require.NoError(t, dbMock.ExpectationsWereMet())
	})
}
