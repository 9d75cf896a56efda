package repository

import (
	"context"

	"github.com/booking-page/backend/internal/domain"
)

func (r *Repository) GetUserByID(ctx context.Context, id int64) (*domain.User, error) {
	query := `
		SELECT username, name, email, password_hash, bio, calendar_email, created_at, version
		FROM users WHERE id = $1
	`

	ctx, cancel := r.queryContext(ctx)
	defer cancel()

	user := &domain.User{
		ID: id,
	}

	dst := []any{&user.Username, &user.Name, &user.Email, &user.PasswordHash, &user.Bio, &user.CalendarEmail, &user.CreatedAt, &user.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	return user, nil
}

func (r *Repository) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := `
		SELECT id, name, email, password_hash, bio, calendar_email, created_at, version
		FROM users WHERE username = $1
	`

	ctx, cancel := r.queryContext(ctx)
	defer cancel()

	user := &domain.User{
		Username: username,
	}

	dst := []any{&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.Bio, &user.CalendarEmail, &user.CreatedAt, &user.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, username).Scan(dst...); err != nil {
		return nil, err
	}

	return user, nil
}

func (r *Repository) CreateUser(ctx context.Context, user *domain.User) error {
	ctx, cancel := r.queryContext(ctx)
	defer cancel()

	query := `
		INSERT INTO users (username, name, email, password_hash)
		VALUES ($1, $2, $3, $4)
		RETURNING id, bio, created_at, version
	`

	args := []any{user.Username, user.Name, user.Email, user.PasswordHash}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&user.ID, &user.Bio, &user.CreatedAt, &user.Version); err != nil {
		return err
	}

	return nil
}

// UpdateUser uses optimistic locking on version, sql.ErrNoRows means a concurrent update won.
func (r *Repository) UpdateUser(ctx context.Context, user *domain.User) error {
	query := `
		UPDATE users
		SET
			name = $1,
			email = $2,
			password_hash = $3,
			bio = $4,
			calendar_email = $5,
			version = version + 1
		WHERE id = $6 AND version = $7
		RETURNING username, created_at, version
	`

	ctx, cancel := r.queryContext(ctx)
	defer cancel()

	args := []any{user.Name, user.Email, user.PasswordHash, user.Bio, user.CalendarEmail, user.ID, user.Version}
	dst := []any{&user.Username, &user.CreatedAt, &user.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(dst...); err != nil {
		return err
	}

	return nil
}
