package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"renthub-backend/internal/domain"
	"renthub-backend/internal/repository"
)

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) repository.UserRepository {
	return &userRepository{db: db}
}

const userColumns = `user_id, first_name, last_name, is_admin, COALESCE(email, ''),
	COALESCE(photo_url, ''), date_created, is_premium`

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	query := `INSERT INTO users (user_id, first_name, last_name, is_admin, email, photo_url, date_created, is_premium)
	          VALUES ($1, $2, $3, $4, NULLIF($5, ''), NULLIF($6, ''), $7, $8)`
	_, err := r.db.ExecContext(ctx, query, user.UserID, user.FirstName, user.LastName, user.IsAdmin,
		user.Email, user.PhotoURL, user.DateCreated, user.IsPremium)
	if err != nil {
		return fmt.Errorf("create user %s: %w", user.UserID, err)
	}
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE user_id = $1`
	user, err := scanUser(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get user %s: %w", id, err)
	}
	return user, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	user, err := scanUser(r.db.QueryRowContext(ctx, query, email))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return user, nil
}

func (r *userRepository) List(ctx context.Context) ([]domain.User, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+userColumns+` FROM users ORDER BY user_id`)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, *user)
	}
	return users, rows.Err()
}

func (r *userRepository) SetAdmin(ctx context.Context, id string, isAdmin bool) error {
	_, err := r.db.ExecContext(ctx, `UPDATE users SET is_admin = $1 WHERE user_id = $2`, isAdmin, id)
	if err != nil {
		return fmt.Errorf("set admin flag for user %s: %w", id, err)
	}
	return nil
}

func scanUser(row rowScanner) (*domain.User, error) {
	user := &domain.User{}
	err := row.Scan(&user.UserID, &user.FirstName, &user.LastName, &user.IsAdmin,
		&user.Email, &user.PhotoURL, &user.DateCreated, &user.IsPremium)
	if err != nil {
		return nil, err
	}
	return user, nil
}
