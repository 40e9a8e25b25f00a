package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"renthub-backend/internal/domain"
	"renthub-backend/internal/repository"
)

type rentRepository struct {
	db *sql.DB
}

func NewRentRepository(db *sql.DB) repository.RentRepository {
	return &rentRepository{db: db}
}

const rentColumns = `id, state, user_id, item_id, item_name, rent_date, deadline_return_date,
	actual_return_date, hours_in_rent, price_per_hour, total_price, additional_fee`

func (r *rentRepository) Create(ctx context.Context, rent *domain.Rent) error {
	query := `INSERT INTO rents (id, state, user_id, item_id, item_name, rent_date, deadline_return_date,
	          actual_return_date, hours_in_rent, price_per_hour, total_price, additional_fee)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.db.ExecContext(ctx, query, rent.ID, rent.State, rent.UserID, rent.ItemID, rent.ItemName,
		rent.RentDate, rent.DeadlineReturnDate, rent.ActualReturnDate,
		rent.HoursInRent, rent.PricePerHour, rent.TotalPrice, rent.AdditionalFee)
	if err != nil {
		return fmt.Errorf("create rent %s: %w", rent.ID, err)
	}
	return nil
}

func (r *rentRepository) GetByID(ctx context.Context, id string) (*domain.Rent, error) {
	query := `SELECT ` + rentColumns + ` FROM rents WHERE id = $1`
	rent, err := scanRent(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get rent %s: %w", id, err)
	}
	return rent, nil
}

func (r *rentRepository) List(ctx context.Context) ([]domain.Rent, error) {
	return r.query(ctx, `SELECT `+rentColumns+` FROM rents ORDER BY id`)
}

func (r *rentRepository) ListByUser(ctx context.Context, userID string) ([]domain.Rent, error) {
	return r.query(ctx, `SELECT `+rentColumns+` FROM rents WHERE user_id = $1 ORDER BY id`, userID)
}

func (r *rentRepository) ListOverdue(ctx context.Context, asOf time.Time) ([]domain.Rent, error) {
	return r.query(ctx, `SELECT `+rentColumns+` FROM rents WHERE state = $1 AND deadline_return_date < $2 ORDER BY id`,
		domain.RentStateInUse, asOf)
}

func (r *rentRepository) MarkFinished(ctx context.Context, id string, returnedAt time.Time) error {
	query := `UPDATE rents SET state = $1, actual_return_date = $2 WHERE id = $3`
	_, err := r.db.ExecContext(ctx, query, domain.RentStateFinished, returnedAt, id)
	if err != nil {
		return fmt.Errorf("finish rent %s: %w", id, err)
	}
	return nil
}

func (r *rentRepository) query(ctx context.Context, query string, args ...any) ([]domain.Rent, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list rents: %w", err)
	}
	defer rows.Close()

	var rents []domain.Rent
	for rows.Next() {
		rent, err := scanRent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan rent: %w", err)
		}
		rents = append(rents, *rent)
	}
	return rents, rows.Err()
}

func scanRent(row rowScanner) (*domain.Rent, error) {
	rent := &domain.Rent{}
	err := row.Scan(&rent.ID, &rent.State, &rent.UserID, &rent.ItemID, &rent.ItemName,
		&rent.RentDate, &rent.DeadlineReturnDate, &rent.ActualReturnDate,
		&rent.HoursInRent, &rent.PricePerHour, &rent.TotalPrice, &rent.AdditionalFee)
	if err != nil {
		return nil, err
	}
	return rent, nil
}
