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

type itemRepository struct {
	db *sql.DB
}

func NewItemRepository(db *sql.DB) repository.ItemRepository {
	return &itemRepository{db: db}
}

const itemColumns = `id, name, price_per_hour, state, date_registrated,
	COALESCE(rented_by_user_with_id, ''), COALESCE(order_id, ''), COALESCE(hours_in_rent, 0),
	date_rent, date_return, COALESCE(category, ''), COALESCE(image_url_string, '')`

func (r *itemRepository) Create(ctx context.Context, item *domain.Item) error {
	query := `INSERT INTO items (id, name, price_per_hour, state, date_registrated, category, image_url_string)
	          VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), NULLIF($7, ''))`
	_, err := r.db.ExecContext(ctx, query, item.ID, item.Name, item.PricePerHour, item.State,
		item.DateRegistered, string(item.Category), item.ImageURL)
	if err != nil {
		return fmt.Errorf("create item %s: %w", item.ID, err)
	}
	return nil
}

func (r *itemRepository) GetByID(ctx context.Context, id string) (*domain.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE id = $1`
	item, err := scanItem(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get item %s: %w", id, err)
	}
	return item, nil
}

func (r *itemRepository) List(ctx context.Context) ([]domain.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	var items []domain.Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		items = append(items, *item)
	}
	return items, rows.Err()
}

func (r *itemRepository) MarkRented(ctx context.Context, id, renterID, orderID string, hours int, dateRent, dateReturn time.Time) error {
	query := `UPDATE items SET state = $1, rented_by_user_with_id = $2, order_id = $3,
	          hours_in_rent = $4, date_rent = $5, date_return = $6 WHERE id = $7`
	_, err := r.db.ExecContext(ctx, query, domain.ItemStateRented, renterID, orderID, hours, dateRent, dateReturn, id)
	if err != nil {
		return fmt.Errorf("mark item %s rented: %w", id, err)
	}
	return nil
}

func (r *itemRepository) MarkAvailable(ctx context.Context, id string) error {
	query := `UPDATE items SET state = $1, rented_by_user_with_id = NULL, order_id = NULL,
	          hours_in_rent = NULL, date_rent = NULL, date_return = NULL WHERE id = $2`
	_, err := r.db.ExecContext(ctx, query, domain.ItemStateAvailable, id)
	if err != nil {
		return fmt.Errorf("mark item %s available: %w", id, err)
	}
	return nil
}

func (r *itemRepository) UpdateDetails(ctx context.Context, id, name string, pricePerHour int, category domain.ItemCategory, imageURL string) error {
	query := `UPDATE items SET name = $1, price_per_hour = $2, category = NULLIF($3, ''),
	          image_url_string = NULLIF($4, '') WHERE id = $5`
	_, err := r.db.ExecContext(ctx, query, name, pricePerHour, string(category), imageURL, id)
	if err != nil {
		return fmt.Errorf("update item %s: %w", id, err)
	}
	return nil
}

func (r *itemRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM items WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete item %s: %w", id, err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(row rowScanner) (*domain.Item, error) {
	item := &domain.Item{}
	var category string
	err := row.Scan(&item.ID, &item.Name, &item.PricePerHour, &item.State, &item.DateRegistered,
		&item.RentedByUserID, &item.OrderID, &item.HoursInRent,
		&item.DateRent, &item.DateReturn, &category, &item.ImageURL)
	if err != nil {
		return nil, err
	}
	item.Category = domain.ItemCategory(category)
	return item, nil
}
