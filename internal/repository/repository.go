package repository

import (
	"context"
	"errors"
	"time"

	"renthub-backend/internal/domain"
)

// ErrNotFound is returned by every backend when a record id or equality
// query matches nothing.
var ErrNotFound = errors.New("record not found")

// ItemRepository persists the items collection. Records are keyed by an
// opaque UUID string; list order is the store's document order and is the
// tie-break order the catalog pipeline relies on.
type ItemRepository interface {
	Create(ctx context.Context, item *domain.Item) error
	GetByID(ctx context.Context, id string) (*domain.Item, error)
	List(ctx context.Context) ([]domain.Item, error)
	// MarkRented writes the rent fields and flips state to "rented" in a
	// single document update.
	MarkRented(ctx context.Context, id, renterID, orderID string, hours int, dateRent, dateReturn time.Time) error
	// MarkAvailable clears the rent fields (deletes them from the record,
	// not blanks) and flips state back to "available".
	MarkAvailable(ctx context.Context, id string) error
	// UpdateDetails rewrites the editable fields after an admin edit.
	UpdateDetails(ctx context.Context, id, name string, pricePerHour int, category domain.ItemCategory, imageURL string) error
	Delete(ctx context.Context, id string) error
}

// RentRepository persists the rents collection. Rent ids equal the order
// id stamped on the item; rents are never deleted.
type RentRepository interface {
	Create(ctx context.Context, rent *domain.Rent) error
	GetByID(ctx context.Context, id string) (*domain.Rent, error)
	List(ctx context.Context) ([]domain.Rent, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Rent, error)
	// ListOverdue returns in_use rents whose deadline passed before asOf.
	ListOverdue(ctx context.Context, asOf time.Time) ([]domain.Rent, error)
	MarkFinished(ctx context.Context, id string, returnedAt time.Time) error
}

// UserRepository persists the users collection, keyed by the identity
// provider uid.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	SetAdmin(ctx context.Context, id string, isAdmin bool) error
}
