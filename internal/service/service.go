package service

import (
	"context"
	"time"

	"renthub-backend/internal/domain"
)

// CatalogQuery are the catalog pipeline parameters. The zero value of
// Availability and Category is not valid; handlers default them to
// "available" and "all".
type CatalogQuery struct {
	Availability domain.ItemState
	Category     domain.ItemCategory
	Search       string
	SortBy       domain.ItemSort
}

// RentQuery are the rent query pipeline parameters.
type RentQuery struct {
	Status domain.RentState
	Search string
}

// RegisterItemInput carries the raw registration form fields. Name and
// Price arrive as entered text; a non-numeric price registers as 0.
type RegisterItemInput struct {
	Name             string
	Price            string
	Category         domain.ItemCategory
	Image            []byte
	ImageContentType string
}

// UpdateItemInput carries an admin edit of an existing item.
type UpdateItemInput struct {
	ItemID           string
	Name             string
	PricePerHour     int
	Category         domain.ItemCategory
	NewImage         []byte
	ImageContentType string
}

// SignUpInput carries the registration form of a new account.
type SignUpInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
}

type CatalogService interface {
	// Browse fetches a fresh item snapshot and runs the filter/sort
	// pipeline over it.
	Browse(ctx context.Context, query CatalogQuery) ([]domain.Item, error)
	GetItem(ctx context.Context, id string) (*domain.Item, error)
	RegisterItem(ctx context.Context, input RegisterItemInput) (*domain.Item, error)
	UpdateItem(ctx context.Context, input UpdateItemInput) error
	DeleteItem(ctx context.Context, id string) error
	// PredictCategory classifies an item photo, defaulting to "other".
	PredictCategory(ctx context.Context, image []byte) domain.ItemCategory
}

type RentalService interface {
	StartRent(ctx context.Context, itemID, renterID string, hours int) (*domain.Item, *domain.Rent, error)
	EndRent(ctx context.Context, itemID string) (*domain.Item, error)
	PreviewPrice(ctx context.Context, itemID string, hours int) (int, error)
}

type RentLogService interface {
	// ListForUser fetches the caller-scoped rent snapshot (all rents for
	// admins) and runs the status/search pipeline over it.
	ListForUser(ctx context.Context, caller *domain.User, query RentQuery) ([]domain.Rent, error)
}

type UserService interface {
	SignUp(ctx context.Context, input SignUpInput) (*domain.User, error)
	SignIn(ctx context.Context, email, password string) (*domain.User, string, error)
	SignOut(ctx context.Context, uid string) error
	GetUser(ctx context.Context, id string) (*domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
	SetAdmin(ctx context.Context, id string, isAdmin bool) error
}

type EmailService interface {
	SendRentReceipt(ctx context.Context, email, name, itemName string, totalPrice int) error
	SendOverdueReminder(ctx context.Context, email, name, itemName string, deadline time.Time) error
}
