package postgres

import (
	"database/sql"

	_ "github.com/lib/pq"

	"renthub-backend/internal/repository"
)

// Store bundles the Postgres-backed repositories for self-hosted
// deployments. Column names match the document-store field keys so both
// backends speak the same wire format.
type Store struct {
	db *sql.DB
	repository.ItemRepository
	repository.RentRepository
	repository.UserRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:             db,
		ItemRepository: NewItemRepository(db),
		RentRepository: NewRentRepository(db),
		UserRepository: NewUserRepository(db),
	}
}
