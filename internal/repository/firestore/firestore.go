package firestore

import (
	"cloud.google.com/go/firestore"

	"renthub-backend/internal/repository"
)

const (
	itemsCollection = "items"
	rentsCollection = "rents"
	usersCollection = "users"
)

// Store bundles the Firestore-backed repositories over one client.
type Store struct {
	client *firestore.Client
	repository.ItemRepository
	repository.RentRepository
	repository.UserRepository
}

func NewStore(client *firestore.Client) *Store {
	return &Store{
		client:         client,
		ItemRepository: NewItemRepository(client),
		RentRepository: NewRentRepository(client),
		UserRepository: NewUserRepository(client),
	}
}
