package firestore

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"renthub-backend/internal/domain"
	"renthub-backend/internal/repository"
)

type userRepository struct {
	users *firestore.CollectionRef
}

func NewUserRepository(client *firestore.Client) repository.UserRepository {
	return &userRepository{users: client.Collection(usersCollection)}
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	if _, err := r.users.Doc(user.UserID).Create(ctx, user); err != nil {
		return fmt.Errorf("create user %s: %w", user.UserID, err)
	}
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	doc, err := r.users.Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("get user %s: %w", id, err)
	}
	user := &domain.User{}
	if err := doc.DataTo(user); err != nil {
		return nil, fmt.Errorf("decode user %s: %w", id, err)
	}
	return user, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	iter := r.users.Where("email", "==", email).Limit(1).Documents(ctx)
	defer iter.Stop()

	doc, err := iter.Next()
	if err == iterator.Done {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query user by email: %w", err)
	}
	user := &domain.User{}
	if err := doc.DataTo(user); err != nil {
		return nil, fmt.Errorf("decode user %s: %w", doc.Ref.ID, err)
	}
	return user, nil
}

func (r *userRepository) List(ctx context.Context) ([]domain.User, error) {
	iter := r.users.Documents(ctx)
	defer iter.Stop()

	var users []domain.User
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("list users: %w", err)
		}
		var user domain.User
		if err := doc.DataTo(&user); err != nil {
			return nil, fmt.Errorf("decode user %s: %w", doc.Ref.ID, err)
		}
		users = append(users, user)
	}
	return users, nil
}

func (r *userRepository) SetAdmin(ctx context.Context, id string, isAdmin bool) error {
	_, err := r.users.Doc(id).Update(ctx, []firestore.Update{
		{Path: "is_admin", Value: isAdmin},
	})
	if err != nil {
		return fmt.Errorf("set admin flag for user %s: %w", id, err)
	}
	return nil
}
