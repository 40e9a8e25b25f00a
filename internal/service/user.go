package service

import (
	"context"
	"errors"
	"time"

	"renthub-backend/internal/auth"
	"renthub-backend/internal/domain"
	"renthub-backend/internal/logger"
	"renthub-backend/internal/repository"
)

type userService struct {
	users    repository.UserRepository
	provider auth.Provider
}

func NewUserService(users repository.UserRepository, provider auth.Provider) UserService {
	return &userService{users: users, provider: provider}
}

func (s *userService) SignUp(ctx context.Context, input SignUpInput) (*domain.User, error) {
	identity, err := s.provider.SignUp(ctx, input.Email, input.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	premium := false
	user := &domain.User{
		UserID:      identity.UID,
		FirstName:   input.FirstName,
		LastName:    input.LastName,
		Email:       identity.Email,
		PhotoURL:    identity.PhotoURL,
		IsAdmin:     false,
		IsPremium:   &premium,
		DateCreated: &now,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) SignIn(ctx context.Context, email, password string) (*domain.User, string, error) {
	identity, token, err := s.provider.SignIn(ctx, email, password)
	if err != nil {
		return nil, "", err
	}

	user, err := s.users.GetByID(ctx, identity.UID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			logger.Warn("signed-in user has no profile record", "uid", identity.UID)
		}
		return nil, "", err
	}
	return user, token, nil
}

func (s *userService) SignOut(ctx context.Context, uid string) error {
	return s.provider.SignOut(ctx, uid)
}

func (s *userService) GetUser(ctx context.Context, uid string) (*domain.User, error) {
	return s.users.GetByID(ctx, uid)
}

func (s *userService) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.users.GetByEmail(ctx, email)
}

func (s *userService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx)
}

func (s *userService) SetAdmin(ctx context.Context, uid string, isAdmin bool) error {
	return s.users.SetAdmin(ctx, uid, isAdmin)
}
