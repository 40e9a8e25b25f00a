package http

import (
	"context"

	"github.com/stretchr/testify/mock"

	"renthub-backend/internal/auth"
	"renthub-backend/internal/domain"
	"renthub-backend/internal/service"
)

// MockCatalogService
type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) Browse(ctx context.Context, query service.CatalogQuery) ([]domain.Item, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Item), args.Error(1)
}
func (m *MockCatalogService) GetItem(ctx context.Context, id string) (*domain.Item, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}
func (m *MockCatalogService) RegisterItem(ctx context.Context, input service.RegisterItemInput) (*domain.Item, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}
func (m *MockCatalogService) UpdateItem(ctx context.Context, input service.UpdateItemInput) error {
	args := m.Called(ctx, input)
	return args.Error(0)
}
func (m *MockCatalogService) DeleteItem(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockCatalogService) PredictCategory(ctx context.Context, image []byte) domain.ItemCategory {
	args := m.Called(ctx, image)
	return args.Get(0).(domain.ItemCategory)
}

// MockRentalService
type MockRentalService struct {
	mock.Mock
}

func (m *MockRentalService) StartRent(ctx context.Context, itemID, renterID string, hours int) (*domain.Item, *domain.Rent, error) {
	args := m.Called(ctx, itemID, renterID, hours)
	var item *domain.Item
	var rent *domain.Rent
	if args.Get(0) != nil {
		item = args.Get(0).(*domain.Item)
	}
	if args.Get(1) != nil {
		rent = args.Get(1).(*domain.Rent)
	}
	return item, rent, args.Error(2)
}
func (m *MockRentalService) EndRent(ctx context.Context, itemID string) (*domain.Item, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}
func (m *MockRentalService) PreviewPrice(ctx context.Context, itemID string, hours int) (int, error) {
	args := m.Called(ctx, itemID, hours)
	return args.Int(0), args.Error(1)
}

// MockRentLogService
type MockRentLogService struct {
	mock.Mock
}

func (m *MockRentLogService) ListForUser(ctx context.Context, caller *domain.User, query service.RentQuery) ([]domain.Rent, error) {
	args := m.Called(ctx, caller, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Rent), args.Error(1)
}

// MockAuthProvider
type MockAuthProvider struct {
	mock.Mock
}

func (m *MockAuthProvider) Verify(ctx context.Context, token string) (*auth.Identity, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auth.Identity), args.Error(1)
}
func (m *MockAuthProvider) SignUp(ctx context.Context, email, password string) (*auth.Identity, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auth.Identity), args.Error(1)
}
func (m *MockAuthProvider) SignIn(ctx context.Context, email, password string) (*auth.Identity, string, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(*auth.Identity), args.String(1), args.Error(2)
}
func (m *MockAuthProvider) SignOut(ctx context.Context, uid string) error {
	args := m.Called(ctx, uid)
	return args.Error(0)
}

// MockUserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) List(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}
func (m *MockUserRepo) SetAdmin(ctx context.Context, id string, isAdmin bool) error {
	args := m.Called(ctx, id, isAdmin)
	return args.Error(0)
}
