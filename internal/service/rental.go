package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"renthub-backend/internal/domain"
	"renthub-backend/internal/logger"
	"renthub-backend/internal/repository"
	"renthub-backend/internal/utils"
)

type rentalService struct {
	items repository.ItemRepository
	rents repository.RentRepository
	users repository.UserRepository
	email EmailService
}

func NewRentalService(items repository.ItemRepository, rents repository.RentRepository, users repository.UserRepository, email EmailService) RentalService {
	return &rentalService{items: items, rents: rents, users: users, email: email}
}

// StartRent moves an item to the rented state and creates the matching
// rent record. Precondition violations (item not available, non-positive
// hours, unknown renter) are silent no-ops returning the item unchanged;
// callers check state before invoking.
//
// The item update and the rent creation are two independent writes with
// no transaction across them. A failure between the two leaves the item
// rented with no rent record; the caller sees the write error and must
// re-fetch to resynchronize.
func (s *rentalService) StartRent(ctx context.Context, itemID, renterID string, hours int) (*domain.Item, *domain.Rent, error) {
	item, err := s.items.GetByID(ctx, itemID)
	if err != nil {
		return nil, nil, err
	}
	if item.State != domain.ItemStateAvailable || hours <= 0 {
		return item, nil, nil
	}
	renter, err := s.users.GetByID(ctx, renterID)
	if errors.Is(err, repository.ErrNotFound) {
		return item, nil, nil
	}
	if err != nil {
		return nil, nil, err
	}

	orderID := uuid.NewString()
	start := time.Now()
	deadline := utils.ReturnDeadline(start, hours)

	if err := s.items.MarkRented(ctx, item.ID, renter.UserID, orderID, hours, start, deadline); err != nil {
		return nil, nil, err
	}

	rent := &domain.Rent{
		ID:                 orderID,
		State:              domain.RentStateInUse,
		UserID:             renter.UserID,
		ItemID:             item.ID,
		ItemName:           item.Name,
		RentDate:           start,
		DeadlineReturnDate: deadline,
		HoursInRent:        hours,
		PricePerHour:       item.PricePerHour,
		TotalPrice:         utils.TotalPrice(item.PricePerHour, hours),
	}
	if err := s.rents.Create(ctx, rent); err != nil {
		return item, nil, err
	}

	item.State = domain.ItemStateRented
	item.RentedByUserID = renter.UserID
	item.OrderID = orderID
	item.HoursInRent = hours
	item.DateRent = &start
	item.DateReturn = &deadline
	return item, rent, nil
}

// EndRent returns a rented item and closes its rent record. A no-op when
// the item is not rented or carries no order id. Subject to the same
// two-write caveat as StartRent.
func (s *rentalService) EndRent(ctx context.Context, itemID string) (*domain.Item, error) {
	item, err := s.items.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item.State != domain.ItemStateRented || item.OrderID == "" {
		return item, nil
	}

	orderID := item.OrderID
	renterID := item.RentedByUserID
	total := item.PriceForRent()

	if err := s.items.MarkAvailable(ctx, item.ID); err != nil {
		return nil, err
	}
	if err := s.rents.MarkFinished(ctx, orderID, time.Now()); err != nil {
		return item, err
	}

	s.sendReceipt(ctx, renterID, item.Name, total)

	item.State = domain.ItemStateAvailable
	item.RentedByUserID = ""
	item.OrderID = ""
	item.HoursInRent = 0
	item.DateRent = nil
	item.DateReturn = nil
	return item, nil
}

// sendReceipt emails the renter their final price. Failures are logged
// and swallowed; the rent is already closed and the UI keeps working off
// the store state.
func (s *rentalService) sendReceipt(ctx context.Context, renterID, itemName string, total int) {
	if s.email == nil {
		return
	}
	renter, err := s.users.GetByID(ctx, renterID)
	if err != nil || renter.Email == "" {
		return
	}
	if err := s.email.SendRentReceipt(ctx, renter.Email, renter.FullName(), itemName, total); err != nil {
		logger.Warn("failed to send rent receipt", "user_id", renterID, "error", err)
	}
}

func (s *rentalService) PreviewPrice(ctx context.Context, itemID string, hours int) (int, error) {
	item, err := s.items.GetByID(ctx, itemID)
	if err != nil {
		return 0, err
	}
	return utils.TotalPrice(item.PricePerHour, hours), nil
}
