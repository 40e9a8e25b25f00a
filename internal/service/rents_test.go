package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"renthub-backend/internal/domain"
)

func rentFixture(id, userID, itemName string, state domain.RentState, rentDate time.Time) domain.Rent {
	return domain.Rent{
		ID:       id,
		State:    state,
		UserID:   userID,
		ItemName: itemName,
		RentDate: rentDate,
	}
}

func TestRentLogService_ListForUser(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)

	allRents := []domain.Rent{
		rentFixture("r1", "u1", "Bike", domain.RentStateInUse, base.Add(1*time.Hour)),
		rentFixture("r2", "u2", "Car", domain.RentStateInUse, base.Add(2*time.Hour)),
		rentFixture("r3", "u1", "Tent", domain.RentStateFinished, base.Add(3*time.Hour)),
		rentFixture("r4", "u1", "Bike", domain.RentStateInUse, base.Add(4*time.Hour)),
	}

	t.Run("AdminSeesEveryRent", func(t *testing.T) {
		rents := new(MockRentRepo)
		rents.On("List", ctx).Return(allRents, nil)
		svc := NewRentLogService(rents)

		admin := &domain.User{UserID: "a1", IsAdmin: true}
		got, err := svc.ListForUser(ctx, admin, RentQuery{Status: domain.RentStateInUse})
		assert.NoError(t, err)
		assert.Len(t, got, 3)
	})

	t.Run("NonAdminIsScopedToOwnRents", func(t *testing.T) {
		own := []domain.Rent{allRents[0], allRents[2], allRents[3]}
		rents := new(MockRentRepo)
		rents.On("ListByUser", ctx, "u1").Return(own, nil)
		svc := NewRentLogService(rents)

		caller := &domain.User{UserID: "u1"}
		got, err := svc.ListForUser(ctx, caller, RentQuery{Status: domain.RentStateInUse})
		assert.NoError(t, err)
		assert.Len(t, got, 2)
		for _, rent := range got {
			assert.Equal(t, "u1", rent.UserID)
		}
	})

	t.Run("StatusAndSearchCombine", func(t *testing.T) {
		rents := new(MockRentRepo)
		rents.On("List", ctx).Return(allRents, nil)
		svc := NewRentLogService(rents)

		admin := &domain.User{UserID: "a1", IsAdmin: true}
		got, err := svc.ListForUser(ctx, admin, RentQuery{Status: domain.RentStateInUse, Search: "bike"})
		assert.NoError(t, err)
		assert.Len(t, got, 2)
		for _, rent := range got {
			assert.Equal(t, "Bike", rent.ItemName)
			assert.Equal(t, domain.RentStateInUse, rent.State)
		}
	})

	t.Run("SearchResultsKeepFetchOrder", func(t *testing.T) {
		rents := new(MockRentRepo)
		rents.On("List", ctx).Return(allRents, nil)
		svc := NewRentLogService(rents)

		admin := &domain.User{UserID: "a1", IsAdmin: true}
		got, err := svc.ListForUser(ctx, admin, RentQuery{Status: domain.RentStateInUse, Search: "u1"})
		assert.NoError(t, err)
		// r1 before r4: store order, not recency order.
		assert.Equal(t, "r1", got[0].ID)
		assert.Equal(t, "r4", got[1].ID)
	})

	t.Run("UnsearchedListSortsMostRecentFirst", func(t *testing.T) {
		rents := new(MockRentRepo)
		rents.On("List", ctx).Return(allRents, nil)
		svc := NewRentLogService(rents)

		admin := &domain.User{UserID: "a1", IsAdmin: true}
		got, err := svc.ListForUser(ctx, admin, RentQuery{Status: domain.RentStateInUse})
		assert.NoError(t, err)
		assert.Equal(t, "r4", got[0].ID)
		assert.Equal(t, "r2", got[1].ID)
		assert.Equal(t, "r1", got[2].ID)
	})

	t.Run("NilCallerReturnsNothing", func(t *testing.T) {
		svc := NewRentLogService(new(MockRentRepo))
		got, err := svc.ListForUser(ctx, nil, RentQuery{Status: domain.RentStateInUse})
		assert.NoError(t, err)
		assert.Empty(t, got)
	})
}
