package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"renthub-backend/internal/domain"
	"renthub-backend/internal/service"
)

func authedRequest(method, target, body string, user *domain.User) *http.Request {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	return req.WithContext(withUser(req.Context(), user))
}

func TestRentHandler_StartRent(t *testing.T) {
	caller := &domain.User{UserID: "u1"}

	t.Run("Success", func(t *testing.T) {
		rentalSvc := new(MockRentalService)
		rentalSvc.On("StartRent", mock.Anything, "i1", "u1", 4).
			Return(&domain.Item{ID: "i1", State: domain.ItemStateRented}, &domain.Rent{ID: "order-1"}, nil)

		handler := NewRentHandler(rentalSvc, new(MockRentLogService))
		rec := httptest.NewRecorder()
		handler.StartRent(rec, authedRequest(http.MethodPost, "/api/v1/rent", `{"item_id":"i1","hours":4}`, caller))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"order-1"`)
	})

	t.Run("NoOpStillReturns200WithoutRent", func(t *testing.T) {
		rentalSvc := new(MockRentalService)
		rentalSvc.On("StartRent", mock.Anything, "i1", "u1", 4).
			Return(&domain.Item{ID: "i1", State: domain.ItemStateRented}, nil, nil)

		handler := NewRentHandler(rentalSvc, new(MockRentLogService))
		rec := httptest.NewRecorder()
		handler.StartRent(rec, authedRequest(http.MethodPost, "/api/v1/rent", `{"item_id":"i1","hours":4}`, caller))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"rent":null`)
	})

	t.Run("BadBodyRejected", func(t *testing.T) {
		handler := NewRentHandler(new(MockRentalService), new(MockRentLogService))
		rec := httptest.NewRecorder()
		handler.StartRent(rec, authedRequest(http.MethodPost, "/api/v1/rent", `{`, caller))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestRentHandler_ListRents(t *testing.T) {
	caller := &domain.User{UserID: "u1"}

	t.Run("DefaultsToInUse", func(t *testing.T) {
		logSvc := new(MockRentLogService)
		logSvc.On("ListForUser", mock.Anything, caller, service.RentQuery{Status: domain.RentStateInUse}).
			Return([]domain.Rent{}, nil)

		handler := NewRentHandler(new(MockRentalService), logSvc)
		rec := httptest.NewRecorder()
		handler.ListRents(rec, authedRequest(http.MethodGet, "/api/v1/rents", "", caller))

		assert.Equal(t, http.StatusOK, rec.Code)
		logSvc.AssertExpectations(t)
	})

	t.Run("StatusAndSearchForwarded", func(t *testing.T) {
		logSvc := new(MockRentLogService)
		logSvc.On("ListForUser", mock.Anything, caller, service.RentQuery{Status: domain.RentStateFinished, Search: "bike"}).
			Return([]domain.Rent{}, nil)

		handler := NewRentHandler(new(MockRentalService), logSvc)
		rec := httptest.NewRecorder()
		handler.ListRents(rec, authedRequest(http.MethodGet, "/api/v1/rents?status=finished&search=bike", "", caller))

		assert.Equal(t, http.StatusOK, rec.Code)
		logSvc.AssertExpectations(t)
	})
}

func TestRentHandler_PreviewPrice(t *testing.T) {
	rentalSvc := new(MockRentalService)
	rentalSvc.On("PreviewPrice", mock.Anything, "i1", 3).Return(21, nil)

	handler := NewRentHandler(rentalSvc, new(MockRentLogService))
	rec := httptest.NewRecorder()
	handler.PreviewPrice(rec, httptest.NewRequest(http.MethodGet, "/api/v1/rent/price?item_id=i1&hours=3", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total_price":21`)
}
