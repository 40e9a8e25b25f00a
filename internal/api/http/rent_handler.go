package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"renthub-backend/internal/domain"
	"renthub-backend/internal/service"
)

type RentHandler struct {
	rentalSvc  service.RentalService
	rentLogSvc service.RentLogService
}

func NewRentHandler(rentalSvc service.RentalService, rentLogSvc service.RentLogService) *RentHandler {
	return &RentHandler{rentalSvc: rentalSvc, rentLogSvc: rentLogSvc}
}

type startRentRequest struct {
	ItemID string `json:"item_id"`
	Hours  int    `json:"hours"`
}

type startRentResponse struct {
	Item *domain.Item `json:"item"`
	Rent *domain.Rent `json:"rent"`
}

// StartRent rents an item for the authenticated caller. Renting an item
// that is not available succeeds without changing anything; the response
// then carries the item as-is and no rent record.
func (h *RentHandler) StartRent(w http.ResponseWriter, r *http.Request) {
	caller, err := GetUserFromContext(r.Context())
	if err != nil {
		writeError(w, http.StatusUnauthorized, "missing bearer token")
		return
	}

	var req startRentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item, rent, err := h.rentalSvc.StartRent(r.Context(), req.ItemID, caller.UserID, req.Hours)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, startRentResponse{Item: item, Rent: rent})
}

type endRentRequest struct {
	ItemID string `json:"item_id"`
}

// EndRent returns a rented item. Returning an item that is not rented
// succeeds without changing anything.
func (h *RentHandler) EndRent(w http.ResponseWriter, r *http.Request) {
	var req endRentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item, err := h.rentalSvc.EndRent(r.Context(), req.ItemID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

// PreviewPrice quotes the total for renting an item a given number of
// hours, without starting a rent.
func (h *RentHandler) PreviewPrice(w http.ResponseWriter, r *http.Request) {
	itemID := r.URL.Query().Get("item_id")
	hours, _ := strconv.Atoi(r.URL.Query().Get("hours"))

	total, err := h.rentalSvc.PreviewPrice(r.Context(), itemID, hours)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"total_price": total})
}

// ListRents runs the rent pipeline over the caller's rents, or over all
// rents when the caller is an admin.
func (h *RentHandler) ListRents(w http.ResponseWriter, r *http.Request) {
	caller, err := GetUserFromContext(r.Context())
	if err != nil {
		writeError(w, http.StatusUnauthorized, "missing bearer token")
		return
	}

	query := service.RentQuery{
		Status: domain.RentStateInUse,
		Search: r.URL.Query().Get("search"),
	}
	if r.URL.Query().Get("status") == string(domain.RentStateFinished) {
		query.Status = domain.RentStateFinished
	}

	rents, err := h.rentLogSvc.ListForUser(r.Context(), caller, query)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rents)
}
