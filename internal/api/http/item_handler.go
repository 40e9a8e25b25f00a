package http

import (
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"renthub-backend/internal/domain"
	"renthub-backend/internal/service"
)

// maxImageBytes caps uploaded item photos at 10 MiB.
const maxImageBytes = 10 << 20

type ItemHandler struct {
	catalogSvc service.CatalogService
}

func NewItemHandler(catalogSvc service.CatalogService) *ItemHandler {
	return &ItemHandler{catalogSvc: catalogSvc}
}

// ListItems runs the catalog pipeline over the query parameters:
// availability, category, search and sort_by.
func (h *ItemHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	query := service.CatalogQuery{
		Availability: domain.ItemStateAvailable,
		Category:     domain.CategoryAll,
		Search:       r.URL.Query().Get("search"),
		SortBy:       domain.ParseItemSort(r.URL.Query().Get("sort_by")),
	}
	if r.URL.Query().Get("availability") == string(domain.ItemStateRented) {
		query.Availability = domain.ItemStateRented
	}
	if category, ok := domain.ParseCategory(r.URL.Query().Get("category")); ok {
		query.Category = category
	}

	items, err := h.catalogSvc.Browse(r.Context(), query)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *ItemHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	item, err := h.catalogSvc.GetItem(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

// RegisterItem accepts a multipart form with name, price and category
// fields plus an optional image file.
func (h *ItemHandler) RegisterItem(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxImageBytes); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	input := service.RegisterItemInput{
		Name:  r.FormValue("name"),
		Price: r.FormValue("price"),
	}
	if category, ok := domain.ParseCategory(r.FormValue("category")); ok {
		input.Category = category
	}

	image, contentType, err := readFormImage(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	input.Image = image
	input.ImageContentType = contentType

	item, err := h.catalogSvc.RegisterItem(r.Context(), input)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

func (h *ItemHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxImageBytes); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	input := service.UpdateItemInput{
		ItemID:       mux.Vars(r)["id"],
		Name:         r.FormValue("name"),
		PricePerHour: parsePrice(r.FormValue("price")),
	}
	if category, ok := domain.ParseCategory(r.FormValue("category")); ok {
		input.Category = category
	}

	image, contentType, err := readFormImage(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	input.NewImage = image
	input.ImageContentType = contentType

	if err := h.catalogSvc.UpdateItem(r.Context(), input); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, nil)
}

func (h *ItemHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	if err := h.catalogSvc.DeleteItem(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

// ClassifyImage predicts a category for the posted image body without
// touching the catalog.
func (h *ItemHandler) ClassifyImage(w http.ResponseWriter, r *http.Request) {
	image, err := io.ReadAll(io.LimitReader(r.Body, maxImageBytes))
	if err != nil || len(image) == 0 {
		writeError(w, http.StatusBadRequest, "missing image body")
		return
	}

	category := h.catalogSvc.PredictCategory(r.Context(), image)
	writeJSON(w, http.StatusOK, map[string]string{"category": string(category)})
}

// parsePrice mirrors the registration form behavior: anything that does
// not parse as an integer prices at 0.
func parsePrice(s string) int {
	price, _ := strconv.Atoi(s)
	return price
}

func readFormImage(r *http.Request) ([]byte, string, error) {
	file, header, err := r.FormFile("image")
	if err == http.ErrMissingFile {
		return nil, "", nil
	}
	if err != nil {
		return nil, "", err
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxImageBytes))
	if err != nil {
		return nil, "", err
	}
	return data, header.Header.Get("Content-Type"), nil
}
