package service

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"renthub-backend/internal/classifier"
	"renthub-backend/internal/domain"
	"renthub-backend/internal/logger"
	"renthub-backend/internal/repository"
	"renthub-backend/internal/storage"
)

// ErrEmptyFields is returned when an item registration arrives with
// neither a name nor a price, before any remote call is made.
var ErrEmptyFields = errors.New("name and price fields are empty")

type catalogService struct {
	items    repository.ItemRepository
	blobs    storage.BlobStorage
	classify classifier.Classifier
}

func NewCatalogService(items repository.ItemRepository, blobs storage.BlobStorage, classify classifier.Classifier) CatalogService {
	return &catalogService{items: items, blobs: blobs, classify: classify}
}

func (s *catalogService) Browse(ctx context.Context, query CatalogQuery) ([]domain.Item, error) {
	items, err := s.items.List(ctx)
	if err != nil {
		return nil, err
	}
	return visibleItems(items, query), nil
}

// visibleItems applies the catalog pipeline in its fixed order:
// availability filter, category filter, text search, sort. It always
// returns a fresh slice and leaves the snapshot untouched.
func visibleItems(items []domain.Item, q CatalogQuery) []domain.Item {
	out := make([]domain.Item, 0, len(items))
	for _, item := range items {
		if item.State != q.Availability {
			continue
		}
		if q.Category != domain.CategoryAll && item.Category != q.Category {
			continue
		}
		out = append(out, item)
	}

	if q.Search != "" {
		needle := strings.ToLower(q.Search)
		matched := out[:0]
		for _, item := range out {
			price := strconv.Itoa(item.PricePerHour)
			if strings.Contains(price, needle) || strings.Contains(strings.ToLower(item.Name), needle) {
				matched = append(matched, item)
			}
		}
		out = matched
	}

	sortItems(out, q.SortBy)
	return out
}

// sortItems orders in place by the active key; ties keep the store's
// original order.
func sortItems(items []domain.Item, by domain.ItemSort) {
	var less func(a, b *domain.Item) bool
	switch by {
	case domain.SortByDateOldest:
		less = func(a, b *domain.Item) bool { return a.DateRegistered.Before(b.DateRegistered) }
	case domain.SortByNameAsc:
		less = func(a, b *domain.Item) bool { return a.Name < b.Name }
	case domain.SortByNameDesc:
		less = func(a, b *domain.Item) bool { return a.Name > b.Name }
	case domain.SortByPriceAsc:
		less = func(a, b *domain.Item) bool { return a.PricePerHour < b.PricePerHour }
	case domain.SortByPriceDesc:
		less = func(a, b *domain.Item) bool { return a.PricePerHour > b.PricePerHour }
	case domain.SortByDateNewest:
		fallthrough
	default:
		less = func(a, b *domain.Item) bool { return a.DateRegistered.After(b.DateRegistered) }
	}
	sort.SliceStable(items, func(i, j int) bool { return less(&items[i], &items[j]) })
}

func (s *catalogService) GetItem(ctx context.Context, id string) (*domain.Item, error) {
	return s.items.GetByID(ctx, id)
}

func (s *catalogService) RegisterItem(ctx context.Context, input RegisterItemInput) (*domain.Item, error) {
	if input.Name == "" && input.Price == "" {
		return nil, ErrEmptyFields
	}

	// A non-numeric price registers as 0, matching the client's form
	// behavior.
	price, _ := strconv.Atoi(input.Price)

	category := input.Category
	if category == "" || category == domain.CategoryAll {
		category = s.PredictCategory(ctx, input.Image)
	}

	var imageURL string
	if len(input.Image) > 0 {
		url, err := s.blobs.Upload(ctx, input.Image, input.ImageContentType)
		if err != nil {
			return nil, err
		}
		imageURL = url
	}

	item := &domain.Item{
		ID:             uuid.NewString(),
		Name:           input.Name,
		PricePerHour:   price,
		State:          domain.ItemStateAvailable,
		DateRegistered: time.Now(),
		Category:       category,
		ImageURL:       imageURL,
	}
	if err := s.items.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *catalogService) UpdateItem(ctx context.Context, input UpdateItemInput) error {
	item, err := s.items.GetByID(ctx, input.ItemID)
	if err != nil {
		return err
	}
	// Items are only editable between rents.
	if item.State != domain.ItemStateAvailable {
		return nil
	}

	imageURL := item.ImageURL
	if len(input.NewImage) > 0 {
		if item.ImageURL != "" {
			if err := s.blobs.Delete(ctx, item.ImageURL); err != nil {
				logger.Warn("failed to delete replaced item image", "item_id", item.ID, "error", err)
			}
		}
		imageURL, err = s.blobs.Upload(ctx, input.NewImage, input.ImageContentType)
		if err != nil {
			return err
		}
	}

	category := input.Category
	if category == "" || category == domain.CategoryAll {
		category = domain.CategoryOther
	}

	return s.items.UpdateDetails(ctx, item.ID, input.Name, input.PricePerHour, category, imageURL)
}

func (s *catalogService) DeleteItem(ctx context.Context, id string) error {
	item, err := s.items.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.items.Delete(ctx, id); err != nil {
		return err
	}
	// The record is gone; a leftover blob is not worth failing the call.
	if item.ImageURL != "" {
		if err := s.blobs.Delete(ctx, item.ImageURL); err != nil {
			logger.Warn("failed to delete item image", "item_id", id, "error", err)
		}
	}
	return nil
}

func (s *catalogService) PredictCategory(ctx context.Context, image []byte) domain.ItemCategory {
	return classifier.Predict(ctx, s.classify, image)
}
