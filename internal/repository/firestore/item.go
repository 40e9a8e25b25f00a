package firestore

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"renthub-backend/internal/domain"
	"renthub-backend/internal/repository"
)

type itemRepository struct {
	items *firestore.CollectionRef
}

func NewItemRepository(client *firestore.Client) repository.ItemRepository {
	return &itemRepository{items: client.Collection(itemsCollection)}
}

func (r *itemRepository) Create(ctx context.Context, item *domain.Item) error {
	if _, err := r.items.Doc(item.ID).Create(ctx, item); err != nil {
		return fmt.Errorf("create item %s: %w", item.ID, err)
	}
	return nil
}

func (r *itemRepository) GetByID(ctx context.Context, id string) (*domain.Item, error) {
	doc, err := r.items.Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("get item %s: %w", id, err)
	}
	item := &domain.Item{}
	if err := doc.DataTo(item); err != nil {
		return nil, fmt.Errorf("decode item %s: %w", id, err)
	}
	item.ID = doc.Ref.ID
	return item, nil
}

func (r *itemRepository) List(ctx context.Context) ([]domain.Item, error) {
	iter := r.items.Documents(ctx)
	defer iter.Stop()

	var items []domain.Item
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("list items: %w", err)
		}
		var item domain.Item
		if err := doc.DataTo(&item); err != nil {
			return nil, fmt.Errorf("decode item %s: %w", doc.Ref.ID, err)
		}
		item.ID = doc.Ref.ID
		items = append(items, item)
	}
	return items, nil
}

func (r *itemRepository) MarkRented(ctx context.Context, id, renterID, orderID string, hours int, dateRent, dateReturn time.Time) error {
	_, err := r.items.Doc(id).Update(ctx, []firestore.Update{
		{Path: "state", Value: string(domain.ItemStateRented)},
		{Path: "rented_by_user_with_id", Value: renterID},
		{Path: "order_id", Value: orderID},
		{Path: "hours_in_rent", Value: hours},
		{Path: "date_rent", Value: dateRent},
		{Path: "date_return", Value: dateReturn},
	})
	if err != nil {
		return fmt.Errorf("mark item %s rented: %w", id, err)
	}
	return nil
}

func (r *itemRepository) MarkAvailable(ctx context.Context, id string) error {
	_, err := r.items.Doc(id).Update(ctx, []firestore.Update{
		{Path: "state", Value: string(domain.ItemStateAvailable)},
		{Path: "rented_by_user_with_id", Value: firestore.Delete},
		{Path: "order_id", Value: firestore.Delete},
		{Path: "hours_in_rent", Value: firestore.Delete},
		{Path: "date_rent", Value: firestore.Delete},
		{Path: "date_return", Value: firestore.Delete},
	})
	if err != nil {
		return fmt.Errorf("mark item %s available: %w", id, err)
	}
	return nil
}

func (r *itemRepository) UpdateDetails(ctx context.Context, id, name string, pricePerHour int, category domain.ItemCategory, imageURL string) error {
	_, err := r.items.Doc(id).Update(ctx, []firestore.Update{
		{Path: "name", Value: name},
		{Path: "price_per_hour", Value: pricePerHour},
		{Path: "category", Value: string(category)},
		{Path: "image_url_string", Value: imageURL},
	})
	if err != nil {
		return fmt.Errorf("update item %s: %w", id, err)
	}
	return nil
}

func (r *itemRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.items.Doc(id).Delete(ctx); err != nil {
		return fmt.Errorf("delete item %s: %w", id, err)
	}
	return nil
}
