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

type rentRepository struct {
	rents *firestore.CollectionRef
}

func NewRentRepository(client *firestore.Client) repository.RentRepository {
	return &rentRepository{rents: client.Collection(rentsCollection)}
}

func (r *rentRepository) Create(ctx context.Context, rent *domain.Rent) error {
	if _, err := r.rents.Doc(rent.ID).Create(ctx, rent); err != nil {
		return fmt.Errorf("create rent %s: %w", rent.ID, err)
	}
	return nil
}

func (r *rentRepository) GetByID(ctx context.Context, id string) (*domain.Rent, error) {
	doc, err := r.rents.Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("get rent %s: %w", id, err)
	}
	rent := &domain.Rent{}
	if err := doc.DataTo(rent); err != nil {
		return nil, fmt.Errorf("decode rent %s: %w", id, err)
	}
	rent.ID = doc.Ref.ID
	return rent, nil
}

func (r *rentRepository) List(ctx context.Context) ([]domain.Rent, error) {
	return r.collect(r.rents.Documents(ctx))
}

func (r *rentRepository) ListByUser(ctx context.Context, userID string) ([]domain.Rent, error) {
	return r.collect(r.rents.Where("user_id", "==", userID).Documents(ctx))
}

func (r *rentRepository) ListOverdue(ctx context.Context, asOf time.Time) ([]domain.Rent, error) {
	q := r.rents.
		Where("state", "==", string(domain.RentStateInUse)).
		Where("deadline_return_date", "<", asOf)
	return r.collect(q.Documents(ctx))
}

func (r *rentRepository) MarkFinished(ctx context.Context, id string, returnedAt time.Time) error {
	_, err := r.rents.Doc(id).Update(ctx, []firestore.Update{
		{Path: "state", Value: string(domain.RentStateFinished)},
		{Path: "actual_return_date", Value: returnedAt},
	})
	if err != nil {
		return fmt.Errorf("finish rent %s: %w", id, err)
	}
	return nil
}

func (r *rentRepository) collect(iter *firestore.DocumentIterator) ([]domain.Rent, error) {
	defer iter.Stop()

	var rents []domain.Rent
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("list rents: %w", err)
		}
		var rent domain.Rent
		if err := doc.DataTo(&rent); err != nil {
			return nil, fmt.Errorf("decode rent %s: %w", doc.Ref.ID, err)
		}
		rent.ID = doc.Ref.ID
		rents = append(rents, rent)
	}
	return rents, nil
}
