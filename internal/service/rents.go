package service

import (
	"context"
	"sort"
	"strings"

	"renthub-backend/internal/domain"
	"renthub-backend/internal/repository"
)

type rentLogService struct {
	rents repository.RentRepository
}

func NewRentLogService(rents repository.RentRepository) RentLogService {
	return &rentLogService{rents: rents}
}

func (s *rentLogService) ListForUser(ctx context.Context, caller *domain.User, query RentQuery) ([]domain.Rent, error) {
	if caller == nil {
		return nil, nil
	}

	var (
		rents []domain.Rent
		err   error
	)
	if caller.IsAdmin {
		rents, err = s.rents.List(ctx)
	} else {
		rents, err = s.rents.ListByUser(ctx, caller.UserID)
	}
	if err != nil {
		return nil, err
	}
	return visibleRents(rents, query), nil
}

// visibleRents applies the rent pipeline: status filter, then either the
// text search or the recency sort. Search results keep their fetch order;
// only the unsearched list is sorted most-recent-first.
func visibleRents(rents []domain.Rent, q RentQuery) []domain.Rent {
	out := make([]domain.Rent, 0, len(rents))
	for _, rent := range rents {
		if rent.State == q.Status {
			out = append(out, rent)
		}
	}

	if q.Search != "" {
		needle := strings.ToLower(q.Search)
		matched := out[:0]
		for _, rent := range out {
			if strings.Contains(strings.ToLower(rent.UserID), needle) ||
				strings.Contains(strings.ToLower(rent.ID), needle) ||
				strings.Contains(strings.ToLower(rent.ItemName), needle) {
				matched = append(matched, rent)
			}
		}
		return matched
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].RentDate.After(out[j].RentDate)
	})
	return out
}
