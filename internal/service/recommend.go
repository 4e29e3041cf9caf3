package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"shopapi/internal/authz"
	"shopapi/internal/models"
	"shopapi/internal/repo"
)

// RecommendService is a placeholder: it suggests the products of the
// principal's most recent order. Recency is an explicit created_at DESC
// sort, and a user with no orders gets ErrNoOrders rather than a failure.
type RecommendService struct {
	Repo *repo.GormRepo
}

func (s *RecommendService) Recommend(ctx context.Context, p authz.Principal) ([]models.Product, error) {
	order, err := s.Repo.LatestOrder(ctx, p.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user has no orders", ErrNoOrders)
		}
		return nil, err
	}
	return s.Repo.OrderedProducts(ctx, order.ID)
}
