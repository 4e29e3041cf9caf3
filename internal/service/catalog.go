package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"shopapi/internal/authz"
	"shopapi/internal/events"
	"shopapi/internal/logging"
	"shopapi/internal/models"
	"shopapi/internal/repo"
	"shopapi/internal/transport"
)

// ProductIndex is the search-index sync hook. Sync failures are logged, a
// stale index never fails the catalog operation.
type ProductIndex interface {
	IndexProduct(ctx context.Context, p models.Product) error
	DeleteProduct(ctx context.Context, id uuid.UUID) error
}

type CatalogService struct {
	Repo   *repo.GormRepo
	Events events.Publisher
	Index  ProductIndex
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

func validateName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: name required", ErrValidation)
	}
	if len(name) > 255 {
		return fmt.Errorf("%w: name too long", ErrValidation)
	}
	return nil
}

func validateCategory(category string) error {
	if category == "" {
		return fmt.Errorf("%w: category required", ErrValidation)
	}
	if len(category) > 255 {
		return fmt.Errorf("%w: category too long", ErrValidation)
	}
	return nil
}

func validatePrice(price int64) error {
	if price <= 0 {
		return fmt.Errorf("%w: price must be > 0", ErrValidation)
	}
	return nil
}

func validateRating(rating int) error {
	if rating < 0 || rating > 10 {
		return fmt.Errorf("%w: rating must be within [0,10]", ErrValidation)
	}
	return nil
}

func (s *CatalogService) GetProduct(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	product, err := s.Repo.GetProduct(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	return product, nil
}

func (s *CatalogService) ListProducts(ctx context.Context, category string, limit, offset int) (int64, []models.Product, error) {
	return s.Repo.ListProducts(ctx, category, limit, offset)
}

func (s *CatalogService) CreateProduct(ctx context.Context, p authz.Principal, req transport.CreateProductRequest) (*models.Product, error) {
	if !authz.CanMutateProduct(p) {
		return nil, fmt.Errorf("%w: superuser required", ErrForbidden)
	}
	if err := validateName(req.Name); err != nil {
		return nil, err
	}
	if err := validateCategory(req.Category); err != nil {
		return nil, err
	}
	if err := validatePrice(req.Price); err != nil {
		return nil, err
	}
	if err := validateRating(req.Rating); err != nil {
		return nil, err
	}

	product := &models.Product{
		Name:     req.Name,
		Category: req.Category,
		Price:    req.Price,
		Rating:   req.Rating,
	}
	if err := s.Repo.CreateProduct(ctx, product); err != nil {
		return nil, err
	}

	s.productChanged(ctx, "product_created", *product)
	return product, nil
}

// PatchProduct applies a sparse patch: nil fields in req are untouched.
func (s *CatalogService) PatchProduct(ctx context.Context, p authz.Principal, id uuid.UUID, req transport.PatchProductRequest) (*models.Product, error) {
	if !authz.CanMutateProduct(p) {
		return nil, fmt.Errorf("%w: superuser required", ErrForbidden)
	}

	product, err := s.Repo.GetProduct(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}

	if req.Name != nil {
		if err := validateName(*req.Name); err != nil {
			return nil, err
		}
		product.Name = *req.Name
	}
	if req.Category != nil {
		if err := validateCategory(*req.Category); err != nil {
			return nil, err
		}
		product.Category = *req.Category
	}
	if req.Price != nil {
		if err := validatePrice(*req.Price); err != nil {
			return nil, err
		}
		product.Price = *req.Price
	}
	if req.Rating != nil {
		if err := validateRating(*req.Rating); err != nil {
			return nil, err
		}
		product.Rating = *req.Rating
	}

	if err := s.Repo.SaveProduct(ctx, product); err != nil {
		return nil, err
	}

	s.productChanged(ctx, "product_updated", *product)
	return product, nil
}

func (s *CatalogService) DeleteProduct(ctx context.Context, p authz.Principal, id uuid.UUID) error {
	if !authz.CanMutateProduct(p) {
		return fmt.Errorf("%w: superuser required", ErrForbidden)
	}

	if err := s.Repo.DeleteProduct(ctx, id); err != nil {
		return notFound(err)
	}

	l := logging.FromContext(ctx).With("svc", "catalog.delete_product")
	if s.Index != nil {
		if err := s.Index.DeleteProduct(ctx, id); err != nil {
			l.Warn("index_sync_failed", "product_id", id, "error", err)
		}
	}
	if s.Events != nil {
		event := map[string]any{"type": "product_deleted", "product_id": id}
		if err := s.Events.Publish(ctx, events.TopicProductEvents, id.String(), event); err != nil {
			l.Warn("publish_failed", "product_id", id, "error", err)
		}
	}
	return nil
}

func (s *CatalogService) productChanged(ctx context.Context, eventType string, product models.Product) {
	l := logging.FromContext(ctx).With("svc", "catalog."+eventType)
	if s.Index != nil {
		if err := s.Index.IndexProduct(ctx, product); err != nil {
			l.Warn("index_sync_failed", "product_id", product.ID, "error", err)
		}
	}
	if s.Events != nil {
		event := map[string]any{
			"type":       eventType,
			"product_id": product.ID,
			"name":       product.Name,
			"category":   product.Category,
		}
		if err := s.Events.Publish(ctx, events.TopicProductEvents, product.ID.String(), event); err != nil {
			l.Warn("publish_failed", "product_id", product.ID, "error", err)
		}
	}
}
