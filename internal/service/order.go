package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"shopapi/internal/authz"
	"shopapi/internal/events"
	"shopapi/internal/logging"
	"shopapi/internal/models"
	"shopapi/internal/repo"
	"shopapi/internal/transport"
)

type OrderService struct {
	Repo   *repo.GormRepo
	Events events.Publisher
}

// ListOrders is always scoped to the principal's own orders. Unlike the
// product catalog there is no cross-user listing, not even for superusers.
func (s *OrderService) ListOrders(ctx context.Context, p authz.Principal, limit, offset int) (int64, []models.Order, error) {
	return s.Repo.ListOrders(ctx, p.ID, limit, offset)
}

// GetOrder returns the order with its product set expanded. A missing order
// is ErrNotFound; an existing order owned by someone else is ErrForbidden.
func (s *OrderService) GetOrder(ctx context.Context, p authz.Principal, id uuid.UUID) (*models.Order, []models.Product, error) {
	order, err := s.Repo.GetOrder(ctx, id)
	if err != nil {
		return nil, nil, notFound(err)
	}
	if !authz.CanReadOrder(p, order.UserID) {
		return nil, nil, fmt.Errorf("%w: not the order owner", ErrForbidden)
	}

	products, err := s.Repo.OrderedProducts(ctx, order.ID)
	if err != nil {
		return nil, nil, err
	}
	return order, products, nil
}

// CreateOrder resolves every submitted product id and persists the order
// together with its join rows atomically. The owner is always the principal,
// whatever the payload says. Any id that does not resolve fails the whole
// call, no partially-specified order is ever created.
func (s *OrderService) CreateOrder(ctx context.Context, p authz.Principal, req transport.CreateOrderRequest) (*models.Order, []models.Product, error) {
	if !authz.CanCreateOrder(p) {
		return nil, nil, fmt.Errorf("%w: inactive user", ErrForbidden)
	}
	if req.Description != nil && len(*req.Description) > 255 {
		return nil, nil, fmt.Errorf("%w: description too long", ErrValidation)
	}

	ids := dedupe(req.ProductIDs)
	products, err := s.Repo.GetProductsByIDs(ctx, ids)
	if err != nil {
		return nil, nil, err
	}
	if len(products) != len(ids) {
		missing := missingIDs(ids, products)
		return nil, nil, fmt.Errorf("%w: unknown product ids %v", ErrInvalidReference, missing)
	}

	order := &models.Order{
		Description: req.Description,
		UserID:      p.ID,
	}
	if err := s.Repo.CreateOrder(ctx, order, ids); err != nil {
		return nil, nil, err
	}

	if s.Events != nil {
		event := map[string]any{
			"type":     "order_created",
			"order_id": order.ID,
			"user_id":  order.UserID,
			"products": ids,
		}
		if err := s.Events.Publish(ctx, events.TopicOrderEvents, order.ID.String(), event); err != nil {
			logging.FromContext(ctx).Warn("publish_failed", "svc", "order.create", "order_id", order.ID, "error", err)
		}
	}
	return order, products, nil
}

func (s *OrderService) DeleteOrder(ctx context.Context, p authz.Principal, id uuid.UUID) error {
	order, err := s.Repo.GetOrder(ctx, id)
	if err != nil {
		return notFound(err)
	}
	if !authz.CanDeleteOrder(p, order.UserID) {
		return fmt.Errorf("%w: not the order owner", ErrForbidden)
	}

	if err := s.Repo.DeleteOrder(ctx, id); err != nil {
		return notFound(err)
	}

	if s.Events != nil {
		event := map[string]any{"type": "order_deleted", "order_id": id, "user_id": order.UserID}
		if err := s.Events.Publish(ctx, events.TopicOrderEvents, id.String(), event); err != nil {
			logging.FromContext(ctx).Warn("publish_failed", "svc", "order.delete", "order_id", id, "error", err)
		}
	}
	return nil
}

func dedupe(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func missingIDs(ids []uuid.UUID, products []models.Product) []uuid.UUID {
	found := make(map[uuid.UUID]struct{}, len(products))
	for _, p := range products {
		found[p.ID] = struct{}{}
	}
	var missing []uuid.UUID
	for _, id := range ids {
		if _, ok := found[id]; !ok {
			missing = append(missing, id)
		}
	}
	return missing
}
