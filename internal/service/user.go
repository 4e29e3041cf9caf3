package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"shopapi/internal/authz"
	"shopapi/internal/events"
	"shopapi/internal/hash"
	"shopapi/internal/logging"
	"shopapi/internal/models"
	"shopapi/internal/repo"
	"shopapi/internal/transport"
)

// UserService is the superuser-only administration slice.
type UserService struct {
	Repo   *repo.GormRepo
	Events events.Publisher
}

func (s *UserService) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, err := s.Repo.GetUser(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	return user, nil
}

func (s *UserService) CreateUser(ctx context.Context, p authz.Principal, req transport.CreateUserRequest) (*models.User, error) {
	if !authz.CanManageUsers(p) {
		return nil, fmt.Errorf("%w: superuser required", ErrForbidden)
	}
	if err := validateEmail(req.Email); err != nil {
		return nil, err
	}
	if err := validatePassword(req.Password); err != nil {
		return nil, err
	}
	if req.FullName != nil && len(*req.FullName) > 255 {
		return nil, fmt.Errorf("%w: full_name too long", ErrValidation)
	}

	if _, err := s.Repo.GetUserByEmail(ctx, req.Email); err == nil {
		return nil, fmt.Errorf("%w: email already registered", ErrConflict)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	pwHash, err := hash.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}
	user := &models.User{
		Email:          req.Email,
		FullName:       req.FullName,
		IsActive:       active,
		IsSuperuser:    req.IsSuperuser,
		HashedPassword: pwHash,
	}
	if err := s.Repo.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteUser cascades the user's orders, their join rows and items. A
// superuser cannot delete themselves.
func (s *UserService) DeleteUser(ctx context.Context, p authz.Principal, id uuid.UUID) error {
	if !authz.CanManageUsers(p) {
		return fmt.Errorf("%w: superuser required", ErrForbidden)
	}
	if p.ID == id {
		return fmt.Errorf("%w: superusers cannot delete themselves", ErrForbidden)
	}

	if err := s.Repo.DeleteUser(ctx, id); err != nil {
		return notFound(err)
	}

	if s.Events != nil {
		event := map[string]any{"type": "user_deleted", "user_id": id}
		if err := s.Events.Publish(ctx, events.TopicUserEvents, id.String(), event); err != nil {
			logging.FromContext(ctx).Warn("publish_failed", "svc", "user.delete", "user_id", id, "error", err)
		}
	}
	return nil
}
