package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"shopapi/internal/events"
	"shopapi/internal/hash"
	"shopapi/internal/logging"
	"shopapi/internal/models"
	"shopapi/internal/repo"
	"shopapi/internal/tokens"
)

const accessTokenTTL = 8 * 24 * time.Hour

type AuthService struct {
	Repo      *repo.GormRepo
	JWTSecret []byte
	Events    events.Publisher
}

type LoginResult struct {
	AccessToken string
	User        models.User
}

func validateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("%w: email required", ErrValidation)
	}
	if len(email) > 255 {
		return fmt.Errorf("%w: email too long", ErrValidation)
	}
	return nil
}

func validatePassword(password string) error {
	if len(password) < 8 {
		return fmt.Errorf("%w: password must be at least 8 characters", ErrValidation)
	}
	if len(password) > 40 {
		return fmt.Errorf("%w: password too long", ErrValidation)
	}
	return nil
}

func (s *AuthService) Register(ctx context.Context, email, password string, fullName *string) (*models.User, error) {
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	if err := validatePassword(password); err != nil {
		return nil, err
	}
	if fullName != nil && len(*fullName) > 255 {
		return nil, fmt.Errorf("%w: full_name too long", ErrValidation)
	}

	if _, err := s.Repo.GetUserByEmail(ctx, email); err == nil {
		return nil, fmt.Errorf("%w: email already registered", ErrConflict)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	pwHash, err := hash.HashPassword(password)
	if err != nil {
		return nil, err
	}
	user := &models.User{
		Email:          email,
		FullName:       fullName,
		IsActive:       true,
		HashedPassword: pwHash,
	}
	if err := s.Repo.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	if s.Events != nil {
		event := map[string]any{"type": "user_registered", "user_id": user.ID}
		if err := s.Events.Publish(ctx, events.TopicUserEvents, user.ID.String(), event); err != nil {
			logging.FromContext(ctx).Warn("publish_failed", "svc", "auth.register", "error", err)
		}
	}
	return user, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	l := logging.FromContext(ctx).With("svc", "auth.login")

	user, err := s.Repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: bad credentials", ErrForbidden)
		}
		return nil, err
	}
	if !hash.CheckPassword(user.HashedPassword, password) {
		l.Warn("login_failed", "reason", "bad credentials")
		return nil, fmt.Errorf("%w: bad credentials", ErrForbidden)
	}
	if !user.IsActive {
		l.Warn("login_failed", "reason", "inactive user", "user_id", user.ID)
		return nil, fmt.Errorf("%w: inactive user", ErrForbidden)
	}

	token, err := tokens.NewAccessToken(user.ID.String(), user.IsSuperuser, user.IsActive, time.Now().Add(accessTokenTTL), s.JWTSecret)
	if err != nil {
		return nil, err
	}
	return &LoginResult{AccessToken: token, User: *user}, nil
}
