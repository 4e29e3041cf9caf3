package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"shopapi/internal/authz"
	"shopapi/internal/models"
	"shopapi/internal/repo"
)

func initTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect to in-memory db: %v", err)
	}
	// One connection only: every pooled :memory: connection would otherwise
	// see its own empty database.
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(1)
	}
	if err := db.AutoMigrate(models.All()...); err != nil {
		t.Fatalf("failed to migrate tables: %v", err)
	}
	return db
}

type recordedEvent struct {
	Topic string
	Key   string
	Event any
}

type recorderPublisher struct {
	mu     sync.Mutex
	events []recordedEvent
}

func (r *recorderPublisher) Publish(_ context.Context, topic, key string, event any) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, recordedEvent{Topic: topic, Key: key, Event: event})
	return nil
}

func (r *recorderPublisher) Close() error { return nil }

func (r *recorderPublisher) topics() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.events))
	for i, e := range r.events {
		out[i] = e.Topic
	}
	return out
}

func userPrincipal() authz.Principal {
	return authz.Principal{ID: uuid.New(), IsActive: true}
}

func superPrincipal() authz.Principal {
	return authz.Principal{ID: uuid.New(), IsSuperuser: true, IsActive: true}
}

func seedProduct(t *testing.T, r *repo.GormRepo, name, category string, price int64, rating int) models.Product {
	t.Helper()

	p := models.Product{Name: name, Category: category, Price: price, Rating: rating}
	require.NoError(t, r.CreateProduct(context.Background(), &p))
	return p
}

func seedOrder(t *testing.T, r *repo.GormRepo, userID uuid.UUID, createdAt time.Time, productIDs ...uuid.UUID) models.Order {
	t.Helper()

	o := models.Order{UserID: userID, CreatedAt: createdAt}
	require.NoError(t, r.CreateOrder(context.Background(), &o, productIDs))
	return o
}

func strptr(s string) *string { return &s }
func intptr(n int) *int       { return &n }
func int64ptr(n int64) *int64 { return &n }

func newCatalog(t *testing.T) (*CatalogService, *repo.GormRepo, *recorderPublisher) {
	t.Helper()

	r := repo.New(initTestDB(t))
	pub := &recorderPublisher{}
	return &CatalogService{Repo: r, Events: pub}, r, pub
}

func newOrderSvc(t *testing.T) (*OrderService, *repo.GormRepo, *recorderPublisher) {
	t.Helper()

	r := repo.New(initTestDB(t))
	pub := &recorderPublisher{}
	return &OrderService{Repo: r, Events: pub}, r, pub
}
