package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopapi/internal/repo"
)

func TestRecommend_NoOrders(t *testing.T) {
	t.Parallel()

	svc := &RecommendService{Repo: repo.New(initTestDB(t))}

	_, err := svc.Recommend(context.Background(), userPrincipal())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoOrders)
}

func TestRecommend_MostRecentOrder(t *testing.T) {
	t.Parallel()

	r := repo.New(initTestDB(t))
	svc := &RecommendService{Repo: r}
	p := userPrincipal()

	older := seedProduct(t, r, "Mug", "Kitchen", 10, 5)
	newer := seedProduct(t, r, "Rake", "Garden", 20, 3)

	base := time.Now().Add(-time.Hour)
	seedOrder(t, r, p.ID, base, older.ID)
	seedOrder(t, r, p.ID, base.Add(30*time.Minute), newer.ID)

	products, err := svc.Recommend(context.Background(), p)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, newer.ID, products[0].ID, "recency means created_at, not insertion position")
}

func TestRecommend_OnlyOwnOrders(t *testing.T) {
	t.Parallel()

	r := repo.New(initTestDB(t))
	svc := &RecommendService{Repo: r}

	other := userPrincipal()
	product := seedProduct(t, r, "Mug", "Kitchen", 10, 5)
	seedOrder(t, r, other.ID, time.Now(), product.ID)

	_, err := svc.Recommend(context.Background(), userPrincipal())
	assert.ErrorIs(t, err, ErrNoOrders)
}
