package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopapi/internal/authz"
	"shopapi/internal/events"
	"shopapi/internal/repo"
	"shopapi/internal/transport"
)

func TestCreateOrder_OwnerForcedToPrincipal(t *testing.T) {
	t.Parallel()

	svc, r, pub := newOrderSvc(t)
	product := seedProduct(t, r, "Mug", "Kitchen", 10, 5)
	p := userPrincipal()

	order, products, err := svc.CreateOrder(context.Background(), p, transport.CreateOrderRequest{
		Description: strptr("gift"),
		ProductIDs:  []uuid.UUID{product.ID},
	})
	require.NoError(t, err)

	assert.Equal(t, p.ID, order.UserID, "owner is always the requesting principal")
	require.Len(t, products, 1)
	assert.Equal(t, product.ID, products[0].ID)
	assert.Contains(t, pub.topics(), events.TopicOrderEvents)
}

func TestCreateOrder_UnknownProductFailsAtomically(t *testing.T) {
	t.Parallel()

	svc, r, _ := newOrderSvc(t)
	product := seedProduct(t, r, "Mug", "Kitchen", 10, 5)
	p := userPrincipal()

	_, _, err := svc.CreateOrder(context.Background(), p, transport.CreateOrderRequest{
		ProductIDs: []uuid.UUID{product.ID, uuid.New()},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidReference)

	total, _, err := svc.ListOrders(context.Background(), p, 10, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 0, total, "no partially-specified order may exist")
}

func TestCreateOrder_EmptyProductSetAllowed(t *testing.T) {
	t.Parallel()

	svc, _, _ := newOrderSvc(t)
	p := userPrincipal()

	order, products, err := svc.CreateOrder(context.Background(), p, transport.CreateOrderRequest{})
	require.NoError(t, err)
	assert.Empty(t, products)

	_, got, err := svc.GetOrder(context.Background(), p, order.ID)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestCreateOrder_InactivePrincipalForbidden(t *testing.T) {
	t.Parallel()

	svc, _, _ := newOrderSvc(t)
	p := authz.Principal{ID: uuid.New(), IsActive: false}

	_, _, err := svc.CreateOrder(context.Background(), p, transport.CreateOrderRequest{})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestGetOrder_Authorization(t *testing.T) {
	t.Parallel()

	svc, r, _ := newOrderSvc(t)
	owner := userPrincipal()
	order := seedOrder(t, r, owner.ID, time.Now())

	_, _, err := svc.GetOrder(context.Background(), owner, order.ID)
	require.NoError(t, err)

	_, _, err = svc.GetOrder(context.Background(), userPrincipal(), order.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	_, _, err = svc.GetOrder(context.Background(), superPrincipal(), order.ID)
	assert.NoError(t, err, "superusers are never blocked by ownership")

	_, _, err = svc.GetOrder(context.Background(), owner, uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListOrders_ScopedToPrincipal(t *testing.T) {
	t.Parallel()

	svc, r, _ := newOrderSvc(t)
	alice := userPrincipal()
	bob := userPrincipal()
	seedOrder(t, r, alice.ID, time.Now())
	seedOrder(t, r, alice.ID, time.Now())
	seedOrder(t, r, bob.ID, time.Now())

	total, orders, err := svc.ListOrders(context.Background(), alice, 10, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	for _, o := range orders {
		assert.Equal(t, alice.ID, o.UserID)
	}

	// The asymmetry with the product catalog is deliberate: even a
	// superuser only sees their own orders through this listing.
	suTotal, _, err := svc.ListOrders(context.Background(), superPrincipal(), 10, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 0, suTotal)
}

func TestDeleteOrder_OwnershipRules(t *testing.T) {
	t.Parallel()

	svc, r, _ := newOrderSvc(t)
	owner := userPrincipal()
	product := seedProduct(t, r, "Mug", "Kitchen", 10, 5)
	order := seedOrder(t, r, owner.ID, time.Now(), product.ID)

	err := svc.DeleteOrder(context.Background(), userPrincipal(), order.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	require.NoError(t, svc.DeleteOrder(context.Background(), owner, order.ID))

	_, _, err = svc.GetOrder(context.Background(), owner, order.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	err = svc.DeleteOrder(context.Background(), owner, order.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestOrderFlow_EndToEnd(t *testing.T) {
	t.Parallel()

	r := repo.New(initTestDB(t))
	catalog := &CatalogService{Repo: r}
	orders := &OrderService{Repo: r}

	su := superPrincipal()
	mug, err := catalog.CreateProduct(context.Background(), su, transport.CreateProductRequest{
		Name: "Mug", Category: "Kitchen", Price: 10, Rating: 5,
	})
	require.NoError(t, err)

	u := userPrincipal()
	order, _, err := orders.CreateOrder(context.Background(), u, transport.CreateOrderRequest{
		ProductIDs: []uuid.UUID{mug.ID},
	})
	require.NoError(t, err)

	_, products, err := orders.GetOrder(context.Background(), u, order.ID)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Mug", products[0].Name)

	err = orders.DeleteOrder(context.Background(), userPrincipal(), order.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	require.NoError(t, orders.DeleteOrder(context.Background(), u, order.ID))

	_, _, err = orders.GetOrder(context.Background(), u, order.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
