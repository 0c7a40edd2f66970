package usecase

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartcafe/kiosk-client/internal/adapter/storage"
	"github.com/smartcafe/kiosk-client/internal/entity"
	"github.com/smartcafe/kiosk-client/internal/store"
)

var localIDPattern = regexp.MustCompile(`^SC\d{8}[A-Z]$`)

func newTestStores() (*store.CartStore, *store.OrderLedger) {
	medium := storage.NewMemoryStore()
	return store.NewCartStore(medium), store.NewOrderLedger(medium)
}

func fillCart(cart *store.CartStore) {
	cart.AddItem(entity.CartLine{MenuID: 1, Name: "Latte", UnitPrice: 60, Quantity: 1})
	cart.AddItem(entity.CartLine{MenuID: 1, Quantity: 2})
	cart.AddItem(entity.CartLine{MenuID: 4, Name: "Croissant", UnitPrice: 45, Quantity: 1, Note: "warmed"})
}

func TestPlaceOrder_ServerAssignedID(t *testing.T) {
	cart, ledger := newTestStores()
	fillCart(cart)
	gw := &mockGateway{createID: "ORD-1077"}

	out := NewPlaceOrder(cart, ledger, gw).Execute(context.Background())

	assert.Equal(t, "ORD-1077", out.OrderID)
	assert.False(t, out.Local)

	orders := ledger.StoredOrders()
	require.Len(t, orders, 1)
	assert.Equal(t, "ORD-1077", orders[0].OrderID)
	assert.Equal(t, entity.StatusPreparing, orders[0].Status)
	assert.Equal(t, 4, orders[0].TotalItems)
	assert.Equal(t, 225.0, orders[0].TotalAmount)
	require.Len(t, orders[0].Items, 2)
	assert.Equal(t, "Latte", orders[0].Items[0].Name)
	assert.Equal(t, 3, orders[0].Items[0].Quantity)

	assert.Empty(t, cart.Items())
}

func TestPlaceOrder_GatewayFailureSynthesizesLocalID(t *testing.T) {
	cart, ledger := newTestStores()
	fillCart(cart)
	gw := &mockGateway{createErr: errors.New("connection refused")}

	out := NewPlaceOrder(cart, ledger, gw).Execute(context.Background())

	assert.True(t, out.Local)
	assert.Regexp(t, localIDPattern, out.OrderID)

	orders := ledger.StoredOrders()
	require.Len(t, orders, 1)
	assert.Equal(t, out.OrderID, orders[0].OrderID)
	assert.Equal(t, entity.StatusPreparing, orders[0].Status)
	assert.Empty(t, cart.Items())
}

func TestPlaceOrder_EmptyOrderIDFallsBackToLocal(t *testing.T) {
	cart, ledger := newTestStores()
	fillCart(cart)
	gw := &mockGateway{createID: ""}

	out := NewPlaceOrder(cart, ledger, gw).Execute(context.Background())

	assert.True(t, out.Local)
	assert.Regexp(t, localIDPattern, out.OrderID)
	assert.Len(t, ledger.StoredOrders(), 1)
}

func TestPlaceOrder_RequestBodyMatchesCartSnapshot(t *testing.T) {
	cart, ledger := newTestStores()
	fillCart(cart)
	gw := &mockGateway{createID: "ORD-1"}

	NewPlaceOrder(cart, ledger, gw).Execute(context.Background())

	require.NotNil(t, gw.lastCreate)
	assert.Equal(t, []CreateOrderItem{{MenuID: 1, Quantity: 3}, {MenuID: 4, Quantity: 1}}, gw.lastCreate.Items)
	assert.Equal(t, 225.0, gw.lastCreate.TotalPrice)
	assert.NotEmpty(t, gw.lastCreate.IdempotencyKey)
}

func TestPlaceOrder_SnapshotTakenBeforeGatewayCall(t *testing.T) {
	cart, ledger := newTestStores()
	fillCart(cart)
	gw := &mockGateway{createID: "ORD-1"}
	// A user keeps tapping while the request is in flight.
	gw.onCreate = func() {
		cart.AddItem(entity.CartLine{MenuID: 9, Name: "Muffin", UnitPrice: 35, Quantity: 2})
	}

	NewPlaceOrder(cart, ledger, gw).Execute(context.Background())

	orders := ledger.StoredOrders()
	require.Len(t, orders, 1)
	assert.Equal(t, 4, orders[0].TotalItems)
	assert.Equal(t, 225.0, orders[0].TotalAmount)
	assert.Len(t, orders[0].Items, 2)
}

func TestPlaceOrder_InjectedSynthesizerIsUsed(t *testing.T) {
	cart, ledger := newTestStores()
	fillCart(cart)
	gw := &mockGateway{createErr: errors.New("down")}

	uc := NewPlaceOrder(cart, ledger, gw)
	uc.synth = &OrderIDSynthesizer{
		Now:        func() time.Time { return time.UnixMilli(1700000000123) },
		RandLetter: func() byte { return 'Z' },
	}

	out := uc.Execute(context.Background())
	assert.Equal(t, "SC00000123Z", out.OrderID)
}
