package usecase

import (
	"context"
	"errors"

	"github.com/smartcafe/kiosk-client/internal/entity"
)

var (
	ErrOrderNotFound = errors.New("order not found")
	ErrMenuNotFound  = errors.New("menu item not found")
)

// Cart is the slice of the cart store the order flows consult.
type Cart interface {
	Items() []entity.CartLine
	TotalItems() int
	TotalPrice() float64
	Clear()
}

// Ledger is the local order ledger.
type Ledger interface {
	StoredOrders() []entity.StoredOrder
	AddOrder(order entity.StoredOrder)
	UpdateStatus(orderID string, status entity.OrderStatus) bool
}

// Wire shape of a create-order line; the backend wants menu id and qty only.
type CreateOrderItem struct {
	MenuID   int `json:"menuid"`
	Quantity int `json:"qty"`
}

type CreateOrderRequest struct {
	Items          []CreateOrderItem
	TotalPrice     float64
	IdempotencyKey string
}

// OrderGateway is the remote SmartCafe order API. Every method is a single
// best-effort attempt; callers treat any error as recoverable.
type OrderGateway interface {
	CreateOrder(ctx context.Context, req CreateOrderRequest) (orderID string, err error)
	Order(ctx context.Context, orderID string) (*entity.StoredOrder, error)
	UpdateOrderStatus(ctx context.Context, orderID string, status entity.OrderStatus) error
	Menus(ctx context.Context) ([]entity.MenuItem, error)
	MenuByID(ctx context.Context, menuID int) (*entity.MenuItem, error)
}
