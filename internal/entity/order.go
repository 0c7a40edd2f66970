package entity

import (
	"errors"
	"time"
)

// OrderStatus is the status domain for orders held in the local ledger.
// The backend tracks a wider domain (pending/confirmed before preparing);
// locally recorded orders start at preparing and never pass through the
// earlier states.
type OrderStatus string

const (
	StatusPreparing OrderStatus = "preparing"
	StatusReady     OrderStatus = "ready"
	StatusCompleted OrderStatus = "completed"
	StatusCancelled OrderStatus = "cancelled"
)

var ErrInvalidStatus = errors.New("invalid order status")

func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPreparing, StatusReady, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// CartLine is one pending order line in the cart. Name, price and image are
// snapshotted at add-time and never re-fetched from the menu.
type CartLine struct {
	MenuID    int     `json:"menuid"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"price"`
	ImageRef  string  `json:"img,omitempty"`
	Quantity  int     `json:"quantity"`
	Note      string  `json:"note,omitempty"`
}

// OrderItem is a frozen line inside a StoredOrder, decoupled from any later
// menu or cart change.
type OrderItem struct {
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"price"`
	Note      string  `json:"note,omitempty"`
}

// StoredOrder is one ledger entry. Totals are snapshotted at creation and
// never recomputed from Items afterwards; Status is the only field mutated
// after creation.
type StoredOrder struct {
	OrderID     string      `json:"orderId"`
	Items       []OrderItem `json:"items"`
	TotalAmount float64     `json:"totalAmount"`
	TotalItems  int         `json:"totalItems"`
	Status      OrderStatus `json:"status"`
	CreatedAt   time.Time   `json:"createdAt"`
}
