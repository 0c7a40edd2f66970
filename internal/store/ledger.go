package store

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/smartcafe/kiosk-client/internal/entity"
	"github.com/smartcafe/kiosk-client/internal/logging"
)

// maxStoredOrders caps the ledger; inserts truncate the oldest entries
// past this bound.
const maxStoredOrders = 20

// OrderLedger is the durable, kiosk-local record of placed orders,
// most-recent-first. It reads and writes through the medium on every
// operation and treats any medium failure as "no data": a corrupt or
// unavailable ledger reads as empty and a failed write is logged and
// dropped, never propagated.
type OrderLedger struct {
	mu     sync.Mutex
	medium Medium
	log    *slog.Logger
}

func NewOrderLedger(medium Medium) *OrderLedger {
	return &OrderLedger{medium: medium, log: logging.New("ledger")}
}

// StoredOrders returns all ledger entries, most recently added first.
func (l *OrderLedger) StoredOrders() []entity.StoredOrder {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.read()
}

// AddOrder inserts at the front and truncates to the cap. There is no
// de-duplication by order id: recording the same id twice keeps two entries.
func (l *OrderLedger) AddOrder(order entity.StoredOrder) {
	l.mu.Lock()
	defer l.mu.Unlock()

	orders := append([]entity.StoredOrder{order}, l.read()...)
	if len(orders) > maxStoredOrders {
		orders = orders[:maxStoredOrders]
	}
	l.write(orders)
}

// UpdateStatus overwrites the status of the first entry with the given id,
// touching no other field. Returns false, leaving the ledger unchanged,
// when the id is unknown.
func (l *OrderLedger) UpdateStatus(orderID string, status entity.OrderStatus) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	orders := l.read()
	for i := range orders {
		if orders[i].OrderID == orderID {
			orders[i].Status = status
			l.write(orders)
			return true
		}
	}
	return false
}

// ClearAll erases the ledger. Support and testing reset flows only.
func (l *OrderLedger) ClearAll() {
	l.mu.Lock()
	defer l.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()
	if err := l.medium.Delete(ctx, OrdersKey); err != nil {
		l.log.Warn("ledger clear failed", "error", err)
	}
}

func (l *OrderLedger) read() []entity.StoredOrder {
	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()

	raw, ok, err := l.medium.Read(ctx, OrdersKey)
	if err != nil {
		l.log.Warn("ledger read failed, treating as empty", "error", err)
		return nil
	}
	if !ok {
		return nil
	}
	var orders []entity.StoredOrder
	if err := json.Unmarshal(raw, &orders); err != nil {
		l.log.Warn("ledger record corrupt, treating as empty", "error", err)
		return nil
	}
	return orders
}

func (l *OrderLedger) write(orders []entity.StoredOrder) {
	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()

	raw, err := json.Marshal(orders)
	if err != nil {
		l.log.Error("ledger marshal failed, skipping persist", "error", err)
		return
	}
	if err := l.medium.Write(ctx, OrdersKey, raw); err != nil {
		l.log.Warn("ledger persist failed", "error", err)
	}
}
