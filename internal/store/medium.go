package store

import "context"

// Keys into the shared key-value medium. The cart and the ledger never
// share a key.
const (
	CartKey   = "smartcafe_cart"
	OrdersKey = "smartcafe_orders"
)

// Medium is the durable kiosk-local key-value medium both stores persist
// into. Concurrent writers race with last-write-wins semantics; the
// concurrency unit is one customer on one device.
type Medium interface {
	// Read returns ok=false when the key has never been written.
	Read(ctx context.Context, key string) (value []byte, ok bool, err error)
	Write(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
