package store

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/smartcafe/kiosk-client/internal/entity"
	"github.com/smartcafe/kiosk-client/internal/logging"
)

const persistTimeout = time.Second

// Persisted cart record shape.
type cartRecord struct {
	Items []entity.CartLine `json:"items"`
}

// CartStore holds the session's pending order lines, in insertion order,
// and writes the full list through the medium on every mutation. A medium
// failure never surfaces to callers: reads fall back to an empty cart and
// failed writes are logged and skipped.
type CartStore struct {
	mu     sync.Mutex
	lines  []entity.CartLine
	medium Medium
	log    *slog.Logger
}

func NewCartStore(medium Medium) *CartStore {
	s := &CartStore{medium: medium, log: logging.New("cart")}
	s.hydrate()
	return s
}

func (s *CartStore) hydrate() {
	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()

	raw, ok, err := s.medium.Read(ctx, CartKey)
	if err != nil {
		s.log.Warn("cart read failed, starting empty", "error", err)
		return
	}
	if !ok {
		return
	}
	var rec cartRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		s.log.Warn("cart record corrupt, starting empty", "error", err)
		return
	}
	s.lines = rec.Items
}

// AddItem merges by menu id: an existing line only gains quantity, keeping
// the name/price/image/note snapshotted when it was first added. Unknown
// menu ids append a new line at the end. Quantity is assumed positive;
// callers validate before calling.
func (s *CartStore) AddItem(line entity.CartLine) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].MenuID == line.MenuID {
			s.lines[i].Quantity += line.Quantity
			s.persist()
			return
		}
	}
	s.lines = append(s.lines, line)
	s.persist()
}

// UpdateQuantity sets the line's quantity; quantity <= 0 removes the line.
// No-op when the menu id is not in the cart.
func (s *CartStore) UpdateQuantity(menuID, quantity int) {
	if quantity <= 0 {
		s.RemoveItem(menuID)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.lines {
		if s.lines[i].MenuID == menuID {
			s.lines[i].Quantity = quantity
			s.persist()
			return
		}
	}
}

// RemoveItem deletes the line with the given menu id; no-op when absent.
func (s *CartStore) RemoveItem(menuID int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].MenuID == menuID {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			s.persist()
			return
		}
	}
}

// Clear empties the cart. The order flow calls this only after the ledger
// entry is recorded, so a failed placement attempt never loses the cart.
func (s *CartStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = nil
	s.persist()
}

// Items returns a copy of the lines in insertion order.
func (s *CartStore) Items() []entity.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.CartLine, len(s.lines))
	copy(out, s.lines)
	return out
}

// TotalItems is the sum of all line quantities, recomputed on every call.
func (s *CartStore) TotalItems() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, l := range s.lines {
		n += l.Quantity
	}
	return n
}

// TotalPrice is the sum of unit price times quantity over all lines,
// recomputed on every call so it can never drift from the lines.
func (s *CartStore) TotalPrice() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	var sum float64
	for _, l := range s.lines {
		sum += l.UnitPrice * float64(l.Quantity)
	}
	return sum
}

// persist writes the full line list. Callers hold the mutex.
func (s *CartStore) persist() {
	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()

	raw, err := json.Marshal(cartRecord{Items: s.lines})
	if err != nil {
		s.log.Error("cart marshal failed, skipping persist", "error", err)
		return
	}
	if err := s.medium.Write(ctx, CartKey, raw); err != nil {
		s.log.Warn("cart persist failed", "error", err)
	}
}
