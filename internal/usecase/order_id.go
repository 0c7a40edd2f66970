package usecase

import (
	"fmt"
	"math/rand"
	"time"
)

// localOrderIDPrefix marks orders that never reached the backend, so counter
// staff can tell a locally recorded order from a server-assigned one.
const localOrderIDPrefix = "SC"

// OrderIDSynthesizer builds fallback order ids: prefix, then the last eight
// digits of the epoch-millisecond clock, then one random uppercase letter to
// dodge same-millisecond collisions. Clock and randomness are injectable so
// tests can pin the output.
type OrderIDSynthesizer struct {
	Now        func() time.Time
	RandLetter func() byte
}

func NewOrderIDSynthesizer() *OrderIDSynthesizer {
	return &OrderIDSynthesizer{
		Now:        time.Now,
		RandLetter: func() byte { return byte('A' + rand.Intn(26)) },
	}
}

func (s *OrderIDSynthesizer) Synthesize() string {
	ms := s.Now().UnixMilli()
	return fmt.Sprintf("%s%08d%c", localOrderIDPrefix, ms%100_000_000, s.RandLetter())
}
