// Package payment is the simulated payment collaborator. The real gateway
// is out of scope; this stands in for it with a fixed artificial delay and
// opaque statuses. Calls always settle, are never retried, and a failure
// propagates to the caller as an error.
package payment

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Payment Status
type Status string

const (
	StatusPending   Status = "pending"
	StatusSucceeded Status = "succeeded"
)

var ErrInvalidAmount = errors.New("payment: amount must be positive")

type Result struct {
	ID          string    `json:"id"`
	Status      Status    `json:"status"`
	Amount      float64   `json:"amount"`
	ProcessedAt time.Time `json:"processed_at"`
}

type Simulator struct {
	delay time.Duration
}

func NewSimulator() *Simulator {
	return &Simulator{delay: 500 * time.Millisecond}
}

// NewSimulatorWithDelay overrides the artificial delay, mainly for tests.
func NewSimulatorWithDelay(delay time.Duration) *Simulator {
	return &Simulator{delay: delay}
}

// Charge settles after the fixed delay. There is exactly one attempt per
// call: a rejected charge is reported, never retried here.
func (s *Simulator) Charge(amount float64) (Result, error) {
	if amount <= 0 {
		return Result{}, ErrInvalidAmount
	}

	time.Sleep(s.delay)

	return Result{
		ID:          uuid.NewString(),
		Status:      StatusSucceeded,
		Amount:      amount,
		ProcessedAt: time.Now(),
	}, nil
}
