// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"time"

	"github.com/ledgerbook/backend/internal/application/adapter"
)

// systemClock implements the adapter.Clock interface using the wall clock.
type systemClock struct{}

// NewSystemClock creates a Clock backed by time.Now in UTC.
func NewSystemClock() adapter.Clock {
	return systemClock{}
}

// Now returns the current UTC time.
func (systemClock) Now() time.Time {
	return time.Now().UTC()
}
