// Package payments looks up the state of payments held by external
// payment providers.
package payments

import (
	"context"
	"errors"
	"time"
)

var ErrInvalidReference = errors.New("invalid provider reference")

// Snapshot is the provider's view of one payment, with Status already
// mapped onto the local payment statuses.
type Snapshot struct {
	Status   string
	Amount   float64
	Currency string
	PaidAt   *time.Time
}

type Provider interface {
	Name() string
	Lookup(ctx context.Context, reference string) (Snapshot, error)
}

// Registry indexes providers by the name stored on payments.
type Registry map[string]Provider

func NewRegistry(providers ...Provider) Registry {
	r := Registry{}
	for _, p := range providers {
		r[p.Name()] = p
	}
	return r
}
