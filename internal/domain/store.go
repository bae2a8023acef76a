package domain

import (
	"context"

	"github.com/BruksfildServices01/barbershop-api/internal/models"
	"github.com/BruksfildServices01/barbershop-api/internal/query"
)

// Store is the persistence contract shared by every entity type.
// Reads resolve the relations the resource declares.
type Store[T any] interface {
	Get(ctx context.Context, id uint) (*T, error)
	List(ctx context.Context, q query.Query, page query.Page) ([]T, int64, error)
	Create(ctx context.Context, entity *T) error
	Save(ctx context.Context, entity *T) error
	Delete(ctx context.Context, id uint) error
}

// Directory answers existence and role questions about accounts.
type Directory interface {
	AccountExists(ctx context.Context, id uint) (bool, error)
	AppointmentExists(ctx context.Context, id uint) (bool, error)
	// ProfileFor returns nil without error when the account has no profile.
	ProfileFor(ctx context.Context, accountID uint) (*models.Profile, error)
}
