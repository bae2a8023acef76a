// Package catalog manages the services offered by the shop. Reads go
// through a read-through cache that every write invalidates.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/BruksfildServices01/barbershop-api/internal/apperr"
	"github.com/BruksfildServices01/barbershop-api/internal/audit"
	"github.com/BruksfildServices01/barbershop-api/internal/cache"
	"github.com/BruksfildServices01/barbershop-api/internal/domain"
	"github.com/BruksfildServices01/barbershop-api/internal/models"
	"github.com/BruksfildServices01/barbershop-api/internal/query"
	"github.com/BruksfildServices01/barbershop-api/internal/usecase"
)

const cachePrefix = "services:"

// ======================================================
// INPUT
// ======================================================

type ServiceInput struct {
	Name            *string  `json:"name"`
	DurationMinutes *int     `json:"duration_minutes"`
	Price           *float64 `json:"price"`
	Description     *string  `json:"description"`
	Active          *bool    `json:"active"`
}

// ======================================================
// USE CASE
// ======================================================

type Catalog struct {
	store domain.Store[models.Service]
	cache cache.Client
	ttl   time.Duration
	audit *audit.Dispatcher
}

func New(store domain.Store[models.Service], c cache.Client, ttl time.Duration, d *audit.Dispatcher) *Catalog {
	if c == nil {
		c = cache.Noop{}
	}
	return &Catalog{store: store, cache: c, ttl: ttl, audit: d}
}

type cachedPage struct {
	Items []models.Service `json:"items"`
	Total int64            `json:"total"`
}

func (uc *Catalog) List(ctx context.Context, q query.Query, page query.Page) ([]models.Service, int64, error) {
	key := listKey(q, page)

	var hit cachedPage
	if uc.lookup(ctx, key, &hit) {
		return hit.Items, hit.Total, nil
	}

	items, total, err := uc.store.List(ctx, q, page)
	if err != nil {
		return nil, 0, err
	}

	uc.remember(ctx, key, cachedPage{Items: items, Total: total})
	return items, total, nil
}

func (uc *Catalog) Get(ctx context.Context, id uint) (*models.Service, error) {
	key := fmt.Sprintf("%sitem:%d", cachePrefix, id)

	var hit models.Service
	if uc.lookup(ctx, key, &hit) {
		return &hit, nil
	}

	svc, err := uc.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	uc.remember(ctx, key, svc)
	return svc, nil
}

func (uc *Catalog) Create(ctx context.Context, in ServiceInput) (*models.Service, error) {
	svc := &models.Service{Active: true}
	if err := apply(svc, in, usecase.ModeCreate); err != nil {
		return nil, err
	}

	if err := uc.store.Create(ctx, svc); err != nil {
		return nil, err
	}

	uc.invalidate(ctx)
	usecase.Record(ctx, uc.audit, "service_created", "service", svc.ID, nil)
	return svc, nil
}

func (uc *Catalog) Update(ctx context.Context, id uint, in ServiceInput, mode usecase.Mode) (*models.Service, error) {
	svc, err := uc.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := apply(svc, in, mode); err != nil {
		return nil, err
	}

	if err := uc.store.Save(ctx, svc); err != nil {
		return nil, err
	}

	uc.invalidate(ctx)
	usecase.Record(ctx, uc.audit, "service_updated", "service", svc.ID, nil)
	return svc, nil
}

// Deactivate clears the active flag; the row is kept.
func (uc *Catalog) Deactivate(ctx context.Context, id uint) error {
	svc, err := uc.store.Get(ctx, id)
	if err != nil {
		return err
	}

	svc.Active = false
	if err := uc.store.Save(ctx, svc); err != nil {
		return err
	}

	uc.invalidate(ctx)
	usecase.Record(ctx, uc.audit, "service_deactivated", "service", svc.ID, nil)
	return nil
}

func apply(svc *models.Service, in ServiceInput, mode usecase.Mode) error {
	verr := apperr.NewValidation()

	usecase.Require(verr, mode, "name", in.Name != nil)
	usecase.Require(verr, mode, "duration_minutes", in.DurationMinutes != nil)
	usecase.Require(verr, mode, "price", in.Price != nil)

	if in.Name != nil {
		usecase.NotBlank(verr, "name", *in.Name)
		usecase.MaxLength(verr, "name", *in.Name, 100)
		svc.Name = *in.Name
	}
	if in.DurationMinutes != nil {
		usecase.NonNegative(verr, "duration_minutes", *in.DurationMinutes)
		svc.DurationMinutes = *in.DurationMinutes
	}
	if in.Price != nil {
		usecase.NonNegative(verr, "price", *in.Price)
		usecase.Money(verr, "price", *in.Price)
		svc.Price = *in.Price
	}
	if in.Description != nil {
		svc.Description = *in.Description
	}
	if in.Active != nil {
		svc.Active = *in.Active
	}

	return verr.Err()
}

// --------------------------------------------------
// cache helpers
// --------------------------------------------------

func listKey(q query.Query, page query.Page) string {
	return fmt.Sprintf("%slist:%v|%q|%v|%d|%d",
		cachePrefix, q.Conditions, q.Terms, q.Order, page.Number, page.Size)
}

func (uc *Catalog) lookup(ctx context.Context, key string, dst any) bool {
	raw, err := uc.cache.Get(ctx, key)
	if err != nil {
		if err != cache.ErrCacheMiss {
			slog.Warn("cache read failed", "key", key, "error", err)
		}
		return false
	}
	return json.Unmarshal([]byte(raw), dst) == nil
}

func (uc *Catalog) remember(ctx context.Context, key string, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := uc.cache.Set(ctx, key, b, uc.ttl); err != nil {
		slog.Warn("cache write failed", "key", key, "error", err)
	}
}

func (uc *Catalog) invalidate(ctx context.Context) {
	if err := uc.cache.DeletePrefix(ctx, cachePrefix); err != nil {
		slog.Warn("cache invalidation failed", "error", err)
	}
}
