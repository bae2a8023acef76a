package payment

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/BruksfildServices01/barbershop-api/internal/apperr"
	"github.com/BruksfildServices01/barbershop-api/internal/audit"
	"github.com/BruksfildServices01/barbershop-api/internal/domain"
	"github.com/BruksfildServices01/barbershop-api/internal/models"
	"github.com/BruksfildServices01/barbershop-api/internal/payments"
	"github.com/BruksfildServices01/barbershop-api/internal/query"
	"github.com/BruksfildServices01/barbershop-api/internal/usecase"
)

// PaymentInput leaves Amount unsigned: negative amounts are accepted.
type PaymentInput struct {
	Appointment       *uint      `json:"appointment"`
	Amount            *float64   `json:"amount"`
	Currency          *string    `json:"currency"`
	Status            *string    `json:"status"`
	PaidAt            *time.Time `json:"paid_at"`
	Provider          *string    `json:"provider"`
	ProviderReference *string    `json:"provider_reference"`
}

type Payments struct {
	store     domain.Store[models.Payment]
	dir       domain.Directory
	providers payments.Registry
	audit     *audit.Dispatcher
}

func New(
	store domain.Store[models.Payment],
	dir domain.Directory,
	providers payments.Registry,
	d *audit.Dispatcher,
) *Payments {
	return &Payments{store: store, dir: dir, providers: providers, audit: d}
}

func (uc *Payments) List(ctx context.Context, q query.Query, page query.Page) ([]models.Payment, int64, error) {
	return uc.store.List(ctx, q, page)
}

func (uc *Payments) Get(ctx context.Context, id uint) (*models.Payment, error) {
	return uc.store.Get(ctx, id)
}

func (uc *Payments) Create(ctx context.Context, in PaymentInput) (*models.Payment, error) {
	p := &models.Payment{Currency: models.DefaultCurrency, Status: models.PaymentPending}
	if err := uc.apply(ctx, p, in, usecase.ModeCreate); err != nil {
		return nil, err
	}

	if err := uc.store.Create(ctx, p); err != nil {
		return nil, err
	}

	usecase.Record(ctx, uc.audit, "payment_created", "payment", p.ID, map[string]any{
		"amount": p.Amount,
		"status": p.Status,
	})
	return p, nil
}

func (uc *Payments) Update(ctx context.Context, id uint, in PaymentInput, mode usecase.Mode) (*models.Payment, error) {
	p, err := uc.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := uc.apply(ctx, p, in, mode); err != nil {
		return nil, err
	}

	if err := uc.store.Save(ctx, p); err != nil {
		return nil, err
	}

	usecase.Record(ctx, uc.audit, "payment_updated", "payment", p.ID, map[string]string{"status": p.Status})
	return p, nil
}

func (uc *Payments) Delete(ctx context.Context, id uint) error {
	if err := uc.store.Delete(ctx, id); err != nil {
		return err
	}
	usecase.Record(ctx, uc.audit, "payment_deleted", "payment", id, nil)
	return nil
}

// Sync refreshes status and paid_at from the payment's provider.
func (uc *Payments) Sync(ctx context.Context, id uint) (*models.Payment, error) {
	p, err := uc.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	provider, ok := uc.providers[p.Provider]
	if !ok {
		return nil, apperr.Invalid("provider", "Payments from this provider cannot be synchronised.")
	}
	if strings.TrimSpace(p.ProviderReference) == "" {
		return nil, apperr.Invalid("provider_reference", "This field is required for synchronisation.")
	}

	snap, err := provider.Lookup(ctx, p.ProviderReference)
	if errors.Is(err, payments.ErrInvalidReference) {
		return nil, apperr.Invalid("provider_reference", "Unknown reference format for this provider.")
	}
	if err != nil {
		return nil, err
	}

	from := p.Status
	p.Status = snap.Status
	if snap.PaidAt != nil && p.PaidAt == nil {
		p.PaidAt = snap.PaidAt
	}

	if err := uc.store.Save(ctx, p); err != nil {
		return nil, err
	}

	meta := syncMetadata(from, p, snap)
	if len(meta) > 2 {
		slog.Warn("provider payment differs from local record",
			"payment_id", p.ID,
			"provider", p.Provider,
			"local_amount", p.Amount,
			"provider_amount", snap.Amount,
			"local_currency", p.Currency,
			"provider_currency", snap.Currency,
		)
	}
	usecase.Record(ctx, uc.audit, "payment_synced", "payment", p.ID, meta)
	return p, nil
}

// syncMetadata records the status transition and flags amount or currency
// drift between the provider and the local record. Zero or empty provider
// values mean the provider did not report them.
func syncMetadata(from string, p *models.Payment, snap payments.Snapshot) map[string]any {
	meta := map[string]any{
		"from": from,
		"to":   p.Status,
	}
	if snap.Amount != 0 && math.Abs(snap.Amount-p.Amount) >= 0.005 {
		meta["amount_mismatch"] = map[string]float64{"local": p.Amount, "provider": snap.Amount}
	}
	if snap.Currency != "" && !strings.EqualFold(snap.Currency, p.Currency) {
		meta["currency_mismatch"] = map[string]string{"local": p.Currency, "provider": snap.Currency}
	}
	return meta
}

func (uc *Payments) apply(ctx context.Context, p *models.Payment, in PaymentInput, mode usecase.Mode) error {
	verr := apperr.NewValidation()

	usecase.Require(verr, mode, "appointment", in.Appointment != nil)
	usecase.Require(verr, mode, "amount", in.Amount != nil)

	if in.Appointment != nil {
		if err := usecase.AppointmentRef(ctx, uc.dir, verr, "appointment", *in.Appointment); err != nil {
			return err
		}
		p.AppointmentID = *in.Appointment
	}
	if in.Amount != nil {
		usecase.Money(verr, "amount", *in.Amount)
		p.Amount = *in.Amount
	}
	if in.Currency != nil {
		cur := strings.ToUpper(strings.TrimSpace(*in.Currency))
		if len(cur) != 3 {
			verr.Add("currency", "Use a three-letter currency code.")
		}
		p.Currency = cur
	}
	if in.Status != nil {
		usecase.Choice(verr, "status", *in.Status, models.PaymentStatuses)
		p.Status = *in.Status
	}
	if in.PaidAt != nil {
		p.PaidAt = in.PaidAt
	}
	if in.Provider != nil {
		usecase.MaxLength(verr, "provider", *in.Provider, 50)
		p.Provider = *in.Provider
	}
	if in.ProviderReference != nil {
		usecase.MaxLength(verr, "provider_reference", *in.ProviderReference, 100)
		p.ProviderReference = *in.ProviderReference
	}

	return verr.Err()
}
