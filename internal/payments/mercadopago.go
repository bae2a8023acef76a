package payments

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"

	"github.com/BruksfildServices01/barbershop-api/internal/models"
)

const MercadoPagoName = "mercadopago"

type MercadoPago struct {
	client payment.Client
	now    func() time.Time
}

func NewMercadoPago(accessToken string) (*MercadoPago, error) {
	cfg, err := config.New(accessToken)
	if err != nil {
		return nil, err
	}
	return &MercadoPago{client: payment.NewClient(cfg), now: time.Now}, nil
}

func (m *MercadoPago) Name() string { return MercadoPagoName }

func (m *MercadoPago) Lookup(ctx context.Context, reference string) (Snapshot, error) {
	id, err := strconv.Atoi(strings.TrimSpace(reference))
	if err != nil || id <= 0 {
		return Snapshot{}, ErrInvalidReference
	}

	res, err := m.client.Get(ctx, id)
	if err != nil {
		return Snapshot{}, err
	}

	snap := Snapshot{
		Status:   MercadoPagoStatus(res.Status),
		Amount:   res.TransactionAmount,
		Currency: res.CurrencyID,
	}
	if snap.Status == models.PaymentPaid {
		now := m.now()
		snap.PaidAt = &now
	}
	return snap, nil
}

// MercadoPagoStatus maps a Mercado Pago payment status onto the local set.
func MercadoPagoStatus(s string) string {
	switch s {
	case "approved", "authorized":
		return models.PaymentPaid
	case "rejected", "cancelled":
		return models.PaymentFailed
	case "refunded", "charged_back":
		return models.PaymentRefunded
	default:
		return models.PaymentPending
	}
}

var _ Provider = (*MercadoPago)(nil)
