package payments

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/BruksfildServices01/barbershop-api/internal/models"
)

func TestMercadoPagoStatus(t *testing.T) {
	cases := map[string]string{
		"approved":     models.PaymentPaid,
		"authorized":   models.PaymentPaid,
		"in_process":   models.PaymentPending,
		"pending":      models.PaymentPending,
		"rejected":     models.PaymentFailed,
		"cancelled":    models.PaymentFailed,
		"refunded":     models.PaymentRefunded,
		"charged_back": models.PaymentRefunded,
	}
	for in, want := range cases {
		assert.Equal(t, want, MercadoPagoStatus(in), in)
	}
}

func TestMercadoPago_RejectsNonNumericReference(t *testing.T) {
	m := &MercadoPago{}
	_, err := m.Lookup(context.Background(), "pref-abc")
	assert.ErrorIs(t, err, ErrInvalidReference)
}

type fixedProvider struct{ name string }

func (f fixedProvider) Name() string { return f.name }
func (f fixedProvider) Lookup(context.Context, string) (Snapshot, error) {
	return Snapshot{Status: models.PaymentPaid}, nil
}

func TestRegistry(t *testing.T) {
	r := NewRegistry(fixedProvider{name: "stripe"}, fixedProvider{name: MercadoPagoName})
	assert.Len(t, r, 2)
	assert.NotNil(t, r[MercadoPagoName])
}
