package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbershop-api/internal/httperr"
	"github.com/BruksfildServices01/barbershop-api/internal/httpresp"
	"github.com/BruksfildServices01/barbershop-api/internal/models"
	"github.com/BruksfildServices01/barbershop-api/internal/query"
	"github.com/BruksfildServices01/barbershop-api/internal/usecase/payment"
)

type PaymentHandler struct {
	*ResourceHandler[models.Payment, payment.PaymentInput]
	uc *payment.Payments
}

func NewPaymentHandler(uc *payment.Payments, opts QueryOptions) *PaymentHandler {
	return &PaymentHandler{
		ResourceHandler: NewResourceHandler[models.Payment, payment.PaymentInput](uc, uc.Delete, query.Payments, opts),
		uc:              uc,
	}
}

// Sync refreshes a payment from its provider.
func (h *PaymentHandler) Sync(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	p, err := h.uc.Sync(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, p)
}
