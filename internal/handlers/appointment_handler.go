package handlers

import (
	"context"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbershop-api/internal/apperr"
	"github.com/BruksfildServices01/barbershop-api/internal/httperr"
	"github.com/BruksfildServices01/barbershop-api/internal/httpresp"
	"github.com/BruksfildServices01/barbershop-api/internal/models"
	"github.com/BruksfildServices01/barbershop-api/internal/query"
	ucAppointment "github.com/BruksfildServices01/barbershop-api/internal/usecase/appointment"
)

type AppointmentHandler struct {
	*ResourceHandler[models.Appointment, ucAppointment.AppointmentInput]
	uc *ucAppointment.Appointments
}

func NewAppointmentHandler(uc *ucAppointment.Appointments, opts QueryOptions) *AppointmentHandler {
	return &AppointmentHandler{
		ResourceHandler: NewResourceHandler[models.Appointment, ucAppointment.AppointmentInput](uc, uc.Deactivate, query.Appointments, opts),
		uc:              uc,
	}
}

func (h *AppointmentHandler) Confirm(c *gin.Context) {
	h.transition(c, h.uc.Confirm)
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	h.transition(c, h.uc.Cancel)
}

func (h *AppointmentHandler) Complete(c *gin.Context) {
	h.transition(c, h.uc.Complete)
}

func (h *AppointmentHandler) transition(
	c *gin.Context,
	move func(ctx context.Context, id uint) (*models.Appointment, error),
) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	ap, err := move(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, ap)
}

// Availability serves GET /barbers/:id/availability?date=YYYY-MM-DD&duration=30.
func (h *AppointmentHandler) Availability(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	duration := ucAppointment.DefaultDurationMinutes
	if raw := c.Query("duration"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			httperr.Respond(c, apperr.Invalid("duration", "Enter a whole number."))
			return
		}
		duration = n
	}

	out, err := h.uc.Availability(c.Request.Context(), id, c.Query("date"), duration)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, out)
}

// Agenda serves GET /barbers/:id/agenda?date=YYYY-MM-DD.
func (h *AppointmentHandler) Agenda(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	rows, err := h.uc.Agenda(c.Request.Context(), id, c.Query("date"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, gin.H{"data": rows, "total": len(rows)})
}
