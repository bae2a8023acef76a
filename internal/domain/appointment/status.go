package appointment

import (
	"fmt"

	"github.com/BruksfildServices01/barbershop-api/internal/apperr"
)

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
	StatusNoShow    Status = "no_show"
)

var Statuses = []Status{StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled, StatusNoShow}

func InitialStatus() Status {
	return StatusPending
}

func (s Status) Valid() bool {
	for _, x := range Statuses {
		if s == x {
			return true
		}
	}
	return false
}

// Blocks reports whether an appointment in this status occupies the barber.
func (s Status) Blocks() bool {
	return s != StatusCancelled && s != StatusNoShow
}

// ===============================
// Transitions
// ===============================

func CanConfirm(current Status) error {
	if current != StatusPending {
		return invalidTransition(current, StatusConfirmed)
	}
	return nil
}

func CanCancel(current Status) error {
	if current != StatusPending && current != StatusConfirmed {
		return invalidTransition(current, StatusCancelled)
	}
	return nil
}

func CanComplete(current Status) error {
	if current != StatusPending && current != StatusConfirmed {
		return invalidTransition(current, StatusCompleted)
	}
	return nil
}

func invalidTransition(from, to Status) error {
	return apperr.Invalid("status", fmt.Sprintf("cannot move from %s to %s.", from, to))
}
