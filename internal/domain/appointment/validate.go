package appointment

import (
	"fmt"

	"github.com/BruksfildServices01/barbershop-api/internal/apperr"
)

// Proposal is the resolved state of an appointment write. Client and barber
// fall back to the stored appointment when an update omits them; a nil
// DurationMinutes means the request did not carry one.
type Proposal struct {
	ClientID        uint
	BarberID        uint
	DurationMinutes *int
	Status          Status
	Barber          Eligibility
}

// Validate applies the booking rules and reports every failure at once.
func Validate(p Proposal) error {
	verr := apperr.NewValidation()

	if p.ClientID != 0 && p.BarberID != 0 && p.ClientID == p.BarberID {
		verr.Add("non_field_errors", "client and barber must be different users.")
	}

	if p.DurationMinutes != nil && *p.DurationMinutes <= 0 {
		verr.Add("duration_minutes", "duration_minutes must be positive.")
	}

	if !p.Barber.Permits() {
		verr.Add("barber", "Selected user is not a barber.")
	}

	if !p.Status.Valid() {
		verr.Add("status", fmt.Sprintf("%q is not a valid choice.", p.Status))
	}

	return verr.Err()
}
