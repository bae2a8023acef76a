package appointment

import "github.com/BruksfildServices01/barbershop-api/internal/models"

// Eligibility is what the barber's optional profile says about the
// account's right to be booked as a barber.
type Eligibility int

const (
	// NoProfile is permitted: accounts without a profile are not checked.
	NoProfile Eligibility = iota
	HasBarberRole
	HasOtherRole
)

func EligibilityOf(p *models.Profile) Eligibility {
	switch {
	case p == nil:
		return NoProfile
	case p.Role == models.RoleBarber:
		return HasBarberRole
	default:
		return HasOtherRole
	}
}

func (e Eligibility) Permits() bool {
	return e != HasOtherRole
}
