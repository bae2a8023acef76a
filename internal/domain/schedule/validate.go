package schedule

import (
	"github.com/BruksfildServices01/barbershop-api/internal/apperr"
)

// Proposal is the resolved state of a schedule write: request fields
// layered over the stored schedule on updates.
type Proposal struct {
	DayOfWeek int
	StartTime string
	EndTime   string
}

// Validate checks the weekly window rules and reports every failure at once.
func Validate(p Proposal) error {
	verr := apperr.NewValidation()

	if p.DayOfWeek < 1 || p.DayOfWeek > 7 {
		verr.Add("day_of_week", "day_of_week must be between 1 and 7.")
	}

	start, startErr := ParseClock(p.StartTime)
	if startErr != nil {
		verr.Add("start_time", "Time has wrong format. Use HH:MM[:SS].")
	}

	end, endErr := ParseClock(p.EndTime)
	if endErr != nil {
		verr.Add("end_time", "Time has wrong format. Use HH:MM[:SS].")
	}

	if startErr == nil && endErr == nil && end <= start {
		verr.Add("end_time", "end_time must be after start_time.")
	}

	return verr.Err()
}

// Normalize rewrites both times as HH:MM:SS; p must already be valid.
func Normalize(p Proposal) Proposal {
	start, _ := ParseClock(p.StartTime)
	end, _ := ParseClock(p.EndTime)
	p.StartTime = start.String()
	p.EndTime = end.String()
	return p
}
