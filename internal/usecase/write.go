// Package usecase holds helpers shared by the per-resource use cases.
package usecase

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/BruksfildServices01/barbershop-api/internal/apperr"
	"github.com/BruksfildServices01/barbershop-api/internal/audit"
	"github.com/BruksfildServices01/barbershop-api/internal/domain"
)

// Mode is the kind of write a request performs.
type Mode int

const (
	ModeCreate Mode = iota
	// ModeReplace is a full update; required fields must be present.
	ModeReplace
	// ModePatch is a partial update; absent fields keep their value.
	ModePatch
)

func (m Mode) RequiresAll() bool {
	return m != ModePatch
}

// Require records field as missing when the mode demands every field.
func Require(verr *apperr.ValidationError, m Mode, field string, present bool) {
	if m.RequiresAll() && !present {
		verr.Required(field)
	}
}

func Choice(verr *apperr.ValidationError, field, value string, choices []string) {
	for _, c := range choices {
		if value == c {
			return
		}
	}
	verr.Add(field, fmt.Sprintf("%q is not a valid choice.", value))
}

func NonNegative[N int | float64](verr *apperr.ValidationError, field string, v N) {
	if v < 0 {
		verr.Add(field, "Ensure this value is greater than or equal to 0.")
	}
}

// MaxMoney is the largest magnitude a numeric(10,2) column holds.
const MaxMoney = 99999999.99

// Money rejects values that would round outside a numeric(10,2) column.
func Money(verr *apperr.ValidationError, field string, v float64) {
	if math.Abs(v) >= MaxMoney+0.005 {
		verr.Add(field, "Ensure that there are no more than 8 digits before the decimal point.")
	}
}

func MaxLength(verr *apperr.ValidationError, field, v string, max int) {
	if len([]rune(v)) > max {
		verr.Add(field, fmt.Sprintf("Ensure this field has no more than %d characters.", max))
	}
}

func NotBlank(verr *apperr.ValidationError, field, v string) {
	if strings.TrimSpace(v) == "" {
		verr.Add(field, "This field may not be blank.")
	}
}

// AccountRef checks that the referenced account exists. Lookup failures
// are returned; a missing account is recorded on verr.
func AccountRef(ctx context.Context, dir domain.Directory, verr *apperr.ValidationError, field string, id uint) error {
	ok, err := dir.AccountExists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		verr.Add(field, fmt.Sprintf("Invalid pk %q - object does not exist.", fmt.Sprint(id)))
	}
	return nil
}

func AppointmentRef(ctx context.Context, dir domain.Directory, verr *apperr.ValidationError, field string, id uint) error {
	ok, err := dir.AppointmentExists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		verr.Add(field, fmt.Sprintf("Invalid pk %q - object does not exist.", fmt.Sprint(id)))
	}
	return nil
}

// Record dispatches an audit event attributed to the request's actor.
func Record(ctx context.Context, d *audit.Dispatcher, action, entity string, id uint, meta any) {
	d.Dispatch(audit.Event{
		AccountID: audit.ActorFrom(ctx),
		Action:    action,
		Entity:    entity,
		EntityID:  &id,
		Metadata:  meta,
	})
}
