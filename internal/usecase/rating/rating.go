package rating

import (
	"context"

	"github.com/BruksfildServices01/barbershop-api/internal/apperr"
	"github.com/BruksfildServices01/barbershop-api/internal/audit"
	"github.com/BruksfildServices01/barbershop-api/internal/domain"
	"github.com/BruksfildServices01/barbershop-api/internal/models"
	"github.com/BruksfildServices01/barbershop-api/internal/query"
	"github.com/BruksfildServices01/barbershop-api/internal/usecase"
)

// RatingInput carries no bounds on Score: the accepted range has not
// been settled.
type RatingInput struct {
	Appointment *uint   `json:"appointment"`
	User        *uint   `json:"user"`
	Score       *int    `json:"score"`
	Comment     *string `json:"comment"`
}

type Ratings struct {
	store domain.Store[models.Rating]
	dir   domain.Directory
	audit *audit.Dispatcher
}

func New(store domain.Store[models.Rating], dir domain.Directory, d *audit.Dispatcher) *Ratings {
	return &Ratings{store: store, dir: dir, audit: d}
}

func (uc *Ratings) List(ctx context.Context, q query.Query, page query.Page) ([]models.Rating, int64, error) {
	return uc.store.List(ctx, q, page)
}

func (uc *Ratings) Get(ctx context.Context, id uint) (*models.Rating, error) {
	return uc.store.Get(ctx, id)
}

func (uc *Ratings) Create(ctx context.Context, in RatingInput) (*models.Rating, error) {
	r := &models.Rating{}
	if err := uc.apply(ctx, r, in, usecase.ModeCreate); err != nil {
		return nil, err
	}

	if err := uc.store.Create(ctx, r); err != nil {
		return nil, err
	}

	usecase.Record(ctx, uc.audit, "rating_created", "rating", r.ID, map[string]any{"score": r.Score})
	return uc.store.Get(ctx, r.ID)
}

func (uc *Ratings) Update(ctx context.Context, id uint, in RatingInput, mode usecase.Mode) (*models.Rating, error) {
	r, err := uc.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := uc.apply(ctx, r, in, mode); err != nil {
		return nil, err
	}

	if err := uc.store.Save(ctx, r); err != nil {
		return nil, err
	}

	usecase.Record(ctx, uc.audit, "rating_updated", "rating", r.ID, nil)
	return uc.store.Get(ctx, r.ID)
}

// Delete removes the rating; ratings carry no active flag.
func (uc *Ratings) Delete(ctx context.Context, id uint) error {
	if err := uc.store.Delete(ctx, id); err != nil {
		return err
	}
	usecase.Record(ctx, uc.audit, "rating_deleted", "rating", id, nil)
	return nil
}

func (uc *Ratings) apply(ctx context.Context, r *models.Rating, in RatingInput, mode usecase.Mode) error {
	verr := apperr.NewValidation()

	usecase.Require(verr, mode, "appointment", in.Appointment != nil)
	usecase.Require(verr, mode, "user", in.User != nil)
	usecase.Require(verr, mode, "score", in.Score != nil)

	if in.Appointment != nil {
		if err := usecase.AppointmentRef(ctx, uc.dir, verr, "appointment", *in.Appointment); err != nil {
			return err
		}
		r.AppointmentID = *in.Appointment
	}
	if in.User != nil {
		if err := usecase.AccountRef(ctx, uc.dir, verr, "user", *in.User); err != nil {
			return err
		}
		r.UserID = *in.User
		r.User = nil
	}
	if in.Score != nil {
		r.Score = *in.Score
	}
	if in.Comment != nil {
		r.Comment = *in.Comment
	}

	return verr.Err()
}
