package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/barbershop-api/internal/domain"
	"github.com/BruksfildServices01/barbershop-api/internal/models"
)

type DirectoryGorm struct {
	db *gorm.DB
}

func NewDirectory(db *gorm.DB) *DirectoryGorm {
	return &DirectoryGorm{db: db}
}

func (d *DirectoryGorm) AccountExists(ctx context.Context, id uint) (bool, error) {
	return d.exists(ctx, &models.Account{}, id)
}

func (d *DirectoryGorm) AppointmentExists(ctx context.Context, id uint) (bool, error) {
	return d.exists(ctx, &models.Appointment{}, id)
}

func (d *DirectoryGorm) ProfileFor(ctx context.Context, accountID uint) (*models.Profile, error) {
	var p models.Profile
	err := d.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Take(&p).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (d *DirectoryGorm) exists(ctx context.Context, model any, id uint) (bool, error) {
	var count int64
	if err := d.db.WithContext(ctx).
		Model(model).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

var _ domain.Directory = (*DirectoryGorm)(nil)
