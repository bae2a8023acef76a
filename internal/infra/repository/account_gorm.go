package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/barbershop-api/internal/models"
	"github.com/BruksfildServices01/barbershop-api/internal/query"
	"github.com/BruksfildServices01/barbershop-api/internal/usecase/account"
)

type AccountGormRepository struct {
	*GormStore[models.Account]
	*DirectoryGorm
	db *gorm.DB
}

func NewAccountGormRepository(db *gorm.DB) *AccountGormRepository {
	return &AccountGormRepository{
		GormStore:     NewGormStore[models.Account](db, query.Accounts),
		DirectoryGorm: NewDirectory(db),
		db:            db,
	}
}

func (r *AccountGormRepository) FindByUsername(ctx context.Context, username string) (*models.Account, error) {
	var acc models.Account
	if err := r.db.WithContext(ctx).
		Where("username = ?", username).
		Take(&acc).Error; err != nil {
		return nil, translate(query.Accounts.Name, username, err)
	}
	return &acc, nil
}

func (r *AccountGormRepository) Register(ctx context.Context, acc *models.Account, profile *models.Profile) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(acc).Error; err != nil {
			return err
		}

		profile.AccountID = acc.ID
		return tx.Omit(clause.Associations).Create(profile).Error
	})
	return translate(query.Accounts.Name, nil, err)
}

var _ account.Repository = (*AccountGormRepository)(nil)
