package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/barbershop-api/internal/domain"
	"github.com/BruksfildServices01/barbershop-api/internal/query"
)

// GormStore persists one entity type. Reads preload the relations declared
// on the resource; writes never cascade into associations.
type GormStore[T any] struct {
	db  *gorm.DB
	res *query.Resource
}

func NewGormStore[T any](db *gorm.DB, res *query.Resource) *GormStore[T] {
	return &GormStore[T]{db: db, res: res}
}

func (s *GormStore[T]) Get(ctx context.Context, id uint) (*T, error) {
	var entity T
	if err := s.db.WithContext(ctx).
		Scopes(query.Preload(s.res)).
		First(&entity, id).Error; err != nil {
		return nil, translate(s.res.Name, id, err)
	}
	return &entity, nil
}

func (s *GormStore[T]) List(ctx context.Context, q query.Query, page query.Page) ([]T, int64, error) {
	var total int64
	if err := s.countQuery(ctx, q).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	items := []T{}
	if total == 0 {
		return items, 0, nil
	}

	if err := s.pageQuery(ctx, q, page).Find(&items).Error; err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

func (s *GormStore[T]) countQuery(ctx context.Context, q query.Query) *gorm.DB {
	return s.db.WithContext(ctx).
		Model(new(T)).
		Scopes(q.Filter)
}

func (s *GormStore[T]) pageQuery(ctx context.Context, q query.Query, page query.Page) *gorm.DB {
	return s.db.WithContext(ctx).
		Model(new(T)).
		Scopes(q.Filter, q.Sort, page.Scope, query.Preload(s.res))
}

func (s *GormStore[T]) Create(ctx context.Context, entity *T) error {
	err := s.db.WithContext(ctx).Omit(clause.Associations).Create(entity).Error
	return translate(s.res.Name, nil, err)
}

func (s *GormStore[T]) Save(ctx context.Context, entity *T) error {
	err := s.db.WithContext(ctx).Omit(clause.Associations).Save(entity).Error
	return translate(s.res.Name, nil, err)
}

func (s *GormStore[T]) Delete(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(new(T), id)
	if res.Error != nil {
		return translate(s.res.Name, id, res.Error)
	}
	if res.RowsAffected == 0 {
		return translate(s.res.Name, id, gorm.ErrRecordNotFound)
	}
	return nil
}

var _ domain.Store[struct{}] = (*GormStore[struct{}])(nil)
