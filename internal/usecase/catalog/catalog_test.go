package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barbershop-api/internal/apperr"
	"github.com/BruksfildServices01/barbershop-api/internal/cache"
	"github.com/BruksfildServices01/barbershop-api/internal/domain/domaintest"
	"github.com/BruksfildServices01/barbershop-api/internal/models"
	"github.com/BruksfildServices01/barbershop-api/internal/query"
	"github.com/BruksfildServices01/barbershop-api/internal/usecase"
)

func ptr[T any](v T) *T { return &v }

func setup() (*Catalog, *domaintest.MockStore[models.Service], *cache.Memory) {
	store := new(domaintest.MockStore[models.Service])
	mem := cache.NewMemory()
	return New(store, mem, time.Minute, nil), store, mem
}

func TestCatalog_CreateDefaultsActive(t *testing.T) {
	uc, store, _ := setup()
	ctx := context.Background()

	store.On("Create", ctx, mock.MatchedBy(func(s *models.Service) bool {
		return s.Name == "Haircut" && s.Active && s.Price == 35
	})).Return(nil).Once()

	svc, err := uc.Create(ctx, ServiceInput{
		Name:            ptr("Haircut"),
		DurationMinutes: ptr(30),
		Price:           ptr(35.0),
	})

	require.NoError(t, err)
	assert.True(t, svc.Active)
	store.AssertExpectations(t)
}

func TestCatalog_CreateRequiresFieldsAndRejectsNegatives(t *testing.T) {
	uc, store, _ := setup()

	_, err := uc.Create(context.Background(), ServiceInput{
		Name:            ptr(" "),
		DurationMinutes: ptr(-5),
	})

	var verr *apperr.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.True(t, verr.Has("name"))
	assert.True(t, verr.Has("duration_minutes"))
	assert.True(t, verr.Has("price"))
	store.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCatalog_PriceOutsideColumnRange(t *testing.T) {
	uc, store, _ := setup()

	_, err := uc.Create(context.Background(), ServiceInput{
		Name:            ptr("Haircut"),
		DurationMinutes: ptr(30),
		Price:           ptr(123456789.0),
	})

	var verr *apperr.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.True(t, verr.Has("price"))
	store.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCatalog_PatchKeepsOmittedFields(t *testing.T) {
	uc, store, _ := setup()
	ctx := context.Background()

	existing := &models.Service{ID: 4, Name: "Beard", DurationMinutes: 20, Price: 25, Active: true}
	store.On("Get", ctx, uint(4)).Return(existing, nil).Once()
	store.On("Save", ctx, existing).Return(nil).Once()

	svc, err := uc.Update(ctx, 4, ServiceInput{Price: ptr(30.0)}, usecase.ModePatch)

	require.NoError(t, err)
	assert.Equal(t, "Beard", svc.Name)
	assert.Equal(t, 20, svc.DurationMinutes)
	assert.Equal(t, 30.0, svc.Price)
}

func TestCatalog_PutRequiresEveryField(t *testing.T) {
	uc, store, _ := setup()
	ctx := context.Background()

	store.On("Get", ctx, uint(4)).Return(&models.Service{ID: 4}, nil).Once()

	_, err := uc.Update(ctx, 4, ServiceInput{Price: ptr(30.0)}, usecase.ModeReplace)

	assert.True(t, apperr.IsValidation(err))
	store.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestCatalog_ListIsCachedUntilWrite(t *testing.T) {
	uc, store, mem := setup()
	ctx := context.Background()

	q := query.Query{Resource: query.Services, Order: query.Services.DefaultOrder}
	page := query.Page{Number: 1, Size: 20}
	items := []models.Service{{ID: 1, Name: "Haircut"}}

	store.On("List", ctx, q, page).Return(items, int64(1), nil).Twice()

	got, total, err := uc.List(ctx, q, page)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, items, got)

	got, _, err = uc.List(ctx, q, page)
	require.NoError(t, err)
	assert.Equal(t, "Haircut", got[0].Name)
	store.AssertNumberOfCalls(t, "List", 1)

	store.On("Create", ctx, mock.Anything).Return(nil).Once()
	_, err = uc.Create(ctx, ServiceInput{Name: ptr("Shave"), DurationMinutes: ptr(15), Price: ptr(20.0)})
	require.NoError(t, err)
	assert.Equal(t, 0, mem.Len())

	_, _, err = uc.List(ctx, q, page)
	require.NoError(t, err)
	store.AssertNumberOfCalls(t, "List", 2)
}

func TestCatalog_DeactivateKeepsRow(t *testing.T) {
	uc, store, _ := setup()
	ctx := context.Background()

	existing := &models.Service{ID: 9, Name: "Color", Active: true}
	store.On("Get", ctx, uint(9)).Return(existing, nil).Once()
	store.On("Save", ctx, mock.MatchedBy(func(s *models.Service) bool { return !s.Active })).Return(nil).Once()

	require.NoError(t, uc.Deactivate(ctx, 9))
	store.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestCatalog_GetNotFound(t *testing.T) {
	uc, store, _ := setup()
	ctx := context.Background()

	store.On("Get", ctx, uint(99)).Return(nil, apperr.NotFound("service", uint(99))).Once()

	_, err := uc.Get(ctx, 99)
	assert.True(t, apperr.IsNotFound(err))
}
