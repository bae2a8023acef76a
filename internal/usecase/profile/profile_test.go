package profile

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barbershop-api/internal/apperr"
	"github.com/BruksfildServices01/barbershop-api/internal/domain/domaintest"
	"github.com/BruksfildServices01/barbershop-api/internal/models"
	"github.com/BruksfildServices01/barbershop-api/internal/usecase"
)

func ptr[T any](v T) *T { return &v }

func TestProfiles_Create(t *testing.T) {
	ctx := context.Background()
	store := new(domaintest.MockStore[models.Profile])
	dir := new(domaintest.MockDirectory)
	uc := New(store, dir, nil)

	dir.On("AccountExists", ctx, uint(3)).Return(true, nil)
	store.On("Create", ctx, mock.MatchedBy(func(p *models.Profile) bool {
		return p.AccountID == 3 && p.Role == models.RoleBarber && p.Active
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*models.Profile).ID = 11
	}).Return(nil).Once()
	store.On("Get", ctx, uint(11)).Return(&models.Profile{ID: 11, AccountID: 3, Role: models.RoleBarber}, nil).Once()

	p, err := uc.Create(ctx, ProfileInput{User: ptr(uint(3)), Role: ptr(models.RoleBarber)})

	require.NoError(t, err)
	assert.Equal(t, uint(11), p.ID)
	store.AssertExpectations(t)
}

func TestProfiles_CreateRejectsUnknownRoleAndAccount(t *testing.T) {
	ctx := context.Background()
	store := new(domaintest.MockStore[models.Profile])
	dir := new(domaintest.MockDirectory)
	uc := New(store, dir, nil)

	dir.On("AccountExists", ctx, uint(8)).Return(false, nil)

	_, err := uc.Create(ctx, ProfileInput{User: ptr(uint(8)), Role: ptr("owner")})

	var verr *apperr.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.True(t, verr.Has("user"))
	assert.True(t, verr.Has("role"))
	store.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestProfiles_PatchRoleOnly(t *testing.T) {
	ctx := context.Background()
	store := new(domaintest.MockStore[models.Profile])
	uc := New(store, new(domaintest.MockDirectory), nil)

	existing := &models.Profile{ID: 2, AccountID: 5, Role: models.RoleClient, Active: true}
	store.On("Get", ctx, uint(2)).Return(existing, nil)
	store.On("Save", ctx, existing).Return(nil).Once()

	p, err := uc.Update(ctx, 2, ProfileInput{Role: ptr(models.RoleBarber)}, usecase.ModePatch)

	require.NoError(t, err)
	assert.Equal(t, models.RoleBarber, p.Role)
	assert.Equal(t, uint(5), p.AccountID)
}
