package account

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/barbershop-api/internal/apperr"
	"github.com/BruksfildServices01/barbershop-api/internal/auth"
	"github.com/BruksfildServices01/barbershop-api/internal/models"
	"github.com/BruksfildServices01/barbershop-api/internal/query"
)

// --- Mocks ---

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Get(ctx context.Context, id uint) (*models.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Account), args.Error(1)
}

func (m *MockRepository) List(ctx context.Context, q query.Query, page query.Page) ([]models.Account, int64, error) {
	args := m.Called(ctx, q, page)
	return args.Get(0).([]models.Account), args.Get(1).(int64), args.Error(2)
}

func (m *MockRepository) Create(ctx context.Context, acc *models.Account) error {
	return m.Called(ctx, acc).Error(0)
}

func (m *MockRepository) Save(ctx context.Context, acc *models.Account) error {
	return m.Called(ctx, acc).Error(0)
}

func (m *MockRepository) Delete(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockRepository) FindByUsername(ctx context.Context, username string) (*models.Account, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Account), args.Error(1)
}

func (m *MockRepository) Register(ctx context.Context, acc *models.Account, profile *models.Profile) error {
	return m.Called(ctx, acc, profile).Error(0)
}

func (m *MockRepository) ProfileFor(ctx context.Context, accountID uint) (*models.Profile, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Profile), args.Error(1)
}

// --- Setup ---

func ptr[T any](v T) *T { return &v }

func setup() (*Accounts, *MockRepository, *auth.Tokens) {
	repo := new(MockRepository)
	tokens := auth.NewTokens("test-secret", time.Hour)
	return New(repo, tokens, nil, Options{BcryptCost: bcrypt.MinCost}), repo, tokens
}

func hashed(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

// --- Tests ---

func TestRegister_HashesAndNeverExposesCredential(t *testing.T) {
	uc, repo, tokens := setup()
	ctx := context.Background()

	repo.On("Register", ctx, mock.Anything, mock.MatchedBy(func(p *models.Profile) bool {
		return p.Role == models.RoleClient && p.Active
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*models.Account).ID = 7
	}).Return(nil).Once()

	s, err := uc.Register(ctx, RegisterInput{Username: "ana", Password: "s3cretpw", Email: "Ana@Example.com"})
	require.NoError(t, err)

	assert.Equal(t, "ana@example.com", s.Account.Email)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(s.Account.PasswordHash), []byte("s3cretpw")))

	body, err := json.Marshal(s.Account)
	require.NoError(t, err)
	assert.NotContains(t, string(body), "s3cretpw")
	assert.NotContains(t, string(body), s.Account.PasswordHash)
	assert.NotContains(t, string(body), "password")

	id, err := tokens.Parse(s.Token)
	require.NoError(t, err)
	assert.Equal(t, uint(7), id.AccountID)
	assert.Equal(t, models.RoleClient, id.Role)
}

func TestRegister_Validation(t *testing.T) {
	uc, repo, _ := setup()

	_, err := uc.Register(context.Background(), RegisterInput{Username: "a b", Password: "123", Email: "nope", Role: models.RoleAdmin})

	var verr *apperr.ValidationError
	require.ErrorAs(t, err, &verr)
	for _, f := range []string{"username", "password", "email", "role"} {
		assert.True(t, verr.Has(f), f)
	}
	repo.AssertNotCalled(t, "Register", mock.Anything, mock.Anything, mock.Anything)
}

func TestRegister_DuplicateUsername(t *testing.T) {
	uc, repo, _ := setup()
	repo.On("Register", mock.Anything, mock.Anything, mock.Anything).Return(apperr.Conflict("account already exists")).Once()

	_, err := uc.Register(context.Background(), RegisterInput{Username: "ana", Password: "s3cretpw"})

	var verr *apperr.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.True(t, verr.Has("username"))
}

func TestLogin(t *testing.T) {
	uc, repo, _ := setup()
	ctx := context.Background()

	acc := &models.Account{ID: 3, Username: "joao", IsActive: true, PasswordHash: hashed(t, "right-pw")}
	repo.On("FindByUsername", ctx, "joao").Return(acc, nil)
	repo.On("FindByUsername", ctx, "ghost").Return(nil, apperr.NotFound("account", "ghost"))
	repo.On("ProfileFor", ctx, uint(3)).Return(&models.Profile{Role: models.RoleBarber}, nil)

	s, err := uc.Login(ctx, LoginInput{Username: "joao", Password: "right-pw"})
	require.NoError(t, err)
	assert.Equal(t, models.RoleBarber, s.Role)

	_, err = uc.Login(ctx, LoginInput{Username: "joao", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = uc.Login(ctx, LoginInput{Username: "ghost", Password: "x"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_InactiveAccount(t *testing.T) {
	uc, repo, _ := setup()
	ctx := context.Background()

	repo.On("FindByUsername", ctx, "old").Return(&models.Account{ID: 4, PasswordHash: hashed(t, "pw1234")}, nil)

	_, err := uc.Login(ctx, LoginInput{Username: "old", Password: "pw1234"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestUpdateMe_EmptyPasswordKeepsHash(t *testing.T) {
	uc, repo, _ := setup()
	ctx := context.Background()

	original := hashed(t, "first-pw")
	acc := &models.Account{ID: 5, Username: "ana", IsActive: true, PasswordHash: original}
	repo.On("Get", ctx, uint(5)).Return(acc, nil)
	repo.On("Save", ctx, acc).Return(nil)

	for i := 0; i < 3; i++ {
		got, err := uc.UpdateMe(ctx, 5, UpdateInput{FirstName: ptr("Ana"), Password: ptr("")})
		require.NoError(t, err)
		assert.Equal(t, original, got.PasswordHash)
	}

	got, err := uc.UpdateMe(ctx, 5, UpdateInput{})
	require.NoError(t, err)
	assert.Equal(t, original, got.PasswordHash)
}

func TestUpdateMe_NewPasswordRehashed(t *testing.T) {
	uc, repo, _ := setup()
	ctx := context.Background()

	acc := &models.Account{ID: 5, PasswordHash: hashed(t, "first-pw")}
	repo.On("Get", ctx, uint(5)).Return(acc, nil)
	repo.On("Save", ctx, acc).Return(nil)

	got, err := uc.UpdateMe(ctx, 5, UpdateInput{Password: ptr("second-pw")})

	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(got.PasswordHash), []byte("second-pw")))
}
