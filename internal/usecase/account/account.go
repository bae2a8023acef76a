package account

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/barbershop-api/internal/apperr"
	"github.com/BruksfildServices01/barbershop-api/internal/audit"
	"github.com/BruksfildServices01/barbershop-api/internal/auth"
	"github.com/BruksfildServices01/barbershop-api/internal/domain"
	"github.com/BruksfildServices01/barbershop-api/internal/models"
	"github.com/BruksfildServices01/barbershop-api/internal/query"
	"github.com/BruksfildServices01/barbershop-api/internal/usecase"
	"github.com/BruksfildServices01/barbershop-api/internal/validators"
)

var ErrInvalidCredentials = errors.New("invalid_credentials")

const minPasswordLength = 6

var usernamePattern = regexp.MustCompile(`^[\w.@+-]+$`)

type Repository interface {
	domain.Store[models.Account]
	FindByUsername(ctx context.Context, username string) (*models.Account, error)
	// Register stores the account and its profile atomically.
	Register(ctx context.Context, acc *models.Account, profile *models.Profile) error
	ProfileFor(ctx context.Context, accountID uint) (*models.Profile, error)
}

// ======================================================
// INPUT / OUTPUT
// ======================================================

type RegisterInput struct {
	Username    string `json:"username"`
	Password    string `json:"password"`
	Email       string `json:"email"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Role        string `json:"role"`
	PhoneNumber string `json:"phone_number"`
}

type LoginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UpdateInput is a partial update of the caller's own account. An empty
// password leaves the stored credential unchanged.
type UpdateInput struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Email     *string `json:"email"`
	Password  *string `json:"password"`
}

type Session struct {
	Token     string          `json:"token"`
	ExpiresAt time.Time       `json:"expires_at"`
	Account   *models.Account `json:"user"`
	Role      string          `json:"role"`
}

// ======================================================
// USE CASE
// ======================================================

type Options struct {
	VerifyEmailDomain bool
	Resolver          validators.Resolver
	BcryptCost        int
}

type Accounts struct {
	repo   Repository
	tokens *auth.Tokens
	audit  *audit.Dispatcher
	opts   Options
}

func New(repo Repository, tokens *auth.Tokens, d *audit.Dispatcher, opts Options) *Accounts {
	if opts.BcryptCost == 0 {
		opts.BcryptCost = bcrypt.DefaultCost
	}
	return &Accounts{repo: repo, tokens: tokens, audit: d, opts: opts}
}

func (uc *Accounts) List(ctx context.Context, q query.Query, page query.Page) ([]models.Account, int64, error) {
	return uc.repo.List(ctx, q, page)
}

func (uc *Accounts) Get(ctx context.Context, id uint) (*models.Account, error) {
	return uc.repo.Get(ctx, id)
}

func (uc *Accounts) Register(ctx context.Context, in RegisterInput) (*Session, error) {
	verr := apperr.NewValidation()

	username := strings.TrimSpace(in.Username)
	switch {
	case username == "":
		verr.Required("username")
	case !usernamePattern.MatchString(username):
		verr.Add("username", "Enter a valid username. Letters, digits and @/./+/-/_ only.")
	default:
		usecase.MaxLength(verr, "username", username, 150)
	}

	if in.Password == "" {
		verr.Required("password")
	} else if len(in.Password) < minPasswordLength {
		verr.Add("password", "Ensure this field has at least 6 characters.")
	}

	email := strings.ToLower(strings.TrimSpace(in.Email))
	uc.checkEmail(ctx, verr, email)

	role := in.Role
	if role == "" {
		role = models.RoleClient
	}
	usecase.Choice(verr, "role", role, []string{models.RoleClient, models.RoleBarber})
	usecase.MaxLength(verr, "first_name", in.FirstName, 150)
	usecase.MaxLength(verr, "last_name", in.LastName, 150)
	usecase.MaxLength(verr, "phone_number", in.PhoneNumber, 20)

	if err := verr.Err(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), uc.opts.BcryptCost)
	if err != nil {
		return nil, err
	}

	acc := &models.Account{
		Username:     username,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        email,
		IsActive:     true,
		PasswordHash: string(hash),
	}
	profile := &models.Profile{
		Role:        role,
		PhoneNumber: in.PhoneNumber,
		Active:      true,
	}

	if err := uc.repo.Register(ctx, acc, profile); err != nil {
		if apperr.IsConflict(err) {
			return nil, apperr.Invalid("username", "A user with that username already exists.")
		}
		return nil, err
	}

	usecase.Record(ctx, uc.audit, "account_registered", "account", acc.ID, map[string]string{"role": role})
	return uc.session(acc, role)
}

func (uc *Accounts) Login(ctx context.Context, in LoginInput) (*Session, error) {
	acc, err := uc.repo.FindByUsername(ctx, strings.TrimSpace(in.Username))
	if apperr.IsNotFound(err) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if !acc.IsActive {
		return nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(acc.PasswordHash), []byte(in.Password)) != nil {
		return nil, ErrInvalidCredentials
	}

	role, err := uc.roleOf(ctx, acc.ID)
	if err != nil {
		return nil, err
	}

	usecase.Record(audit.WithActor(ctx, acc.ID), uc.audit, "account_login", "account", acc.ID, nil)
	return uc.session(acc, role)
}

func (uc *Accounts) Me(ctx context.Context, id uint) (*models.Account, error) {
	return uc.repo.Get(ctx, id)
}

func (uc *Accounts) UpdateMe(ctx context.Context, id uint, in UpdateInput) (*models.Account, error) {
	acc, err := uc.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	verr := apperr.NewValidation()

	if in.FirstName != nil {
		usecase.MaxLength(verr, "first_name", *in.FirstName, 150)
		acc.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		usecase.MaxLength(verr, "last_name", *in.LastName, 150)
		acc.LastName = *in.LastName
	}
	if in.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*in.Email))
		uc.checkEmail(ctx, verr, email)
		acc.Email = email
	}

	passwordChanged := false
	if in.Password != nil && *in.Password != "" {
		if len(*in.Password) < minPasswordLength {
			verr.Add("password", "Ensure this field has at least 6 characters.")
		} else {
			hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), uc.opts.BcryptCost)
			if err != nil {
				return nil, err
			}
			acc.PasswordHash = string(hash)
			passwordChanged = true
		}
	}

	if err := verr.Err(); err != nil {
		return nil, err
	}

	if err := uc.repo.Save(ctx, acc); err != nil {
		return nil, err
	}

	usecase.Record(ctx, uc.audit, "account_updated", "account", acc.ID, map[string]bool{"password_changed": passwordChanged})
	return acc, nil
}

func (uc *Accounts) checkEmail(ctx context.Context, verr *apperr.ValidationError, email string) {
	if email == "" {
		return
	}
	if !validators.IsEmailSyntaxValid(email) {
		verr.Add("email", "Enter a valid email address.")
		return
	}
	usecase.MaxLength(verr, "email", email, 254)
	if uc.opts.VerifyEmailDomain && !validators.IsEmailDomainValid(ctx, uc.opts.Resolver, email) {
		verr.Add("email", "The email domain does not appear to be valid.")
	}
}

func (uc *Accounts) roleOf(ctx context.Context, accountID uint) (string, error) {
	p, err := uc.repo.ProfileFor(ctx, accountID)
	if err != nil || p == nil {
		return "", err
	}
	return p.Role, nil
}

func (uc *Accounts) session(acc *models.Account, role string) (*Session, error) {
	token, exp, err := uc.tokens.Issue(acc.ID, role)
	if err != nil {
		return nil, err
	}
	return &Session{Token: token, ExpiresAt: exp, Account: acc, Role: role}, nil
}
