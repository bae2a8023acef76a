package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbershop-api/internal/httperr"
	"github.com/BruksfildServices01/barbershop-api/internal/httpresp"
	"github.com/BruksfildServices01/barbershop-api/internal/middleware"
	"github.com/BruksfildServices01/barbershop-api/internal/models"
	"github.com/BruksfildServices01/barbershop-api/internal/query"
	"github.com/BruksfildServices01/barbershop-api/internal/usecase/account"
)

type AuthHandler struct {
	uc *account.Accounts
}

func NewAuthHandler(uc *account.Accounts) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// NewAccountHandler exposes accounts read-only. Accounts are created
// through registration and changed through /me.
func NewAccountHandler(uc *account.Accounts, opts QueryOptions) *ReadHandler[models.Account] {
	return NewReadHandler[models.Account](uc, query.Accounts, opts)
}

func (h *AuthHandler) Register(c *gin.Context) {
	var in account.RegisterInput
	if !bindJSON(c, &in) {
		return
	}

	session, err := h.uc.Register(c.Request.Context(), in)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, session)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var in account.LoginInput
	if !bindJSON(c, &in) {
		return
	}

	session, err := h.uc.Login(c.Request.Context(), in)
	if errors.Is(err, account.ErrInvalidCredentials) {
		httperr.Unauthorized(c, "invalid_credentials", "invalid username or password")
		return
	}
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, session)
}

func (h *AuthHandler) Me(c *gin.Context) {
	id, ok := middleware.AccountID(c)
	if !ok {
		httperr.Unauthorized(c, "unauthorized", "authentication required")
		return
	}

	acc, err := h.uc.Me(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, acc)
}

func (h *AuthHandler) UpdateMe(c *gin.Context) {
	id, ok := middleware.AccountID(c)
	if !ok {
		httperr.Unauthorized(c, "unauthorized", "authentication required")
		return
	}

	var in account.UpdateInput
	if !bindJSON(c, &in) {
		return
	}

	acc, err := h.uc.UpdateMe(c.Request.Context(), id, in)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, acc)
}
