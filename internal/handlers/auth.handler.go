package handlers

import (
	"context"
	"errors"

	"github.com/fasthttp/router"

	"github.com/benjomoments/studio-api/internal/auth"
	"github.com/benjomoments/studio-api/internal/model"
	xhttp "github.com/benjomoments/studio-api/pkg/http"
)

type AuthService interface {
	Login(ctx context.Context, email, password string) (string, *model.Principal, error)
	Logout(token string) error
}

type AuthHandler struct {
	svc AuthService
}

// RegisterAuthRoutes wires login and logout. Login is exempted from the
// session middleware; logout runs behind it so the token is already resolved.
func RegisterAuthRoutes(e *router.Group, h *AuthHandler) {
	e.POST("/login", h.Login)
	e.POST("/logout", h.Logout)
}

func NewAuthHandler(authService AuthService) *AuthHandler {
	return &AuthHandler{
		svc: authService,
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string           `json:"token"`
	User  *model.Principal `json:"user"`
}

func (h *AuthHandler) Login(ctx *xhttp.RequestCtx) {
	var req loginRequest
	if err := readJSON(ctx, &req); err != nil {
		writeError(ctx, xhttp.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}

	token, principal, err := h.svc.Login(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			writeError(ctx, xhttp.StatusUnauthorized, err.Error())
			return
		}
		writeServiceError(ctx, err)
		return
	}

	writeJSON(ctx, xhttp.StatusOK, loginResponse{Token: token, User: principal})
}

func (h *AuthHandler) Logout(ctx *xhttp.RequestCtx) {
	token := auth.TokenFromCtx(ctx)
	if token == "" {
		ctx.SetStatusCode(xhttp.StatusNoContent)
		return
	}

	if err := h.svc.Logout(token); err != nil {
		writeServiceError(ctx, err)
		return
	}
	ctx.SetStatusCode(xhttp.StatusNoContent)
}
