package auth

import (
	"strings"

	"github.com/benjomoments/studio-api/internal/model"
	xhttp "github.com/benjomoments/studio-api/pkg/http"
)

const (
	principalKey  = "auth.principal"
	tokenKey      = "auth.token"
	sessionCookie = "studio_session"
)

// publicPaths bypass session checks: login has no session yet, health and
// metrics are probed by infrastructure.
var publicPaths = []string{"/api/login", "/api/health", "/metrics"}

// Middleware resolves the session token on every request and rejects the ones
// without a live session. It accepts either an Authorization bearer token or
// the session cookie.
func Middleware(sessions *SessionStore) xhttp.MiddlewareFunc {
	return func(next xhttp.RequestHandler) xhttp.RequestHandler {
		return func(ctx *xhttp.RequestCtx) {
			if isPublic(string(ctx.Path())) {
				next(ctx)
				return
			}

			token := requestToken(ctx)
			if token == "" {
				unauthorized(ctx)
				return
			}

			principal, err := sessions.Resolve(token)
			if err != nil {
				unauthorized(ctx)
				return
			}

			ctx.SetUserValue(principalKey, principal)
			ctx.SetUserValue(tokenKey, token)
			next(ctx)
		}
	}
}

// PrincipalFromCtx returns the authenticated principal, or nil on routes the
// middleware does not cover.
func PrincipalFromCtx(ctx *xhttp.RequestCtx) *model.Principal {
	if p, ok := ctx.UserValue(principalKey).(*model.Principal); ok {
		return p
	}
	return nil
}

func TokenFromCtx(ctx *xhttp.RequestCtx) string {
	if t, ok := ctx.UserValue(tokenKey).(string); ok {
		return t
	}
	return ""
}

func isPublic(path string) bool {
	for _, p := range publicPaths {
		if path == p {
			return true
		}
	}
	return false
}

func requestToken(ctx *xhttp.RequestCtx) string {
	header := string(ctx.Request.Header.Peek("Authorization"))
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	}
	if cookie := ctx.Request.Header.Cookie(sessionCookie); len(cookie) > 0 {
		return string(cookie)
	}
	return ""
}

func unauthorized(ctx *xhttp.RequestCtx) {
	ctx.SetStatusCode(xhttp.StatusUnauthorized)
	ctx.SetContentType("application/json")
	ctx.SetBodyString(`{"error":"unauthorized"}`)
}
