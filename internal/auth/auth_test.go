package auth

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"
	"golang.org/x/crypto/bcrypt"

	"github.com/benjomoments/studio-api/internal/model"
	"github.com/benjomoments/studio-api/internal/repository"
	"github.com/benjomoments/studio-api/pkg/redis"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, u *model.User) (*model.User, error) {
	args := m.Called(ctx, u)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func setupSessionStore(t *testing.T, ttl time.Duration) (*SessionStore, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := goredis.NewUniversalClient(&goredis.UniversalOptions{
		Addrs: []string{mr.Addr()},
	})
	t.Cleanup(func() { _ = client.Close() })

	adapter := redis.NewAdapterFromClient(client, "studio:")
	return NewSessionStore(adapter, ttl), mr
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestSessionStore_IssueAndResolve(t *testing.T) {
	store, _ := setupSessionStore(t, time.Hour)

	principal := &model.Principal{UserID: 1, Name: "Benjo", Email: "benjo@example.com", Role: "admin"}

	token, err := store.Issue(principal)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	resolved, err := store.Resolve(token)
	require.NoError(t, err)
	assert.Equal(t, principal, resolved)
}

func TestSessionStore_Resolve_UnknownToken(t *testing.T) {
	store, _ := setupSessionStore(t, time.Hour)

	resolved, err := store.Resolve("no-such-token")
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.Nil(t, resolved)
}

func TestSessionStore_Resolve_ExpiredToken(t *testing.T) {
	store, mr := setupSessionStore(t, time.Minute)

	token, err := store.Issue(&model.Principal{UserID: 1})
	require.NoError(t, err)

	mr.FastForward(2 * time.Minute)

	resolved, err := store.Resolve(token)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.Nil(t, resolved)
}

func TestSessionStore_Revoke(t *testing.T) {
	store, _ := setupSessionStore(t, time.Hour)

	token, err := store.Issue(&model.Principal{UserID: 1})
	require.NoError(t, err)

	require.NoError(t, store.Revoke(token))

	_, err = store.Resolve(token)
	assert.ErrorIs(t, err, ErrSessionNotFound)

	// revoking twice is fine
	assert.NoError(t, store.Revoke(token))
}

func TestAuthService_Login(t *testing.T) {
	store, _ := setupSessionStore(t, time.Hour)
	userRepo := new(MockUserRepository)
	service := NewAuthService(userRepo, store)
	ctx := context.Background()

	userRepo.On("GetByEmail", ctx, "benjo@example.com").Return(&model.User{
		ID:           1,
		Name:         "Benjo",
		Email:        "benjo@example.com",
		PasswordHash: hashPassword(t, "s3cret"),
		Role:         "admin",
	}, nil)

	token, principal, err := service.Login(ctx, "  Benjo@Example.com ", "s3cret")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "benjo@example.com", principal.Email)

	resolved, err := store.Resolve(token)
	require.NoError(t, err)
	assert.Equal(t, int64(1), resolved.UserID)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	store, _ := setupSessionStore(t, time.Hour)
	userRepo := new(MockUserRepository)
	service := NewAuthService(userRepo, store)
	ctx := context.Background()

	userRepo.On("GetByEmail", ctx, "benjo@example.com").Return(&model.User{
		ID:           1,
		Email:        "benjo@example.com",
		PasswordHash: hashPassword(t, "s3cret"),
	}, nil)

	token, principal, err := service.Login(ctx, "benjo@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Empty(t, token)
	assert.Nil(t, principal)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	store, _ := setupSessionStore(t, time.Hour)
	userRepo := new(MockUserRepository)
	service := NewAuthService(userRepo, store)
	ctx := context.Background()

	userRepo.On("GetByEmail", ctx, "ghost@example.com").
		Return(nil, repository.ErrUserNotFound)

	_, _, err := service.Login(ctx, "ghost@example.com", "whatever")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestMiddleware(t *testing.T) {
	store, _ := setupSessionStore(t, time.Hour)

	principal := &model.Principal{UserID: 1, Email: "benjo@example.com"}
	token, err := store.Issue(principal)
	require.NoError(t, err)

	var seen *model.Principal
	handler := Middleware(store)(func(ctx *fasthttp.RequestCtx) {
		seen = PrincipalFromCtx(ctx)
		ctx.SetStatusCode(200)
	})

	t.Run("bearer token", func(t *testing.T) {
		seen = nil
		ctx := &fasthttp.RequestCtx{}
		ctx.Request.Header.Set("Authorization", "Bearer "+token)
		handler(ctx)

		assert.Equal(t, 200, ctx.Response.StatusCode())
		require.NotNil(t, seen)
		assert.Equal(t, "benjo@example.com", seen.Email)
	})

	t.Run("session cookie", func(t *testing.T) {
		seen = nil
		ctx := &fasthttp.RequestCtx{}
		ctx.Request.Header.SetCookie(sessionCookie, token)
		handler(ctx)

		assert.Equal(t, 200, ctx.Response.StatusCode())
		require.NotNil(t, seen)
	})

	t.Run("missing token", func(t *testing.T) {
		seen = nil
		ctx := &fasthttp.RequestCtx{}
		handler(ctx)

		assert.Equal(t, 401, ctx.Response.StatusCode())
		assert.Nil(t, seen)
	})

	t.Run("bad token", func(t *testing.T) {
		seen = nil
		ctx := &fasthttp.RequestCtx{}
		ctx.Request.Header.Set("Authorization", "Bearer not-a-session")
		handler(ctx)

		assert.Equal(t, 401, ctx.Response.StatusCode())
		assert.Nil(t, seen)
	})
}
