package auth

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/benjomoments/studio-api/internal/model"
	"github.com/benjomoments/studio-api/internal/repository"
)

var (
	// ErrInvalidCredentials covers both an unknown email and a wrong password,
	// so a caller cannot probe which emails exist.
	ErrInvalidCredentials = errors.New("invalid email or password")
)

type UserRepository interface {
	Create(ctx context.Context, u *model.User) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
}

// AuthService checks admin credentials and manages their sessions.
type AuthService struct {
	userRepo UserRepository
	sessions *SessionStore
}

func NewAuthService(userRepo UserRepository, sessions *SessionStore) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		sessions: sessions,
	}
}

// Login verifies the password against the stored bcrypt hash and issues a
// session token.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *model.Principal, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	principal := &model.Principal{
		UserID: user.ID,
		Name:   user.Name,
		Email:  user.Email,
		Role:   user.Role,
	}

	token, err := s.sessions.Issue(principal)
	if err != nil {
		return "", nil, err
	}
	return token, principal, nil
}

func (s *AuthService) Logout(token string) error {
	return s.sessions.Revoke(token)
}

// Register creates an admin account with a bcrypt-hashed password.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*model.User, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	return s.userRepo.Create(ctx, &model.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         "admin",
	})
}
