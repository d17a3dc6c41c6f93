package auth

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/benjomoments/studio-api/internal/model"
	"github.com/benjomoments/studio-api/pkg/redis"
)

var (
	// ErrSessionNotFound is returned for unknown or expired session tokens.
	ErrSessionNotFound = errors.New("session not found")
)

const sessionKeyPrefix = "session:"

// SessionStore keeps admin sessions in redis under opaque uuid tokens. The
// redis TTL is the only expiry mechanism; a token that survives its TTL does
// not exist.
type SessionStore struct {
	redis redis.RedisAdapter
	ttl   time.Duration
}

func NewSessionStore(adapter redis.RedisAdapter, ttl time.Duration) *SessionStore {
	return &SessionStore{
		redis: adapter,
		ttl:   ttl,
	}
}

// Issue stores the principal under a fresh token and returns the token.
func (s *SessionStore) Issue(principal *model.Principal) (string, error) {
	payload, err := json.Marshal(principal)
	if err != nil {
		return "", err
	}

	token := uuid.NewString()
	if err := s.redis.Set(sessionKeyPrefix+token, payload, s.ttl); err != nil {
		return "", err
	}
	return token, nil
}

// Resolve returns the principal behind a token and refreshes its TTL, so an
// active session slides instead of expiring mid-use.
func (s *SessionStore) Resolve(token string) (*model.Principal, error) {
	payload, err := s.redis.Get(sessionKeyPrefix + token)
	if err != nil {
		if errors.Is(err, redis.NilError) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	var principal model.Principal
	if err := json.Unmarshal(payload, &principal); err != nil {
		return nil, err
	}

	if err := s.redis.Expire(sessionKeyPrefix+token, s.ttl); err != nil {
		return nil, err
	}
	return &principal, nil
}

// Revoke drops a session. Revoking an unknown token is not an error.
func (s *SessionStore) Revoke(token string) error {
	return s.redis.Del(sessionKeyPrefix + token)
}
