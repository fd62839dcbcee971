package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/sharingyatra/yatra-backend/internal/models"
	"github.com/sharingyatra/yatra-backend/internal/storage"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionExpired  = errors.New("session expired")
)

// SessionLifetime bounds both the stored session record and the cookie
// max-age. A single authority, checked on every Verify.
const SessionLifetime = 24 * time.Hour

// SessionManager mints, validates and destroys sessions. The raw token
// travels in the cookie; only an HMAC of it is persisted, keyed by the
// session secret.
type SessionManager struct {
	store    storage.Store
	secret   []byte
	lifetime time.Duration
}

// NewSessionManager creates a session manager over the given store.
func NewSessionManager(store storage.Store, secret string) *SessionManager {
	return &SessionManager{
		store:    store,
		secret:   []byte(secret),
		lifetime: SessionLifetime,
	}
}

// Lifetime returns the session lifetime, for cookie max-age.
func (sm *SessionManager) Lifetime() time.Duration {
	return sm.lifetime
}

// Create persists a session for the principal and returns the raw token.
func (sm *SessionManager) Create(principal models.Principal) (string, error) {
	token := uuid.NewString()
	now := time.Now()

	session := &models.Session{
		TokenHash:   sm.hashToken(token),
		PrincipalID: principal.ID,
		Email:       principal.Email,
		Name:        principal.Name,
		Role:        principal.Role,
		ExpiresAt:   now.Add(sm.lifetime),
		CreatedAt:   now,
	}
	if err := sm.store.CreateSession(session); err != nil {
		return "", fmt.Errorf("create session: %w", err)
	}
	return token, nil
}

// Verify resolves a raw token to its principal. Expired records are
// deleted on sight.
func (sm *SessionManager) Verify(token string) (*models.Principal, error) {
	if token == "" {
		return nil, ErrSessionNotFound
	}

	hash := sm.hashToken(token)
	session, err := sm.store.GetSession(hash)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}

	if session.Expired(time.Now()) {
		_ = sm.store.DeleteSession(hash)
		return nil, ErrSessionExpired
	}

	principal := session.Principal()
	return &principal, nil
}

// Destroy removes the server-side session record for the token.
func (sm *SessionManager) Destroy(token string) error {
	return sm.store.DeleteSession(sm.hashToken(token))
}

func (sm *SessionManager) hashToken(token string) string {
	mac := hmac.New(sha256.New, sm.secret)
	mac.Write([]byte(token))
	return hex.EncodeToString(mac.Sum(nil))
}
