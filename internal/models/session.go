package models

import "time"

// Session maps a hashed opaque token to an authenticated principal
// summary. Only the hash is stored; the raw token lives in the cookie.
type Session struct {
	TokenHash   string    `json:"-" gorm:"primaryKey"`
	PrincipalID string    `json:"principal_id" gorm:"not null"`
	Email       string    `json:"email"`
	Name        string    `json:"name"`
	Role        string    `json:"role"`
	ExpiresAt   time.Time `json:"expires_at" gorm:"index"`
	CreatedAt   time.Time `json:"created_at"`
}

// Principal returns the summary stored against the session.
func (s *Session) Principal() Principal {
	return Principal{
		ID:    s.PrincipalID,
		Email: s.Email,
		Name:  s.Name,
		Role:  s.Role,
	}
}

// Expired reports whether the session is past its expiry at the given time.
func (s *Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
