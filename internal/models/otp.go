package models

import (
	"time"

	"gorm.io/gorm"
)

// OTP gates customer registration. At most one active code exists per
// email; a new request replaces the previous code. ExpiresAt is the
// single expiry authority.
type OTP struct {
	gorm.Model
	Email     string    `gorm:"uniqueIndex;not null"`
	Code      string    `gorm:"not null"`
	ExpiresAt time.Time `gorm:"not null"`
}

// Expired reports whether the code is past its expiry at the given time.
func (o *OTP) Expired(now time.Time) bool {
	return now.After(o.ExpiresAt)
}
