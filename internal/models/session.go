package models

import (
	"time"
)

// ==============================================
// SESSION MODEL
// ==============================================

// Session binds an opaque bearer token to a verified phone number and its
// applicant identity. Created only after a successful OTP verification.
type Session struct {
	Token      string    `db:"token"`
	Phone      string    `db:"phone"` // canonical form that passed OTP
	IdentityID string    `db:"identity_id"`
	IssuedAt   time.Time `db:"issued_at"`
	ExpiresAt  time.Time `db:"expires_at"`
}

// IsValid reports whether the session is still usable.
func (s *Session) IsValid(now time.Time) bool {
	return now.Before(s.ExpiresAt)
}
