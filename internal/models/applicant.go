package models

import (
	"time"
)

// ==============================================
// APPLICANT MODEL
// ==============================================

// Applicant is the identity behind a verified phone number. It is created
// on first successful OTP verification and reused on every later login, so
// the one-application-per-identity rule holds across sessions.
type Applicant struct {
	ID        string    `db:"id"` // UUID
	Phone     string    `db:"phone"`
	CreatedAt time.Time `db:"created_at"`
}
