package models

import (
	"time"
)

// ==============================================
// PHONE CHALLENGE MODEL
// ==============================================

// PhoneChallenge is the per-phone OTP state. At most one active challenge
// exists per canonical phone number; a new request replaces the prior one.
type PhoneChallenge struct {
	Phone      string     `db:"phone"` // canonical +256... form
	Code       string     `db:"code"`
	CreatedAt  time.Time  `db:"created_at"`
	ExpiresAt  time.Time  `db:"expires_at"`
	ConsumedAt *time.Time `db:"consumed_at"`
}

func (c *PhoneChallenge) IsExpired(now time.Time) bool {
	return now.After(c.ExpiresAt)
}

func (c *PhoneChallenge) IsConsumed() bool {
	return c.ConsumedAt != nil
}

// ==============================================
// OTP CONFIGURATION
// ==============================================

const (
	// OTPTTL is how long a challenge stays verifiable.
	OTPTTL = 5 * time.Minute

	// DefaultStaticOTP is the well-known code used by demo deployments
	// that have no SMS channel.
	DefaultStaticOTP = "0000"
)
