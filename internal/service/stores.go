package service

import (
	"context"
	"time"

	"github.com/Brownie44l1/quickloan/internal/models"
)

// ==============================================
// STORE INTERFACES (for testing and backend choice)
// ==============================================
// Satisfied by both the in-memory stores and the Postgres repositories in
// internal/repository. Implementations return the repository package's
// sentinel errors (ErrChallengeNotFound, ErrSessionNotFound, ...).

// ChallengeStore holds at most one OTP challenge per canonical phone number.
type ChallengeStore interface {
	// Put replaces any existing challenge for the phone (last write wins).
	Put(ctx context.Context, ch *models.PhoneChallenge) error
	Get(ctx context.Context, phone string) (*models.PhoneChallenge, error)
	// Consume marks the challenge used; compare-and-set, fails if already consumed.
	Consume(ctx context.Context, phone string, at time.Time) error
}

// ApplicantStore maps canonical phone numbers to stable identities.
type ApplicantStore interface {
	GetOrCreate(ctx context.Context, applicant *models.Applicant) (*models.Applicant, error)
}

// SessionStore maps opaque bearer tokens to sessions.
type SessionStore interface {
	Create(ctx context.Context, session *models.Session) error
	GetByToken(ctx context.Context, token string) (*models.Session, error)
}

// ApplicationStore holds at most one application per identity.
type ApplicationStore interface {
	// CreateIfAbsent reports whether the given application was stored; when
	// the identity already has one, the existing record is returned unchanged.
	CreateIfAbsent(ctx context.Context, app *models.Application) (*models.Application, bool, error)
	GetByIdentity(ctx context.Context, identityID string) (*models.Application, error)
}
