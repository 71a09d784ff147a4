package repository

import (
	"context"
	"sync"
	"time"

	"github.com/Brownie44l1/quickloan/internal/models"
)

// ==============================================
// IN-MEMORY STORES
// ==============================================
// Default backend when no DB_URL is configured, and the test double for the
// service layer. All state is keyed (canonical phone / token / identity) and
// guarded by a per-store RWMutex, so handlers for different keys never
// interfere. Everything is lost on process restart, matching the demo
// deployment's lifecycle.

// ==============================================
// CHALLENGE STORE
// ==============================================

type MemoryChallengeStore struct {
	mu      sync.RWMutex
	byPhone map[string]models.PhoneChallenge
}

func NewMemoryChallengeStore() *MemoryChallengeStore {
	return &MemoryChallengeStore{byPhone: make(map[string]models.PhoneChallenge)}
}

// Put stores the challenge for its phone number, replacing any prior one.
// Last write wins: the previous challenge becomes unverifiable immediately.
func (s *MemoryChallengeStore) Put(ctx context.Context, ch *models.PhoneChallenge) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byPhone[ch.Phone] = *ch
	return nil
}

func (s *MemoryChallengeStore) Get(ctx context.Context, phone string) (*models.PhoneChallenge, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ch, ok := s.byPhone[phone]
	if !ok {
		return nil, ErrChallengeNotFound
	}
	return &ch, nil
}

// Consume marks the challenge used. Compare-and-set: of two concurrent
// verifications only one can consume, the other gets ErrChallengeConsumed.
func (s *MemoryChallengeStore) Consume(ctx context.Context, phone string, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	ch, ok := s.byPhone[phone]
	if !ok {
		return ErrChallengeNotFound
	}
	if ch.ConsumedAt != nil {
		return ErrChallengeConsumed
	}
	ch.ConsumedAt = &at
	s.byPhone[phone] = ch
	return nil
}

// ==============================================
// APPLICANT STORE
// ==============================================

type MemoryApplicantStore struct {
	mu      sync.RWMutex
	byPhone map[string]models.Applicant
}

func NewMemoryApplicantStore() *MemoryApplicantStore {
	return &MemoryApplicantStore{byPhone: make(map[string]models.Applicant)}
}

// GetOrCreate returns the identity already registered for the phone number,
// or stores the given one. The same phone always resolves to the same
// identity, which is what makes resubmission checks hold across logins.
func (s *MemoryApplicantStore) GetOrCreate(ctx context.Context, applicant *models.Applicant) (*models.Applicant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if existing, ok := s.byPhone[applicant.Phone]; ok {
		return &existing, nil
	}
	s.byPhone[applicant.Phone] = *applicant
	stored := *applicant
	return &stored, nil
}

// ==============================================
// SESSION STORE
// ==============================================

type MemorySessionStore struct {
	mu      sync.RWMutex
	byToken map[string]models.Session
}

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{byToken: make(map[string]models.Session)}
}

func (s *MemorySessionStore) Create(ctx context.Context, session *models.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byToken[session.Token] = *session
	return nil
}

func (s *MemorySessionStore) GetByToken(ctx context.Context, token string) (*models.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.byToken[token]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return &session, nil
}

// ==============================================
// APPLICATION STORE
// ==============================================

type MemoryApplicationStore struct {
	mu         sync.RWMutex
	byIdentity map[string]models.Application
}

func NewMemoryApplicationStore() *MemoryApplicationStore {
	return &MemoryApplicationStore{byIdentity: make(map[string]models.Application)}
}

// CreateIfAbsent stores the application unless the identity already has one,
// in which case the existing record is returned unchanged. The check and the
// insert happen under one lock, so at most one application is ever created
// per identity even when submissions race.
func (s *MemoryApplicationStore) CreateIfAbsent(ctx context.Context, app *models.Application) (*models.Application, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if existing, ok := s.byIdentity[app.IdentityID]; ok {
		return &existing, false, nil
	}
	s.byIdentity[app.IdentityID] = *app
	stored := *app
	return &stored, true, nil
}

func (s *MemoryApplicationStore) GetByIdentity(ctx context.Context, identityID string) (*models.Application, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	app, ok := s.byIdentity[identityID]
	if !ok {
		return nil, ErrApplicationNotFound
	}
	return &app, nil
}
