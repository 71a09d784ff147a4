package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/Brownie44l1/quickloan/internal/api/dto"
	"github.com/Brownie44l1/quickloan/internal/auth"
	"github.com/Brownie44l1/quickloan/internal/models"
	"github.com/Brownie44l1/quickloan/internal/phone"
	"github.com/Brownie44l1/quickloan/internal/repository"
	"github.com/google/uuid"
)

// ==============================================
// AUTH SERVICE
// ==============================================

type AuthService struct {
	challenges ChallengeStore
	applicants ApplicantStore
	sessions   SessionStore
	smsService *SMSService
	staticOTP  string // non-empty pins every generated code (demo deployments)
}

func NewAuthService(
	challenges ChallengeStore,
	applicants ApplicantStore,
	sessions SessionStore,
	smsService *SMSService,
	staticOTP string,
) *AuthService {
	return &AuthService{
		challenges: challenges,
		applicants: applicants,
		sessions:   sessions,
		smsService: smsService,
		staticOTP:  staticOTP,
	}
}

// ==============================================
// REQUEST OTP
// ==============================================

func (s *AuthService) RequestOTP(ctx context.Context, req dto.RequestOTPRequest) (*dto.RequestOTPResponse, error) {
	// 1. Canonicalize the phone number - it is the key for everything after
	canonical, err := phone.Normalize(req.PhoneNumber)
	if err != nil {
		return nil, models.ErrInvalidPhoneFormat
	}

	// 2. Pick the code
	code := s.staticOTP
	if code == "" {
		code = auth.GenerateOTP()
	}

	// 3. Store the challenge, replacing any prior one for this phone
	now := time.Now()
	challenge := &models.PhoneChallenge{
		Phone:     canonical,
		Code:      code,
		CreatedAt: now,
		ExpiresAt: now.Add(models.OTPTTL),
	}

	if err := s.challenges.Put(ctx, challenge); err != nil {
		return nil, fmt.Errorf("failed to store challenge: %w", err)
	}

	// 4. Deliver the code
	if err := s.smsService.SendOTP(canonical, code); err != nil {
		return nil, fmt.Errorf("failed to send OTP: %w", err)
	}

	log.Printf("[OTP] Challenge issued - Phone: %s, ExpiresAt: %s", canonical, challenge.ExpiresAt.Format(time.RFC3339))

	return &dto.RequestOTPResponse{
		Message:     "OTP sent successfully",
		PhoneNumber: canonical,
	}, nil
}

// ==============================================
// VERIFY OTP
// ==============================================

func (s *AuthService) VerifyOTP(ctx context.Context, req dto.VerifyOTPRequest) (*dto.VerifyOTPResponse, error) {
	// 1. Canonicalize
	canonical, err := phone.Normalize(req.PhoneNumber)
	if err != nil {
		return nil, models.ErrInvalidPhoneFormat
	}

	// 2. Load the challenge
	challenge, err := s.challenges.Get(ctx, canonical)
	if err != nil {
		if errors.Is(err, repository.ErrChallengeNotFound) {
			return nil, models.ErrNoChallenge
		}
		return nil, fmt.Errorf("failed to get challenge: %w", err)
	}

	now := time.Now()

	// 3. A consumed challenge is gone for verification purposes - replaying
	// the same code must fail
	if challenge.IsConsumed() {
		return nil, models.ErrNoChallenge
	}

	if challenge.IsExpired(now) {
		return nil, models.ErrOTPExpired
	}

	// 4. Exact-value comparison. Never case-fold or trim either side before
	// comparing: a comparison that normalizes weakens the verification
	// guarantee ("123a" must not verify a challenge holding "123A").
	if challenge.Code != req.OTP {
		log.Printf("[OTP] Verification failed - Phone: %s", canonical)
		return nil, models.ErrOTPInvalid
	}

	// 5. Consume the challenge; losing the compare-and-set means a
	// concurrent verification already minted a session with this code
	if err := s.challenges.Consume(ctx, canonical, now); err != nil {
		if errors.Is(err, repository.ErrChallengeConsumed) || errors.Is(err, repository.ErrChallengeNotFound) {
			return nil, models.ErrNoChallenge
		}
		return nil, fmt.Errorf("failed to consume challenge: %w", err)
	}

	// 6. Resolve the identity behind this phone (created on first login)
	applicant, err := s.applicants.GetOrCreate(ctx, &models.Applicant{
		ID:        uuid.NewString(),
		Phone:     canonical,
		CreatedAt: now,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to resolve applicant: %w", err)
	}

	// 7. Issue the session
	session := &models.Session{
		Token:      auth.GenerateSessionToken(),
		Phone:      canonical,
		IdentityID: applicant.ID,
		IssuedAt:   now,
		ExpiresAt:  now.Add(auth.SessionTTL),
	}

	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	log.Printf("[OTP] Verified - Phone: %s, IdentityID: %s", canonical, applicant.ID)

	return &dto.VerifyOTPResponse{
		Message:      "Authentication successful",
		SessionToken: session.Token,
		PhoneNumber:  canonical,
	}, nil
}

// ==============================================
// SESSION RESOLUTION
// ==============================================

// ResolveSession recovers the applicant identity behind a bearer token.
// Every authenticated endpoint calls this before touching per-identity state.
func (s *AuthService) ResolveSession(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", models.ErrInvalidSession
	}

	session, err := s.sessions.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return "", models.ErrInvalidSession
		}
		return "", fmt.Errorf("failed to get session: %w", err)
	}

	if !session.IsValid(time.Now()) {
		return "", models.ErrInvalidSession
	}

	return session.IdentityID, nil
}
