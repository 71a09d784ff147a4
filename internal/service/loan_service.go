package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/Brownie44l1/quickloan/internal/api/dto"
	"github.com/Brownie44l1/quickloan/internal/models"
	"github.com/Brownie44l1/quickloan/internal/repository"
	"github.com/google/uuid"
)

// ==============================================
// LOAN SERVICE
// ==============================================

type LoanService struct {
	applications ApplicationStore
}

func NewLoanService(applications ApplicationStore) *LoanService {
	return &LoanService{applications: applications}
}

// ==============================================
// SUBMIT
// ==============================================

// Submit validates the payload, runs the decision rules and stores the
// application. Resubmission is idempotent: if the identity already holds an
// application, that record is returned unchanged no matter what the new
// payload says.
func (s *LoanService) Submit(ctx context.Context, identityID string, req dto.SubmitApplicationRequest) (*models.Application, error) {
	// 1. Idempotency first - an existing application wins over any payload,
	// valid or not
	existing, err := s.applications.GetByIdentity(ctx, identityID)
	if err != nil && !errors.Is(err, repository.ErrApplicationNotFound) {
		return nil, fmt.Errorf("failed to check existing application: %w", err)
	}
	if existing != nil {
		log.Printf("[SUBMIT] Duplicate submission - IdentityID: %s, returning application %s", identityID, existing.ID)
		return existing, nil
	}

	// 2. Validate everything before any mutation
	now := time.Now()
	validated, fieldErrs := ValidateApplication(req, now)
	if fieldErrs != nil {
		log.Printf("[SUBMIT] Validation failed - IdentityID: %s, Fields: %v", identityID, fieldErrs)
		return nil, fieldErrs
	}

	// 3. Decide
	decision := Decide(*validated)

	// 4. Persist; CreateIfAbsent covers the race where two submissions for
	// the same identity pass the check in step 1 simultaneously
	app := &models.Application{
		ID:             uuid.NewString(),
		IdentityID:     identityID,
		FullName:       validated.FullName,
		NationalID:     validated.NationalID,
		Email:          validated.Email,
		DateOfBirth:    validated.DateOfBirth,
		LoanAmount:     validated.LoanAmount,
		LoanTermDays:   validated.LoanTermDays,
		Purpose:        validated.Purpose,
		Status:         decision.Status,
		DecisionReason: decision.Reason,
		SubmittedAt:    now,
	}

	stored, created, err := s.applications.CreateIfAbsent(ctx, app)
	if err != nil {
		return nil, fmt.Errorf("failed to store application: %w", err)
	}

	if created {
		log.Printf("[SUBMIT] Decided - IdentityID: %s, ApplicationID: %s, Status: %s", identityID, stored.ID, stored.Status)
	} else {
		log.Printf("[SUBMIT] Lost submission race - IdentityID: %s, returning application %s", identityID, stored.ID)
	}

	return stored, nil
}

// ==============================================
// STATUS
// ==============================================

// Status returns the identity's application, or nil if none was submitted.
func (s *LoanService) Status(ctx context.Context, identityID string) (*models.Application, error) {
	app, err := s.applications.GetByIdentity(ctx, identityID)
	if err != nil {
		if errors.Is(err, repository.ErrApplicationNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get application: %w", err)
	}
	return app, nil
}
