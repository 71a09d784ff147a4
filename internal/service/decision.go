package service

import (
	"github.com/Brownie44l1/quickloan/internal/models"
)

// ==============================================
// DECISION ENGINE
// ==============================================

// Decision is the outcome of rule evaluation for a validated application.
type Decision struct {
	Status string
	Reason string
}

// Decision reasons
const (
	ReasonSeniorReview     = "manual review required for senior applicants"
	ReasonHighAmountReview = "manual review required for high loan amount"
	ReasonAutoApproved     = "automated decision based on initial criteria"
)

// Decide evaluates the decision rules for a validated application.
// Pure function: deterministic, no side effects, no I/O. First match wins.
//
// Note the asymmetry: "rejected" is a legal application status but no rule
// produces it - on valid input rejection only ever comes from validation
// failing before this function runs. The status is reserved for future
// rules; do not add a rejection path here without a product decision.
func Decide(app ValidatedApplication) Decision {
	if app.Age >= models.SeniorAge {
		return Decision{Status: models.StatusPending, Reason: ReasonSeniorReview}
	}

	if app.LoanAmount >= models.HighAmountReview {
		return Decision{Status: models.StatusPending, Reason: ReasonHighAmountReview}
	}

	return Decision{Status: models.StatusApproved, Reason: ReasonAutoApproved}
}
