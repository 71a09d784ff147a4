package models

import (
	"time"
)

// ==============================================
// APPLICATION MODEL
// ==============================================

// Application is the single loan application an identity can hold. It is
// immutable once created; resubmission returns the stored record unchanged.
type Application struct {
	ID             string    `db:"id" json:"id"`
	IdentityID     string    `db:"identity_id" json:"-"`
	FullName       string    `db:"full_name" json:"full_name"`
	NationalID     string    `db:"national_id" json:"national_id"`
	Email          string    `db:"email" json:"email"`
	DateOfBirth    string    `db:"date_of_birth" json:"date_of_birth"` // YYYY-MM-DD
	LoanAmount     int64     `db:"loan_amount" json:"loan_amount"`     // integer currency units
	LoanTermDays   int       `db:"loan_term" json:"loan_term"`         // days, not months
	Purpose        string    `db:"purpose" json:"purpose"`
	Status         string    `db:"status" json:"status"`
	DecisionReason string    `db:"decision_reason" json:"decision_reason"`
	SubmittedAt    time.Time `db:"submitted_at" json:"submitted_at"`
}

// ==============================================
// APPLICATION STATUS CONSTANTS
// ==============================================

const (
	StatusApproved = "approved"
	StatusRejected = "rejected" // reserved: never produced by current rules
	StatusPending  = "pending"
)

// ==============================================
// BUSINESS RULES (Constants)
// ==============================================

const (
	MinAge        = 18
	MinLoanAmount = 1000
	MaxLoanAmount = 5000000

	// Decision thresholds
	SeniorAge        = 60
	HighAmountReview = 1000000
)

// AllowedLoanTerms are the selectable loan durations, in days. A separate
// product document expresses terms in months; the served behavior is days
// and callers expecting months will be rejected by validation.
var AllowedLoanTerms = []int{15, 30, 45, 60}

// IsAllowedLoanTerm reports whether term is a selectable duration.
func IsAllowedLoanTerm(term int) bool {
	for _, t := range AllowedLoanTerms {
		if t == term {
			return true
		}
	}
	return false
}
