package dto

import (
	"github.com/Brownie44l1/quickloan/internal/models"
)

// ==============================================
// APPLICATION REQUEST DTOs
// ==============================================

// SubmitApplicationRequest - Loan details step of the wizard.
//
// No binding tags on purpose: the validator collects every violation into a
// field→message map so the wizard can show all errors at once, which gin's
// fail-fast binding cannot express. Numeric fields are pointers so a missing
// field is distinguishable from a zero.
type SubmitApplicationRequest struct {
	FullName    string `json:"full_name"`
	NationalID  string `json:"national_id"`
	Email       string `json:"email"`
	DateOfBirth string `json:"date_of_birth"` // YYYY-MM-DD
	LoanAmount  *int64 `json:"loan_amount"`   // integer currency units
	LoanTerm    *int   `json:"loan_term"`     // days
	Purpose     string `json:"purpose"`
}

// ==============================================
// APPLICATION RESPONSE DTOs
// ==============================================

// SubmitApplicationResponse
type SubmitApplicationResponse struct {
	Message     string              `json:"message"`
	Application *models.Application `json:"application"`
}

// ApplicationStatusResponse
type ApplicationStatusResponse struct {
	HasApplication bool                `json:"has_application"`
	Application    *models.Application `json:"application,omitempty"`
}
