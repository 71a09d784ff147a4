package service

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/Brownie44l1/quickloan/internal/api/dto"
	"github.com/Brownie44l1/quickloan/internal/models"
)

// ==============================================
// FIELD ERRORS
// ==============================================

// FieldErrors maps a request field name to a human-readable violation.
// Every field is checked and every violation collected - never fail-fast -
// so the wizard can show all problems at once.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fmt.Sprintf("validation failed: %s", strings.Join(fields, ", "))
}

// ==============================================
// VALIDATED APPLICATION
// ==============================================

// ValidatedApplication is an application payload that passed every field
// check and is safe to hand to the decision engine.
type ValidatedApplication struct {
	FullName     string
	NationalID   string
	Email        string
	DateOfBirth  string // YYYY-MM-DD, as submitted
	Age          int    // whole years at validation time
	LoanAmount   int64
	LoanTermDays int
	Purpose      string
}

// ==============================================
// VALIDATION RULES
// ==============================================

const dateLayout = "2006-01-02"

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// ValidateApplication checks every field of a submission and returns either
// a ValidatedApplication or the full set of violations. A submission with
// any invalid field never reaches the decision engine or the store.
func ValidateApplication(req dto.SubmitApplicationRequest, now time.Time) (*ValidatedApplication, FieldErrors) {
	errs := FieldErrors{}

	fullName := strings.TrimSpace(req.FullName)
	if fullName == "" {
		errs["full_name"] = "Full name is required"
	}

	nationalID := strings.TrimSpace(req.NationalID)
	if nationalID == "" {
		errs["national_id"] = "National ID is required"
	}

	email := strings.TrimSpace(req.Email)
	if email != "" && !emailPattern.MatchString(email) {
		errs["email"] = "Invalid email format"
	}

	age := 0
	dateOfBirth := strings.TrimSpace(req.DateOfBirth)
	if dob, err := time.Parse(dateLayout, dateOfBirth); err != nil {
		errs["date_of_birth"] = "Invalid date format (use YYYY-MM-DD)"
	} else {
		age = ageAt(dob, now)
		if age < models.MinAge {
			errs["date_of_birth"] = fmt.Sprintf("Must be at least %d years old", models.MinAge)
		}
	}

	var amount int64
	if req.LoanAmount == nil {
		errs["loan_amount"] = "Loan amount is required"
	} else {
		amount = *req.LoanAmount
		if amount < models.MinLoanAmount {
			errs["loan_amount"] = fmt.Sprintf("Loan amount must be at least %d", models.MinLoanAmount)
		} else if amount > models.MaxLoanAmount {
			errs["loan_amount"] = fmt.Sprintf("Loan amount cannot exceed %d", models.MaxLoanAmount)
		}
	}

	term := 0
	if req.LoanTerm == nil {
		errs["loan_term"] = "Loan term is required"
	} else {
		term = *req.LoanTerm
		if !models.IsAllowedLoanTerm(term) {
			// "days" is spelled out: a separate product document lists terms
			// in months and callers built against it must fail loudly here
			errs["loan_term"] = fmt.Sprintf("Loan term must be one of: %s days", joinTerms(models.AllowedLoanTerms))
		}
	}

	purpose := strings.TrimSpace(req.Purpose)
	if purpose == "" {
		errs["purpose"] = "Purpose is required"
	}

	if len(errs) > 0 {
		return nil, errs
	}

	return &ValidatedApplication{
		FullName:     fullName,
		NationalID:   nationalID,
		Email:        email,
		DateOfBirth:  dateOfBirth,
		Age:          age,
		LoanAmount:   amount,
		LoanTermDays: term,
		Purpose:      purpose,
	}, nil
}

// ageAt returns whole years between dob and now; the year a birthday has not
// yet occurred does not count, so someone turning 18 today is exactly 18.
func ageAt(dob, now time.Time) int {
	age := now.Year() - dob.Year()
	if now.Month() < dob.Month() || (now.Month() == dob.Month() && now.Day() < dob.Day()) {
		age--
	}
	return age
}

func joinTerms(terms []int) string {
	parts := make([]string, len(terms))
	for i, t := range terms {
		parts[i] = fmt.Sprintf("%d", t)
	}
	return strings.Join(parts, ", ")
}
