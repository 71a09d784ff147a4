package service

import (
	"testing"

	"github.com/Brownie44l1/quickloan/internal/models"
	"github.com/stretchr/testify/assert"
)

func decisionInput(age int, amount int64) ValidatedApplication {
	return ValidatedApplication{
		FullName:     "Jane Doe",
		NationalID:   "CM1234567",
		DateOfBirth:  "1990-01-15",
		Age:          age,
		LoanAmount:   amount,
		LoanTermDays: 30,
		Purpose:      "school fees",
	}
}

func TestDecide_Approved(t *testing.T) {
	d := Decide(decisionInput(36, 45000))

	assert.Equal(t, models.StatusApproved, d.Status)
	assert.Equal(t, ReasonAutoApproved, d.Reason)
}

func TestDecide_SeniorAlwaysPending(t *testing.T) {
	// senior rule wins regardless of amount
	for _, amount := range []int64{1000, 45000, 999999, 1000000, 5000000} {
		d := Decide(decisionInput(65, amount))
		assert.Equal(t, models.StatusPending, d.Status)
		assert.Equal(t, ReasonSeniorReview, d.Reason)
	}

	// boundary: exactly 60 is senior
	d := Decide(decisionInput(60, 45000))
	assert.Equal(t, models.StatusPending, d.Status)
	assert.Equal(t, ReasonSeniorReview, d.Reason)
}

func TestDecide_HighAmountPending(t *testing.T) {
	d := Decide(decisionInput(36, 1000000))
	assert.Equal(t, models.StatusPending, d.Status)
	assert.Equal(t, ReasonHighAmountReview, d.Reason)

	d = Decide(decisionInput(36, 999999))
	assert.Equal(t, models.StatusApproved, d.Status)
}

func TestDecide_Deterministic(t *testing.T) {
	in := decisionInput(59, 999999)

	first := Decide(in)
	for i := 0; i < 100; i++ {
		assert.Equal(t, first, Decide(in))
	}
}

func TestDecide_NeverRejects(t *testing.T) {
	// no combination of valid inputs produces a rejection - rejection only
	// ever comes from validation, by design
	for _, age := range []int{18, 25, 59, 60, 99} {
		for _, amount := range []int64{1000, 49999, 999999, 1000000, 5000000} {
			d := Decide(decisionInput(age, amount))
			assert.NotEqual(t, models.StatusRejected, d.Status)
		}
	}
}
