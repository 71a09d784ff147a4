package service

import (
	"context"
	"sync"
	"testing"

	"github.com/Brownie44l1/quickloan/internal/models"
	"github.com/Brownie44l1/quickloan/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLoanService() *LoanService {
	return NewLoanService(repository.NewMemoryApplicationStore())
}

// ==============================================
// SUBMIT TESTS
// ==============================================

func TestSubmit_Approved(t *testing.T) {
	ctx := context.Background()
	svc := newLoanService()

	app, err := svc.Submit(ctx, "identity-1", validSubmitRequest())

	require.NoError(t, err)
	assert.NotEmpty(t, app.ID)
	assert.Equal(t, models.StatusApproved, app.Status)
	assert.Equal(t, ReasonAutoApproved, app.DecisionReason)
	assert.Equal(t, int64(45000), app.LoanAmount)
	assert.Equal(t, 30, app.LoanTermDays)
}

func TestSubmit_SeniorPending(t *testing.T) {
	ctx := context.Background()
	svc := newLoanService()

	req := validSubmitRequest()
	req.DateOfBirth = "1950-01-15"

	app, err := svc.Submit(ctx, "identity-1", req)

	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, app.Status)
	assert.Equal(t, ReasonSeniorReview, app.DecisionReason)
}

func TestSubmit_HighAmountPending(t *testing.T) {
	ctx := context.Background()
	svc := newLoanService()

	req := validSubmitRequest()
	req.LoanAmount = int64Ptr(1500000)

	app, err := svc.Submit(ctx, "identity-1", req)

	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, app.Status)
	assert.Equal(t, ReasonHighAmountReview, app.DecisionReason)
}

func TestSubmit_ValidationFailureStoresNothing(t *testing.T) {
	ctx := context.Background()
	svc := newLoanService()

	req := validSubmitRequest()
	req.LoanAmount = int64Ptr(999)
	req.Purpose = ""

	_, err := svc.Submit(ctx, "identity-1", req)

	var fieldErrs FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Contains(t, fieldErrs, "loan_amount")
	assert.Contains(t, fieldErrs, "purpose")

	// nothing reached the store
	app, err := svc.Status(ctx, "identity-1")
	require.NoError(t, err)
	assert.Nil(t, app)
}

func TestSubmit_Idempotent(t *testing.T) {
	ctx := context.Background()
	svc := newLoanService()

	first, err := svc.Submit(ctx, "identity-1", validSubmitRequest())
	require.NoError(t, err)

	// a second submit with a different (even invalid) payload returns the
	// first application unchanged
	second := validSubmitRequest()
	second.LoanAmount = int64Ptr(2000000)
	second.Purpose = ""

	resubmitted, err := svc.Submit(ctx, "identity-1", second)

	require.NoError(t, err)
	assert.Equal(t, first.ID, resubmitted.ID)
	assert.Equal(t, first.LoanAmount, resubmitted.LoanAmount)
	assert.Equal(t, first.Status, resubmitted.Status)
}

func TestSubmit_IsolatedPerIdentity(t *testing.T) {
	ctx := context.Background()
	svc := newLoanService()

	a, err := svc.Submit(ctx, "identity-a", validSubmitRequest())
	require.NoError(t, err)

	b, err := svc.Submit(ctx, "identity-b", validSubmitRequest())
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)
}

func TestSubmit_ConcurrentSingleApplication(t *testing.T) {
	ctx := context.Background()
	svc := newLoanService()

	const workers = 20
	results := make([]*models.Application, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			app, err := svc.Submit(ctx, "identity-1", validSubmitRequest())
			assert.NoError(t, err)
			results[i] = app
		}(i)
	}
	wg.Wait()

	// every racer got the same single application
	for _, app := range results {
		require.NotNil(t, app)
		assert.Equal(t, results[0].ID, app.ID)
	}
}

// ==============================================
// STATUS TESTS
// ==============================================

func TestStatus(t *testing.T) {
	ctx := context.Background()
	svc := newLoanService()

	app, err := svc.Status(ctx, "identity-1")
	require.NoError(t, err)
	assert.Nil(t, app)

	submitted, err := svc.Submit(ctx, "identity-1", validSubmitRequest())
	require.NoError(t, err)

	app, err = svc.Status(ctx, "identity-1")
	require.NoError(t, err)
	require.NotNil(t, app)
	assert.Equal(t, submitted.ID, app.ID)
}
