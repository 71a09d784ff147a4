package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Brownie44l1/quickloan/internal/handlers"
	"github.com/Brownie44l1/quickloan/internal/repository"
	"github.com/Brownie44l1/quickloan/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==============================================
// TEST SETUP
// ==============================================

const testOTP = "0000"

// setupRouter wires the real services against in-memory stores, the same
// shape cmd/server/main.go builds for a demo deployment.
func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	authService := service.NewAuthService(
		repository.NewMemoryChallengeStore(),
		repository.NewMemoryApplicantStore(),
		repository.NewMemorySessionStore(),
		service.NewSMSService(),
		testOTP,
	)
	loanService := service.NewLoanService(repository.NewMemoryApplicationStore())

	handlers.NewHealthHandler().RegisterRoutes(router)
	handlers.NewAuthHandler(authService).RegisterRoutes(router)
	handlers.NewApplicationHandler(loanService).RegisterRoutes(router, authService)

	return router
}

func doJSON(router *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			panic(err)
		}
	}

	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

// authenticate walks the OTP steps and returns a session token.
func authenticate(t *testing.T, router *gin.Engine, phoneNumber string) string {
	t.Helper()

	w := doJSON(router, "POST", "/api/auth/request-otp", "", gin.H{"phone_number": phoneNumber})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(router, "POST", "/api/auth/verify-otp", "", gin.H{"phone_number": phoneNumber, "otp": testOTP})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	token, ok := decode(t, w)["session_token"].(string)
	require.True(t, ok)
	require.NotEmpty(t, token)
	return token
}

func validApplication() gin.H {
	return gin.H{
		"full_name":     "Jane Doe",
		"national_id":   "CM1234567",
		"email":         "jane@example.com",
		"date_of_birth": "1990-01-15",
		"loan_amount":   45000,
		"loan_term":     30,
		"purpose":       "school fees",
	}
}

// ==============================================
// WIZARD FLOW TESTS
// ==============================================

func TestFullFlow_Approved(t *testing.T) {
	router := setupRouter()
	token := authenticate(t, router, "+256700000001")

	// no application yet
	w := doJSON(router, "GET", "/api/application/status", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, decode(t, w)["has_application"])

	// submit
	w = doJSON(router, "POST", "/api/application/submit", token, validApplication())
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	app := decode(t, w)["application"].(map[string]any)
	assert.Equal(t, "approved", app["status"])
	assert.Equal(t, float64(45000), app["loan_amount"])

	// status now reflects the decision
	w = doJSON(router, "GET", "/api/application/status", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, true, body["has_application"])
	assert.Equal(t, "approved", body["application"].(map[string]any)["status"])
}

func TestFullFlow_SeniorPending(t *testing.T) {
	router := setupRouter()
	token := authenticate(t, router, "+256700000002")

	payload := validApplication()
	// 65 years old as of today
	payload["date_of_birth"] = time.Now().AddDate(-65, 0, -1).Format("2006-01-02")

	w := doJSON(router, "POST", "/api/application/submit", token, payload)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	app := decode(t, w)["application"].(map[string]any)
	assert.Equal(t, "pending", app["status"])
	assert.Contains(t, app["decision_reason"], "senior")
}

func TestFullFlow_HighAmountPending(t *testing.T) {
	router := setupRouter()
	token := authenticate(t, router, "+256700000003")

	payload := validApplication()
	payload["loan_amount"] = 1500000

	w := doJSON(router, "POST", "/api/application/submit", token, payload)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	app := decode(t, w)["application"].(map[string]any)
	assert.Equal(t, "pending", app["status"])
	assert.Contains(t, app["decision_reason"], "high loan amount")
}

func TestSubmit_Resubmission(t *testing.T) {
	router := setupRouter()
	token := authenticate(t, router, "+256700000004")

	w := doJSON(router, "POST", "/api/application/submit", token, validApplication())
	require.Equal(t, http.StatusOK, w.Code)
	firstID := decode(t, w)["application"].(map[string]any)["id"]

	// different payload, same identity: first record comes back unchanged
	payload := validApplication()
	payload["loan_amount"] = 250000

	w = doJSON(router, "POST", "/api/application/submit", token, payload)
	require.Equal(t, http.StatusOK, w.Code)
	app := decode(t, w)["application"].(map[string]any)
	assert.Equal(t, firstID, app["id"])
	assert.Equal(t, float64(45000), app["loan_amount"])
}

// ==============================================
// AUTH FAILURE TESTS
// ==============================================

func TestRequestOTP_BadPhone(t *testing.T) {
	router := setupRouter()

	w := doJSON(router, "POST", "/api/auth/request-otp", "", gin.H{"phone_number": "12345"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decode(t, w)["error"], "phone number")
}

func TestVerifyOTP_WrongCode(t *testing.T) {
	router := setupRouter()

	w := doJSON(router, "POST", "/api/auth/request-otp", "", gin.H{"phone_number": "0700000005"})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, "POST", "/api/auth/verify-otp", "", gin.H{"phone_number": "0700000005", "otp": "9999"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decode(t, w)["error"], "Invalid OTP")
}

func TestVerifyOTP_WithoutChallenge(t *testing.T) {
	router := setupRouter()

	w := doJSON(router, "POST", "/api/auth/verify-otp", "", gin.H{"phone_number": "0700000006", "otp": testOTP})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPhoneFormsShareChallenge(t *testing.T) {
	router := setupRouter()

	// request with the local form, verify with the prefixed form
	w := doJSON(router, "POST", "/api/auth/request-otp", "", gin.H{"phone_number": "0700000007"})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, "POST", "/api/auth/verify-otp", "", gin.H{"phone_number": "+256700000007", "otp": testOTP})
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
}

func TestAuthenticatedRoutes_RequireSession(t *testing.T) {
	router := setupRouter()

	for _, call := range []struct {
		method, path string
		body         any
	}{
		{"GET", "/api/application/status", nil},
		{"POST", "/api/application/submit", validApplication()},
	} {
		// no token
		w := doJSON(router, call.method, call.path, "", call.body)
		assert.Equal(t, http.StatusBadRequest, w.Code, "%s %s without token", call.method, call.path)

		// garbage token
		w = doJSON(router, call.method, call.path, "not-a-real-token", call.body)
		assert.Equal(t, http.StatusBadRequest, w.Code, "%s %s with bad token", call.method, call.path)
	}
}

// ==============================================
// VALIDATION SURFACE TESTS
// ==============================================

func TestSubmit_FieldErrorsPayload(t *testing.T) {
	router := setupRouter()
	token := authenticate(t, router, "+256700000008")

	payload := validApplication()
	payload["loan_amount"] = 999
	payload["loan_term"] = 90
	payload["purpose"] = ""

	w := doJSON(router, "POST", "/api/application/submit", token, payload)

	require.Equal(t, http.StatusBadRequest, w.Code)
	errs := decode(t, w)["errors"].(map[string]any)
	assert.Contains(t, errs, "loan_amount")
	assert.Contains(t, errs, "loan_term")
	assert.Contains(t, errs, "purpose")

	// the failed submission stored nothing
	w = doJSON(router, "GET", "/api/application/status", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, decode(t, w)["has_application"])
}

func TestSubmit_AmountBoundariesOverHTTP(t *testing.T) {
	router := setupRouter()

	for i, tc := range []struct {
		amount int
		ok     bool
	}{
		{999, false},
		{1000, true},
		{5000000, true},
		{5000001, false},
	} {
		token := authenticate(t, router, fmt.Sprintf("+25670000010%d", i))

		payload := validApplication()
		payload["loan_amount"] = tc.amount

		w := doJSON(router, "POST", "/api/application/submit", token, payload)

		if tc.ok {
			assert.Equal(t, http.StatusOK, w.Code, "amount %d", tc.amount)
		} else {
			assert.Equal(t, http.StatusBadRequest, w.Code, "amount %d", tc.amount)
		}
	}
}
