package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"sync"
	"sync/atomic"
	"time"
)

const baseURL = "http://localhost:8080"

// Concurrency smoke test for the loan API. Run the server with
// OTP_STATIC_CODE=0000, then `go run ./loadtest`. Exercises the race paths:
// simultaneous OTP requests per phone, simultaneous verifications of one
// challenge, and simultaneous submissions per identity.

// ==============================================
// REQUEST MODELS (Match the API exactly)
// ==============================================

type requestOTPRequest struct {
	PhoneNumber string `json:"phone_number"`
}

type verifyOTPRequest struct {
	PhoneNumber string `json:"phone_number"`
	OTP         string `json:"otp"`
}

type submitRequest struct {
	FullName    string `json:"full_name"`
	NationalID  string `json:"national_id"`
	DateOfBirth string `json:"date_of_birth"`
	LoanAmount  int64  `json:"loan_amount"`
	LoanTerm    int    `json:"loan_term"`
	Purpose     string `json:"purpose"`
}

// ==============================================
// METRICS
// ==============================================

type metrics struct {
	totalRequests   int64
	successRequests int64
	status400       int64
	status500       int64
}

var m metrics

// ==============================================
// HELPER FUNCTIONS
// ==============================================

func postJSON(client *http.Client, path, token string, payload any) (int, map[string]any) {
	body, _ := json.Marshal(payload)
	req, err := http.NewRequest("POST", baseURL+path, bytes.NewReader(body))
	if err != nil {
		return 0, nil
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := client.Do(req)
	if err != nil {
		fmt.Println("request failed:", err)
		return 0, nil
	}
	defer resp.Body.Close()

	atomic.AddInt64(&m.totalRequests, 1)
	switch {
	case resp.StatusCode == http.StatusOK:
		atomic.AddInt64(&m.successRequests, 1)
	case resp.StatusCode == http.StatusBadRequest:
		atomic.AddInt64(&m.status400, 1)
	case resp.StatusCode >= 500:
		atomic.AddInt64(&m.status500, 1)
	}

	raw, _ := io.ReadAll(resp.Body)
	var out map[string]any
	_ = json.Unmarshal(raw, &out)
	return resp.StatusCode, out
}

func checkHealth(client *http.Client) bool {
	resp, err := client.Get(baseURL + "/health")
	if err != nil {
		fmt.Println("❌ Health check failed:", err)
		return false
	}
	defer resp.Body.Close()
	fmt.Printf("✅ Health check passed: %d\n", resp.StatusCode)
	return resp.StatusCode == http.StatusOK
}

func authenticate(client *http.Client, phone string) (string, bool) {
	if code, _ := postJSON(client, "/api/auth/request-otp", "", requestOTPRequest{PhoneNumber: phone}); code != http.StatusOK {
		return "", false
	}
	code, body := postJSON(client, "/api/auth/verify-otp", "", verifyOTPRequest{PhoneNumber: phone, OTP: "0000"})
	if code != http.StatusOK {
		return "", false
	}
	token, _ := body["session_token"].(string)
	return token, token != ""
}

// ==============================================
// SCENARIOS
// ==============================================

// concurrent OTP requests for the same phone: last write wins, no errors
func stormOTPRequests(client *http.Client, phone string, workers int) {
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			postJSON(client, "/api/auth/request-otp", "", requestOTPRequest{PhoneNumber: phone})
		}()
	}
	wg.Wait()
}

// concurrent verifications of one challenge: exactly one session per code use
func stormVerify(client *http.Client, phone string, workers int) int64 {
	postJSON(client, "/api/auth/request-otp", "", requestOTPRequest{PhoneNumber: phone})

	var sessions int64
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if code, _ := postJSON(client, "/api/auth/verify-otp", "", verifyOTPRequest{PhoneNumber: phone, OTP: "0000"}); code == http.StatusOK {
				atomic.AddInt64(&sessions, 1)
			}
		}()
	}
	wg.Wait()
	return sessions
}

// concurrent submissions for one identity: one application, many readers
func stormSubmit(client *http.Client, token string, workers int) map[string]int64 {
	ids := make(map[string]int64)
	var mu sync.Mutex

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			code, body := postJSON(client, "/api/application/submit", token, submitRequest{
				FullName:    "Load Tester",
				NationalID:  "CM0000001",
				DateOfBirth: "1990-01-15",
				LoanAmount:  int64(45000 + i), // differing payloads on purpose
				LoanTerm:    30,
				Purpose:     "load test",
			})
			if code != http.StatusOK {
				return
			}
			if app, ok := body["application"].(map[string]any); ok {
				if id, ok := app["id"].(string); ok {
					mu.Lock()
					ids[id]++
					mu.Unlock()
				}
			}
		}(i)
	}
	wg.Wait()
	return ids
}

// ==============================================
// MAIN
// ==============================================

func main() {
	client := &http.Client{Timeout: 10 * time.Second}

	if !checkHealth(client) {
		fmt.Println("Start the server first: OTP_STATIC_CODE=0000 go run ./cmd/server")
		os.Exit(1)
	}

	start := time.Now()

	fmt.Println("\n--- storm: OTP requests, one phone ---")
	stormOTPRequests(client, "+256700000100", 50)

	fmt.Println("--- storm: verifications, one challenge ---")
	sessions := stormVerify(client, "+256700000101", 50)
	fmt.Printf("sessions minted: %d (challenge consumed once, later requests re-challenge)\n", sessions)

	fmt.Println("--- storm: submissions, one identity ---")
	token, ok := authenticate(client, "+256700000102")
	if !ok {
		fmt.Println("❌ could not authenticate")
		os.Exit(1)
	}
	ids := stormSubmit(client, token, 50)
	fmt.Printf("distinct application ids: %d (must be 1)\n", len(ids))
	if len(ids) != 1 {
		fmt.Println("❌ FAIL: duplicate applications created under race")
		os.Exit(1)
	}

	fmt.Printf("\nDone in %v\n", time.Since(start))
	fmt.Printf("requests: %d, ok: %d, 400: %d, 5xx: %d\n",
		atomic.LoadInt64(&m.totalRequests),
		atomic.LoadInt64(&m.successRequests),
		atomic.LoadInt64(&m.status400),
		atomic.LoadInt64(&m.status500),
	)
	if atomic.LoadInt64(&m.status500) > 0 {
		fmt.Println("❌ FAIL: server errors under load")
		os.Exit(1)
	}
	fmt.Println("✅ PASS")
}
