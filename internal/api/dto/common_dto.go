package dto

// ==============================================
// COMMON RESPONSE DTOs
// ==============================================

// ErrorResponse - Single non-field failure
type ErrorResponse struct {
	Error string `json:"error"`
}

// FieldErrorResponse - Field-level validation failures
type FieldErrorResponse struct {
	Errors map[string]string `json:"errors"`
}

// HealthResponse - API health check
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Version   string `json:"version,omitempty"`
}
