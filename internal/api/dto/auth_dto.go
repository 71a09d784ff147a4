package dto

// ==============================================
// AUTH REQUEST DTOs
// ==============================================

// RequestOTPRequest - Start of the wizard: ask for a code on a phone number
type RequestOTPRequest struct {
	PhoneNumber string `json:"phone_number" binding:"required"`
}

// VerifyOTPRequest - Exchange phone + code for a session token
type VerifyOTPRequest struct {
	PhoneNumber string `json:"phone_number" binding:"required"`
	OTP         string `json:"otp" binding:"required"`
}

// ==============================================
// AUTH RESPONSE DTOs
// ==============================================

// RequestOTPResponse
type RequestOTPResponse struct {
	Message     string `json:"message"`
	PhoneNumber string `json:"phone_number"` // canonical form
}

// VerifyOTPResponse
type VerifyOTPResponse struct {
	Message      string `json:"message"`
	SessionToken string `json:"session_token"`
	PhoneNumber  string `json:"phone_number"`
}
