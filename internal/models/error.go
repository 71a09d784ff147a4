package models

import (
	"errors"
)

// ==============================================
// PREDEFINED ERRORS
// ==============================================

// Phone/Auth errors
var (
	ErrInvalidPhoneFormat = errors.New("invalid phone number format")
	ErrNoChallenge        = errors.New("no active OTP challenge for this phone number")
	ErrOTPExpired         = errors.New("OTP has expired")
	ErrOTPInvalid         = errors.New("invalid OTP")
)

// Session errors
var (
	ErrInvalidSession = errors.New("invalid or expired session")
)

// ==============================================
// ERROR CODES (for API responses)
// ==============================================

const (
	ErrCodeInvalidPhone     = "INVALID_PHONE_FORMAT"
	ErrCodeNoChallenge      = "NO_CHALLENGE"
	ErrCodeOTPExpired       = "OTP_EXPIRED"
	ErrCodeOTPInvalid       = "OTP_INVALID"
	ErrCodeInvalidSession   = "INVALID_SESSION"
	ErrCodeValidationFailed = "VALIDATION_FAILED"
	ErrCodeInternalError    = "INTERNAL_ERROR"
)

// ==============================================
// HELPER FUNCTIONS
// ==============================================

// IsAuthError checks if error is OTP/session related
func IsAuthError(err error) bool {
	return errors.Is(err, ErrNoChallenge) ||
		errors.Is(err, ErrOTPExpired) ||
		errors.Is(err, ErrOTPInvalid) ||
		errors.Is(err, ErrInvalidSession)
}

// IsClientError checks if error is caused by the caller and therefore
// recoverable by re-entering the relevant wizard step
func IsClientError(err error) bool {
	return errors.Is(err, ErrInvalidPhoneFormat) || IsAuthError(err)
}
