package handlers

import (
	"errors"
	"net/http"

	"github.com/Brownie44l1/quickloan/internal/api/dto"
	"github.com/Brownie44l1/quickloan/internal/models"
	"github.com/Brownie44l1/quickloan/internal/service"
	"github.com/gin-gonic/gin"
)

// ==============================================
// RESPONSE HELPERS
// ==============================================

// respondError sends a single non-field error
func respondError(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.ErrorResponse{Error: message})
}

// respondServiceError maps service errors to the HTTP contract: field-level
// failures surface as {"errors": {field: message}}, everything else
// client-caused as {"error": "..."}. All client-caused failures are 400.
func respondServiceError(c *gin.Context, err error) {
	var fieldErrs service.FieldErrors
	if errors.As(err, &fieldErrs) {
		c.JSON(http.StatusBadRequest, dto.FieldErrorResponse{Errors: fieldErrs})
		return
	}

	statusCode, message := mapServiceError(err)
	respondError(c, statusCode, message)
}

// mapServiceError maps service errors to HTTP status codes and messages
func mapServiceError(err error) (int, string) {
	switch {
	case errors.Is(err, models.ErrInvalidPhoneFormat):
		return http.StatusBadRequest, "Invalid phone number format"
	case errors.Is(err, models.ErrNoChallenge):
		return http.StatusBadRequest, "No active OTP for this phone number, request a new one"
	case errors.Is(err, models.ErrOTPExpired):
		return http.StatusBadRequest, "OTP has expired, request a new one"
	case errors.Is(err, models.ErrOTPInvalid):
		return http.StatusBadRequest, "Invalid OTP"
	case errors.Is(err, models.ErrInvalidSession):
		return http.StatusBadRequest, "Invalid or expired session"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}
