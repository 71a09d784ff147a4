package service

import (
	"fmt"
	"log"
)

// ==============================================
// SMS SERVICE
// ==============================================

type SMSService struct {
	// Add your SMS provider config here (Africa's Talking, Twilio, etc.)
	// apiKey   string
	// senderID string
}

func NewSMSService() *SMSService {
	return &SMSService{
		// Initialize with config from environment
	}
}

// SendOTP delivers a verification code to a phone number.
//
// Real SMS delivery is out of scope for this service; the code is logged so
// a developer running locally can complete the wizard. Demo deployments pin
// the code via OTP_STATIC_CODE and never need the log line.
func (s *SMSService) SendOTP(phoneNumber, code string) error {
	body := s.getOTPMessage(code)

	log.Printf("[SMS] Sending OTP to %s", phoneNumber)
	log.Printf("[SMS] Body: %s", body)

	// Example using Africa's Talking:
	// return s.sendViaAfricasTalking(phoneNumber, body)

	return nil
}

func (s *SMSService) getOTPMessage(code string) string {
	return fmt.Sprintf("Your QuickLoan verification code is %s. It expires in 5 minutes. If you didn't request this code, ignore this message.", code)
}
