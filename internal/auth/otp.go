package auth

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// OTPLength is the number of digits in a generated code.
const OTPLength = 4

// GenerateOTP generates a random 4-digit OTP.
//
// Demo deployments pin the code via config instead of calling this, so a
// tester can complete the wizard without a real delivery channel.
func GenerateOTP() string {
	max := big.NewInt(10000)
	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		// crypto/rand only fails when the OS entropy source is broken
		panic(fmt.Sprintf("otp generation failed: %v", err))
	}
	return fmt.Sprintf("%04d", n.Int64())
}
