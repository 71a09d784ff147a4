package auth

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"
)

// SessionTTL is how long a session token stays valid (24 hours).
// The wizard never observes expiry in practice; this is a defensive bound.
const SessionTTL = 24 * time.Hour

// GenerateSessionToken returns an opaque 256-bit random token, hex encoded.
// Tokens are pure lookup keys and carry no embedded claims.
func GenerateSessionToken() string {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		panic(fmt.Sprintf("token generation failed: %v", err))
	}
	return hex.EncodeToString(buf)
}
