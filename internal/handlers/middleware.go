package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// identityKey is the gin context key carrying the resolved applicant identity.
const identityKey = "identity_id"

// SessionAuth resolves the bearer session token into an applicant identity
// before any per-identity state is touched. The wizard UI enforces step
// order client-side; this is the server refusing out-of-order calls.
func SessionAuth(auth AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))

		identityID, err := auth.ResolveSession(c.Request.Context(), token)
		if err != nil {
			// 400 across the board for client-caused failures, invalid
			// sessions included
			respondServiceError(c, err)
			c.Abort()
			return
		}

		c.Set(identityKey, identityID)
		c.Next()
	}
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimPrefix(header, prefix)
}

func identityFromContext(c *gin.Context) string {
	return c.GetString(identityKey)
}
