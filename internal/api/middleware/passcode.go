package middleware

import (
	"crypto/subtle"
	"strings"

	"github.com/gin-gonic/gin"
	"meeting-followup/internal/api/errors"
)

// PasscodeHeader carries the shared team passcode on every API call.
const PasscodeHeader = "X-Passcode"

// Passcode gates the API behind a shared passcode. The comparison is
// case-insensitive: the team has always typed the passcode with whatever
// capitalization they felt like, and locking that down now would only
// generate support requests.
//
// An empty expected passcode disables the gate entirely (local use).
func Passcode(expected string) gin.HandlerFunc {
	normalized := normalizePasscode(expected)

	return func(c *gin.Context) {
		if normalized == "" {
			c.Next()
			return
		}

		supplied := normalizePasscode(c.GetHeader(PasscodeHeader))
		if subtle.ConstantTimeCompare([]byte(supplied), []byte(normalized)) != 1 {
			HandleError(c, errors.NewUnauthorizedError("Invalid or missing passcode"))
			return
		}

		c.Next()
	}
}

func normalizePasscode(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
