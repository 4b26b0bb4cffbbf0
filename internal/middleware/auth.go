package middleware

import (
	"crypto/subtle"

	"github.com/gin-gonic/gin"
	"github.com/inspectwise/inspection-service/internal/i18n"
)

const (
	// APIKeyHeader carries the API key.
	APIKeyHeader = "X-API-Key"
	// APIKeyQuery is accepted for photo links opened directly in a browser.
	APIKeyQuery = "api_key"
)

// APIKeyAuth admits requests carrying one of validKeys in the X-API-Key
// header or the api_key query parameter. With no keys configured every
// request is admitted.
func APIKeyAuth(validKeys map[string]bool) gin.HandlerFunc {
	keys := make([][]byte, 0, len(validKeys))
	for k, ok := range validKeys {
		if ok {
			keys = append(keys, []byte(k))
		}
	}

	return func(c *gin.Context) {
		if len(keys) == 0 {
			c.Next()
			return
		}

		key := c.GetHeader(APIKeyHeader)
		if key == "" {
			key = c.Query(APIKeyQuery)
		}

		if key == "" {
			abortUnauthorized(c, i18n.ErrKeyAPIKeyRequired)
			return
		}
		if !matchesAny(keys, []byte(key)) {
			abortUnauthorized(c, i18n.ErrKeyInvalidAPIKey)
			return
		}

		c.Next()
	}
}

// matchesAny compares against every key in constant time.
func matchesAny(keys [][]byte, candidate []byte) bool {
	found := 0
	for _, k := range keys {
		found |= subtle.ConstantTimeCompare(k, candidate)
	}
	return found == 1
}
