// Package middleware provides the gin middleware chain of the inspection
// service: request IDs, logging, auth, rate limiting, idempotency and
// error rendering.
package middleware

import (
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
)

// photoDownload matches the photo streaming route; image payloads are
// already compressed.
const photoDownload = `^/api/inspections/[^/]+/photos/[^/]+$`

// Compression gzips responses for clients that accept it. /metrics is left
// alone because the Prometheus handler negotiates its own encoding.
func Compression() gin.HandlerFunc {
	return gzip.Gzip(gzip.DefaultCompression,
		gzip.WithExcludedPaths([]string{"/metrics"}),
		gzip.WithExcludedPathsRegexs([]string{photoDownload}),
	)
}
