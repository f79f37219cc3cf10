package http

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// Browsers may reuse a preflight answer for this long. The front-end only
// ever sends GET /places and POST /predict, so the answer never varies.
const preflightMaxAge = 10 * time.Minute

// originPolicy decides which Origin the weather front-end is served under.
// An empty list, or one containing "*", allows any origin.
type originPolicy struct {
	any      bool
	allowed  map[string]struct{}
	fallback string
}

func newOriginPolicy(origins []string) originPolicy {
	p := originPolicy{allowed: make(map[string]struct{}, len(origins))}
	for _, o := range origins {
		if o == "*" {
			return originPolicy{any: true}
		}
		p.allowed[strings.ToLower(o)] = struct{}{}
	}
	if len(origins) == 0 {
		p.any = true
		return p
	}
	p.fallback = origins[0]
	return p
}

// allowOrigin returns the Access-Control-Allow-Origin value for a request.
// A disallowed origin gets the first configured one, which the browser rejects.
func (p originPolicy) allowOrigin(origin string) string {
	if p.any {
		return "*"
	}
	if _, ok := p.allowed[strings.ToLower(origin)]; ok && origin != "" {
		return origin
	}
	return p.fallback
}

func corsMiddleware(origins []string) gin.HandlerFunc {
	policy := newOriginPolicy(origins)
	maxAge := strconv.Itoa(int(preflightMaxAge.Seconds()))
	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("Access-Control-Allow-Origin", policy.allowOrigin(c.GetHeader("Origin")))
		h.Add("Vary", "Origin")
		if c.Request.Method != http.MethodOptions {
			c.Next()
			return
		}
		h.Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		h.Set("Access-Control-Allow-Headers", "Content-Type")
		h.Set("Access-Control-Max-Age", maxAge)
		c.AbortWithStatus(http.StatusNoContent)
	}
}
