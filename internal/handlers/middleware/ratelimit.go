package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-chi/httprate"

	"github.com/rafabene/federa-backend/internal/handlers/dto"
)

type ginContextKey struct{}

// RateLimit limita requisições por IP usando httprate; excedentes recebem 429
func RateLimit(requests int, window time.Duration) gin.HandlerFunc {
	limiter := httprate.Limit(requests, window,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			if c, ok := r.Context().Value(ginContextKey{}).(*gin.Context); ok {
				dto.Abort(c, dto.RateLimitedErrorResponseI18n(c))
				return
			}
			http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
		}),
	)

	return func(c *gin.Context) {
		passed := false
		next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
			passed = true
			c.Next()
		})

		req := c.Request.WithContext(context.WithValue(c.Request.Context(), ginContextKey{}, c))
		limiter(next).ServeHTTP(c.Writer, req)

		if !passed {
			c.Abort()
		}
	}
}
