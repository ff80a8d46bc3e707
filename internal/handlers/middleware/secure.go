package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/unrolled/secure"

	"github.com/rafabene/federa-backend/internal/domain/ports"
)

// SecureHeaders aplica cabeçalhos de segurança com unrolled/secure
func SecureHeaders(production bool, logger ports.Logger) gin.HandlerFunc {
	secureMiddleware := secure.New(secure.Options{
		FrameDeny:          true,
		ContentTypeNosniff: true,
		BrowserXssFilter:   true,
		ReferrerPolicy:     "strict-origin-when-cross-origin",
		SSLRedirect:        production,
		SSLProxyHeaders:    map[string]string{"X-Forwarded-Proto": "https"},
		STSSeconds:         31536000,
		IsDevelopment:      !production,
	})

	return func(c *gin.Context) {
		if err := secureMiddleware.Process(c.Writer, c.Request); err != nil {
			logger.Warn("secure headers blocked request", "error", err, "path", c.Request.URL.Path)
			c.Abort()
			return
		}

		// redirect para HTTPS já foi escrito
		if status := c.Writer.Status(); status > 300 && status < 399 {
			c.Abort()
			return
		}

		c.Next()
	}
}
