package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/rafabene/federa-backend/internal/handlers/dto"
	"github.com/rafabene/federa-backend/internal/infrastructure/i18n"
)

// I18nMiddleware gerencia a detecção de idioma nas requisições
type I18nMiddleware struct {
	i18nService *i18n.Service
}

// NewI18nMiddleware cria um novo middleware de i18n
func NewI18nMiddleware(i18nService *i18n.Service) *I18nMiddleware {
	return &I18nMiddleware{
		i18nService: i18nService,
	}
}

// DetectLanguage detecta e configura o idioma da requisição
// Prioridade:
// 1. Query parameter ?lang=pt-BR (override explícito)
// 2. Accept-Language header, negociado com golang.org/x/text/language
// 3. Idioma padrão (fallback)
func (m *I18nMiddleware) DetectLanguage() gin.HandlerFunc {
	return func(c *gin.Context) {
		var lang string

		if queryLang := c.Query("lang"); queryLang != "" && m.i18nService.IsLanguageSupported(queryLang) {
			lang = queryLang
		}

		if lang == "" {
			lang = m.i18nService.Match(c.GetHeader("Accept-Language"))
		}

		if lang == "" {
			lang = m.i18nService.GetDefaultLanguage()
		}

		c.Set(dto.LanguageContextKey, lang)
		c.Set(dto.I18nServiceContextKey, m.i18nService)
		c.Header("Content-Language", lang)

		c.Next()
	}
}

// BaseURL expõe a URL base da API aos tipos RFC 7807
func BaseURL(baseURL string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(dto.BaseURLContextKey, baseURL)
		c.Next()
	}
}
