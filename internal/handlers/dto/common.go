package dto

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/moogar0880/problems"

	domainerrors "github.com/rafabene/federa-backend/internal/domain/errors"
	"github.com/rafabene/federa-backend/internal/domain/ports"
)

const defaultBaseURL = "http://localhost:8080"

// ErrorResponse segue RFC 7807 (Problem Details for HTTP APIs)
type ErrorResponse struct {
	*problems.DefaultProblem
	Errors []ValidationError `json:"errors,omitempty"`
}

// ValidationError representa um erro de validação de campo
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Tag     string `json:"tag,omitempty"`
}

// NewErrorResponseI18n cria uma resposta de erro usando i18n
func NewErrorResponseI18n(c *gin.Context, problemType, titleKey, detailKey string, status int, params ...map[string]interface{}) ErrorResponse {
	baseURL := c.GetString(BaseURLContextKey)
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	problem := problems.NewDetailedProblem(status, T(c, detailKey, params...))
	problem.Type = baseURL + problemType
	problem.Title = T(c, titleKey, params...)
	problem.Instance = c.Request.URL.Path

	return ErrorResponse{DefaultProblem: problem}
}

// Abort encerra a requisição com um problem+json
func Abort(c *gin.Context, response ErrorResponse) {
	c.Header("Content-Type", problems.ProblemMediaType)
	c.AbortWithStatusJSON(response.Status, response)
}

// ValidationErrorResponseI18n cria uma resposta de erro de validação
func ValidationErrorResponseI18n(c *gin.Context, validationErrors []ValidationError) ErrorResponse {
	response := NewErrorResponseI18n(
		c,
		domainerrors.ProblemTypeValidation,
		"error.validation.title",
		"error.validation.detail",
		http.StatusBadRequest,
	)
	response.Errors = validationErrors
	return response
}

// NotFoundErrorResponseI18n cria uma resposta de erro 404
func NotFoundErrorResponseI18n(c *gin.Context, resource string) ErrorResponse {
	return NewErrorResponseI18n(
		c,
		domainerrors.ProblemTypeNotFound,
		"error.not_found.title",
		"error.not_found.detail",
		http.StatusNotFound,
		map[string]interface{}{"Resource": resource},
	)
}

// UnauthorizedErrorResponseI18n cria uma resposta de erro 401
func UnauthorizedErrorResponseI18n(c *gin.Context) ErrorResponse {
	return NewErrorResponseI18n(
		c,
		domainerrors.ProblemTypeUnauthorized,
		"error.unauthorized.title",
		"error.unauthorized.detail",
		http.StatusUnauthorized,
	)
}

// ForbiddenErrorResponseI18n cria uma resposta de erro 403
func ForbiddenErrorResponseI18n(c *gin.Context) ErrorResponse {
	return NewErrorResponseI18n(
		c,
		domainerrors.ProblemTypeForbidden,
		"error.forbidden.title",
		"error.forbidden.detail",
		http.StatusForbidden,
	)
}

// RateLimitedErrorResponseI18n cria uma resposta de erro 429
func RateLimitedErrorResponseI18n(c *gin.Context) ErrorResponse {
	return NewErrorResponseI18n(
		c,
		domainerrors.ProblemTypeRateLimited,
		"error.rate_limited.title",
		"error.rate_limited.detail",
		http.StatusTooManyRequests,
	)
}

// StatusFor mapeia a categoria do erro para o status HTTP
func StatusFor(err error) int {
	if errors.Is(err, domainerrors.ErrPermissionDenied) {
		return http.StatusForbidden
	}
	switch domainerrors.KindOf(err) {
	case domainerrors.KindConflict:
		return http.StatusConflict
	case domainerrors.KindNotFound:
		return http.StatusNotFound
	case domainerrors.KindBadRequest:
		return http.StatusBadRequest
	case domainerrors.KindUnauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// RespondError converte qualquer erro em problem+json traduzido.
// Erros internos são logados com a causa; o cliente recebe só a mensagem genérica.
func RespondError(c *gin.Context, logger ports.Logger, err error) {
	if errors.Is(err, domainerrors.ErrPermissionDenied) {
		Abort(c, ForbiddenErrorResponseI18n(c))
		return
	}

	de := domainerrors.AsDomainError(err)
	if de.Kind == domainerrors.KindInternal {
		logger.Error("request failed",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"error", err,
		)
		de = domainerrors.Internal(nil)
	}

	Abort(c, NewErrorResponseI18n(c, de.Type, de.Title, de.Message, StatusFor(de)))
}

// BindingError converte erros de binding/validação do Gin em resposta 400
func BindingError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		Abort(c, ValidationErrorResponseI18n(c, nil))
		return
	}

	fields := make([]ValidationError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, ValidationError{
			Field:   fe.Namespace(),
			Message: fe.Error(),
			Tag:     fe.Tag(),
		})
	}
	Abort(c, ValidationErrorResponseI18n(c, fields))
}
