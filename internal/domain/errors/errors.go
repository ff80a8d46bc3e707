package errors

import "errors"

// Kind é a categoria estável de um erro de domínio
type Kind string

const (
	KindConflict     Kind = "conflict"
	KindNotFound     Kind = "not_found"
	KindBadRequest   Kind = "bad_request"
	KindUnauthorized Kind = "unauthorized"
	KindInternal     Kind = "internal"
)

// ProblemType define tipos de problemas (URIs RFC 7807)
// Nota: O domínio base virá de configuração (API_BASE_URL)
//
//nolint:misspell
const (
	ProblemTypeValidation   = "/problems/validation-error"
	ProblemTypeNotFound     = "/problems/not-found"
	ProblemTypeConflict     = "/problems/conflict"
	ProblemTypeUnauthorized = "/problems/unauthorized"
	ProblemTypeForbidden    = "/problems/forbidden"
	ProblemTypeInternal     = "/problems/internal-error"
	ProblemTypeBadRequest   = "/problems/bad-request"
	ProblemTypeRateLimited  = "/problems/rate-limited"
)

// Erros de negócio
// Nota: Message é o código da mensagem (message ID para i18n).
// As traduções ficam em internal/infrastructure/i18n/locales/*.json
var (
	ErrUserNotFound       = New(KindNotFound, "error.user_not_found")
	ErrTenantNotFound     = New(KindNotFound, "error.tenant_not_found")
	ErrPlanNotFound       = New(KindNotFound, "error.plan_not_found")
	ErrPlayerNotFound     = New(KindNotFound, "error.player_not_found")
	ErrTenantDomainTaken  = New(KindConflict, "error.tenant_domain_taken")
	ErrEmailAlreadyExists = New(KindConflict, "error.email_already_exists")
	ErrInvalidCredentials = New(KindUnauthorized, "error.invalid_credentials")
	ErrUnauthorized       = New(KindUnauthorized, "error.unauthorized")
	ErrPermissionDenied   = New(KindUnauthorized, "error.forbidden")
	ErrInvalidSignature   = New(KindBadRequest, "error.invalid_webhook_signature")
	ErrInvalidPayload     = New(KindBadRequest, "error.invalid_webhook_payload")
	ErrInvalidBeneficiary = New(KindBadRequest, "error.payment_invalid_beneficiaries")
	ErrMissingPlan        = New(KindBadRequest, "error.payment_missing_plan")
)

// Erros de validação do domínio
var (
	ErrInvalidEmail        = New(KindBadRequest, "error.invalid_email")
	ErrInvalidTenantDomain = New(KindBadRequest, "error.invalid_tenant_domain")
	ErrInvalidTenant       = New(KindBadRequest, "error.invalid_tenant")
	ErrInvalidUser         = New(KindBadRequest, "error.invalid_user")
)

// Erros de armazenamento, traduzidos pelos repositórios
var (
	// ErrDuplicateKey indica violação de restrição de unicidade
	ErrDuplicateKey = errors.New("duplicate key")
)

// DomainError representa um erro de domínio com contexto adicional
type DomainError struct {
	Kind    Kind
	Type    string
	Title   string
	Message string
	Err     error
}

// New cria um erro de domínio com tipo de problema derivado da categoria
func New(kind Kind, message string) *DomainError {
	return &DomainError{
		Kind:    kind,
		Type:    problemTypeFor(kind),
		Title:   "error." + string(kind) + ".title",
		Message: message,
	}
}

// Internal embrulha uma falha inesperada. A mensagem é genérica; o erro
// original fica em Err apenas para log.
func Internal(err error) *DomainError {
	e := New(KindInternal, "error.internal.detail")
	e.Err = err
	return e
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// Is compara por categoria e mensagem, para que cópias com Err diferente
// ainda casem com o sentinela
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Kind == t.Kind && e.Message == t.Message
}

// Wrap devolve uma cópia do sentinela carregando a causa
func (e *DomainError) Wrap(err error) *DomainError {
	c := *e
	c.Err = err
	return &c
}

// KindOf retorna a categoria de qualquer erro (Internal se não for de domínio)
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	var de *DomainError
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindInternal
}

// AsDomainError converte qualquer erro em DomainError
func AsDomainError(err error) *DomainError {
	var de *DomainError
	if errors.As(err, &de) {
		return de
	}
	return Internal(err)
}

func problemTypeFor(kind Kind) string {
	switch kind {
	case KindConflict:
		return ProblemTypeConflict
	case KindNotFound:
		return ProblemTypeNotFound
	case KindBadRequest:
		return ProblemTypeBadRequest
	case KindUnauthorized:
		return ProblemTypeUnauthorized
	default:
		return ProblemTypeInternal
	}
}
