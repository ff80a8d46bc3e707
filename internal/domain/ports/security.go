package ports

import (
	"time"

	"github.com/rafabene/federa-backend/internal/domain/entities"
)

// PasswordHasher abstrai o hash de senhas com salt
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Compare(hash, plain string) error
}

// IssuedToken é um token de acesso emitido
type IssuedToken struct {
	AccessToken string
	ExpiresAt   time.Time
}

// TokenManager emite e valida tokens de sessão carregando o Principal
type TokenManager interface {
	Issue(principal *entities.Principal) (IssuedToken, error)
	Parse(token string) (*entities.Principal, error)
}
