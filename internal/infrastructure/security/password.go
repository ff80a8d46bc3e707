package security

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/rafabene/federa-backend/internal/domain/ports"
)

// PasswordCost é o fator de trabalho fixo do bcrypt
const PasswordCost = bcrypt.DefaultCost

// BcryptHasher implementa ports.PasswordHasher
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher cria um hasher com o custo padrão
func NewBcryptHasher() ports.PasswordHasher {
	return &BcryptHasher{cost: PasswordCost}
}

// NewBcryptHasherWithCost permite custo menor em testes
func NewBcryptHasherWithCost(cost int) ports.PasswordHasher {
	return &BcryptHasher{cost: cost}
}

func (h *BcryptHasher) Hash(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (h *BcryptHasher) Compare(hash, plain string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
}
