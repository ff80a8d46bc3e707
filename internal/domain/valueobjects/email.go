package valueobjects

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidEmail = errors.New("invalid email format")

	emailPattern = regexp.MustCompile(`^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,}$`)
)

// Email é um value object que garante que emails sejam sempre válidos
type Email struct {
	value string
}

// NewEmail cria um novo Email normalizado (minúsculas, sem espaços)
func NewEmail(email string) (Email, error) {
	email = strings.TrimSpace(strings.ToLower(email))

	if len(email) < 3 || len(email) > 254 || !emailPattern.MatchString(email) {
		return Email{}, ErrInvalidEmail
	}

	return Email{value: email}, nil
}

// String retorna o valor do email
func (e Email) String() string {
	return e.value
}

// Domain retorna a parte após o @
func (e Email) Domain() string {
	_, domain, _ := strings.Cut(e.value, "@")
	return domain
}
