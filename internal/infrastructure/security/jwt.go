package security

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/rafabene/federa-backend/internal/domain/entities"
	"github.com/rafabene/federa-backend/internal/domain/ports"
)

// Claims carrega o Principal materializado no momento da emissão
type Claims struct {
	Email       string   `json:"email"`
	Role        string   `json:"role"`
	TenantID    string   `json:"tenant_id,omitempty"`
	TenantType  string   `json:"tenant_type,omitempty"`
	Permissions []string `json:"perms"`
	jwt.RegisteredClaims
}

// JWTManager implementa ports.TokenManager com HS256
type JWTManager struct {
	secret []byte
	issuer string
	expiry time.Duration
	now    func() time.Time
}

// NewJWTManager cria um novo JWTManager
func NewJWTManager(secret, issuer string, expiry time.Duration) *JWTManager {
	return &JWTManager{
		secret: []byte(secret),
		issuer: issuer,
		expiry: expiry,
		now:    time.Now,
	}
}

var _ ports.TokenManager = (*JWTManager)(nil)

func (m *JWTManager) Issue(principal *entities.Principal) (ports.IssuedToken, error) {
	now := m.now()
	expiresAt := now.Add(m.expiry)

	perms := make([]string, len(principal.Permissions))
	for i, p := range principal.Permissions {
		perms[i] = string(p)
	}

	claims := Claims{
		Email:       principal.Email,
		Role:        string(principal.Role),
		TenantID:    principal.TenantID,
		TenantType:  string(principal.TenantType),
		Permissions: perms,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   principal.UserID,
			Issuer:    m.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return ports.IssuedToken{}, fmt.Errorf("failed to sign token: %w", err)
	}

	return ports.IssuedToken{AccessToken: signed, ExpiresAt: expiresAt}, nil
}

func (m *JWTManager) Parse(tokenString string) (*entities.Principal, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(*jwt.Token) (any, error) { return m.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(m.issuer),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	perms := make([]entities.Permission, len(claims.Permissions))
	for i, p := range claims.Permissions {
		perms[i] = entities.Permission(p)
	}

	return entities.NewPrincipal(
		claims.Subject,
		claims.Email,
		entities.Role(claims.Role),
		claims.TenantID,
		entities.TenantType(claims.TenantType),
		perms,
	), nil
}
