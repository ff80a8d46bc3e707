package valueobjects

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidTenantDomain = errors.New("invalid tenant domain")

	// rótulo DNS: minúsculas, dígitos e hífen, sem hífen nas pontas
	tenantDomainPattern = regexp.MustCompile(`^[a-z0-9]([a-z0-9-]*[a-z0-9])?$`)

	reservedDomains = map[string]struct{}{
		"www": {}, "api": {}, "app": {}, "admin": {}, "mail": {}, "static": {},
	}
)

// TenantDomain é o subdomínio único global de um tenant
type TenantDomain struct {
	value string
}

// NewTenantDomain valida e normaliza um subdomínio
func NewTenantDomain(domain string) (TenantDomain, error) {
	domain = strings.TrimSpace(strings.ToLower(domain))

	if len(domain) < 3 || len(domain) > 63 || !tenantDomainPattern.MatchString(domain) {
		return TenantDomain{}, ErrInvalidTenantDomain
	}

	if _, reserved := reservedDomains[domain]; reserved {
		return TenantDomain{}, ErrInvalidTenantDomain
	}

	return TenantDomain{value: domain}, nil
}

// IsValidTenantDomain informa se o valor seria aceito por NewTenantDomain
func IsValidTenantDomain(domain string) bool {
	_, err := NewTenantDomain(domain)
	return err == nil
}

func (d TenantDomain) String() string {
	return d.value
}
