package entities

// PermissionSet é um conjunto de códigos de permissão concedidos
type PermissionSet map[Permission]struct{}

// NewPermissionSet cria um conjunto a partir de uma lista de códigos
func NewPermissionSet(perms ...Permission) PermissionSet {
	set := make(PermissionSet, len(perms))
	for _, p := range perms {
		set[p] = struct{}{}
	}
	return set
}

// HasPermission decide se a permissão requerida está entre as concedidas.
// Comparação exata de string: sem curingas e sem hierarquia.
func HasPermission(granted PermissionSet, required Permission) bool {
	_, ok := granted[required]
	return ok
}

// Principal é o usuário autenticado de uma requisição.
//
// Permissions é a lista materializada no momento da emissão do token; ela não
// é revalidada contra o mapa de roles, então alterações no mapa só valem após
// nova autenticação.
type Principal struct {
	UserID      string
	Email       string
	Role        Role
	TenantID    string
	TenantType  TenantType
	Permissions []Permission

	granted PermissionSet
}

// NewPrincipal cria um Principal com o conjunto de permissões já indexado
func NewPrincipal(userID, email string, role Role, tenantID string, tenantType TenantType, perms []Permission) *Principal {
	return &Principal{
		UserID:      userID,
		Email:       email,
		Role:        role,
		TenantID:    tenantID,
		TenantType:  tenantType,
		Permissions: perms,
		granted:     NewPermissionSet(perms...),
	}
}

// HasPermission verifica se o principal tem uma permissão
func (p *Principal) HasPermission(required Permission) bool {
	if p == nil {
		return false
	}
	granted := p.granted
	if granted == nil {
		granted = NewPermissionSet(p.Permissions...)
	}
	return HasPermission(granted, required)
}

// IsSuperAdmin verifica se o principal é super admin
func (p *Principal) IsSuperAdmin() bool {
	return p != nil && p.Role == RoleSuperAdmin
}

// CanAccessTenant verifica se o principal pode agir sobre dados do tenant
func (p *Principal) CanAccessTenant(tenantID string) bool {
	if p == nil {
		return false
	}
	if p.IsSuperAdmin() {
		return true
	}
	return tenantID != "" && p.TenantID == tenantID
}
