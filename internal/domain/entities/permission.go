package entities

import "strings"

// Permission representa uma permissão específica no formato <recurso>.<ação>
type Permission string

const (
	// Federation permissions
	PermissionFederationCreate Permission = "federation.create"
	PermissionFederationRead   Permission = "federation.read"
	PermissionFederationUpdate Permission = "federation.update"
	PermissionFederationDelete Permission = "federation.delete"

	// Organization permissions
	PermissionOrganizationCreate Permission = "organization.create"
	PermissionOrganizationRead   Permission = "organization.read"
	PermissionOrganizationUpdate Permission = "organization.update"
	PermissionOrganizationDelete Permission = "organization.delete"

	// Club permissions
	PermissionClubCreate Permission = "club.create"
	PermissionClubRead   Permission = "club.read"
	PermissionClubUpdate Permission = "club.update"
	PermissionClubDelete Permission = "club.delete"

	// Event permissions
	PermissionEventCreate Permission = "event.create"
	PermissionEventRead   Permission = "event.read"
	PermissionEventUpdate Permission = "event.update"
	PermissionEventDelete Permission = "event.delete"

	// Player permissions
	PermissionPlayerCreate Permission = "player.create"
	PermissionPlayerRead   Permission = "player.read"
	PermissionPlayerUpdate Permission = "player.update"
	PermissionPlayerDelete Permission = "player.delete"

	// User permissions
	PermissionUserCreate Permission = "user.create"
	PermissionUserRead   Permission = "user.read"
	PermissionUserUpdate Permission = "user.update"
	PermissionUserDelete Permission = "user.delete"
)

// catalog é o catálogo fixo de permissões conhecidas
var catalog = []Permission{
	PermissionFederationCreate, PermissionFederationRead, PermissionFederationUpdate, PermissionFederationDelete,
	PermissionOrganizationCreate, PermissionOrganizationRead, PermissionOrganizationUpdate, PermissionOrganizationDelete,
	PermissionClubCreate, PermissionClubRead, PermissionClubUpdate, PermissionClubDelete,
	PermissionEventCreate, PermissionEventRead, PermissionEventUpdate, PermissionEventDelete,
	PermissionPlayerCreate, PermissionPlayerRead, PermissionPlayerUpdate, PermissionPlayerDelete,
	PermissionUserCreate, PermissionUserRead, PermissionUserUpdate, PermissionUserDelete,
}

var catalogIndex = func() map[Permission]struct{} {
	index := make(map[Permission]struct{}, len(catalog))
	for _, p := range catalog {
		index[p] = struct{}{}
	}
	return index
}()

// AllPermissions retorna uma cópia do catálogo completo
func AllPermissions() []Permission {
	result := make([]Permission, len(catalog))
	copy(result, catalog)
	return result
}

// Valid verifica se a permissão existe no catálogo
func (p Permission) Valid() bool {
	_, ok := catalogIndex[p]
	return ok
}

// Resource retorna a parte do recurso do código (ex: "club")
func (p Permission) Resource() string {
	resource, _, _ := strings.Cut(string(p), ".")
	return resource
}

// Action retorna a parte da ação do código (ex: "create")
func (p Permission) Action() string {
	_, action, _ := strings.Cut(string(p), ".")
	return action
}

func (p Permission) String() string {
	return string(p)
}
