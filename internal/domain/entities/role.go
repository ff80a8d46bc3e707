package entities

// Role representa o papel de um usuário no sistema
type Role string

const (
	RoleSuperAdmin  Role = "SUPER_ADMIN"
	RoleFedAdmin    Role = "FED_ADMIN"
	RoleClubManager Role = "CLUB_MANAGER"
	RolePlayer      Role = "PLAYER"
	RoleOrgAdmin    Role = "ORG_ADMIN"
)

// rolePermissions mapeia roles para suas permissões.
// Construído uma vez na inicialização do pacote e nunca alterado;
// acesso externo somente via Role.Permissions (que devolve cópia).
var rolePermissions = func() map[Role][]Permission {
	player := []Permission{
		PermissionClubRead,
		PermissionEventRead,
		PermissionPlayerRead,
	}

	clubManager := append(clone(player),
		PermissionClubUpdate,
		PermissionEventCreate,
		PermissionEventUpdate,
		PermissionPlayerCreate,
		PermissionPlayerUpdate,
		PermissionUserRead,
	)

	fedAdmin := append(clone(clubManager),
		PermissionFederationRead,
		PermissionFederationUpdate,
		PermissionClubCreate,
		PermissionClubDelete,
		PermissionEventDelete,
		PermissionPlayerDelete,
		PermissionUserCreate,
		PermissionUserUpdate,
		PermissionUserDelete,
	)

	orgAdmin := []Permission{
		PermissionOrganizationRead,
		PermissionOrganizationUpdate,
		PermissionEventCreate,
		PermissionEventRead,
		PermissionEventUpdate,
		PermissionEventDelete,
		PermissionPlayerRead,
		PermissionUserCreate,
		PermissionUserRead,
		PermissionUserUpdate,
	}

	return map[Role][]Permission{
		RoleSuperAdmin:  AllPermissions(),
		RoleFedAdmin:    fedAdmin,
		RoleClubManager: clubManager,
		RolePlayer:      player,
		RoleOrgAdmin:    orgAdmin,
	}
}()

func clone(perms []Permission) []Permission {
	out := make([]Permission, len(perms))
	copy(out, perms)
	return out
}

// Roles retorna todos os roles conhecidos
func Roles() []Role {
	return []Role{RoleSuperAdmin, RoleFedAdmin, RoleClubManager, RolePlayer, RoleOrgAdmin}
}

// Valid verifica se o role faz parte do conjunto fixo
func (r Role) Valid() bool {
	_, ok := rolePermissions[r]
	return ok
}

// Permissions retorna as permissões de um role
func (r Role) Permissions() []Permission {
	return clone(rolePermissions[r])
}

// PermissionSet retorna as permissões do role como conjunto
func (r Role) PermissionSet() PermissionSet {
	return NewPermissionSet(rolePermissions[r]...)
}

// AdminRoleFor retorna o role do administrador inicial de um tenant
func AdminRoleFor(t TenantType) Role {
	if t == TenantTypeOrganization {
		return RoleOrgAdmin
	}
	return RoleFedAdmin
}
