package entities_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rafabene/federa-backend/internal/domain/entities"
)

var _ = Describe("Permission catalog", func() {
	It("has unique codes split into resource and action", func() {
		seen := map[entities.Permission]bool{}
		for _, p := range entities.AllPermissions() {
			Expect(seen[p]).To(BeFalse(), "duplicate code %s", p)
			seen[p] = true
			Expect(p.Valid()).To(BeTrue())
			Expect(string(p)).To(Equal(p.Resource() + "." + p.Action()))
		}
		Expect(seen).To(HaveLen(24))
	})

	It("returns a copy of the catalog", func() {
		all := entities.AllPermissions()
		all[0] = "hacked.create"
		Expect(entities.AllPermissions()[0]).To(Equal(entities.PermissionFederationCreate))
	})

	It("rejects unknown codes", func() {
		Expect(entities.Permission("club.fly").Valid()).To(BeFalse())
		Expect(entities.Permission("").Valid()).To(BeFalse())
	})
})

var _ = Describe("Role permissions", func() {
	It("maps every role only to codes of the catalog", func() {
		for _, role := range entities.Roles() {
			Expect(role.Valid()).To(BeTrue())
			for _, p := range role.Permissions() {
				Expect(p.Valid()).To(BeTrue(), "%s grants unknown %s", role, p)
			}
		}
	})

	It("nests SUPER_ADMIN over FED_ADMIN over CLUB_MANAGER over PLAYER", func() {
		chain := []entities.Role{
			entities.RoleSuperAdmin,
			entities.RoleFedAdmin,
			entities.RoleClubManager,
			entities.RolePlayer,
		}
		for i := 0; i < len(chain)-1; i++ {
			outer := chain[i].PermissionSet()
			for _, p := range chain[i+1].Permissions() {
				Expect(outer).To(HaveKey(p), "%s lacks %s of %s", chain[i], p, chain[i+1])
			}
		}
	})

	It("grants SUPER_ADMIN the whole catalog", func() {
		Expect(entities.RoleSuperAdmin.Permissions()).To(ConsistOf(entities.AllPermissions()))
	})

	It("keeps ORG_ADMIN away from federation and club management", func() {
		set := entities.RoleOrgAdmin.PermissionSet()
		Expect(set).To(HaveKey(entities.PermissionOrganizationUpdate))
		Expect(set).NotTo(HaveKey(entities.PermissionFederationRead))
		Expect(set).NotTo(HaveKey(entities.PermissionClubCreate))
	})

	It("cannot be mutated through the returned slice", func() {
		perms := entities.RolePlayer.Permissions()
		perms[0] = entities.PermissionUserDelete
		Expect(entities.RolePlayer.Permissions()).NotTo(ContainElement(entities.PermissionUserDelete))
	})

	It("treats unknown roles as invalid with no permissions", func() {
		Expect(entities.Role("ROOT").Valid()).To(BeFalse())
		Expect(entities.Role("ROOT").Permissions()).To(BeEmpty())
	})

	DescribeTable("AdminRoleFor",
		func(t entities.TenantType, expected entities.Role) {
			Expect(entities.AdminRoleFor(t)).To(Equal(expected))
		},
		Entry("federation", entities.TenantTypeFederation, entities.RoleFedAdmin),
		Entry("organization", entities.TenantTypeOrganization, entities.RoleOrgAdmin),
	)
})

var _ = Describe("HasPermission", func() {
	It("is true exactly for the permissions mapped to each role", func() {
		for _, role := range entities.Roles() {
			granted := entities.NewPermissionSet(role.Permissions()...)
			mapped := role.PermissionSet()
			for _, p := range entities.AllPermissions() {
				_, expected := mapped[p]
				Expect(entities.HasPermission(granted, p)).To(Equal(expected), "%s / %s", role, p)
			}
		}
	})

	It("matches strings exactly without wildcards", func() {
		granted := entities.NewPermissionSet("club.*", entities.PermissionClubRead)
		Expect(entities.HasPermission(granted, entities.PermissionClubUpdate)).To(BeFalse())
		Expect(entities.HasPermission(granted, "CLUB.READ")).To(BeFalse())
		Expect(entities.HasPermission(granted, entities.PermissionClubRead)).To(BeTrue())
	})

	It("denies everything to an empty set", func() {
		Expect(entities.HasPermission(nil, entities.PermissionClubRead)).To(BeFalse())
	})
})

var _ = Describe("Principal", func() {
	manager := func() *entities.Principal {
		return entities.NewPrincipal("u1", "m@acme.com", entities.RoleClubManager, "t1",
			entities.TenantTypeFederation, entities.RoleClubManager.Permissions())
	}

	It("checks the materialized permissions", func() {
		p := manager()
		Expect(p.HasPermission(entities.PermissionUserRead)).To(BeTrue())
		Expect(p.HasPermission(entities.PermissionUserDelete)).To(BeFalse())
	})

	It("works when built as a literal", func() {
		p := &entities.Principal{Permissions: []entities.Permission{entities.PermissionEventRead}}
		Expect(p.HasPermission(entities.PermissionEventRead)).To(BeTrue())
	})

	It("denies a nil principal", func() {
		var p *entities.Principal
		Expect(p.HasPermission(entities.PermissionClubRead)).To(BeFalse())
		Expect(p.CanAccessTenant("t1")).To(BeFalse())
	})

	It("scopes tenant access by exact id unless super admin", func() {
		p := manager()
		Expect(p.CanAccessTenant("t1")).To(BeTrue())
		Expect(p.CanAccessTenant("t2")).To(BeFalse())
		Expect(p.CanAccessTenant("")).To(BeFalse())

		root := entities.NewPrincipal("r", "r@x.io", entities.RoleSuperAdmin, "", "", nil)
		Expect(root.IsSuperAdmin()).To(BeTrue())
		Expect(root.CanAccessTenant("t2")).To(BeTrue())
	})
})
