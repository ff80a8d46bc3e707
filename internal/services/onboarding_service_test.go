package services_test

import (
	"context"
	"sync"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rafabene/federa-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/federa-backend/internal/domain/errors"
	"github.com/rafabene/federa-backend/internal/services"
)

func onboardInput(domain, email, tenantType string) services.OnboardTenantInput {
	return services.OnboardTenantInput{
		Tenant: services.TenantInput{
			Domain:  domain,
			Name:    "Acme Federation",
			Type:    tenantType,
			Country: "BR",
		},
		Admin: services.AdminInput{
			Email:     email,
			Password:  "s3cret-pass",
			FirstName: "Ana",
			LastName:  "Silva",
			Gender:    string(entities.GenderFemale),
		},
	}
}

var _ = Describe("OnboardingService", func() {
	var (
		ctx     context.Context
		f       *fixture
		service *services.OnboardingService
	)

	BeforeEach(func() {
		ctx = context.Background()
		f = newFixture()
		service = services.NewOnboardingService(f.tenants, f.users, f.uow, f.hasher, f.metrics, f.logger, time.Second)
	})

	countRows := func() (int64, int64) {
		var tenants, users int64
		Expect(f.db.Table("tenants").Count(&tenants).Error).To(Succeed())
		Expect(f.db.Table("users").Count(&users).Error).To(Succeed())
		return tenants, users
	}

	Describe("OnboardTenant", func() {
		It("creates a federation with a FED_ADMIN holding exactly the role permissions", func() {
			result, err := service.OnboardTenant(ctx, onboardInput("acme", "ana@acme.com", "FED"))
			Expect(err).NotTo(HaveOccurred())

			Expect(result.Tenant.ID).NotTo(BeEmpty())
			Expect(result.Tenant.Domain.String()).To(Equal("acme"))
			Expect(result.Admin.Role).To(Equal(entities.RoleFedAdmin))
			Expect(result.Admin.FederationID).NotTo(BeNil())
			Expect(*result.Admin.FederationID).To(Equal(result.Tenant.ID))
			Expect(result.Admin.OrganizationID).To(BeNil())
			Expect(result.Admin.Permissions).To(ConsistOf(entities.RoleFedAdmin.Permissions()))

			stored, err := f.users.FindByEmail(ctx, "ana@acme.com")
			Expect(err).NotTo(HaveOccurred())
			Expect(stored.Permissions).To(ConsistOf(entities.RoleFedAdmin.Permissions()))
			Expect(stored.PasswordHash).NotTo(Equal("s3cret-pass"))
			Expect(f.hasher.Compare(stored.PasswordHash, "s3cret-pass")).To(Succeed())

			Expect(f.metrics.Onboarded("FED")).To(Equal(1))
		})

		It("links an organization admin through OrganizationID", func() {
			result, err := service.OnboardTenant(ctx, onboardInput("eventos", "org@acme.com", "ORG"))
			Expect(err).NotTo(HaveOccurred())

			Expect(result.Admin.Role).To(Equal(entities.RoleOrgAdmin))
			Expect(result.Admin.OrganizationID).NotTo(BeNil())
			Expect(result.Admin.FederationID).To(BeNil())
			Expect(result.Admin.Permissions).To(ConsistOf(entities.RoleOrgAdmin.Permissions()))
		})

		It("stores the country code in upper case", func() {
			input := onboardInput("acme", "ana@acme.com", "FED")
			input.Tenant.Country = " us "

			result, err := service.OnboardTenant(ctx, input)
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Tenant.Country).To(Equal("US"))

			stored, err := f.tenants.FindByDomain(ctx, "acme")
			Expect(err).NotTo(HaveOccurred())
			Expect(stored.Country).To(Equal("US"))
		})

		It("rejects a taken domain without writing anything", func() {
			_, err := service.OnboardTenant(ctx, onboardInput("acme", "ana@acme.com", "FED"))
			Expect(err).NotTo(HaveOccurred())
			tenantsBefore, usersBefore := countRows()

			_, err = service.OnboardTenant(ctx, onboardInput("acme", "other@acme.com", "FED"))
			Expect(err).To(MatchError(domainerrors.ErrTenantDomainTaken))
			Expect(domainerrors.KindOf(err)).To(Equal(domainerrors.KindConflict))

			tenantsAfter, usersAfter := countRows()
			Expect(tenantsAfter).To(Equal(tenantsBefore))
			Expect(usersAfter).To(Equal(usersBefore))
		})

		It("rolls back the tenant when the admin email is taken", func() {
			_, err := service.OnboardTenant(ctx, onboardInput("acme", "ana@acme.com", "FED"))
			Expect(err).NotTo(HaveOccurred())

			_, err = service.OnboardTenant(ctx, onboardInput("other", "ana@acme.com", "FED"))
			Expect(err).To(MatchError(domainerrors.ErrEmailAlreadyExists))

			tenants, users := countRows()
			Expect(tenants).To(Equal(int64(1)))
			Expect(users).To(Equal(int64(1)))
		})

		It("lets exactly one of two concurrent onboardings for the same domain win", func() {
			var wg sync.WaitGroup
			errs := make([]error, 2)
			for i := range errs {
				wg.Add(1)
				go func(i int) {
					defer GinkgoRecover()
					defer wg.Done()
					email := []string{"one@acme.com", "two@acme.com"}[i]
					_, errs[i] = service.OnboardTenant(ctx, onboardInput("race", email, "FED"))
				}(i)
			}
			wg.Wait()

			succeeded := 0
			for _, err := range errs {
				if err == nil {
					succeeded++
					continue
				}
				Expect(err).To(MatchError(domainerrors.ErrTenantDomainTaken))
			}
			Expect(succeeded).To(Equal(1))

			tenants, users := countRows()
			Expect(tenants).To(Equal(int64(1)))
			Expect(users).To(Equal(int64(1)))
		})

		DescribeTable("rejects invalid input as bad request",
			func(mutate func(*services.OnboardTenantInput)) {
				input := onboardInput("valid-domain", "ana@acme.com", "FED")
				mutate(&input)

				_, err := service.OnboardTenant(ctx, input)
				Expect(domainerrors.KindOf(err)).To(Equal(domainerrors.KindBadRequest))

				tenants, users := countRows()
				Expect(tenants).To(BeZero())
				Expect(users).To(BeZero())
			},
			Entry("domain with underscore", func(in *services.OnboardTenantInput) { in.Tenant.Domain = "ac_me" }),
			Entry("reserved domain", func(in *services.OnboardTenantInput) { in.Tenant.Domain = "admin" }),
			Entry("short tenant name", func(in *services.OnboardTenantInput) { in.Tenant.Name = "A" }),
			Entry("short domain", func(in *services.OnboardTenantInput) { in.Tenant.Domain = "ab" }),
			Entry("unknown tenant type", func(in *services.OnboardTenantInput) { in.Tenant.Type = "CLUB" }),
			Entry("invalid email", func(in *services.OnboardTenantInput) { in.Admin.Email = "not-an-email" }),
			Entry("unknown gender", func(in *services.OnboardTenantInput) { in.Admin.Gender = "X" }),
			Entry("short password", func(in *services.OnboardTenantInput) { in.Admin.Password = "short" }),
		)

		It("reports an expired transaction deadline as internal", func() {
			expired, cancel := context.WithDeadline(ctx, time.Now().Add(-time.Second))
			defer cancel()

			_, err := service.OnboardTenant(expired, onboardInput("late", "late@acme.com", "FED"))
			Expect(domainerrors.KindOf(err)).To(Equal(domainerrors.KindInternal))
			Expect(err.(*domainerrors.DomainError).Message).To(Equal("error.internal.detail"))
		})
	})

	Describe("GetTenantByDomain", func() {
		It("resolves an onboarded tenant", func() {
			created, err := service.OnboardTenant(ctx, onboardInput("acme", "ana@acme.com", "FED"))
			Expect(err).NotTo(HaveOccurred())

			tenant, err := service.GetTenantByDomain(ctx, "acme")
			Expect(err).NotTo(HaveOccurred())
			Expect(tenant.ID).To(Equal(created.Tenant.ID))
		})

		It("returns not found for unknown or malformed domains", func() {
			_, err := service.GetTenantByDomain(ctx, "missing")
			Expect(err).To(MatchError(domainerrors.ErrTenantNotFound))

			_, err = service.GetTenantByDomain(ctx, "Not A Domain")
			Expect(err).To(MatchError(domainerrors.ErrTenantNotFound))
		})
	})
})
