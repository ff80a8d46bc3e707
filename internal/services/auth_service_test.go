package services_test

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rafabene/federa-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/federa-backend/internal/domain/errors"
	"github.com/rafabene/federa-backend/internal/domain/ports"
	"github.com/rafabene/federa-backend/internal/infrastructure/security"
	"github.com/rafabene/federa-backend/internal/services"
)

var _ = Describe("AuthService", func() {
	var (
		ctx     context.Context
		f       *fixture
		tokens  *security.JWTManager
		auth    *services.AuthService
		created *services.OnboardTenantResult
	)

	BeforeEach(func() {
		ctx = context.Background()
		f = newFixture()
		tokens = security.NewJWTManager("test-secret", "federa-test", time.Hour)
		auth = services.NewAuthService(f.users, f.hasher, tokens, f.logger)

		onboarding := services.NewOnboardingService(f.tenants, f.users, f.uow, f.hasher, f.metrics, f.logger, time.Second)
		var err error
		created, err = onboarding.OnboardTenant(ctx, onboardInput("acme", "ana@acme.com", "FED"))
		Expect(err).NotTo(HaveOccurred())
	})

	It("issues a token carrying the granted permissions", func() {
		result, err := auth.Login(ctx, "Ana@Acme.com", "s3cret-pass")
		Expect(err).NotTo(HaveOccurred())
		Expect(result.Token.AccessToken).NotTo(BeEmpty())
		Expect(result.Token.ExpiresAt).To(BeTemporally(">", time.Now()))

		principal, err := tokens.Parse(result.Token.AccessToken)
		Expect(err).NotTo(HaveOccurred())
		Expect(principal.UserID).To(Equal(created.Admin.ID))
		Expect(principal.Role).To(Equal(entities.RoleFedAdmin))
		Expect(principal.TenantID).To(Equal(created.Tenant.ID))
		Expect(principal.TenantType).To(Equal(entities.TenantTypeFederation))
		Expect(principal.Permissions).To(ConsistOf(entities.RoleFedAdmin.Permissions()))
		Expect(principal.HasPermission(entities.PermissionUserRead)).To(BeTrue())
		Expect(principal.HasPermission(entities.PermissionOrganizationRead)).To(BeFalse())
	})

	It("rejects a wrong password", func() {
		_, err := auth.Login(ctx, "ana@acme.com", "wrong-pass")
		Expect(err).To(MatchError(domainerrors.ErrInvalidCredentials))
		Expect(domainerrors.KindOf(err)).To(Equal(domainerrors.KindUnauthorized))
	})

	It("rejects an unknown email with the same error", func() {
		_, err := auth.Login(ctx, "nobody@acme.com", "s3cret-pass")
		Expect(err).To(MatchError(domainerrors.ErrInvalidCredentials))
	})

	It("runs a password comparison even when the email is unknown", func() {
		counting := &countingHasher{PasswordHasher: f.hasher}
		auth = services.NewAuthService(f.users, counting, tokens, f.logger)

		_, err := auth.Login(ctx, "nobody@acme.com", "s3cret-pass")
		Expect(err).To(MatchError(domainerrors.ErrInvalidCredentials))
		Expect(counting.compares).To(Equal(1))
		Expect(counting.lastHash).NotTo(BeEmpty())

		_, err = auth.Login(ctx, "ana@acme.com", "wrong-pass")
		Expect(err).To(MatchError(domainerrors.ErrInvalidCredentials))
		Expect(counting.compares).To(Equal(2))
	})
})

type countingHasher struct {
	ports.PasswordHasher
	compares int
	lastHash string
}

func (h *countingHasher) Compare(hash, plain string) error {
	h.compares++
	h.lastHash = hash
	return h.PasswordHasher.Compare(hash, plain)
}
