package services_test

import (
	"context"
	"errors"
	"strings"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rafabene/federa-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/federa-backend/internal/domain/errors"
	"github.com/rafabene/federa-backend/internal/domain/ports"
	"github.com/rafabene/federa-backend/internal/domain/repositories"
	"github.com/rafabene/federa-backend/internal/services"
)

func principalFor(user *entities.User) *entities.Principal {
	return entities.NewPrincipal(user.ID, user.Email.String(), user.Role, user.TenantID(), user.TenantType(), user.Permissions)
}

var _ = Describe("UserService", func() {
	var (
		ctx     context.Context
		service *services.UserService
		acme    *services.OnboardTenantResult
		other   *services.OnboardTenantResult
	)

	BeforeEach(func() {
		ctx = context.Background()
		f := newFixture()
		service = services.NewUserService(f.users, f.logger)

		onboarding := services.NewOnboardingService(f.tenants, f.users, f.uow, f.hasher, f.metrics, f.logger, time.Second)
		var err error
		acme, err = onboarding.OnboardTenant(ctx, onboardInput("acme", "ana@acme.com", "FED"))
		Expect(err).NotTo(HaveOccurred())
		other, err = onboarding.OnboardTenant(ctx, onboardInput("other", "bia@other.com", "ORG"))
		Expect(err).NotTo(HaveOccurred())
	})

	Describe("GetUser", func() {
		It("returns a user of the same tenant", func() {
			user, err := service.GetUser(ctx, principalFor(acme.Admin), acme.Admin.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(user.Email.String()).To(Equal("ana@acme.com"))
		})

		It("hides users of other tenants", func() {
			_, err := service.GetUser(ctx, principalFor(acme.Admin), other.Admin.ID)
			Expect(err).To(MatchError(domainerrors.ErrUserNotFound))
		})

		It("lets a super admin read any tenant", func() {
			root := entities.NewPrincipal("root", "root@federa.io", entities.RoleSuperAdmin, "", "", entities.RoleSuperAdmin.Permissions())
			user, err := service.GetUser(ctx, root, other.Admin.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(user.ID).To(Equal(other.Admin.ID))
		})

		It("returns not found for unknown ids", func() {
			_, err := service.GetUser(ctx, principalFor(acme.Admin), "missing")
			Expect(err).To(MatchError(domainerrors.ErrUserNotFound))
		})
	})

	Describe("ListUsers", func() {
		It("forces the principal's tenant even when another is requested", func() {
			foreign := other.Tenant.ID
			users, err := service.ListUsers(ctx, principalFor(acme.Admin), repositories.UserFilters{TenantID: &foreign})
			Expect(err).NotTo(HaveOccurred())
			Expect(users).To(HaveLen(1))
			Expect(users[0].ID).To(Equal(acme.Admin.ID))
		})

		It("lets a super admin list every tenant", func() {
			root := entities.NewPrincipal("root", "root@federa.io", entities.RoleSuperAdmin, "", "", entities.RoleSuperAdmin.Permissions())
			users, err := service.ListUsers(ctx, root, repositories.UserFilters{})
			Expect(err).NotTo(HaveOccurred())
			Expect(users).To(HaveLen(2))
		})
	})
})

var _ = Describe("UploadService", func() {
	It("builds a tenant-scoped key and passes the content type through", func() {
		storage := &storageStub{}
		service := services.NewUploadService(storage, ports.NopLogger{})
		principal := entities.NewPrincipal("u1", "a@b.com", entities.RoleClubManager, "tenant-1", entities.TenantTypeFederation, nil)

		upload, err := service.PresignUpload(context.Background(), principal, "photo.png", "image/png")
		Expect(err).NotTo(HaveOccurred())
		Expect(upload.Key).To(HavePrefix("tenant-1/"))
		Expect(upload.Key).To(HaveSuffix("-photo.png"))
		Expect(storage.contentType).To(Equal("image/png"))
	})

	It("maps storage failures to internal", func() {
		service := services.NewUploadService(&storageStub{err: errors.New("boom")}, ports.NopLogger{})
		principal := entities.NewPrincipal("u1", "a@b.com", entities.RolePlayer, "tenant-1", entities.TenantTypeFederation, nil)

		_, err := service.PresignUpload(context.Background(), principal, "a.txt", "text/plain")
		Expect(domainerrors.KindOf(err)).To(Equal(domainerrors.KindInternal))
	})

	DescribeTable("ObjectKey keeps only the base file name",
		func(fileName, expected string) {
			Expect(services.ObjectKey("t", "id", fileName)).To(Equal(expected))
		},
		Entry("plain", "doc.pdf", "t/id-doc.pdf"),
		Entry("unix path", "../../etc/passwd", "t/id-passwd"),
		Entry("windows path", `C:\tmp\doc.pdf`, "t/id-doc.pdf"),
		Entry("empty", "", "t/id-file"),
	)
})

type storageStub struct {
	contentType string
	err         error
}

func (s *storageStub) PresignUpload(_ context.Context, key, contentType string) (*ports.PresignedUpload, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.contentType = contentType
	return &ports.PresignedUpload{
		URL:       "https://bucket.example/" + strings.TrimPrefix(key, "/"),
		Method:    "PUT",
		Key:       key,
		ExpiresAt: time.Now().Add(time.Minute),
	}, nil
}
