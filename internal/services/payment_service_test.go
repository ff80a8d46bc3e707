package services_test

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rafabene/federa-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/federa-backend/internal/domain/errors"
	"github.com/rafabene/federa-backend/internal/domain/repositories"
	"github.com/rafabene/federa-backend/internal/domain/valueobjects"
	"github.com/rafabene/federa-backend/internal/services"
)

var _ = Describe("PaymentService", func() {
	var (
		ctx     context.Context
		f       *fixture
		service *services.PaymentService
		tenant  *entities.Tenant
		plan    *entities.Plan
	)

	BeforeEach(func() {
		ctx = context.Background()
		f = newFixture()
		service = services.NewPaymentService(f.subs, f.plans, f.players, f.uow, f.metrics, f.logger, time.Second)

		domain, err := valueobjects.NewTenantDomain("acme")
		Expect(err).NotTo(HaveOccurred())
		tenant = &entities.Tenant{Domain: domain, Name: "Acme", Country: "BR", Type: entities.TenantTypeFederation}
		Expect(f.tenants.Create(ctx, tenant)).To(Succeed())

		plan = &entities.Plan{ID: "plan-1", TenantID: tenant.ID, Name: "Anual", DurationDays: 365, Price: 120, Currency: "BRL"}
		Expect(f.plans.Create(ctx, plan)).To(Succeed())

		for _, id := range []string{"p1", "p2", "p3"} {
			Expect(f.players.Create(ctx, &entities.Player{ID: id, TenantID: tenant.ID, FirstName: id})).To(Succeed())
		}
	})

	membershipEvent := func(gatewayID, playerIDs string) entities.PaymentEvent {
		return entities.PaymentEvent{
			ID:                   "evt_" + gatewayID,
			Type:                 entities.PaymentEventSucceeded,
			GatewayTransactionID: gatewayID,
			AmountMinor:          12000,
			Currency:             "brl",
			PaymentMethod:        "pm_card",
			Metadata: map[string]string{
				entities.MetadataTypeKey:      entities.MetadataTypeMember,
				entities.MetadataPlayerIDsKey: playerIDs,
				entities.MetadataPlanIDKey:    "plan-1",
			},
		}
	}

	counts := func() (int64, int64) {
		subs, err := f.subs.CountSubscriptions(ctx)
		Expect(err).NotTo(HaveOccurred())
		txs, err := f.subs.CountTransactions(ctx)
		Expect(err).NotTo(HaveOccurred())
		return subs, txs
	}

	It("creates one subscription per beneficiary and one transaction for the first", func() {
		result, err := service.HandlePaymentEvent(ctx, membershipEvent("pi_1", "p1,p2,p3"))
		Expect(err).NotTo(HaveOccurred())
		Expect(result.Replayed).To(BeFalse())
		Expect(result.Ignored).To(BeFalse())

		Expect(result.Subscriptions).To(HaveLen(3))
		for i, sub := range result.Subscriptions {
			Expect(sub.PlayerID).To(Equal([]string{"p1", "p2", "p3"}[i]))
			Expect(sub.PlanID).To(Equal("plan-1"))
			Expect(sub.TenantID).To(Equal(tenant.ID))
			Expect(sub.Status).To(Equal(entities.SubscriptionStatusActive))
			Expect(sub.EndDate).To(Equal(sub.StartDate))
		}

		tx := result.Transaction
		Expect(tx.SubscriptionID).To(Equal(result.Subscriptions[0].ID))
		Expect(tx.GatewayTransactionID).To(Equal("pi_1"))
		Expect(tx.Amount).To(BeNumerically("==", 120))
		Expect(tx.Currency).To(Equal("BRL"))
		Expect(tx.PaymentMethod).To(Equal("pm_card"))

		subs, txs := counts()
		Expect(subs).To(Equal(int64(3)))
		Expect(txs).To(Equal(int64(1)))
		Expect(f.metrics.Reconciled(services.OutcomeCreated)).To(Equal(1))
	})

	It("normalizes the beneficiary list before creating subscriptions", func() {
		result, err := service.ReconcilePayment(ctx, membershipEvent("pi_norm", " p2 ,,p1, p2 "))
		Expect(err).NotTo(HaveOccurred())
		Expect(result.Subscriptions).To(HaveLen(2))
		Expect(result.Subscriptions[0].PlayerID).To(Equal("p2"))
		Expect(result.Subscriptions[1].PlayerID).To(Equal("p1"))
	})

	It("stores the event metadata with the transaction", func() {
		_, err := service.ReconcilePayment(ctx, membershipEvent("pi_meta", "p1"))
		Expect(err).NotTo(HaveOccurred())

		stored, err := f.subs.FindTransactionByGatewayID(ctx, "pi_meta")
		Expect(err).NotTo(HaveOccurred())
		Expect(stored.Metadata).To(HaveKeyWithValue(entities.MetadataPlanIDKey, "plan-1"))
		Expect(stored.Metadata).To(HaveKeyWithValue(entities.MetadataPlayerIDsKey, "p1"))
	})

	It("treats a redelivered event as a successful no-op", func() {
		first, err := service.HandlePaymentEvent(ctx, membershipEvent("pi_dup", "p1,p2"))
		Expect(err).NotTo(HaveOccurred())

		second, err := service.HandlePaymentEvent(ctx, membershipEvent("pi_dup", "p1,p2"))
		Expect(err).NotTo(HaveOccurred())
		Expect(second.Replayed).To(BeTrue())
		Expect(second.Subscriptions).To(BeEmpty())
		Expect(second.Transaction.ID).To(Equal(first.Transaction.ID))

		subs, txs := counts()
		Expect(subs).To(Equal(int64(2)))
		Expect(txs).To(Equal(int64(1)))
		Expect(f.metrics.Reconciled(services.OutcomeReplayed)).To(Equal(1))
	})

	It("reports a concurrent delivery that wins the insert as replayed and rolls back", func() {
		first, err := service.HandlePaymentEvent(ctx, membershipEvent("pi_race", "p1"))
		Expect(err).NotTo(HaveOccurred())

		// a primeira consulta não enxerga a transação, como numa entrega concorrente
		racing := &hiddenOnceSubs{SubscriptionRepository: f.subs}
		racer := services.NewPaymentService(racing, f.plans, f.players, f.uow, f.metrics, f.logger, time.Second)

		result, err := racer.HandlePaymentEvent(ctx, membershipEvent("pi_race", "p2,p3"))
		Expect(err).NotTo(HaveOccurred())
		Expect(result.Replayed).To(BeTrue())
		Expect(result.Transaction.ID).To(Equal(first.Transaction.ID))

		subs, txs := counts()
		Expect(subs).To(Equal(int64(1)))
		Expect(txs).To(Equal(int64(1)))
	})

	DescribeTable("ignores events that are not membership payments",
		func(event entities.PaymentEvent) {
			result, err := service.HandlePaymentEvent(ctx, event)
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Ignored).To(BeTrue())

			subs, txs := counts()
			Expect(subs).To(BeZero())
			Expect(txs).To(BeZero())
		},
		Entry("other event type", entities.PaymentEvent{
			Type:     "payment_intent.created",
			Metadata: map[string]string{entities.MetadataTypeKey: entities.MetadataTypeMember},
		}),
		Entry("other metadata type", entities.PaymentEvent{
			Type:     entities.PaymentEventSucceeded,
			Metadata: map[string]string{entities.MetadataTypeKey: "donation"},
		}),
		Entry("no metadata", entities.PaymentEvent{Type: entities.PaymentEventSucceeded}),
	)

	It("rejects a payment without beneficiaries", func() {
		_, err := service.HandlePaymentEvent(ctx, membershipEvent("pi_empty", " , ,"))
		Expect(err).To(MatchError(domainerrors.ErrInvalidBeneficiary))
		Expect(domainerrors.KindOf(err)).To(Equal(domainerrors.KindBadRequest))
		Expect(f.metrics.Reconciled(services.OutcomeFailed)).To(Equal(1))
	})

	It("rejects a payment without plan", func() {
		event := membershipEvent("pi_noplan", "p1")
		delete(event.Metadata, entities.MetadataPlanIDKey)

		_, err := service.HandlePaymentEvent(ctx, event)
		Expect(err).To(MatchError(domainerrors.ErrMissingPlan))
	})

	It("returns not found for an unknown plan and writes nothing", func() {
		event := membershipEvent("pi_badplan", "p1")
		event.Metadata[entities.MetadataPlanIDKey] = "missing"

		_, err := service.HandlePaymentEvent(ctx, event)
		Expect(err).To(MatchError(domainerrors.ErrPlanNotFound))

		subs, txs := counts()
		Expect(subs).To(BeZero())
		Expect(txs).To(BeZero())
	})

	It("returns not found when any beneficiary is missing and writes nothing", func() {
		_, err := service.HandlePaymentEvent(ctx, membershipEvent("pi_badplayer", "p1,ghost"))
		Expect(err).To(MatchError(domainerrors.ErrPlayerNotFound))
		Expect(domainerrors.KindOf(err)).To(Equal(domainerrors.KindNotFound))

		subs, txs := counts()
		Expect(subs).To(BeZero())
		Expect(txs).To(BeZero())
	})

	It("keeps zero-decimal currency amounts untouched", func() {
		event := membershipEvent("pi_jpy", "p1")
		event.Currency = "jpy"
		event.AmountMinor = 5000

		result, err := service.ReconcilePayment(ctx, event)
		Expect(err).NotTo(HaveOccurred())
		Expect(result.Transaction.Amount).To(BeNumerically("==", 5000))
		Expect(result.Transaction.Currency).To(Equal("JPY"))
	})

	It("converts three-decimal currency amounts from thousandths", func() {
		event := membershipEvent("pi_kwd", "p1")
		event.Currency = "kwd"
		event.AmountMinor = 5124

		result, err := service.ReconcilePayment(ctx, event)
		Expect(err).NotTo(HaveOccurred())
		Expect(result.Transaction.Amount).To(BeNumerically("~", 5.124, 1e-9))

		stored, err := f.subs.FindTransactionByGatewayID(ctx, "pi_kwd")
		Expect(err).NotTo(HaveOccurred())
		Expect(stored.Amount).To(BeNumerically("~", 5.124, 1e-9))
		Expect(stored.Currency).To(Equal("KWD"))
	})

	It("rejects beneficiaries from another tenant and writes nothing", func() {
		domain, err := valueobjects.NewTenantDomain("rival")
		Expect(err).NotTo(HaveOccurred())
		rival := &entities.Tenant{Domain: domain, Name: "Rival", Country: "BR", Type: entities.TenantTypeFederation}
		Expect(f.tenants.Create(ctx, rival)).To(Succeed())
		Expect(f.players.Create(ctx, &entities.Player{ID: "outsider", TenantID: rival.ID, FirstName: "Out"})).To(Succeed())

		_, err = service.HandlePaymentEvent(ctx, membershipEvent("pi_cross", "p1,outsider"))
		Expect(err).To(MatchError(domainerrors.ErrPlayerNotFound))

		subs, txs := counts()
		Expect(subs).To(BeZero())
		Expect(txs).To(BeZero())
	})
})

type hiddenOnceSubs struct {
	repositories.SubscriptionRepository
	lookups int
}

func (h *hiddenOnceSubs) FindTransactionByGatewayID(ctx context.Context, gatewayID string) (*entities.Transaction, error) {
	h.lookups++
	if h.lookups == 1 {
		return nil, nil
	}
	return h.SubscriptionRepository.FindTransactionByGatewayID(ctx, gatewayID)
}
