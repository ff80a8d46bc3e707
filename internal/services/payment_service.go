package services

import (
	"context"
	"errors"
	"time"

	"github.com/rafabene/federa-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/federa-backend/internal/domain/errors"
	"github.com/rafabene/federa-backend/internal/domain/ports"
	"github.com/rafabene/federa-backend/internal/domain/repositories"
)

// Resultados registrados em federa_payments_reconciled_total
const (
	OutcomeCreated  = "created"
	OutcomeReplayed = "replayed"
	OutcomeIgnored  = "ignored"
	OutcomeFailed   = "failed"
)

// PaymentService transforma pagamentos confirmados em assinaturas
type PaymentService struct {
	subRepo    repositories.SubscriptionRepository
	planRepo   repositories.PlanRepository
	playerRepo repositories.PlayerRepository
	uow        ports.UnitOfWork
	metrics    ports.Metrics
	logger     ports.Logger
	txTimeout  time.Duration
	now        func() time.Time
}

// NewPaymentService cria um novo PaymentService
func NewPaymentService(
	subRepo repositories.SubscriptionRepository,
	planRepo repositories.PlanRepository,
	playerRepo repositories.PlayerRepository,
	uow ports.UnitOfWork,
	metrics ports.Metrics,
	logger ports.Logger,
	txTimeout time.Duration,
) *PaymentService {
	if txTimeout <= 0 {
		txTimeout = DefaultTxTimeout
	}
	if metrics == nil {
		metrics = ports.NopMetrics{}
	}
	return &PaymentService{
		subRepo:    subRepo,
		planRepo:   planRepo,
		playerRepo: playerRepo,
		uow:        uow,
		metrics:    metrics,
		logger:     logger,
		txTimeout:  txTimeout,
		now:        time.Now,
	}
}

// ReconcileResult descreve o efeito de um evento de pagamento
type ReconcileResult struct {
	Subscriptions []*entities.Subscription
	Transaction   *entities.Transaction
	// Replayed indica que o id do gateway já havia sido processado
	Replayed bool
	// Ignored indica evento que não é pagamento de filiação
	Ignored bool
}

// HandlePaymentEvent despacha um evento verificado. Eventos que não são
// pagamentos de filiação confirmados são aceitos sem efeito.
func (s *PaymentService) HandlePaymentEvent(ctx context.Context, event entities.PaymentEvent) (*ReconcileResult, error) {
	if !event.IsMembershipPayment() {
		s.logger.Debug("ignoring payment event", "event_id", event.ID, "type", event.Type)
		s.metrics.PaymentReconciled(OutcomeIgnored)
		return &ReconcileResult{Ignored: true}, nil
	}
	return s.ReconcilePayment(ctx, event)
}

// ReconcilePayment cria uma assinatura por beneficiário e uma transação
// referenciando a primeira, tudo numa única transação. Reentregas do mesmo
// id do gateway são no-op.
func (s *PaymentService) ReconcilePayment(ctx context.Context, event entities.PaymentEvent) (*ReconcileResult, error) {
	log := s.logger.With("event_id", event.ID, "gateway_transaction_id", event.GatewayTransactionID)

	playerIDs := event.BeneficiaryIDs()
	if len(playerIDs) == 0 {
		s.metrics.PaymentReconciled(OutcomeFailed)
		log.Warn("payment without beneficiaries")
		return nil, domainerrors.ErrInvalidBeneficiary
	}
	planID := event.Metadata[entities.MetadataPlanIDKey]
	if planID == "" {
		s.metrics.PaymentReconciled(OutcomeFailed)
		log.Warn("payment without plan")
		return nil, domainerrors.ErrMissingPlan
	}

	txCtx, cancel := context.WithTimeout(ctx, s.txTimeout)
	defer cancel()

	result := &ReconcileResult{}
	err := s.uow.WithTransaction(txCtx, func(ctx context.Context) error {
		stored, err := s.subRepo.FindTransactionByGatewayID(ctx, event.GatewayTransactionID)
		if err != nil {
			return err
		}
		if stored != nil {
			result.Transaction = stored
			result.Replayed = true
			return nil
		}

		plan, err := s.planRepo.FindByID(ctx, planID)
		if err != nil {
			return err
		}
		if plan == nil {
			return domainerrors.ErrPlanNotFound
		}

		players, err := s.playerRepo.FindByIDs(ctx, playerIDs)
		if err != nil {
			return err
		}
		if len(players) != len(playerIDs) {
			return domainerrors.ErrPlayerNotFound
		}
		for _, player := range players {
			if player.TenantID != plan.TenantID {
				return domainerrors.ErrPlayerNotFound
			}
		}

		start := s.now().UTC()
		subs := make([]*entities.Subscription, 0, len(playerIDs))
		for _, playerID := range playerIDs {
			sub := &entities.Subscription{
				PlayerID:  playerID,
				PlanID:    plan.ID,
				TenantID:  plan.TenantID,
				Status:    entities.SubscriptionStatusActive,
				StartDate: start,
				// TODO: derive EndDate from plan.DurationDays once billing agrees on renewal rules
				EndDate: start,
			}
			if err := s.subRepo.CreateSubscription(ctx, sub); err != nil {
				return err
			}
			subs = append(subs, sub)
		}

		record := &entities.Transaction{
			SubscriptionID:       subs[0].ID,
			GatewayTransactionID: event.GatewayTransactionID,
			Amount:               event.Amount(),
			Currency:             event.NormalizedCurrency(),
			PaymentMethod:        event.PaymentMethod,
			Metadata:             event.Metadata,
		}
		if err := s.subRepo.CreateTransaction(ctx, record); err != nil {
			return err
		}

		result.Subscriptions = subs
		result.Transaction = record
		return nil
	})

	if errors.Is(err, domainerrors.ErrDuplicateKey) {
		// outra entrega do mesmo evento venceu a corrida; tudo foi desfeito
		return s.replayed(ctx, log, event.GatewayTransactionID)
	}
	if err != nil {
		s.metrics.PaymentReconciled(OutcomeFailed)
		return nil, s.failure(txCtx, log, err)
	}

	if result.Replayed {
		s.metrics.PaymentReconciled(OutcomeReplayed)
		log.Info("payment already reconciled", "transaction_id", result.Transaction.ID)
		return result, nil
	}

	s.metrics.PaymentReconciled(OutcomeCreated)
	log.Info("payment reconciled",
		"transaction_id", result.Transaction.ID,
		"subscriptions", len(result.Subscriptions),
	)
	return result, nil
}

func (s *PaymentService) replayed(ctx context.Context, log ports.Logger, gatewayID string) (*ReconcileResult, error) {
	stored, err := s.subRepo.FindTransactionByGatewayID(ctx, gatewayID)
	if err != nil {
		s.metrics.PaymentReconciled(OutcomeFailed)
		log.Error("failed to load concurrently stored transaction", "error", err)
		return nil, domainerrors.Internal(err)
	}
	s.metrics.PaymentReconciled(OutcomeReplayed)
	log.Info("payment reconciled by concurrent delivery")
	return &ReconcileResult{Transaction: stored, Replayed: true}, nil
}

func (s *PaymentService) failure(txCtx context.Context, log ports.Logger, err error) error {
	var de *domainerrors.DomainError
	if errors.As(err, &de) && de.Kind != domainerrors.KindInternal {
		log.Warn("payment rejected", "reason", de.Message)
		return de
	}

	if errors.Is(txCtx.Err(), context.DeadlineExceeded) {
		log.Error("payment reconciliation timed out", "error", err)
	} else {
		log.Error("payment reconciliation failed", "error", err)
	}
	return domainerrors.Internal(err)
}
