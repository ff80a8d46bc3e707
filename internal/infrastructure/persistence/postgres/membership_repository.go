package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rafabene/federa-backend/internal/domain/entities"
	"github.com/rafabene/federa-backend/internal/domain/repositories"
)

// PlayerRepository implementa repositories.PlayerRepository
type PlayerRepository struct {
	db *gorm.DB
}

// NewPlayerRepository cria um novo PlayerRepository
func NewPlayerRepository(db *gorm.DB) repositories.PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) Create(ctx context.Context, player *entities.Player) error {
	if player.ID == "" {
		player.ID = uuid.NewString()
	}
	model := &PlayerModel{
		ID:        player.ID,
		TenantID:  player.TenantID,
		ClubID:    player.ClubID,
		FirstName: player.FirstName,
		LastName:  player.LastName,
	}
	if err := dbFrom(ctx, r.db).Create(model).Error; err != nil {
		return translateWriteError(err)
	}
	player.CreatedAt = time.Unix(model.CreatedAt, 0)
	return nil
}

// FindByIDs retorna os jogadores encontrados; ids inexistentes são omitidos
func (r *PlayerRepository) FindByIDs(ctx context.Context, ids []string) ([]*entities.Player, error) {
	if len(ids) == 0 {
		return []*entities.Player{}, nil
	}

	var models []PlayerModel
	if err := dbFrom(ctx, r.db).Where("id IN ?", ids).Find(&models).Error; err != nil {
		return nil, err
	}

	players := make([]*entities.Player, 0, len(models))
	for _, m := range models {
		players = append(players, &entities.Player{
			ID:        m.ID,
			TenantID:  m.TenantID,
			ClubID:    m.ClubID,
			FirstName: m.FirstName,
			LastName:  m.LastName,
			CreatedAt: time.Unix(m.CreatedAt, 0),
		})
	}
	return players, nil
}

// PlanRepository implementa repositories.PlanRepository
type PlanRepository struct {
	db *gorm.DB
}

// NewPlanRepository cria um novo PlanRepository
func NewPlanRepository(db *gorm.DB) repositories.PlanRepository {
	return &PlanRepository{db: db}
}

func (r *PlanRepository) Create(ctx context.Context, plan *entities.Plan) error {
	if plan.ID == "" {
		plan.ID = uuid.NewString()
	}
	model := &PlanModel{
		ID:           plan.ID,
		TenantID:     plan.TenantID,
		Name:         plan.Name,
		DurationDays: plan.DurationDays,
		Price:        plan.Price,
		Currency:     plan.Currency,
	}
	if err := dbFrom(ctx, r.db).Create(model).Error; err != nil {
		return translateWriteError(err)
	}
	plan.CreatedAt = time.Unix(model.CreatedAt, 0)
	return nil
}

func (r *PlanRepository) FindByID(ctx context.Context, id string) (*entities.Plan, error) {
	var m PlanModel
	if err := dbFrom(ctx, r.db).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entities.Plan{
		ID:           m.ID,
		TenantID:     m.TenantID,
		Name:         m.Name,
		DurationDays: m.DurationDays,
		Price:        m.Price,
		Currency:     m.Currency,
		CreatedAt:    time.Unix(m.CreatedAt, 0),
	}, nil
}

// SubscriptionRepository implementa repositories.SubscriptionRepository
type SubscriptionRepository struct {
	db *gorm.DB
}

// NewSubscriptionRepository cria um novo SubscriptionRepository
func NewSubscriptionRepository(db *gorm.DB) repositories.SubscriptionRepository {
	return &SubscriptionRepository{db: db}
}

func (r *SubscriptionRepository) CreateSubscription(ctx context.Context, sub *entities.Subscription) error {
	if sub.ID == "" {
		sub.ID = uuid.NewString()
	}
	model := &SubscriptionModel{
		ID:        sub.ID,
		PlayerID:  sub.PlayerID,
		PlanID:    sub.PlanID,
		TenantID:  sub.TenantID,
		Status:    string(sub.Status),
		StartDate: sub.StartDate.Unix(),
		EndDate:   sub.EndDate.Unix(),
	}
	if err := dbFrom(ctx, r.db).Create(model).Error; err != nil {
		return translateWriteError(err)
	}
	sub.CreatedAt = time.Unix(model.CreatedAt, 0)
	return nil
}

func (r *SubscriptionRepository) CreateTransaction(ctx context.Context, tx *entities.Transaction) error {
	if tx.ID == "" {
		tx.ID = uuid.NewString()
	}

	metadata, err := json.Marshal(tx.Metadata)
	if err != nil {
		return err
	}

	model := &TransactionModel{
		ID:                   tx.ID,
		SubscriptionID:       tx.SubscriptionID,
		GatewayTransactionID: tx.GatewayTransactionID,
		Amount:               tx.Amount,
		Currency:             tx.Currency,
		PaymentMethod:        tx.PaymentMethod,
		Metadata:             string(metadata),
	}
	if err := dbFrom(ctx, r.db).Create(model).Error; err != nil {
		return translateWriteError(err)
	}
	tx.CreatedAt = time.Unix(model.CreatedAt, 0)
	return nil
}

func (r *SubscriptionRepository) FindTransactionByGatewayID(ctx context.Context, gatewayID string) (*entities.Transaction, error) {
	var m TransactionModel
	if err := dbFrom(ctx, r.db).Where("gateway_transaction_id = ?", gatewayID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	metadata := map[string]string{}
	if m.Metadata != "" {
		if err := json.Unmarshal([]byte(m.Metadata), &metadata); err != nil {
			return nil, err
		}
	}

	return &entities.Transaction{
		ID:                   m.ID,
		SubscriptionID:       m.SubscriptionID,
		GatewayTransactionID: m.GatewayTransactionID,
		Amount:               m.Amount,
		Currency:             m.Currency,
		PaymentMethod:        m.PaymentMethod,
		Metadata:             metadata,
		CreatedAt:            time.Unix(m.CreatedAt, 0),
	}, nil
}

func (r *SubscriptionRepository) CountSubscriptions(ctx context.Context) (int64, error) {
	var count int64
	err := dbFrom(ctx, r.db).Model(&SubscriptionModel{}).Count(&count).Error
	return count, err
}

func (r *SubscriptionRepository) CountTransactions(ctx context.Context) (int64, error) {
	var count int64
	err := dbFrom(ctx, r.db).Model(&TransactionModel{}).Count(&count).Error
	return count, err
}
