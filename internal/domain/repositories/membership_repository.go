package repositories

import (
	"context"

	"github.com/rafabene/federa-backend/internal/domain/entities"
)

// PlayerRepository define a interface de leitura de jogadores
type PlayerRepository interface {
	Create(ctx context.Context, player *entities.Player) error
	FindByIDs(ctx context.Context, ids []string) ([]*entities.Player, error)
}

// PlanRepository define a interface de leitura de planos
type PlanRepository interface {
	Create(ctx context.Context, plan *entities.Plan) error
	FindByID(ctx context.Context, id string) (*entities.Plan, error)
}

// SubscriptionRepository persiste assinaturas e transações de pagamento
type SubscriptionRepository interface {
	CreateSubscription(ctx context.Context, sub *entities.Subscription) error
	// CreateTransaction retorna errors.ErrDuplicateKey quando o id do gateway já existe
	CreateTransaction(ctx context.Context, tx *entities.Transaction) error
	FindTransactionByGatewayID(ctx context.Context, gatewayID string) (*entities.Transaction, error)
	CountSubscriptions(ctx context.Context) (int64, error)
	CountTransactions(ctx context.Context) (int64, error)
}
