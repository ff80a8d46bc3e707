package entities

import "time"

// SubscriptionStatus representa o estado de uma assinatura
type SubscriptionStatus string

const (
	SubscriptionStatusActive    SubscriptionStatus = "ACTIVE"
	SubscriptionStatusInactive  SubscriptionStatus = "INACTIVE"
	SubscriptionStatusCancelled SubscriptionStatus = "CANCELLED"
	SubscriptionStatusExpired   SubscriptionStatus = "EXPIRED"
)

// Player é o beneficiário de uma assinatura
type Player struct {
	ID        string
	TenantID  string
	ClubID    *string
	FirstName string
	LastName  string
	CreatedAt time.Time
}

// Plan é um plano de filiação oferecido por um tenant
type Plan struct {
	ID           string
	TenantID     string
	Name         string
	DurationDays int
	Price        float64
	Currency     string
	CreatedAt    time.Time
}

// Subscription liga um jogador a um plano
type Subscription struct {
	ID        string
	PlayerID  string
	PlanID    string
	TenantID  string
	Status    SubscriptionStatus
	StartDate time.Time
	EndDate   time.Time
	CreatedAt time.Time
}

// IsActive verifica se a assinatura está ativa
func (s *Subscription) IsActive() bool {
	return s.Status == SubscriptionStatusActive
}

// Transaction é o registro de pagamento de uma ou mais assinaturas
type Transaction struct {
	ID                   string
	SubscriptionID       string
	GatewayTransactionID string
	Amount               float64
	Currency             string
	PaymentMethod        string
	Metadata             map[string]string
	CreatedAt            time.Time
}
