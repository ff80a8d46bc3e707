package postgres

// TenantModel é o model GORM para federações e organizações.
// O índice único em domain garante unicidade global entre os dois tipos.
type TenantModel struct {
	ID        string `gorm:"type:uuid;primaryKey"`
	Domain    string `gorm:"type:varchar(63);uniqueIndex;not null"`
	Name      string `gorm:"type:varchar(255);not null"`
	Country   string `gorm:"type:char(2);not null"`
	Type      string `gorm:"type:varchar(10);not null;index"`
	CreatedAt int64  `gorm:"autoCreateTime;index"`
	UpdatedAt int64  `gorm:"autoUpdateTime"`
}

func (TenantModel) TableName() string {
	return "tenants"
}

// UserModel é o model GORM para usuários
type UserModel struct {
	ID             string  `gorm:"type:uuid;primaryKey"`
	Email          string  `gorm:"type:varchar(255);uniqueIndex;not null"`
	FirstName      string  `gorm:"type:varchar(255);not null"`
	LastName       string  `gorm:"type:varchar(255)"`
	Gender         string  `gorm:"type:varchar(10);not null"`
	PasswordHash   string  `gorm:"type:varchar(255);not null"`
	Role           string  `gorm:"type:varchar(50);not null;index"`
	FederationID   *string `gorm:"type:uuid;index"`
	OrganizationID *string `gorm:"type:uuid;index"`
	CreatedAt      int64   `gorm:"autoCreateTime;index"`
	UpdatedAt      int64   `gorm:"autoUpdateTime"`
	DeletedAt      *int64  `gorm:"index"` // Soft delete

	Permissions []UserPermissionModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

func (UserModel) TableName() string {
	return "users"
}

// UserPermissionModel é um registro de concessão (usuário x permissão)
type UserPermissionModel struct {
	UserID     string `gorm:"type:uuid;primaryKey"`
	Permission string `gorm:"type:varchar(100);primaryKey"`
	CreatedAt  int64  `gorm:"autoCreateTime"`
}

func (UserPermissionModel) TableName() string {
	return "user_permissions"
}

// PlayerModel é o model GORM para jogadores (beneficiários)
type PlayerModel struct {
	ID        string  `gorm:"type:uuid;primaryKey"`
	TenantID  string  `gorm:"type:uuid;not null;index"`
	ClubID    *string `gorm:"type:uuid;index"`
	FirstName string  `gorm:"type:varchar(255);not null"`
	LastName  string  `gorm:"type:varchar(255)"`
	CreatedAt int64   `gorm:"autoCreateTime"`
}

func (PlayerModel) TableName() string {
	return "players"
}

// PlanModel é o model GORM para planos de filiação
type PlanModel struct {
	ID           string  `gorm:"type:uuid;primaryKey"`
	TenantID     string  `gorm:"type:uuid;not null;index"`
	Name         string  `gorm:"type:varchar(255);not null"`
	DurationDays int     `gorm:"not null;default:0"`
	Price        float64 `gorm:"type:numeric(14,3);not null"`
	Currency     string  `gorm:"type:char(3);not null"`
	CreatedAt    int64   `gorm:"autoCreateTime"`
}

func (PlanModel) TableName() string {
	return "plans"
}

// SubscriptionModel é o model GORM para assinaturas
type SubscriptionModel struct {
	ID        string `gorm:"type:uuid;primaryKey"`
	PlayerID  string `gorm:"type:uuid;not null;index"`
	PlanID    string `gorm:"type:uuid;not null;index"`
	TenantID  string `gorm:"type:uuid;not null;index"`
	Status    string `gorm:"type:varchar(20);not null;index"`
	StartDate int64  `gorm:"not null"`
	EndDate   int64  `gorm:"not null"`
	CreatedAt int64  `gorm:"autoCreateTime"`
}

func (SubscriptionModel) TableName() string {
	return "subscriptions"
}

// TransactionModel é o model GORM para transações de pagamento.
// gateway_transaction_id único torna a reconciliação idempotente.
type TransactionModel struct {
	ID                   string  `gorm:"type:uuid;primaryKey"`
	SubscriptionID       string  `gorm:"type:uuid;not null;index"`
	GatewayTransactionID string  `gorm:"type:varchar(255);uniqueIndex;not null"`
	Amount               float64 `gorm:"type:numeric(14,3);not null"`
	Currency             string  `gorm:"type:char(3);not null"`
	PaymentMethod        string  `gorm:"type:varchar(255)"`
	Metadata             string  `gorm:"type:jsonb"`
	CreatedAt            int64   `gorm:"autoCreateTime"`
}

func (TransactionModel) TableName() string {
	return "payment_transactions"
}

// AllModels lista os models migrados
func AllModels() []any {
	return []any{
		&TenantModel{},
		&UserModel{},
		&UserPermissionModel{},
		&PlayerModel{},
		&PlanModel{},
		&SubscriptionModel{},
		&TransactionModel{},
	}
}
