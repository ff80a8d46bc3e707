package ports

// Metrics registra contadores de negócio
type Metrics interface {
	TenantOnboarded(tenantType string)
	PaymentReconciled(outcome string)
}

// NopMetrics descarta todas as medições
type NopMetrics struct{}

func (NopMetrics) TenantOnboarded(string)   {}
func (NopMetrics) PaymentReconciled(string) {}
