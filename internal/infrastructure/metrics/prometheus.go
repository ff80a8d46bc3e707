package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/rafabene/federa-backend/internal/domain/ports"
)

// Prometheus implementa ports.Metrics
type Prometheus struct {
	registry          *prometheus.Registry
	tenantsOnboarded  *prometheus.CounterVec
	paymentsReconcile *prometheus.CounterVec
}

// NewPrometheus cria e registra os contadores num registry próprio
func NewPrometheus() *Prometheus {
	registry := prometheus.NewRegistry()

	p := &Prometheus{
		registry: registry,
		tenantsOnboarded: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "federa_tenants_onboarded_total",
				Help: "Total number of tenants created by onboarding",
			},
			[]string{"type"},
		),
		paymentsReconcile: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "federa_payments_reconciled_total",
				Help: "Payment webhook events by reconciliation outcome",
			},
			[]string{"outcome"},
		),
	}

	registry.MustRegister(
		p.tenantsOnboarded,
		p.paymentsReconcile,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return p
}

var _ ports.Metrics = (*Prometheus)(nil)

func (p *Prometheus) TenantOnboarded(tenantType string) {
	p.tenantsOnboarded.WithLabelValues(tenantType).Inc()
}

func (p *Prometheus) PaymentReconciled(outcome string) {
	p.paymentsReconcile.WithLabelValues(outcome).Inc()
}

// Handler expõe o registry no formato de exposição do Prometheus
func (p *Prometheus) Handler() http.Handler {
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{})
}

// Registry retorna o registry (para testes)
func (p *Prometheus) Registry() *prometheus.Registry {
	return p.registry
}
