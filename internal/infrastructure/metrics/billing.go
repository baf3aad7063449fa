package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// BillingMetrics counts calculator and scheduler activity. A nil receiver or
// one built without a registerer records nothing.
type BillingMetrics struct {
	amounts      *prometheus.CounterVec
	schedules    prometheus.Counter
	installments prometheus.Counter
	payments     *prometheus.CounterVec
}

func NewBillingMetrics(reg prometheus.Registerer) *BillingMetrics {
	if reg == nil {
		return &BillingMetrics{}
	}
	amounts := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "contract_amounts_computed_total",
		Help: "Revenue calculations by deposit policy branch.",
	}, []string{"branch"})
	schedules := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "installment_schedules_generated_total",
		Help: "Installment schedules generated or regenerated.",
	})
	installments := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "installments_generated_total",
		Help: "Installments written by schedule generation.",
	})
	payments := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "deposit_payments_total",
		Help: "Deposit payment attempts by resulting status.",
	}, []string{"status"})
	reg.MustRegister(amounts, schedules, installments, payments)
	return &BillingMetrics{
		amounts:      amounts,
		schedules:    schedules,
		installments: installments,
		payments:     payments,
	}
}

func (m *BillingMetrics) AmountsComputed(branch string) {
	if m == nil || m.amounts == nil {
		return
	}
	m.amounts.WithLabelValues(normalizeLabel(branch)).Inc()
}

func (m *BillingMetrics) ScheduleGenerated(installments int) {
	if m == nil || m.schedules == nil {
		return
	}
	m.schedules.Inc()
	m.installments.Add(float64(installments))
}

func (m *BillingMetrics) DepositPayment(status string) {
	if m == nil || m.payments == nil {
		return
	}
	m.payments.WithLabelValues(normalizeLabel(status)).Inc()
}
