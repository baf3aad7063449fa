package interfaces

// IBillingMetrics receives counters from the billing use cases.
type IBillingMetrics interface {
	AmountsComputed(branch string)
	ScheduleGenerated(installments int)
	DepositPayment(status string)
}
