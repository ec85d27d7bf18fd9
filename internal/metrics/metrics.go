package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

const metricPrefix = "clubhub_"

var (
	registerOnce sync.Once

	paymentsConfirmed prometheus.Counter
	paymentsRefunded  prometheus.Counter
	sweepDemotions    prometheus.Counter
	renewalWarnings   prometheus.Counter
)

// Init registers the billing metrics with the default registry. Safe to
// call more than once.
func Init() {
	registerOnce.Do(func() {
		paymentsConfirmed = prometheus.NewCounter(prometheus.CounterOpts{
			Name: metricPrefix + "payments_confirmed_total",
			Help: "Total payments confirmed by an operator",
		})
		paymentsRefunded = prometheus.NewCounter(prometheus.CounterOpts{
			Name: metricPrefix + "payments_refunded_total",
			Help: "Total payments refunded",
		})
		sweepDemotions = prometheus.NewCounter(prometheus.CounterOpts{
			Name: metricPrefix + "sweep_demotions_total",
			Help: "Total clubs demoted to OVERDUE by the expiry sweep",
		})
		renewalWarnings = prometheus.NewCounter(prometheus.CounterOpts{
			Name: metricPrefix + "renewal_warnings_total",
			Help: "Total renewal warnings dispatched by the sweeper",
		})

		prometheus.MustRegister(paymentsConfirmed, paymentsRefunded, sweepDemotions, renewalWarnings)
	})
}

func IncPaymentConfirmed() {
	if paymentsConfirmed != nil {
		paymentsConfirmed.Inc()
	}
}

func IncPaymentRefunded() {
	if paymentsRefunded != nil {
		paymentsRefunded.Inc()
	}
}

func AddSweepDemoted(n int) {
	if sweepDemotions != nil {
		sweepDemotions.Add(float64(n))
	}
}

func IncRenewalWarning() {
	if renewalWarnings != nil {
		renewalWarnings.Inc()
	}
}
