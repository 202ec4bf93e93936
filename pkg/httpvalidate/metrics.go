package httpvalidate

import "github.com/prometheus/client_golang/prometheus"

// Outcome labels recorded by Metrics.
const (
	OutcomeValid       = "valid"
	OutcomeRejected    = "rejected"
	OutcomeMalformed   = "malformed"
	OutcomeUnsupported = "unsupported"
	OutcomeTooLarge    = "too_large"
)

// Metrics counts validation outcomes per schema.
type Metrics struct {
	results *prometheus.CounterVec
}

// NewMetrics creates and registers the validation counters on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		results: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "schemakit",
			Name:      "validations_total",
			Help:      "Number of request bodies validated, by schema and outcome.",
		}, []string{"schema", "outcome"}),
	}
	reg.MustRegister(m.results)
	return m
}

func (m *Metrics) observe(schema, outcome string) {
	if m == nil {
		return
	}
	m.results.WithLabelValues(schema, outcome).Inc()
}
