package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds all application metrics
type Metrics struct {
	AssessmentsTotal   *prometheus.CounterVec
	BPClassifications  *prometheus.CounterVec
	EmergencyReferrals prometheus.Counter
	ActiveSessions     prometheus.GaugeFunc
	AssessmentLatency  prometheus.Histogram
}

// New creates the application metrics. Registration is left to the
// caller so tests can use their own registry.
func New(namespace string, sessionCount func() float64) *Metrics {
	return &Metrics{
		AssessmentsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "assessments_total",
			Help:      "Total number of assessments generated, by risk category",
		}, []string{"risk_category"}),
		BPClassifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bp_classifications_total",
			Help:      "Total number of blood pressure classifications, by label",
		}, []string{"classification"}),
		EmergencyReferrals: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "emergency_referrals_total",
			Help:      "Total number of assessments that triggered an emergency referral",
		}),
		ActiveSessions: prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "active_sessions",
			Help:      "Current number of sessions with a live assessment",
		}, sessionCount),
		AssessmentLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "assessment_duration_seconds",
			Help:      "Time spent deriving an assessment",
			Buckets:   []float64{.0001, .0005, .001, .005, .01, .05, .1},
		}),
	}
}

// MustRegister registers every metric on the given registerer.
func (m *Metrics) MustRegister(reg prometheus.Registerer) {
	reg.MustRegister(
		m.AssessmentsTotal,
		m.BPClassifications,
		m.EmergencyReferrals,
		m.ActiveSessions,
		m.AssessmentLatency,
	)
}
