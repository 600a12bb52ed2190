// Package metrics exposes Prometheus instruments for the assessment flow.
//
// Usage:
//
//	metrics.RecordAssessmentCompleted("happy")
//	metrics.RecordAnswerRejected("out_of_sequence")
//	metrics.RecordEvent("mood_recorded", err)
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// AssessmentsStartedTotal counts sessions that reached the first question.
	AssessmentsStartedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cinema_assessments_started_total",
			Help: "Total number of mood assessments started",
		},
	)

	// AssessmentsCompletedTotal counts completed assessments by dominant mood.
	AssessmentsCompletedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cinema_assessments_completed_total",
			Help: "Total number of mood assessments completed, by dominant mood",
		},
		[]string{"mood"},
	)

	// AnswersRejectedTotal counts answers the engine refused.
	AnswersRejectedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cinema_answers_rejected_total",
			Help: "Total number of rejected answers, by reason",
		},
		[]string{"reason"},
	)

	// EventsRecordedTotal counts persisted notifications by topic and outcome.
	EventsRecordedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cinema_events_recorded_total",
			Help: "Total number of assessment notifications handled, by topic and outcome",
		},
		[]string{"topic", "outcome"},
	)

	// ActiveSessions tracks live assessment sessions.
	ActiveSessions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cinema_active_sessions",
			Help: "Number of assessment sessions currently held in memory",
		},
	)
)

func RecordAssessmentStarted() {
	AssessmentsStartedTotal.Inc()
}

func RecordAssessmentCompleted(mood string) {
	AssessmentsCompletedTotal.WithLabelValues(mood).Inc()
}

func RecordAnswerRejected(reason string) {
	AnswersRejectedTotal.WithLabelValues(reason).Inc()
}

// RecordEvent notes the outcome of persisting one notification.
func RecordEvent(topic string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	EventsRecordedTotal.WithLabelValues(topic, outcome).Inc()
}

func SetActiveSessions(n int) {
	ActiveSessions.Set(float64(n))
}
