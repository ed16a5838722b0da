package metrics

import "github.com/prometheus/client_golang/prometheus"

// EngineMetrics exposes counters for the scheduling engine's flows. All
// methods are nil-safe so handlers can run without metrics in tests.
type EngineMetrics struct {
	appointmentsCreated *prometheus.CounterVec
	conflictsDetected   prometheus.Counter
	recurrenceRejected  prometheus.Counter
	remindersComposed   *prometheus.CounterVec
}

func NewEngineMetrics(reg prometheus.Registerer) *EngineMetrics {
	m := &EngineMetrics{
		appointmentsCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "fisioagenda",
			Subsystem: "scheduling",
			Name:      "appointments_created_total",
			Help:      "Appointments created, by kind (single or recurring)",
		}, []string{"kind"}),
		conflictsDetected: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "fisioagenda",
			Subsystem: "scheduling",
			Name:      "conflicts_detected_total",
			Help:      "Create/reschedule attempts rejected for overlapping an existing appointment",
		}),
		recurrenceRejected: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "fisioagenda",
			Subsystem: "scheduling",
			Name:      "recurrence_rejected_total",
			Help:      "Recurring requests rejected for exceeding the occurrence cap",
		}),
		remindersComposed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "fisioagenda",
			Subsystem: "reminders",
			Name:      "composed_total",
			Help:      "Reminder messages composed, by source (template or fallback)",
		}, []string{"source"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.appointmentsCreated, m.conflictsDetected, m.recurrenceRejected, m.remindersComposed)
	return m
}

func (m *EngineMetrics) ObserveCreated(recurring bool, count int) {
	if m == nil {
		return
	}
	kind := "single"
	if recurring {
		kind = "recurring"
	}
	m.appointmentsCreated.WithLabelValues(kind).Add(float64(count))
}

func (m *EngineMetrics) ObserveConflict() {
	if m == nil {
		return
	}
	m.conflictsDetected.Inc()
}

func (m *EngineMetrics) ObserveRecurrenceRejected() {
	if m == nil {
		return
	}
	m.recurrenceRejected.Inc()
}

func (m *EngineMetrics) ObserveReminderComposed(fromTemplate bool) {
	if m == nil {
		return
	}
	source := "fallback"
	if fromTemplate {
		source = "template"
	}
	m.remindersComposed.WithLabelValues(source).Inc()
}
