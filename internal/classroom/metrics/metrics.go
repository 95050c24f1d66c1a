package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Enrollment outcomes.
const (
	OutcomeEnrolled      = "enrolled"
	OutcomeCapacity      = "capacity_exceeded"
	OutcomeAlreadyMember = "already_member"
	OutcomeNotFound      = "not_found"
	OutcomeFailed        = "failed"
)

// Metrics holds Prometheus metrics for class and student management.
type Metrics struct {
	ClassesCreated  prometheus.Counter
	StudentsCreated prometheus.Counter
	Enrollments     *prometheus.CounterVec
	CacheLookups    *prometheus.CounterVec
}

// New creates and registers classroom metrics on reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		ClassesCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "marlin_classes_created_total",
			Help: "Total number of classes created",
		}),
		StudentsCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "marlin_students_created_total",
			Help: "Total number of students created with their initial enrollment",
		}),
		Enrollments: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "marlin_enrollments_total",
			Help: "Class registration attempts by outcome",
		}, []string{"outcome"}),
		CacheLookups: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "marlin_class_cache_lookups_total",
			Help: "Class view cache lookups by result",
		}, []string{"result"}),
	}
}

func (m *Metrics) IncClassCreated() {
	if m != nil {
		m.ClassesCreated.Inc()
	}
}

func (m *Metrics) IncStudentCreated() {
	if m != nil {
		m.StudentsCreated.Inc()
	}
}

func (m *Metrics) IncEnrollment(outcome string) {
	if m != nil {
		m.Enrollments.WithLabelValues(outcome).Inc()
	}
}

func (m *Metrics) IncCacheLookup(hit bool) {
	if m == nil {
		return
	}
	if hit {
		m.CacheLookups.WithLabelValues("hit").Inc()
		return
	}
	m.CacheLookups.WithLabelValues("miss").Inc()
}
