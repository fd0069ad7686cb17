// Package metrics exposes dispatch outcome counters. A nil *Metrics is valid
// everywhere and counts nothing, so instrumentation stays optional.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	OutcomeHandler   = "handler"
	OutcomeAbort     = "abort"
	OutcomeBadTarget = "bad_target"
	OutcomeNoRoute   = "no_route"
)

type Metrics struct {
	outcomes *prometheus.CounterVec
}

// New builds the counters and registers them, unless reg is nil.
func New(reg prometheus.Registerer) *Metrics {
	outcomes := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "strand",
		Subsystem: "dispatch",
		Name:      "requests_total",
		Help:      "Requests dispatched, partitioned by outcome.",
	}, []string{"outcome"})

	if reg != nil {
		reg.MustRegister(outcomes)
	}

	return &Metrics{outcomes: outcomes}
}

// Outcome returns the counter of a single dispatch outcome, mostly for tests.
func (m *Metrics) Outcome(outcome string) prometheus.Counter {
	return m.outcomes.WithLabelValues(outcome)
}

func (m *Metrics) Handler() {
	m.inc(OutcomeHandler)
}

func (m *Metrics) Abort() {
	m.inc(OutcomeAbort)
}

func (m *Metrics) BadTarget() {
	m.inc(OutcomeBadTarget)
}

func (m *Metrics) NoRoute() {
	m.inc(OutcomeNoRoute)
}

func (m *Metrics) inc(outcome string) {
	if m == nil {
		return
	}

	m.outcomes.WithLabelValues(outcome).Inc()
}
