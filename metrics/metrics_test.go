package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestMetrics(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.Handler()
	m.Handler()
	m.NoRoute()

	require.Equal(t, 2.0, testutil.ToFloat64(m.Outcome(OutcomeHandler)))
	require.Equal(t, 1.0, testutil.ToFloat64(m.Outcome(OutcomeNoRoute)))
	require.Equal(t, 0.0, testutil.ToFloat64(m.Outcome(OutcomeAbort)))
}

func TestNilMetrics(t *testing.T) {
	var m *Metrics

	require.NotPanics(t, func() {
		m.Handler()
		m.Abort()
		m.BadTarget()
		m.NoRoute()
	})
}
