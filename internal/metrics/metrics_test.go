package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_RegistersCollectors(t *testing.T) {
	m := New()

	require.NotNil(t, m)
	require.NotNil(t, m.Registry)

	m.IncRequest("completed")
	m.IncFailure("FetchFailed")
	m.IncFetch("ok")
	m.ObserveAdvance(50 * time.Millisecond)
	m.IncNormalised()

	assert.Equal(t, 1.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("completed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.FailuresTotal.WithLabelValues("FetchFailed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.FetchesTotal.WithLabelValues("ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ListingsNormalise))
}

func TestMetrics_NilReceiverIsSafe(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.IncRequest("completed")
		m.IncFailure("x")
		m.IncFetch("ok")
		m.ObserveAdvance(time.Second)
		m.IncNormalised()
	})
}
