package metrics_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/travel-tracker/internal/metrics"
)

func TestGlobal_IsSingleton(t *testing.T) {
	a := metrics.Global()
	b := metrics.Global()
	require.Same(t, a, b)
}

func TestGlobal_StoreErrorsByOp(t *testing.T) {
	m := metrics.Global()
	before := testutil.ToFloat64(m.StoreErrors.WithLabelValues("ListTrips"))

	m.StoreErrors.WithLabelValues("ListTrips").Inc()

	assert.Equal(t, before+1, testutil.ToFloat64(m.StoreErrors.WithLabelValues("ListTrips")))
}
