package metrics

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder(t *testing.T) {
	rec := NewRecorder()
	rec.ObserveSolve(20*time.Millisecond, 5, 2)
	rec.ObserveSolve(time.Millisecond, 3, 0)
	rec.IncAllocation(OutcomeSolved)
	rec.IncAllocation(OutcomeSolved)
	rec.IncAllocation(OutcomeCached)

	assert.Equal(t, 2.0, testutil.ToFloat64(rec.pruned))
	assert.Equal(t, 8.0, testutil.ToFloat64(rec.considered))
	assert.Equal(t, 2.0, testutil.ToFloat64(rec.allocations.WithLabelValues(OutcomeSolved)))
	assert.Equal(t, 1.0, testutil.ToFloat64(rec.allocations.WithLabelValues(OutcomeCached)))

	srv := httptest.NewServer(rec.Handler())
	defer srv.Close()
	resp, err := srv.Client().Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "planner_solve_duration_seconds_count 2")
	assert.Contains(t, string(body), `planner_allocations_total{outcome="solved"} 2`)
}

func TestNilRecorder(t *testing.T) {
	var rec *Recorder
	rec.ObserveSolve(time.Second, 1, 1)
	rec.IncAllocation(OutcomeFailed)

	w := httptest.NewRecorder()
	rec.Handler().ServeHTTP(w, httptest.NewRequest("GET", "/metrics", nil))
	assert.Equal(t, 404, w.Code)
}
