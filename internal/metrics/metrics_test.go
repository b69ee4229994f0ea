package metrics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestRegistryCountsPerLabelSet(t *testing.T) {
	reg := NewRegistry()
	ctx := context.Background()

	reg.Inc(ctx, "pipeline_stage_total", map[string]string{"stage": "persona", "outcome": "ok"}, 1)
	reg.Inc(ctx, "pipeline_stage_total", map[string]string{"outcome": "ok", "stage": "persona"}, 2)
	reg.Inc(ctx, "pipeline_stage_total", map[string]string{"stage": "messaging", "outcome": "empty"}, 1)

	require.Equal(t, int64(3), reg.Value("pipeline_stage_total", map[string]string{"stage": "persona", "outcome": "ok"}))
	require.Equal(t, []string{
		"pipeline_stage_total{outcome=empty,stage=messaging} 1",
		"pipeline_stage_total{outcome=ok,stage=persona} 3",
	}, reg.SnapshotLines())
}

func TestRegistryConcurrentIncrements(t *testing.T) {
	reg := NewRegistry()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			reg.Inc(context.Background(), "http_requests_total", nil, 1)
		}()
	}
	wg.Wait()

	require.Equal(t, int64(50), reg.Value("http_requests_total", nil))
}

func TestNilRegistryIsNoop(t *testing.T) {
	var reg *Registry
	require.NotPanics(t, func() {
		reg.Inc(context.Background(), "x", nil, 1)
	})
}

func TestHandlerWritesText(t *testing.T) {
	gin.SetMode(gin.TestMode)
	reg := NewRegistry()
	reg.Inc(context.Background(), "http_requests_total", map[string]string{"status": "2xx"}, 4)

	router := gin.New()
	router.GET("/metrics", reg.Handler)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "http_requests_total{status=2xx} 4\n", rec.Body.String())
}

func TestStatusClass(t *testing.T) {
	require.Equal(t, "2xx", StatusClass(200))
	require.Equal(t, "4xx", StatusClass(404))
	require.Equal(t, "5xx", StatusClass(502))
	require.Equal(t, "0", StatusClass(0))
}
