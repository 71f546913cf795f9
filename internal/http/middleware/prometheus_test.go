package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMetricsApp(t *testing.T) (*fiber.App, *PrometheusMiddleware, *prometheus.Registry) {
	t.Helper()
	reg := prometheus.NewRegistry()
	m, err := NewPrometheusMiddleware(reg)
	require.NoError(t, err)

	app := fiber.New()
	app.Use(m.Handler())
	app.Get("/country/:key", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })
	app.Delete("/country/:key", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusNoContent) })
	app.Post("/country", func(c *fiber.Ctx) error { return fiber.NewError(fiber.StatusBadRequest, "bad body") })
	app.Get("/boom", func(c *fiber.Ctx) error { return assert.AnError })
	app.Get("/metrics", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })
	return app, m, reg
}

func TestPrometheusMiddleware_Counts(t *testing.T) {
	app, m, _ := newMetricsApp(t)

	tests := []struct {
		method, target string
		route, status  string
	}{
		{http.MethodGet, "/country/uk", "/country/:key", "200"},
		{http.MethodDelete, "/country/uk", "/country/:key", "204"},
		{http.MethodPost, "/country", "/country", "400"},
		{http.MethodGet, "/boom", "/boom", "500"},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.target, func(t *testing.T) {
			_, err := app.Test(httptest.NewRequest(tt.method, tt.target, nil))
			require.NoError(t, err)
			assert.Equal(t, 1.0, testutil.ToFloat64(m.requestCount.WithLabelValues(tt.method, tt.route, tt.status)))
		})
	}
}

func TestPrometheusMiddleware_LabelsByRoutePattern(t *testing.T) {
	app, m, _ := newMetricsApp(t)

	for _, key := range []string{"uk", "hong-kong", "fr"} {
		_, err := app.Test(httptest.NewRequest(http.MethodGet, "/country/"+key, nil))
		require.NoError(t, err)
	}

	assert.Equal(t, 3.0, testutil.ToFloat64(m.requestCount.WithLabelValues(http.MethodGet, "/country/:key", "200")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.requestDuration))
}

func TestPrometheusMiddleware_SkipsMetricsEndpoint(t *testing.T) {
	app, _, reg := newMetricsApp(t)

	_, err := app.Test(httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.NoError(t, err)

	mfs, err := reg.Gather()
	require.NoError(t, err)
	for _, mf := range mfs {
		assert.Empty(t, mf.GetMetric(), mf.GetName())
	}
}

func TestPrometheusMiddleware_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewPrometheusMiddleware(reg)
	require.NoError(t, err)

	_, err = NewPrometheusMiddleware(reg)
	assert.Error(t, err)
}
