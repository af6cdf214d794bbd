package telemetry_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aaravmahajanofficial/ecommerce-discount-demo/internal/config"
	"github.com/aaravmahajanofficial/ecommerce-discount-demo/internal/telemetry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"
)

func TestInitTracer(t *testing.T) {
	t.Run("Disabled without endpoint", func(t *testing.T) {
		shutdown, err := telemetry.InitTracer(t.Context(), &config.Otel{ServiceName: "svc"})
		require.NoError(t, err)
		assert.NoError(t, shutdown(t.Context()))
	})

	t.Run("Enabled with endpoint", func(t *testing.T) {
		previous := otel.GetTracerProvider()
		t.Cleanup(func() { otel.SetTracerProvider(previous) })

		shutdown, err := telemetry.InitTracer(t.Context(), &config.Otel{
			ServiceName:      "svc",
			ExporterEndpoint: "http://127.0.0.1:4318/v1/traces",
			SamplerRatio:     1,
		})
		require.NoError(t, err)

		_, ok := otel.GetTracerProvider().(*sdktrace.TracerProvider)
		assert.True(t, ok)
		assert.NoError(t, shutdown(t.Context()))
	})
}

func TestMiddlewareCreatesServerSpan(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	previous := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() { otel.SetTracerProvider(previous) })

	var sawSpan bool
	handler := telemetry.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sawSpan = trace.SpanFromContext(r.Context()).SpanContext().IsValid()
		w.WriteHeader(http.StatusNoContent)
	}), "test")

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/products", nil))

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.True(t, sawSpan)
	require.Len(t, recorder.Ended(), 1)
	assert.Equal(t, trace.SpanKindServer, recorder.Ended()[0].SpanKind())
}
