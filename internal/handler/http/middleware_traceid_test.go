package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/org-atlas/internal/logger"
	"github.com/MKhiriev/org-atlas/internal/service"
)

func TestWithTraceID_GeneratesID(t *testing.T) {
	h := NewHandler(&service.Services{}, logger.Nop())

	nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rr := httptest.NewRecorder()

	h.withTraceID(nextHandler).ServeHTTP(rr, req)

	traceID := rr.Header().Get(traceIDHeader)
	require.NotEmpty(t, traceID)
	_, err := uuid.Parse(traceID)
	assert.NoError(t, err, "generated trace id should be a uuid")
}

func TestWithTraceID_PropagatesIncomingID(t *testing.T) {
	h := NewHandler(&service.Services{}, logger.Nop())

	nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set(traceIDHeader, "incoming-trace-id")
	rr := httptest.NewRecorder()

	h.withTraceID(nextHandler).ServeHTTP(rr, req)

	assert.Equal(t, "incoming-trace-id", rr.Header().Get(traceIDHeader))
}

func TestWithTraceID_LoggerInContext(t *testing.T) {
	h := NewHandler(&service.Services{}, logger.Nop())

	var gotLogger *logger.Logger
	nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotLogger = logger.FromRequest(r)
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rr := httptest.NewRecorder()

	h.withTraceID(nextHandler).ServeHTTP(rr, req)

	assert.NotNil(t, gotLogger)
}

func TestWithTraceID_UniquePerRequest(t *testing.T) {
	h := NewHandler(&service.Services{}, logger.Nop())

	nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	middleware := h.withTraceID(nextHandler)

	seen := make(map[string]struct{})
	for i := 0; i < 5; i++ {
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		rr := httptest.NewRecorder()
		middleware.ServeHTTP(rr, req)

		id := rr.Header().Get(traceIDHeader)
		_, dup := seen[id]
		assert.False(t, dup, "trace id %q repeated", id)
		seen[id] = struct{}{}
	}
}
