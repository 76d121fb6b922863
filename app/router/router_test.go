package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"headcover-configurator/app/controller"
)

func newTestMux() *http.ServeMux {
	mux := http.NewServeMux()
	SetupRoutes(mux, &Controllers{
		Variant: controller.NewVariantController(nil, nil, zap.NewNop()),
	})
	return mux
}

func TestPing(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestMux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestPing_MethodNotAllowed(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestMux().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/ping", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestMux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}

func TestVariantRoutesRegistered(t *testing.T) {
	mux := newTestMux()
	for _, path := range []string{"/admin/variants/preview", "/admin/variants/submit", "/admin/variants/sheet"} {
		rec := httptest.NewRecorder()
		// Bodies are rejected before the nil services are reached
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, path, strings.NewReader("{")))
		assert.Equal(t, http.StatusBadRequest, rec.Code, path)
	}
}
