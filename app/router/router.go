package router

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"headcover-configurator/app/controller"
)

type Controllers struct {
	Variant *controller.VariantController
}

// pingHandler handles GET /ping
func pingHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

// SetupRoutes registers every endpoint on mux
func SetupRoutes(mux *http.ServeMux, controllers *Controllers) {
	// Ping endpoint
	mux.HandleFunc("/ping", pingHandler)

	// Prometheus metrics
	mux.Handle("/metrics", promhttp.Handler())

	// Variant generation routes
	mux.HandleFunc("/admin/variants/preview", controllers.Variant.Preview)
	mux.HandleFunc("/admin/variants/submit", controllers.Variant.Submit)

	// Printable variant sheet
	mux.HandleFunc("/admin/variants/sheet", controllers.Variant.Sheet)
}
