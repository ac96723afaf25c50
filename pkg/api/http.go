// Package api assembles the HTTP surface: the inventory/order REST API,
// the messaging endpoints, and the operational routes (health, metrics,
// docs).
package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"smartgrocery/pkg/api/handlers"
	"smartgrocery/pkg/auth"
	"smartgrocery/pkg/catalog"
	"smartgrocery/pkg/messaging"
)

// Deps carries the composed services the handlers operate on.
type Deps struct {
	Catalog      *catalog.Catalog
	Messaging    *messaging.Service
	LoginLimiter *auth.LimiterPool
}

// New builds the router. Product reads and login are open; everything
// else under /api requires a bearer token.
func New(d Deps) http.Handler {
	r := mux.NewRouter()
	r.Use(requestMetrics)

	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	r.Handle("/metrics", promhttp.Handler())

	// Swagger UI over the static spec shipped in ./docs.
	r.PathPrefix("/docs/").Handler(httpSwagger.Handler(httpSwagger.URL("/openapi.yaml")))
	r.Handle("/openapi.yaml", http.FileServer(http.Dir("./docs")))

	api := r.PathPrefix("/api").Subrouter()
	handlers.RegisterAuth(api, d.Catalog, d.LoginLimiter)
	handlers.RegisterProducts(api, d.Catalog)
	handlers.RegisterOrders(api, d.Catalog)
	handlers.RegisterNotifications(api, d.Catalog)
	handlers.RegisterUsers(api, d.Catalog)
	handlers.RegisterReports(api, d.Catalog)
	handlers.RegisterMessaging(api, d.Messaging, d.Catalog)

	return r
}
