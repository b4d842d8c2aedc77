package rest

import (
	"net/http"

	"github.com/CameronXie/coffee-api/internal/api/rest/handler"
	"github.com/CameronXie/coffee-api/internal/api/rest/middleware"
)

// RouterConfig holds the handlers and middleware wired into the mux
type RouterConfig struct {
	CoffeeHandler     *handler.CoffeeHandler
	RequestMiddleware middleware.Middleware
}

// NewMuxWithHandlers initializes a new HTTP handler with routes defined by the given RouterConfig.
func NewMuxWithHandlers(cfg *RouterConfig) http.Handler {
	router := http.NewServeMux()

	router.HandleFunc("GET /health", handleHealthCheck)
	router.HandleFunc("GET /coffees", cfg.CoffeeHandler.ListCoffees)
	router.HandleFunc("GET /coffees/{id}", cfg.CoffeeHandler.GetCoffee)
	router.HandleFunc("POST /coffees", cfg.CoffeeHandler.CreateCoffee)
	router.HandleFunc("PUT /coffees/{id}", cfg.CoffeeHandler.UpsertCoffee)
	router.HandleFunc("DELETE /coffees/{id}", cfg.CoffeeHandler.DeleteCoffee)

	if cfg.RequestMiddleware == nil {
		return router
	}

	return cfg.RequestMiddleware.Handle(router)
}

// handleHealthCheck returns a basic health status.
func handleHealthCheck(w http.ResponseWriter, _ *http.Request) {
	handler.WriteJSONResponse(w, http.StatusOK, map[string]string{"status": "healthy"})
}
