package router

import (
	"net/http"

	"menu-board/internal/handler"
	"menu-board/internal/middleware"

	"github.com/rs/zerolog"
)

// New creates a new HTTP router with all routes and middleware configured.
func New(
	productHandler *handler.ProductHandler,
	menuHandler *handler.MenuHandler,
	menuGroupHandler *handler.MenuGroupHandler,
	apiKey string,
	logger zerolog.Logger,
) http.Handler {
	mux := http.NewServeMux()

	// Health check endpoint (no authentication required)
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	mux.HandleFunc("POST /api/products", productHandler.Create)
	mux.HandleFunc("GET /api/products", productHandler.GetAll)
	mux.HandleFunc("GET /api/products/{id}", productHandler.GetByID)
	mux.HandleFunc("PUT /api/products/{id}/price", productHandler.ChangePrice)

	mux.HandleFunc("POST /api/menus", menuHandler.Create)
	mux.HandleFunc("GET /api/menus", menuHandler.GetAll)
	mux.HandleFunc("GET /api/menus/{id}", menuHandler.GetByID)
	mux.HandleFunc("PUT /api/menus/{id}/hide", menuHandler.Hide)
	mux.HandleFunc("PUT /api/menus/{id}/display", menuHandler.Display)
	mux.HandleFunc("PUT /api/menus/{id}/price", menuHandler.ChangePrice)

	mux.HandleFunc("POST /api/menu-groups", menuGroupHandler.Create)
	mux.HandleFunc("GET /api/menu-groups", menuGroupHandler.GetAll)

	// Apply middleware in order: Recovery -> RequestID -> Logging -> CORS -> APIKeyAuth.
	// RequestID runs before Logging so the correlation ID reaches the request log.
	var h http.Handler = mux
	h = middleware.APIKeyAuth(apiKey, logger)(h)
	h = middleware.CORS(h)
	h = middleware.Logging(logger)(h)
	h = middleware.RequestID(h)
	h = middleware.Recovery(logger)(h)

	return h
}
