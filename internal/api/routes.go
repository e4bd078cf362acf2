package api

import (
	"net/http"
	"time"

	"github.com/antonrybalko/webapp-go/internal/controllers"
	"github.com/antonrybalko/webapp-go/internal/domain"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// RegisterRoutes configures all routes for the application
func RegisterRoutes(r chi.Router, handler *Handler, content *domain.SiteContent, logger *zap.SugaredLogger, version string) {
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	// Registered before the routes so mounted sub-routers inherit them
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		handler.respondWithError(w, http.StatusNotFound, ErrNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		handler.respondWithError(w, http.StatusMethodNotAllowed, ErrMethodNotAllowed)
	})

	r.Get("/health", HealthHandler(version))

	// Each request gets its own controller and view bag
	home := func(pick func(*controllers.HomeController) ActionFunc) ActionFactory {
		return func(req *http.Request) ActionFunc {
			return pick(controllers.NewHomeController(content, logger))
		}
	}
	index := handler.Action("Home.Index", home(func(c *controllers.HomeController) ActionFunc { return c.Index }))
	about := handler.Action("Home.About", home(func(c *controllers.HomeController) ActionFunc { return c.About }))
	contact := handler.Action("Home.Contact", home(func(c *controllers.HomeController) ActionFunc { return c.Contact }))

	r.Get("/", index)
	r.Route("/Home", func(r chi.Router) {
		r.Get("/", index)
		r.Get("/Index", index)
		r.Get("/About", about)
		r.Get("/Contact", contact)
	})
}
