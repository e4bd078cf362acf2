package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/antonrybalko/webapp-go/internal/mvc"
	"go.uber.org/zap"
)

// Common errors
var (
	ErrNotFound         = errors.New("not found")
	ErrMethodNotAllowed = errors.New("method not allowed")
)

// ActionFunc invokes one action on a freshly constructed controller
type ActionFunc func() mvc.ActionResult

// ActionFactory builds the action to run for a request
type ActionFactory func(r *http.Request) ActionFunc

// Handler adapts controller actions to HTTP
type Handler struct {
	renderer mvc.ViewRenderer
	logger   *zap.SugaredLogger
}

// NewHandler creates a new action handler
func NewHandler(renderer mvc.ViewRenderer, logger *zap.SugaredLogger) *Handler {
	return &Handler{
		renderer: renderer,
		logger:   logger,
	}
}

// Action returns an http.HandlerFunc running the action built by factory
func (h *Handler) Action(name string, factory ActionFactory) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result := factory(r)()
		if result == nil {
			h.logger.Errorw("Action returned no result", "action", name)
			h.respondWithError(w, http.StatusInternalServerError, mvc.ErrNilResult)
			return
		}

		err := result.Execute(mvc.ResultContext{
			Writer:   w,
			Request:  r,
			Renderer: h.renderer,
		})
		if err != nil {
			h.logger.Errorw("Failed to execute action result", "action", name, "error", err)
			h.respondWithError(w, http.StatusInternalServerError, err)
			return
		}
	}
}

// respondWithError sends an error response
func (h *Handler) respondWithError(w http.ResponseWriter, code int, err error) {
	h.respondWithJSON(w, code, map[string]string{"error": err.Error()})
}

// respondWithJSON sends a JSON response
func (h *Handler) respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Errorw("Failed to encode JSON response", "error", err)
	}
}
