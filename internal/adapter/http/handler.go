package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"storefront-offers/internal/core/port"
)

// Handler contains dependencies and routes. It is an inbound adapter for
// HTTP that exposes the storefront use-case as a read-only JSON API.
type Handler struct {
	svc    port.StorefrontUseCase
	logger *slog.Logger
	router chi.Router
}

// NewHandler creates a handler with all routes configured. Extra routes such
// as a metrics endpoint can be mounted on the returned router by the caller
// through Mount.
func NewHandler(svc port.StorefrontUseCase, logger *slog.Logger) *Handler {
	h := &Handler{svc: svc, logger: logger}
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(logger))

	r.Get("/healthz", h.handleHealth)
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/storefront", h.handleStorefront)
		r.Get("/campaigns", h.handleListCampaigns)
		r.Get("/campaigns/{id}/preview", h.handlePreviewCampaign)
		r.Get("/profiles", h.handleListProfiles)
	})
	h.router = r
	return h
}

// Mount attaches an additional handler under pattern.
func (h *Handler) Mount(pattern string, handler http.Handler) {
	h.router.Handle(pattern, handler)
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// writeError maps use-case errors onto status codes. Internal errors are
// logged and reported without detail.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, op string, err error) {
	switch {
	case errors.Is(err, port.ErrInvalidPreviewMode):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, port.ErrProfileNotFound), errors.Is(err, port.ErrCampaignNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	default:
		h.logger.Error(op+" error",
			slog.Any("error", err),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}
