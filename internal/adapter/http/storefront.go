package httpadapter

import (
	"net/http"

	"storefront-offers/internal/core/port"
	"storefront-offers/internal/core/storefront"
)

// handleStorefront returns the composed storefront. It accepts optional
// `profile_id` and `mode` (live or demo) query parameters. An unknown mode
// results in HTTP 400 and an unknown profile in HTTP 404.
func (h *Handler) handleStorefront(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := port.StorefrontReq{
		ProfileID: q.Get("profile_id"),
		Mode:      storefront.Mode(q.Get("mode")),
	}

	resp, err := h.svc.Storefront(r.Context(), req)
	if err != nil {
		h.writeError(w, r, "storefront", err)
		return
	}
	h.writeJSON(w, resp)
}
