package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"storefront-offers/internal/core/port"
)

// handleListCampaigns returns every campaign in precedence order.
func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	campaigns, err := h.svc.ListCampaigns(r.Context())
	if err != nil {
		h.writeError(w, r, "list campaigns", err)
		return
	}
	h.writeJSON(w, campaigns)
}

// handlePreviewCampaign explains how the {id} campaign renders for the
// optional `profile_id` member. Draft and ended campaigns can be previewed.
func (h *Handler) handlePreviewCampaign(w http.ResponseWriter, r *http.Request) {
	resp, err := h.svc.PreviewCampaign(r.Context(), port.PreviewReq{
		CampaignID: chi.URLParam(r, "id"),
		ProfileID:  r.URL.Query().Get("profile_id"),
	})
	if err != nil {
		h.writeError(w, r, "preview campaign", err)
		return
	}
	h.writeJSON(w, resp)
}

// handleListProfiles returns the demo member profiles.
func (h *Handler) handleListProfiles(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.svc.ListProfiles(r.Context())
	if err != nil {
		h.writeError(w, r, "list profiles", err)
		return
	}
	h.writeJSON(w, profiles)
}
