package httptransport

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"hearth/pkg/platform/httputil"
)

func (h *Handler) createAmenity(w http.ResponseWriter, r *http.Request) {
	var req amenityRequest
	if err := decode(r, &req); err != nil {
		httputil.WriteError(w, err)
		return
	}
	amenity, err := h.svc.CreateAmenity(r.Context(), req.Name)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, amenity)
}

func (h *Handler) getAmenity(w http.ResponseWriter, r *http.Request) {
	amenity, err := h.svc.GetAmenity(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, amenity)
}

func (h *Handler) listAmenities(w http.ResponseWriter, r *http.Request) {
	amenities, err := h.svc.ListAmenities(r.Context())
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, amenities)
}

func (h *Handler) updateAmenity(w http.ResponseWriter, r *http.Request) {
	var req amenityRequest
	if err := decode(r, &req); err != nil {
		httputil.WriteError(w, err)
		return
	}
	amenity, err := h.svc.UpdateAmenity(r.Context(), chi.URLParam(r, "id"), req.Name)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, amenity)
}

func (h *Handler) deleteAmenity(w http.ResponseWriter, r *http.Request) {
	removed, err := h.svc.DeleteAmenity(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	writeDeleteResult(w, "amenity", removed)
}
