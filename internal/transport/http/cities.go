package httptransport

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"hearth/pkg/platform/httputil"
)

func (h *Handler) createCity(w http.ResponseWriter, r *http.Request) {
	var req cityRequest
	if err := decode(r, &req); err != nil {
		httputil.WriteError(w, err)
		return
	}
	city, err := h.svc.CreateCity(r.Context(), req.Name, req.CountryCode)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, city)
}

func (h *Handler) getCity(w http.ResponseWriter, r *http.Request) {
	city, err := h.svc.GetCity(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, city)
}

func (h *Handler) listCities(w http.ResponseWriter, r *http.Request) {
	cities, err := h.svc.ListCities(r.Context())
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, cities)
}

func (h *Handler) updateCity(w http.ResponseWriter, r *http.Request) {
	var req cityRequest
	if err := decode(r, &req); err != nil {
		httputil.WriteError(w, err)
		return
	}
	city, err := h.svc.UpdateCity(r.Context(), chi.URLParam(r, "id"), req.Name, req.CountryCode)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, city)
}

func (h *Handler) deleteCity(w http.ResponseWriter, r *http.Request) {
	removed, err := h.svc.DeleteCity(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	writeDeleteResult(w, "city", removed)
}
