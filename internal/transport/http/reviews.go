package httptransport

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"hearth/pkg/platform/httputil"
)

func (h *Handler) createReview(w http.ResponseWriter, r *http.Request) {
	var req reviewRequest
	if err := decode(r, &req); err != nil {
		httputil.WriteError(w, err)
		return
	}
	review, err := h.svc.CreateReview(r.Context(), chi.URLParam(r, "id"), req.Rating, req.Comment)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, review)
}

func (h *Handler) getReview(w http.ResponseWriter, r *http.Request) {
	review, err := h.svc.GetReview(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, review)
}

func (h *Handler) updateReview(w http.ResponseWriter, r *http.Request) {
	var req reviewRequest
	if err := decode(r, &req); err != nil {
		httputil.WriteError(w, err)
		return
	}
	review, err := h.svc.UpdateReview(r.Context(), chi.URLParam(r, "id"), req.Rating, req.Comment)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, review)
}

func (h *Handler) deleteReview(w http.ResponseWriter, r *http.Request) {
	removed, err := h.svc.DeleteReview(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	writeDeleteResult(w, "review", removed)
}
