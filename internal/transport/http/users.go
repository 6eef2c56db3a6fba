package httptransport

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"hearth/internal/service"
	dErrors "hearth/pkg/domain-errors"
	"hearth/pkg/platform/httputil"
)

// signup is the public registration endpoint. The admin flag in the payload
// is ignored here; only the admin surface can mint admins.
func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := decode(r, &req); err != nil {
		httputil.WriteError(w, err)
		return
	}
	user, err := h.svc.CreateUser(r.Context(), service.CreateUserParams{
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Password:  req.Password,
	})
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, user)
}

func (h *Handler) adminCreateUser(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := decode(r, &req); err != nil {
		httputil.WriteError(w, err)
		return
	}
	user, err := h.svc.CreateUser(r.Context(), service.CreateUserParams{
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Password:  req.Password,
		IsAdmin:   req.IsAdmin,
	})
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, user)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.svc.GetUser(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, user)
}

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.svc.ListUsers(r.Context())
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, users)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	var req updateUserRequest
	if err := decode(r, &req); err != nil {
		httputil.WriteError(w, err)
		return
	}
	user, err := h.svc.UpdateUser(r.Context(), chi.URLParam(r, "id"), service.UpdateUserParams{
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Password:  req.Password,
	})
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, user)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	removed, err := h.svc.DeleteUser(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	writeDeleteResult(w, "user", removed)
}

func writeDeleteResult(w http.ResponseWriter, kind string, removed bool) {
	if !removed {
		httputil.WriteError(w, dErrors.New(dErrors.CodeNotFound, kind+" not found"))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listUserReviews(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.svc.ListReviewsByUser(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, reviews)
}
