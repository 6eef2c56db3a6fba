package httptransport

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"hearth/internal/service"
	"hearth/pkg/platform/httputil"
	"hearth/pkg/requestcontext"
)

// createPlace lists a place under the authenticated caller. Admin callers
// may list on behalf of another host via the host_id field.
func (h *Handler) createPlace(w http.ResponseWriter, r *http.Request) {
	var req placeRequest
	if err := decode(r, &req); err != nil {
		httputil.WriteError(w, err)
		return
	}
	hostID := requestcontext.UserID(r.Context())
	if req.HostID != "" && requestcontext.IsAdmin(r.Context()) {
		hostID = req.HostID
	}
	place, err := h.svc.CreatePlace(r.Context(), hostID, service.PlaceParams{
		Name:          req.Name,
		Description:   req.Description,
		CityID:        req.CityID,
		PricePerNight: req.PricePerNight,
		Latitude:      req.Latitude,
		Longitude:     req.Longitude,
		AmenityIDs:    req.AmenityIDs,
	})
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, place)
}

func (h *Handler) getPlace(w http.ResponseWriter, r *http.Request) {
	place, err := h.svc.GetPlace(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, place)
}

func (h *Handler) listPlaces(w http.ResponseWriter, r *http.Request) {
	places, err := h.svc.ListPlaces(r.Context())
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, places)
}

func (h *Handler) updatePlace(w http.ResponseWriter, r *http.Request) {
	var req placeRequest
	if err := decode(r, &req); err != nil {
		httputil.WriteError(w, err)
		return
	}
	place, err := h.svc.UpdatePlace(r.Context(), chi.URLParam(r, "id"), service.PlaceParams{
		Name:          req.Name,
		Description:   req.Description,
		CityID:        req.CityID,
		PricePerNight: req.PricePerNight,
		Latitude:      req.Latitude,
		Longitude:     req.Longitude,
		AmenityIDs:    req.AmenityIDs,
	})
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, place)
}

func (h *Handler) deletePlace(w http.ResponseWriter, r *http.Request) {
	removed, err := h.svc.DeletePlace(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	writeDeleteResult(w, "place", removed)
}

func (h *Handler) listPlaceReviews(w http.ResponseWriter, r *http.Request) {
	placeID := chi.URLParam(r, "id")
	if _, err := h.svc.GetPlace(r.Context(), placeID); err != nil {
		httputil.WriteError(w, err)
		return
	}
	reviews, err := h.svc.ListReviewsForPlace(r.Context(), placeID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, reviews)
}
