package httptransport

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"hearth/internal/domain"
	dErrors "hearth/pkg/domain-errors"
	"hearth/pkg/platform/httputil"
)

func (h *Handler) createCountry(w http.ResponseWriter, r *http.Request) {
	var req countryRequest
	if err := decode(r, &req); err != nil {
		httputil.WriteError(w, err)
		return
	}
	country, err := h.svc.CreateCountry(r.Context(), req.Code, req.Name)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, country)
}

func (h *Handler) getCountry(w http.ResponseWriter, r *http.Request) {
	country, err := h.svc.GetCountry(r.Context(), chi.URLParam(r, "code"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, country)
}

func (h *Handler) listCountries(w http.ResponseWriter, r *http.Request) {
	countries, err := h.svc.ListCountries(r.Context())
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, countries)
}

func (h *Handler) listCountryCities(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	if _, err := h.svc.GetCountry(r.Context(), code); err != nil {
		httputil.WriteError(w, err)
		return
	}
	cities, err := h.svc.ListCities(r.Context())
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	matched := make([]*domain.City, 0, len(cities))
	for _, city := range cities {
		if city.CountryCode == code {
			matched = append(matched, city)
		}
	}
	httputil.WriteJSON(w, http.StatusOK, matched)
}

// updateCountry renames a country. The code comes from the URL, so the body
// only needs the new name.
func (h *Handler) updateCountry(w http.ResponseWriter, r *http.Request) {
	var req countryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "request body is not valid JSON"))
		return
	}
	if err := required("name", req.Name); err != nil {
		httputil.WriteError(w, err)
		return
	}
	country, err := h.svc.UpdateCountry(r.Context(), chi.URLParam(r, "code"), req.Name)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, country)
}

func (h *Handler) deleteCountry(w http.ResponseWriter, r *http.Request) {
	removed, err := h.svc.DeleteCountry(r.Context(), chi.URLParam(r, "code"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	writeDeleteResult(w, "country", removed)
}
