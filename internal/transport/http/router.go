package httptransport

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"hearth/internal/audit"
	"hearth/pkg/platform/httputil"
)

// Router wires the full HTTP surface. Reads are public; mutations require a
// token, and the /admin subtree additionally requires the admin claim.
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(RequestContext)
	r.Use(RequestLogger(h.logger))

	r.Get("/healthz", h.healthz)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Post("/login", h.login)
	r.Post("/users", h.signup)
	r.Get("/users", h.listUsers)
	r.Get("/users/{id}", h.getUser)
	r.Get("/users/{id}/reviews", h.listUserReviews)

	r.Get("/countries", h.listCountries)
	r.Get("/countries/{code}", h.getCountry)
	r.Get("/countries/{code}/cities", h.listCountryCities)

	r.Get("/cities", h.listCities)
	r.Get("/cities/{id}", h.getCity)

	r.Get("/places", h.listPlaces)
	r.Get("/places/{id}", h.getPlace)
	r.Get("/places/{id}/reviews", h.listPlaceReviews)

	r.Get("/amenities", h.listAmenities)
	r.Get("/amenities/{id}", h.getAmenity)

	r.Get("/reviews/{id}", h.getReview)

	r.Group(func(r chi.Router) {
		r.Use(RequireAuth(h.tokens))

		r.Put("/users/{id}", h.updateUser)

		r.Post("/places", h.createPlace)
		r.Put("/places/{id}", h.updatePlace)
		r.Delete("/places/{id}", h.deletePlace)

		r.Post("/places/{id}/reviews", h.createReview)
		r.Put("/reviews/{id}", h.updateReview)
		r.Delete("/reviews/{id}", h.deleteReview)
	})

	r.Route("/admin", func(r chi.Router) {
		r.Use(RequireAuth(h.tokens), RequireAdmin)

		r.Post("/users", h.adminCreateUser)
		r.Put("/users/{id}", h.updateUser)
		r.Delete("/users/{id}", h.deleteUser)

		r.Post("/countries", h.createCountry)
		r.Put("/countries/{code}", h.updateCountry)
		r.Delete("/countries/{code}", h.deleteCountry)

		r.Post("/cities", h.createCity)
		r.Put("/cities/{id}", h.updateCity)
		r.Delete("/cities/{id}", h.deleteCity)

		r.Post("/amenities", h.createAmenity)
		r.Put("/amenities/{id}", h.updateAmenity)
		r.Delete("/amenities/{id}", h.deleteAmenity)

		r.Post("/places", h.createPlace)
		r.Put("/places/{id}", h.updatePlace)
		r.Delete("/places/{id}", h.deletePlace)

		r.Get("/audit", h.listAuditEvents)
	})

	return r
}

func (h *Handler) listAuditEvents(w http.ResponseWriter, r *http.Request) {
	limit := 50
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err == nil && parsed > 0 && parsed <= 1000 {
			limit = parsed
		}
	}
	events := []audit.Event{}
	if h.audit != nil {
		recent, err := h.audit.ListRecent(r.Context(), limit)
		if err != nil {
			httputil.WriteError(w, err)
			return
		}
		if recent != nil {
			events = recent
		}
	}
	httputil.WriteJSON(w, http.StatusOK, events)
}
