package httptransport

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hearth/internal/audit"
	"hearth/internal/service"
	"hearth/internal/storage"
	"hearth/internal/token"
)

func newTestRouter(t *testing.T) (http.Handler, *service.Service) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	auditStore := audit.NewInMemoryStore()
	svc := service.New(storage.NewInMemoryStore(),
		service.WithLogger(logger),
		service.WithAuditPublisher(audit.NewPublisher(auditStore)),
	)
	tokens := token.NewManager("test-signing-key", time.Hour)
	handler := NewHandler(svc, tokens, auditStore, logger)
	return handler.Router(), svc
}

func doJSON(t *testing.T, router http.Handler, method, path, bearer string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, path, reader)
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func decodeBody(t *testing.T, recorder *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.Unmarshal(recorder.Body.Bytes(), v); err != nil {
		t.Fatalf("decode response %q: %v", recorder.Body.String(), err)
	}
}

func signupAndLogin(t *testing.T, router http.Handler, email string) (userID, bearer string) {
	t.Helper()
	resp := doJSON(t, router, http.MethodPost, "/users", "", map[string]string{
		"email":      email,
		"first_name": "Test",
		"last_name":  "User",
		"password":   "correct horse",
	})
	if resp.Code != http.StatusCreated {
		t.Fatalf("signup: got status %d, body %s", resp.Code, resp.Body.String())
	}
	var created struct {
		ID string `json:"id"`
	}
	decodeBody(t, resp, &created)

	resp = doJSON(t, router, http.MethodPost, "/login", "", map[string]string{
		"email":    email,
		"password": "correct horse",
	})
	if resp.Code != http.StatusOK {
		t.Fatalf("login: got status %d, body %s", resp.Code, resp.Body.String())
	}
	var login loginResponse
	decodeBody(t, resp, &login)
	return created.ID, login.AccessToken
}

func adminBearer(t *testing.T, router http.Handler, svc *service.Service) string {
	t.Helper()
	_, err := svc.CreateUser(t.Context(), service.CreateUserParams{
		Email:     "root@example.com",
		FirstName: "Root",
		LastName:  "Admin",
		Password:  "correct horse",
		IsAdmin:   true,
	})
	if err != nil {
		t.Fatalf("seed admin: %v", err)
	}
	resp := doJSON(t, router, http.MethodPost, "/login", "", map[string]string{
		"email":    "root@example.com",
		"password": "correct horse",
	})
	if resp.Code != http.StatusOK {
		t.Fatalf("admin login: got status %d", resp.Code)
	}
	var login loginResponse
	decodeBody(t, resp, &login)
	return login.AccessToken
}

func TestSignupRejectsBadPayload(t *testing.T) {
	router, _ := newTestRouter(t)

	resp := doJSON(t, router, http.MethodPost, "/users", "", map[string]string{
		"first_name": "No",
		"last_name":  "Email",
		"password":   "correct horse",
	})
	if resp.Code != http.StatusBadRequest {
		t.Errorf("missing email: got status %d, want 400", resp.Code)
	}
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	router, _ := newTestRouter(t)
	signupAndLogin(t, router, "ada@example.com")

	resp := doJSON(t, router, http.MethodPost, "/login", "", map[string]string{
		"email":    "ada@example.com",
		"password": "wrong",
	})
	if resp.Code != http.StatusUnauthorized {
		t.Errorf("wrong password: got status %d, want 401", resp.Code)
	}
}

func TestSignupCannotMintAdmins(t *testing.T) {
	router, _ := newTestRouter(t)

	resp := doJSON(t, router, http.MethodPost, "/users", "", map[string]any{
		"email":      "sneaky@example.com",
		"first_name": "Sneaky",
		"last_name":  "User",
		"password":   "correct horse",
		"is_admin":   true,
	})
	if resp.Code != http.StatusCreated {
		t.Fatalf("signup: got status %d", resp.Code)
	}
	var created struct {
		IsAdmin bool `json:"is_admin"`
	}
	decodeBody(t, resp, &created)
	if created.IsAdmin {
		t.Error("public signup produced an admin account")
	}
}

func TestAdminSurfaceGating(t *testing.T) {
	router, svc := newTestRouter(t)
	country := map[string]string{"code": "NL", "name": "Netherlands"}

	resp := doJSON(t, router, http.MethodPost, "/admin/countries", "", country)
	if resp.Code != http.StatusUnauthorized {
		t.Errorf("no token: got status %d, want 401", resp.Code)
	}

	_, userToken := signupAndLogin(t, router, "plain@example.com")
	resp = doJSON(t, router, http.MethodPost, "/admin/countries", userToken, country)
	if resp.Code != http.StatusForbidden {
		t.Errorf("non-admin token: got status %d, want 403", resp.Code)
	}

	resp = doJSON(t, router, http.MethodPost, "/admin/countries", adminBearer(t, router, svc), country)
	if resp.Code != http.StatusCreated {
		t.Errorf("admin token: got status %d, want 201, body %s", resp.Code, resp.Body.String())
	}

	// The new country is publicly readable without a token.
	resp = doJSON(t, router, http.MethodGet, "/countries/NL", "", nil)
	if resp.Code != http.StatusOK {
		t.Errorf("public read: got status %d, want 200", resp.Code)
	}
}

func TestPlaceAndReviewFlow(t *testing.T) {
	router, svc := newTestRouter(t)
	admin := adminBearer(t, router, svc)

	resp := doJSON(t, router, http.MethodPost, "/admin/countries", admin,
		map[string]string{"code": "NL", "name": "Netherlands"})
	if resp.Code != http.StatusCreated {
		t.Fatalf("create country: got status %d", resp.Code)
	}
	resp = doJSON(t, router, http.MethodPost, "/admin/cities", admin,
		map[string]string{"name": "Amsterdam", "country_code": "NL"})
	if resp.Code != http.StatusCreated {
		t.Fatalf("create city: got status %d", resp.Code)
	}
	var city struct {
		ID string `json:"id"`
	}
	decodeBody(t, resp, &city)

	hostID, hostToken := signupAndLogin(t, router, "host@example.com")
	resp = doJSON(t, router, http.MethodPost, "/places", hostToken, map[string]any{
		"name":            "Canal loft",
		"description":     "Bright loft by the water",
		"city_id":         city.ID,
		"price_per_night": 120,
		"latitude":        52.37,
		"longitude":       4.90,
	})
	if resp.Code != http.StatusCreated {
		t.Fatalf("create place: got status %d, body %s", resp.Code, resp.Body.String())
	}
	var place struct {
		ID     string `json:"id"`
		HostID string `json:"host_id"`
	}
	decodeBody(t, resp, &place)
	if place.HostID != hostID {
		t.Errorf("place host: got %q, want caller %q", place.HostID, hostID)
	}

	// The host cannot review their own listing.
	resp = doJSON(t, router, http.MethodPost, "/places/"+place.ID+"/reviews", hostToken,
		map[string]any{"rating": 5, "comment": "Best place ever"})
	if resp.Code != http.StatusBadRequest {
		t.Errorf("self review: got status %d, want 400", resp.Code)
	}

	_, guestToken := signupAndLogin(t, router, "guest@example.com")
	resp = doJSON(t, router, http.MethodPost, "/places/"+place.ID+"/reviews", guestToken,
		map[string]any{"rating": 4.5, "comment": "Lovely stay"})
	if resp.Code != http.StatusCreated {
		t.Fatalf("guest review: got status %d, body %s", resp.Code, resp.Body.String())
	}
	var review struct {
		ID string `json:"id"`
	}
	decodeBody(t, resp, &review)

	// Reviewed places are protected against deletion.
	resp = doJSON(t, router, http.MethodDelete, "/places/"+place.ID, hostToken, nil)
	if resp.Code != http.StatusConflict {
		t.Errorf("delete reviewed place: got status %d, want 409", resp.Code)
	}

	// Only the author may edit the review.
	resp = doJSON(t, router, http.MethodPut, "/reviews/"+review.ID, hostToken,
		map[string]any{"rating": 1, "comment": "Revenge edit"})
	if resp.Code != http.StatusForbidden {
		t.Errorf("non-author edit: got status %d, want 403", resp.Code)
	}

	resp = doJSON(t, router, http.MethodDelete, "/reviews/"+review.ID, guestToken, nil)
	if resp.Code != http.StatusNoContent {
		t.Errorf("author delete: got status %d, want 204", resp.Code)
	}

	resp = doJSON(t, router, http.MethodDelete, "/places/"+place.ID, hostToken, nil)
	if resp.Code != http.StatusNoContent {
		t.Errorf("delete place: got status %d, want 204", resp.Code)
	}

	resp = doJSON(t, router, http.MethodDelete, "/places/"+place.ID, hostToken, nil)
	if resp.Code != http.StatusNotFound {
		t.Errorf("delete absent place: got status %d, want 404", resp.Code)
	}
}

func TestAuditTrailVisibleToAdmins(t *testing.T) {
	router, svc := newTestRouter(t)
	admin := adminBearer(t, router, svc)

	resp := doJSON(t, router, http.MethodPost, "/admin/amenities", admin,
		map[string]string{"name": "Wifi"})
	if resp.Code != http.StatusCreated {
		t.Fatalf("create amenity: got status %d", resp.Code)
	}

	resp = doJSON(t, router, http.MethodGet, "/admin/audit", admin, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("list audit: got status %d", resp.Code)
	}
	var events []audit.Event
	decodeBody(t, resp, &events)
	if len(events) == 0 {
		t.Fatal("expected at least one audit event")
	}
	found := false
	for _, event := range events {
		if event.Action == audit.ActionCreated && event.Kind == "amenity" {
			found = true
		}
	}
	if !found {
		t.Errorf("no amenity creation event in %v", events)
	}
}

func TestHealthz(t *testing.T) {
	router, _ := newTestRouter(t)

	resp := doJSON(t, router, http.MethodGet, "/healthz", "", nil)
	if resp.Code != http.StatusOK {
		t.Errorf("healthz: got status %d, want 200", resp.Code)
	}
}
