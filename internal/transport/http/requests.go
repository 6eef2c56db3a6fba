package httptransport

import (
	"encoding/json"
	"net/http"
	"strings"

	dErrors "hearth/pkg/domain-errors"
)

// Request DTOs. Validate catches missing fields with a field-level message;
// domain invariants and referential checks live below the transport.

type validator interface {
	Validate() error
}

func decode(r *http.Request, v validator) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is not valid JSON")
	}
	return v.Validate()
}

func required(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return dErrors.New(dErrors.CodeValidation, field+" is required")
	}
	return nil
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (req *loginRequest) Validate() error {
	if err := required("email", req.Email); err != nil {
		return err
	}
	return required("password", req.Password)
}

type createUserRequest struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Password  string `json:"password"`
	IsAdmin   bool   `json:"is_admin"`
}

func (req *createUserRequest) Validate() error {
	if err := required("email", req.Email); err != nil {
		return err
	}
	if err := required("first_name", req.FirstName); err != nil {
		return err
	}
	if err := required("last_name", req.LastName); err != nil {
		return err
	}
	return required("password", req.Password)
}

type updateUserRequest struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Password  string `json:"password"`
}

func (req *updateUserRequest) Validate() error {
	if err := required("email", req.Email); err != nil {
		return err
	}
	if err := required("first_name", req.FirstName); err != nil {
		return err
	}
	return required("last_name", req.LastName)
}

type countryRequest struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

func (req *countryRequest) Validate() error {
	if err := required("code", req.Code); err != nil {
		return err
	}
	return required("name", req.Name)
}

type cityRequest struct {
	Name        string `json:"name"`
	CountryCode string `json:"country_code"`
}

func (req *cityRequest) Validate() error {
	if err := required("name", req.Name); err != nil {
		return err
	}
	return required("country_code", req.CountryCode)
}

type amenityRequest struct {
	Name string `json:"name"`
}

func (req *amenityRequest) Validate() error {
	return required("name", req.Name)
}

type placeRequest struct {
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	CityID        string   `json:"city_id"`
	PricePerNight float64  `json:"price_per_night"`
	Latitude      float64  `json:"latitude"`
	Longitude     float64  `json:"longitude"`
	AmenityIDs    []string `json:"amenity_ids"`
	// HostID is honored only on the admin surface; elsewhere the
	// authenticated caller is the host.
	HostID string `json:"host_id"`
}

func (req *placeRequest) Validate() error {
	if err := required("name", req.Name); err != nil {
		return err
	}
	return required("city_id", req.CityID)
}

type reviewRequest struct {
	Rating  float64 `json:"rating"`
	Comment string  `json:"comment"`
}

func (req *reviewRequest) Validate() error {
	return required("comment", req.Comment)
}
