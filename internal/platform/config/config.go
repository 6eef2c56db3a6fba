package config

import (
	"os"
	"strconv"
	"time"
)

// Server captures process-level configuration.
type Server struct {
	Addr          string
	StorageDriver string
	DatabaseURL   string
	JWTSigningKey string
	TokenTTL      time.Duration

	// Validation rules that product requirements left open.
	AmenityNameUnique bool
	MinPasswordLen    int

	// Optional bootstrap admin created at startup when both are set.
	BootstrapAdminEmail    string
	BootstrapAdminPassword string
}

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() Server {
	addr := os.Getenv("HEARTH_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	driver := os.Getenv("STORAGE_DRIVER")
	if driver == "" {
		driver = "memory"
	}

	jwtSigningKey := os.Getenv("JWT_SIGNING_KEY")
	if jwtSigningKey == "" {
		// Development default; override in production.
		jwtSigningKey = "dev-secret-key-change-in-production"
	}

	tokenTTL := 24 * time.Hour
	if raw := os.Getenv("TOKEN_TTL"); raw != "" {
		if parsed, err := time.ParseDuration(raw); err == nil {
			tokenTTL = parsed
		}
	}

	amenityUnique := true
	if raw := os.Getenv("AMENITY_NAME_UNIQUE"); raw != "" {
		amenityUnique = raw == "true" || raw == "1"
	}

	minPasswordLen := 8
	if raw := os.Getenv("MIN_PASSWORD_LEN"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			minPasswordLen = parsed
		}
	}

	return Server{
		Addr:                   addr,
		StorageDriver:          driver,
		DatabaseURL:            os.Getenv("DATABASE_URL"),
		JWTSigningKey:          jwtSigningKey,
		TokenTTL:               tokenTTL,
		AmenityNameUnique:      amenityUnique,
		MinPasswordLen:         minPasswordLen,
		BootstrapAdminEmail:    os.Getenv("BOOTSTRAP_ADMIN_EMAIL"),
		BootstrapAdminPassword: os.Getenv("BOOTSTRAP_ADMIN_PASSWORD"),
	}
}
