// Package httptransport exposes the marketplace over HTTP. Handlers decode
// and validate request shapes, call the service layer, and translate coded
// errors into status codes; they hold no business rules of their own.
package httptransport

import (
	"log/slog"

	"hearth/internal/audit"
	"hearth/internal/service"
	"hearth/internal/token"
)

type Handler struct {
	svc    *service.Service
	tokens *token.Manager
	audit  audit.Store
	logger *slog.Logger
}

func NewHandler(svc *service.Service, tokens *token.Manager, auditStore audit.Store, logger *slog.Logger) *Handler {
	return &Handler{
		svc:    svc,
		tokens: tokens,
		audit:  auditStore,
		logger: logger,
	}
}
