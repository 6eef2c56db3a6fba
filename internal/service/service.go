// Package service holds the entity rule layer. Each operation validates
// shape, resolves references, applies ownership and uniqueness rules, then
// delegates persistence to the storage port. All check-then-write sequences
// run inside store.RunInTx so concurrent writers cannot interleave between
// the check and the write.
package service

import (
	"context"
	"log/slog"

	"hearth/internal/audit"
	"hearth/internal/domain"
	"hearth/internal/platform/metrics"
	"hearth/internal/storage"
	dErrors "hearth/pkg/domain-errors"
	"hearth/pkg/requestcontext"
)

// AuditPublisher captures who-did-what events. Nil disables auditing.
type AuditPublisher interface {
	Emit(ctx context.Context, event audit.Event) error
}

// Rules are the configurable validation knobs. Backends never see them;
// rules are applied here so memory and postgres behave identically.
type Rules struct {
	AmenityNameUnique bool
	MinPasswordLen    int
}

func DefaultRules() Rules {
	return Rules{AmenityNameUnique: true, MinPasswordLen: 8}
}

type Service struct {
	store   storage.Store
	logger  *slog.Logger
	metrics *metrics.Metrics
	audit   AuditPublisher
	rules   Rules
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

func WithAuditPublisher(p AuditPublisher) Option {
	return func(s *Service) { s.audit = p }
}

func WithRules(rules Rules) Option {
	return func(s *Service) { s.rules = rules }
}

func New(store storage.Store, opts ...Option) *Service {
	s := &Service{
		store:  store,
		logger: slog.Default(),
		rules:  DefaultRules(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) created(ctx context.Context, kind domain.Kind, id string) {
	if s.metrics != nil {
		s.metrics.IncrementCreated(string(kind))
	}
	s.logger.InfoContext(ctx, "entity created", "kind", kind, "id", id)
	s.emitAudit(ctx, audit.ActionCreated, kind, id)
}

func (s *Service) updated(ctx context.Context, kind domain.Kind, id string) {
	s.logger.InfoContext(ctx, "entity updated", "kind", kind, "id", id)
	s.emitAudit(ctx, audit.ActionUpdated, kind, id)
}

func (s *Service) deleted(ctx context.Context, kind domain.Kind, id string) {
	if s.metrics != nil {
		s.metrics.IncrementDeleted(string(kind))
	}
	s.logger.InfoContext(ctx, "entity deleted", "kind", kind, "id", id)
	s.emitAudit(ctx, audit.ActionDeleted, kind, id)
}

// authorizeOwner allows the record owner and admins through. Middleware has
// already authenticated the caller; this only checks ownership.
func (s *Service) authorizeOwner(ctx context.Context, ownerID string) error {
	if requestcontext.IsAdmin(ctx) {
		return nil
	}
	if ownerID != "" && requestcontext.UserID(ctx) == ownerID {
		return nil
	}
	return dErrors.New(dErrors.CodeForbidden, "caller does not own this record")
}

func (s *Service) emitAudit(ctx context.Context, action string, kind domain.Kind, id string) {
	if s.audit == nil {
		return
	}
	event := audit.Event{
		Timestamp: requestcontext.Now(ctx),
		ActorID:   requestcontext.UserID(ctx),
		Action:    action,
		Kind:      string(kind),
		EntityID:  id,
		RequestID: requestcontext.RequestID(ctx),
	}
	if err := s.audit.Emit(ctx, event); err != nil {
		s.logger.WarnContext(ctx, "failed to emit audit event", "error", err, "action", action)
	}
}
