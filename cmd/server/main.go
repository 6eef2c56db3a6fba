package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"hearth/internal/audit"
	"hearth/internal/platform/config"
	"hearth/internal/platform/httpserver"
	"hearth/internal/platform/logger"
	"hearth/internal/platform/metrics"
	"hearth/internal/service"
	"hearth/internal/storage"
	"hearth/internal/token"
	httptransport "hearth/internal/transport/http"
	dErrors "hearth/pkg/domain-errors"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.FromEnv()
	log := logger.New()
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := storage.Open(ctx, storage.Config{
		Driver: cfg.StorageDriver,
		DSN:    cfg.DatabaseURL,
	})
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer func() {
		if err := closeStore(); err != nil {
			log.Error("failed to close storage", "error", err)
		}
	}()
	log.Info("storage backend selected", "driver", cfg.StorageDriver)

	// The audit trail follows the storage backend choice.
	var auditStore audit.Store = audit.NewInMemoryStore()
	if pg, ok := store.(*storage.PostgresStore); ok {
		auditStore = audit.NewPostgresStore(pg.DB())
	}
	inbox := make(chan audit.Event, 256)

	svc := service.New(store,
		service.WithLogger(log),
		service.WithMetrics(metrics.New()),
		service.WithAuditPublisher(audit.NewChannelPublisher(inbox, log)),
		service.WithRules(service.Rules{
			AmenityNameUnique: cfg.AmenityNameUnique,
			MinPasswordLen:    cfg.MinPasswordLen,
		}),
	)

	if err := bootstrapAdmin(ctx, svc, cfg, log); err != nil {
		return err
	}

	tokens := token.NewManager(cfg.JWTSigningKey, cfg.TokenTTL)
	handler := httptransport.NewHandler(svc, tokens, auditStore, log)
	server := httpserver.New(cfg.Addr, handler.Router())

	group, ctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		err := audit.NewWorker(auditStore, inbox, log).Run(ctx)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	})
	group.Go(func() error {
		log.Info("server listening", "addr", cfg.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	group.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})
	return group.Wait()
}

// bootstrapAdmin seeds the first admin account from the environment so a
// fresh deployment has a way into the admin surface. An existing account
// with the same email is left untouched.
func bootstrapAdmin(ctx context.Context, svc *service.Service, cfg config.Server, log *slog.Logger) error {
	if cfg.BootstrapAdminEmail == "" || cfg.BootstrapAdminPassword == "" {
		return nil
	}
	_, err := svc.CreateUser(ctx, service.CreateUserParams{
		Email:     cfg.BootstrapAdminEmail,
		FirstName: "Bootstrap",
		LastName:  "Admin",
		Password:  cfg.BootstrapAdminPassword,
		IsAdmin:   true,
	})
	if err != nil {
		if dErrors.HasCode(err, dErrors.CodeConflict) {
			log.Info("bootstrap admin already present", "email", cfg.BootstrapAdminEmail)
			return nil
		}
		return fmt.Errorf("bootstrap admin: %w", err)
	}
	log.Info("bootstrap admin created", "email", cfg.BootstrapAdminEmail)
	return nil
}
