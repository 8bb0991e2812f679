package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	accounthandler "dealerdesk/internal/account/handler"
	accountservice "dealerdesk/internal/account/service"
	internalhttp "dealerdesk/internal/http"
	"dealerdesk/internal/identity/store/profile"
	"dealerdesk/internal/identity/store/revocation"
	"dealerdesk/internal/identity/store/role"
	"dealerdesk/internal/identity/store/user"
	"dealerdesk/internal/identity/token"
	"dealerdesk/internal/platform/config"
	"dealerdesk/internal/platform/httpserver"
	"dealerdesk/internal/platform/logger"
	"dealerdesk/internal/platform/metrics"
	"dealerdesk/internal/platform/postgres"
	platformredis "dealerdesk/internal/platform/redis"
	"dealerdesk/pkg/platform/audit"
	auditkafka "dealerdesk/pkg/platform/audit/kafka"
	"dealerdesk/pkg/platform/audit/publisher"
	auditmemory "dealerdesk/pkg/platform/audit/store/memory"
	auditpostgres "dealerdesk/pkg/platform/audit/store/postgres"
	"dealerdesk/pkg/platform/debounce"
	mwauth "dealerdesk/pkg/platform/middleware/auth"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.FromEnv()
	log := logger.New()
	m := metrics.New()

	// Storage. Postgres-backed when a DSN is configured, in-memory otherwise
	// so the service runs standalone in development.
	var (
		users      user.Store
		roles      role.Store
		profiles   profile.Store
		auditStore audit.Store
	)
	if cfg.PostgresDSN != "" {
		pool, err := postgres.NewPool(ctx, cfg.PostgresDSN)
		if err != nil {
			return err
		}
		defer pool.Close()
		users = user.NewPostgresStore(pool)
		roles = role.NewPostgresStore(pool)
		profiles = profile.NewPostgresStore(pool)
		auditStore = auditpostgres.New(pool)
		log.Info("postgres stores enabled")
	} else {
		users = user.NewMemoryStore()
		roles = role.NewMemoryStore()
		profiles = profile.NewMemoryStore()
		auditStore = auditmemory.NewInMemoryStore()
		log.Warn("no POSTGRES_DSN set, using in-memory stores")
	}

	// Token revocation list. Redis-backed when configured.
	var revocations mwauth.TokenRevocationChecker = revocation.NewMemoryStore()
	redisClient, err := platformredis.New(ctx, cfg.RedisURL)
	if err != nil {
		return err
	}
	if redisClient != nil {
		defer redisClient.Close()
		revocations = revocation.NewRedisStore(redisClient)
		log.Info("redis revocation list enabled")
	}

	// Audit mirror to Kafka when brokers are configured.
	if len(cfg.KafkaBrokers) > 0 {
		sink, err := auditkafka.NewSink(ctx, cfg.KafkaBrokers, cfg.KafkaTopic)
		if err != nil {
			return err
		}
		defer sink.Close()
		auditStore = audit.NewTeeStore(auditStore, sink, log)
		log.Info("kafka audit mirror enabled", "brokers", cfg.KafkaBrokers)
	}

	var pubOpts []publisher.Option
	if cfg.AuditBuffer > 0 {
		pubOpts = append(pubOpts, publisher.WithAsyncBuffer(cfg.AuditBuffer))
	}
	auditPublisher := publisher.NewPublisher(auditStore, log, pubOpts...)
	defer auditPublisher.Close()

	tokens := token.NewService(cfg.JWTSigningKey, cfg.JWTIssuer)
	svc := accountservice.NewService(users, roles, profiles, auditPublisher, log, m)
	accountHandler := accounthandler.NewHandler(svc, log, m, debounce.WithWindow(cfg.ResubmitWindow))

	router := internalhttp.NewRouter(internalhttp.Deps{
		Logger:      log,
		Account:     accountHandler,
		Validator:   token.NewMiddlewareAdapter(tokens),
		Revocations: revocations,
		Health: func(w http.ResponseWriter, r *http.Request) {
			if redisClient != nil {
				if err := redisClient.Health(r.Context()); err != nil {
					http.Error(w, "redis unavailable", http.StatusServiceUnavailable)
					return
				}
			}
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ok"))
		},
	})

	srv := httpserver.New(cfg.Addr, router)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("server listening", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		log.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
