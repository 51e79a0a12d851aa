package app

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/dig"

	"courier-dispatch/internal/config"
	"courier-dispatch/internal/http/handlers"
	"courier-dispatch/internal/http/middleware/ratelimit"
	"courier-dispatch/internal/http/router"
	"courier-dispatch/internal/logx"
	"courier-dispatch/internal/metrics"
	"courier-dispatch/internal/repository"
	"courier-dispatch/internal/service/dispatch"
	"courier-dispatch/internal/service/reports"
	"courier-dispatch/internal/transport/kafka"
)

// ContainerBuilder is a dig container builder.
type ContainerBuilder struct {
	dbConnect func(context.Context, string, int, time.Duration) (*pgxpool.Pool, error)
	logFatalf func(string, ...interface{})
}

// NewContainerBuilder returns a new dig container builder.
func NewContainerBuilder() *ContainerBuilder {
	return &ContainerBuilder{
		dbConnect: connectDbWithRetry,
		logFatalf: log.Fatalf,
	}
}

// WithDBConnect sets the database connection function.
func (b *ContainerBuilder) WithDBConnect(
	fn func(context.Context, string, int, time.Duration) (*pgxpool.Pool, error),
) *ContainerBuilder {
	if fn != nil {
		b.dbConnect = fn
	}
	return b
}

// WithLogFatalf sets the log.Fatalf function.
func (b *ContainerBuilder) WithLogFatalf(fn func(string, ...interface{})) *ContainerBuilder {
	if fn != nil {
		b.logFatalf = fn
	}
	return b
}

// MustBuild builds and returns a new dig container.
func (b *ContainerBuilder) MustBuild(ctx context.Context) *dig.Container {
	container, err := b.build(ctx)
	if err != nil {
		b.logFatalf("failed to build container: %v", err)
	}
	return container
}

func (b *ContainerBuilder) build(ctx context.Context) (*dig.Container, error) {
	container := dig.New()

	if err := registerCore(container, ctx); err != nil {
		return nil, fmt.Errorf("core: %w", err)
	}
	if err := registerDb(container, b.dbConnect); err != nil {
		return nil, fmt.Errorf("DB: %w", err)
	}
	if err := registerService(container); err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}
	if err := registerHTTP(container); err != nil {
		return nil, fmt.Errorf("http: %w", err)
	}
	return container, nil
}

// MustBuildContainer builds and returns a new dig container.
func MustBuildContainer(ctx context.Context) *dig.Container {
	return NewContainerBuilder().MustBuild(ctx)
}

func provideAll(container *dig.Container, providers ...any) error {
	for _, provider := range providers {
		if err := container.Provide(provider); err != nil {
			return fmt.Errorf("provide %T: %w", provider, err)
		}
	}
	return nil
}

func registerCore(container *dig.Container, ctx context.Context) error {
	return provideAll(container,
		func() context.Context { return ctx },
		func() *log.Logger { return log.Default() },
		NewLogger,
		config.Load,
	)
}

func registerDb(
	container *dig.Container,
	dbConnect func(context.Context, string, int, time.Duration) (*pgxpool.Pool, error),
) error {
	providerDB := func(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
		return dbConnect(ctx, cfg.DB.DSN(), 10, time.Second)
	}
	return provideAll(container, providerDB)
}

func registerService(container *dig.Container) error {
	return provideAll(container,
		repository.NewOrderRepo,
		repository.NewReportsRepo,
		func(cfg *config.Config, logger logx.Logger) (*kafka.RetryingPublisher, error) {
			base, err := kafka.NewPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic)
			if err != nil {
				return nil, err
			}
			if base == nil {
				return nil, nil
			}
			retries := metrics.NewEventPublishRetriesTotal()
			// containers may be rebuilt; ignore AlreadyRegistered
			_ = prometheus.Register(retries)
			return kafka.NewRetryingPublisher(base, logger, retries, kafka.RetryConfig{
				MaxAttempts: 4,
				BaseDelay:   150 * time.Millisecond,
				MaxDelay:    500 * time.Millisecond,
			}), nil
		},
		func(repo *repository.OrderRepo, pub *kafka.RetryingPublisher, logger logx.Logger, cfg *config.Config) *dispatch.Service {
			counters := dispatch.Counters{
				OrdersCreated: metrics.NewOrdersCreatedTotal(),
				StatusUpdates: metrics.NewStatusUpdatesTotal(),
			}
			_ = prometheus.Register(counters.OrdersCreated)
			_ = prometheus.Register(counters.StatusUpdates)
			return dispatch.NewService(repo, pub, logger, counters, cfg.OperationTimeout)
		},
		func(repo *repository.ReportsRepo, cfg *config.Config) *reports.Service {
			served := metrics.NewReportsServedTotal()
			_ = prometheus.Register(served)
			return reports.NewService(repo, served, cfg.OperationTimeout)
		},
	)
}

func registerHTTP(container *dig.Container) error {
	limiterProvider := func(cfg *config.Config, logger logx.Logger) *ratelimit.Middleware {
		limiter := ratelimit.NewTokenBucketLimiter(ratelimit.RealClock{}, ratelimit.Config{
			Rate:       cfg.RateLimit.Rate,
			Burst:      cfg.RateLimit.Burst,
			TTL:        10 * time.Minute,
			MaxBuckets: 100_000,
		})
		rejected := metrics.NewRateLimitExceededTotal()
		_ = prometheus.Register(rejected)
		return ratelimit.New(logger, rejected, limiter)
	}
	serverProvider := func(cfg *config.Config, mux http.Handler) *http.Server {
		return &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Port),
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      15 * time.Second,
			IdleTimeout:       60 * time.Second,
		}
	}
	return provideAll(container,
		handlers.New,
		handlers.NewDispatchUsecase,
		handlers.NewDispatchHandler,
		handlers.NewReportsUsecase,
		handlers.NewReportsHandler,
		limiterProvider,
		router.New,
		serverProvider,
	)
}
