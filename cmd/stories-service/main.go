package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	grpc_prometheus "github.com/grpc-ecosystem/go-grpc-prometheus"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/pribylovaa/hacker-stories/internal/config"
	"github.com/pribylovaa/hacker-stories/internal/hnapi"
	storieshttp "github.com/pribylovaa/hacker-stories/internal/http"
	"github.com/pribylovaa/hacker-stories/internal/metrics"
	"github.com/pribylovaa/hacker-stories/internal/service"
	"github.com/pribylovaa/hacker-stories/internal/storage"
	"github.com/pribylovaa/hacker-stories/internal/storage/memory"
	"github.com/pribylovaa/hacker-stories/internal/storage/postgres"
	"github.com/pribylovaa/hacker-stories/internal/storage/redis"
	"github.com/pribylovaa/hacker-stories/pkg/interceptors"
	logctx "github.com/pribylovaa/hacker-stories/pkg/log"

	"google.golang.org/grpc"
	health "google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

// Константы для определения окружения.
const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

const shutdownTimeout = 10 * time.Second

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "", "path to config file (overrides CONFIG_PATH env)")
	flag.Parse()

	cfg := config.MustLoad(configPath)

	log := setupLogger(cfg.Env)
	slog.SetDefault(log)
	log.Info("starting stories-service", "env", cfg.Env)

	if err := run(cfg, log); err != nil {
		log.Error("service_failed", slog.String("err", err.Error()))
		os.Exit(1)
	}

	log.Info("service_stopped")
}

func run(cfg *config.Config, log *slog.Logger) error {
	rootCtx, rootCancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer rootCancel()

	dbCtx, dbCancel := context.WithTimeout(rootCtx, 10*time.Second)
	store, err := openStorage(dbCtx, cfg.Storage)
	dbCancel()
	if err != nil {
		return err
	}
	defer store.Close()
	log.Info("storage_ready", slog.String("driver", cfg.Storage.Driver))

	m := metrics.New(prometheus.DefaultRegisterer)
	client := hnapi.New(&http.Client{Timeout: cfg.API.Timeout})
	svc := service.New(client, store, *cfg, m)
	log.Info("service_initialized")

	// REST + readiness/liveness/metrics.
	var ready atomic.Bool

	api := storieshttp.NewRouter(svc, storieshttp.Options{
		Logger:  log,
		Timeout: cfg.Timeouts.Service,
		Metrics: m,
	})

	mux := http.NewServeMux()
	mux.HandleFunc("/livez", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		if ready.Load() {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ok"))
			return
		}
		http.Error(w, "not ready", http.StatusServiceUnavailable)
	})
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/", api)

	httpSrv := &http.Server{
		Addr:              cfg.HTTP.Addr(),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	// gRPC: только health + reflection.
	grpc_prometheus.EnableHandlingTimeHistogram()

	grpcServer := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			interceptors.UnaryRecover(log),
			interceptors.UnaryLogging(log),
			interceptors.UnaryTimeout(cfg.Timeouts.Service),
			grpc_prometheus.UnaryServerInterceptor,
		),
		grpc.ChainStreamInterceptor(
			interceptors.StreamRecover(log),
			interceptors.StreamLogging(log),
			grpc_prometheus.StreamServerInterceptor,
		),
	)

	hs := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, hs)

	if cfg.Env == envLocal || cfg.Env == envDev {
		reflection.Register(grpcServer)
	}
	grpc_prometheus.Register(grpcServer)

	lis, err := net.Listen("tcp", cfg.GRPC.Addr())
	if err != nil {
		return fmt.Errorf("grpc listen %s: %w", cfg.GRPC.Addr(), err)
	}

	g, gctx := errgroup.WithContext(rootCtx)

	g.Go(func() error {
		log.Info("http_listen_start", slog.String("addr", httpSrv.Addr))
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http serve: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		log.Info("grpc_listen_start", slog.String("addr", lis.Addr().String()))
		if err := grpcServer.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			return fmt.Errorf("grpc serve: %w", err)
		}
		return nil
	})

	// Первичная загрузка: сохранённая строка или строка по умолчанию.
	g.Go(func() error {
		ctx, cancel := context.WithTimeout(logctx.Into(gctx, log), cfg.Timeouts.Service)
		defer cancel()

		if _, err := svc.Start(ctx); err != nil {
			log.Warn("initial_load_failed", slog.String("err", err.Error()))
		}

		hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
		ready.Store(true)
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutdown_requested")

		hs.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
		ready.Store(false)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			log.Warn("http_shutdown_failed", slog.String("err", err.Error()))
		}

		done := make(chan struct{})
		go func() {
			grpcServer.GracefulStop()
			close(done)
		}()

		select {
		case <-done:
			log.Info("grpc_stopped")
		case <-shutdownCtx.Done():
			log.Warn("grpc_force_stop")
			grpcServer.Stop()
		}

		return nil
	})

	return g.Wait()
}

// openStorage выбирает хранилище поисковой строки по storage.driver.
func openStorage(ctx context.Context, cfg config.StorageConfig) (storage.Storage, error) {
	switch cfg.Driver {
	case config.StorageMemory, "":
		return memory.New(), nil
	case config.StorageRedis:
		st, err := redis.New(ctx, cfg.RedisURL, cfg.RedisPrefix)
		if err != nil {
			return nil, fmt.Errorf("redis connect: %w", err)
		}
		return st, nil
	case config.StoragePostgres:
		st, err := postgres.New(ctx, cfg.PostgresURL)
		if err != nil {
			return nil, fmt.Errorf("postgres connect: %w", err)
		}
		return st, nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}

// setupLogger настраивает slog по окружению.
func setupLogger(env string) *slog.Logger {
	switch env {
	case envLocal:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envDev:
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}
