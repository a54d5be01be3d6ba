package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/soheilhy/cmux"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"

	logger_lib "github.com/s21platform/logger-lib"
	"github.com/s21platform/metrics-lib/pkg"

	"github.com/nasafacts/community-service/internal/client/centrifugo"
	"github.com/nasafacts/community-service/internal/config"
	"github.com/nasafacts/community-service/internal/forum"
	api "github.com/nasafacts/community-service/internal/generated"
	"github.com/nasafacts/community-service/internal/infra"
	"github.com/nasafacts/community-service/internal/pkg/jwt"
	"github.com/nasafacts/community-service/internal/pkg/validator"
	"github.com/nasafacts/community-service/internal/profile"
	"github.com/nasafacts/community-service/internal/realtime"
	db "github.com/nasafacts/community-service/internal/repository/postgres"
	"github.com/nasafacts/community-service/internal/rest"
	"github.com/nasafacts/community-service/internal/topic"
	"github.com/nasafacts/community-service/internal/wishlist"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.MustLoad()
	logger := logger_lib.New(cfg.Logger.Host, cfg.Logger.Port, cfg.Service.Name, cfg.Platform.Env)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	dbRepo := db.New(cfg)
	defer dbRepo.Close()

	notifySource, err := db.NewNotifySource(cfg, logger)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to listen for message inserts: %v", err))
		return
	}

	centrifugeClient := centrifugo.New(cfg)
	defer centrifugeClient.Close()

	vldtr := validator.New()
	jwtGenerator := jwt.New(cfg.Centrifuge.JWTSecret)
	jwtVerifier := jwt.NewVerifier(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer)

	var hubOpts []realtime.HubOption
	metrics, err := pkg.NewMetrics(cfg.Metrics.Host, cfg.Metrics.Port, cfg.Service.Name, cfg.Platform.Env)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to connect graphite: %v", err))
	} else {
		defer metrics.Disconnect()
		hubOpts = append(hubOpts, realtime.WithMetrics(metrics))
	}

	hub := realtime.NewHub(logger, hubOpts...)
	messageStore := forum.NewStore(dbRepo)
	feed := forum.NewFeed(messageStore, hub)

	handler := rest.New(
		messageStore,
		feed,
		topic.New(dbRepo),
		wishlist.New(dbRepo),
		profile.New(dbRepo),
		centrifugeClient,
		vldtr,
		jwtGenerator,
		cfg.Realtime,
	)

	router := chi.NewRouter()
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	router.Use(func(next http.Handler) http.Handler {
		return infra.RecoverHTTP(next, logger)
	})
	router.Use(func(next http.Handler) http.Handler {
		return infra.AuthInterceptorHTTP(next, jwtVerifier)
	})
	router.Use(func(next http.Handler) http.Handler {
		return infra.LoggerHTTP(next, logger)
	})

	api.HandlerFromMux(handler, router)

	healthServer := health.NewServer()
	grpcServer := grpc.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)

	listener, err := net.Listen("tcp", fmt.Sprintf(":%s", cfg.Service.Port))
	if err != nil {
		logger.Error(fmt.Sprintf("failed to start TCP listener: %v", err))
		return
	}

	m := cmux.New(listener)

	grpcListener := m.MatchWithWriters(cmux.HTTP2MatchHeaderFieldSendSettings("content-type", "application/grpc"))
	httpListener := m.Match(cmux.HTTP1Fast())

	g, gCtx := errgroup.WithContext(ctx)

	// Streams end with the process context instead of holding Shutdown open.
	httpServer := &http.Server{
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext: func(net.Listener) context.Context {
			return gCtx
		},
	}

	g.Go(func() error {
		if err := hub.Run(gCtx, notifySource.Events(gCtx)); err != nil && !errors.Is(err, context.Canceled) {
			return fmt.Errorf("realtime pump error: %v", err)
		}
		return nil
	})

	g.Go(func() error {
		if err := grpcServer.Serve(grpcListener); err != nil && !errors.Is(err, grpc.ErrServerStopped) && !errors.Is(err, cmux.ErrListenerClosed) {
			return fmt.Errorf("gRPC server error: %v", err)
		}
		return nil
	})

	g.Go(func() error {
		if err := httpServer.Serve(httpListener); err != nil && !errors.Is(err, http.ErrServerClosed) && !errors.Is(err, cmux.ErrListenerClosed) {
			return fmt.Errorf("HTTP server error: %v", err)
		}
		return nil
	})

	g.Go(func() error {
		if err := m.Serve(); err != nil && !errors.Is(err, net.ErrClosed) {
			return fmt.Errorf("cannot start service: %v", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()

		healthServer.Shutdown()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Warn(fmt.Sprintf("HTTP shutdown: %v", err))
		}
		grpcServer.GracefulStop()
		_ = listener.Close()
		return nil
	})

	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	logger.Info(fmt.Sprintf("%s listening on :%s", cfg.Service.Name, cfg.Service.Port))

	if err := g.Wait(); err != nil {
		logger.Error(fmt.Sprintf("server error: %v", err))
	}
}
