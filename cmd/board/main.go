// jobmate-board-service
//
// Hyper-local job board: catalogue search, the "Should I apply?" verdict,
// applications with an employer board, and subscription credits.
// Exposes:
//   - a REST API (gin) for the web clients, with /health and /metrics
//   - a gRPC JobBoard service (SearchJobs, ScoreCompatibility) for internal callers
//
// A cron pass recomputes recommendations for every seeker and caches them in
// Redis. Events are published to Redis for the gateway's SSE forward.
package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog/log"
	"google.golang.org/grpc"

	"jobmate/board-service/internal/admin"
	"jobmate/board-service/internal/app"
	"jobmate/board-service/internal/billing"
	"jobmate/board-service/internal/config"
	"jobmate/board-service/internal/grpcserver"
	"jobmate/board-service/internal/jobs"
	"jobmate/board-service/internal/kanban"
	"jobmate/board-service/internal/metrics"
	"jobmate/board-service/internal/scheduler"
	"jobmate/board-service/internal/web"
)

const version = "1.0.0"

func main() {
	// ── Config ──────────────────────────────────────────────────────────────
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "[board-service] config error: %v\n", err)
		os.Exit(1)
	}
	app.SetupLogging(cfg, os.Stdout, "board-service")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ── Store, Redis ─────────────────────────────────────────────────────────
	deps, err := app.Open(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("startup failed")
	}
	defer deps.Close()

	// ── Services ─────────────────────────────────────────────────────────────
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	rec := metrics.NewRecorder(reg)

	jobSvc := jobs.NewService(deps.Store, deps.Recs, deps.Publisher, jobs.Options{
		BlockedTerms: cfg.BlockedTerms,
		TopN:         cfg.RecommendTopN,
		Metrics:      rec,
	})
	boardSvc := kanban.NewService(deps.Store, deps.Publisher)
	billingSvc := billing.NewService(deps.Store)
	adminSvc := admin.NewService(deps.Store)

	// ── Scheduler ────────────────────────────────────────────────────────────
	sched := scheduler.New(deps.Store, deps.Recs, deps.Publisher, rec, cfg.RecommendInterval, cfg.RecommendTopN)
	if err := sched.Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("scheduler start failed")
	}

	// ── HTTP server ──────────────────────────────────────────────────────────
	router := web.NewRouter(web.NewHandler(jobSvc, boardSvc, billingSvc, adminSvc), reg, cfg.IsProduction())
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	go func() {
		log.Info().Str("version", version).Str("port", cfg.Port).Msg("HTTP listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("HTTP server error")
		}
	}()

	// ── gRPC server ──────────────────────────────────────────────────────────
	lis, err := net.Listen("tcp", ":"+cfg.GRPCPort)
	if err != nil {
		log.Fatal().Err(err).Str("port", cfg.GRPCPort).Msg("gRPC listen failed")
	}
	gs := grpc.NewServer(grpc.UnaryInterceptor(grpcserver.UnaryLogger()))
	grpcserver.Register(gs, grpcserver.NewServer(jobSvc))
	go func() {
		log.Info().Str("port", cfg.GRPCPort).Msg("gRPC listening")
		if err := gs.Serve(lis); err != nil {
			log.Fatal().Err(err).Msg("gRPC server error")
		}
	}()

	// ── Graceful shutdown ────────────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	cancel()
	sched.Stop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP shutdown error")
	}
	gs.GracefulStop()
	log.Info().Msg("stopped")
}
