package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dmateos/startrader/internal/catalog"
	"github.com/dmateos/startrader/internal/config"
	"github.com/dmateos/startrader/internal/domain"
	"github.com/dmateos/startrader/internal/engine"
	"github.com/dmateos/startrader/internal/handler"
	"github.com/dmateos/startrader/internal/inventory"
	"github.com/dmateos/startrader/internal/recorder"
	"github.com/dmateos/startrader/internal/score"
	"github.com/dmateos/startrader/internal/service"
	"github.com/dmateos/startrader/internal/store"
)

func main() {
	healthcheck := flag.Bool("healthcheck", false, "Run health check against running server")
	flag.Parse()

	// Handle -healthcheck flag: HTTP GET to localhost:PORT/healthz, exit 0/1.
	if *healthcheck {
		port := os.Getenv("PORT")
		if port == "" {
			port = "8080"
		}
		resp, err := http.Get(fmt.Sprintf("http://localhost:%s/healthz", port))
		if err != nil || resp.StatusCode != http.StatusOK {
			os.Exit(1)
		}
		os.Exit(0)
	}

	// Load configuration.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Set up slog logger with configured level.
	var logLevel slog.Level
	switch cfg.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	// Market catalog: universe file or the built-in defaults.
	cat := catalog.Default()
	if cfg.UniversePath != "" {
		cat, err = catalog.LoadFile(cfg.UniversePath)
		if err != nil {
			logger.Error("failed to load universe", slog.String("error", err.Error()))
			os.Exit(1)
		}
		logger.Info("universe loaded", slog.String("path", cfg.UniversePath))
	}

	// Audit recorder: SQLite when configured, otherwise no-op.
	var rec recorder.Recorder = recorder.NewNoop()
	if cfg.SQLitePath != "" {
		sqlite, err := recorder.NewSQLite(cfg.SQLitePath)
		if err != nil {
			logger.Error("failed to open recorder", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer sqlite.Close()
		rec = sqlite
		logger.Info("recorder opened", slog.String("path", cfg.SQLitePath))
	}

	// Single shared randomness source; a fixed SEED makes sessions
	// reproducible.
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	// Session state and collaborators.
	bal := cat.Balance()
	ledger := store.NewLedger(bal.StartingCash, bal.StartLocation)
	ledger.AddQuantity(domain.CommodityFuel, bal.StartingFuel)
	inv := inventory.NewMemoryManager()
	scores := score.NewMemory()

	// Engine.
	market := engine.NewMarket(cat, ledger, store.NewPriceBoard(), store.NewHistory(), inv, scores, rng)

	// Render-trigger hub.
	hub := handler.NewHub(logger)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go hub.Run(ctx)

	// Services.
	marketSvc := service.NewMarketService(market)
	tradeSvc := service.NewTradeService(market, rec, hub, logger)
	travelSvc := service.NewTravelService(market, rec, hub, logger)
	unitSvc := service.NewUnitService(market, hub, logger)
	ledgerSvc := service.NewLedgerService(market)

	// Router.
	router := handler.NewRouter(marketSvc, tradeSvc, travelSvc, unitSvc, ledgerSvc, hub, logger)

	// Configure HTTP server.
	addr := fmt.Sprintf(":%d", cfg.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	// Start HTTP server in a goroutine.
	go func() {
		logger.Info("server starting", slog.String("addr", addr), slog.Int64("seed", seed))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	// Wait for SIGINT/SIGTERM.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	logger.Info("shutdown signal received", slog.String("signal", sig.String()))

	// Graceful shutdown: stop HTTP server, cancel context (stops hub).
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.String("error", err.Error()))
	}
	cancel()

	logger.Info("server stopped")
}
