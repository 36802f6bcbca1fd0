package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/lumenvault/lumenvault/internal/config"
	"github.com/lumenvault/lumenvault/internal/db"
	dbRedis "github.com/lumenvault/lumenvault/internal/db/redis"
	logpkg "github.com/lumenvault/lumenvault/internal/logger"
	"github.com/lumenvault/lumenvault/internal/metrics"
	albumrepo "github.com/lumenvault/lumenvault/internal/repository/album"
	assetrepo "github.com/lumenvault/lumenvault/internal/repository/asset"
	partnerrepo "github.com/lumenvault/lumenvault/internal/repository/partner"
	personrepo "github.com/lumenvault/lumenvault/internal/repository/person"
	smartrepo "github.com/lumenvault/lumenvault/internal/repository/smart"
	"github.com/lumenvault/lumenvault/internal/repository/sysconfig"
	chiTransport "github.com/lumenvault/lumenvault/internal/transport/chi"
	openaiEnc "github.com/lumenvault/lumenvault/internal/transport/openai"
	exploreuc "github.com/lumenvault/lumenvault/internal/usecase/explore"
	searchuc "github.com/lumenvault/lumenvault/internal/usecase/search"
	"github.com/lumenvault/lumenvault/internal/version"
)

func main() {
	// Load configuration based on ENV
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.New(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting lumenvault API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.Strings("db_addrs", cfg.Database.Addrs),
	)

	store, err := dbRedis.NewStore(dbRedis.Config{
		Addrs:    cfg.Database.Addrs,
		Username: cfg.Database.Username,
		Password: cfg.Database.Password,
		DB:       cfg.Database.DB,
	})
	if err != nil {
		logger.Fatal("Failed to create database store", zap.Error(err))
	}
	defer store.Close()

	ctx := context.Background()
	if err := store.WaitForReady(ctx, time.Duration(cfg.Database.ReadinessTimeout)*time.Second); err != nil {
		logger.Fatal("Database not ready", zap.Error(err))
	}
	logger.Info("Connected to database")

	if err := ensureIndexes(ctx, store, cfg, logger); err != nil {
		logger.Fatal("Failed to ensure search indexes", zap.Error(err))
	}

	// Register encoder metrics explicitly (no init())
	metrics.RegisterEncoderMetrics()

	encoder := openaiEnc.NewEncoder(&openaiEnc.Config{
		APIKey:     cfg.Encoder.APIKey,
		BaseURL:    cfg.Encoder.BaseURL,
		Model:      cfg.Encoder.Model,
		Dimensions: cfg.Encoder.Dimensions,
		Provider:   cfg.Encoder.Provider,
		Logger:     logger,
	})
	logger.Info("Encoder created",
		zap.String("provider", cfg.Encoder.Provider),
		zap.String("model", cfg.Encoder.Model),
		zap.Int("dimensions", cfg.Encoder.Dimensions),
	)

	// Repositories
	assets := assetrepo.New(store)
	smarts := smartrepo.New(store)
	albums := albumrepo.New(store)
	people := personrepo.New(store)
	partners := partnerrepo.New(store)
	flags := sysconfig.New(store)

	// Usecase services
	searchSvc := searchuc.New(flags, partners, encoder, assets, smarts, albums, people, logger)
	exploreSvc := exploreuc.New(partners, assets, assets, logger)

	server := chiTransport.NewServer(searchSvc, exploreSvc, store, logger)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      server.Router(),
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}

// ensureIndexes builds the FT index definitions and reconciles them
// against the database on boot.
func ensureIndexes(ctx context.Context, store db.Store, cfg config.Config, logger *zap.Logger) error {
	assetIdx, err := assetrepo.IndexDefinition(cfg.Encoder.Dimensions, cfg.Index.HNSWM, cfg.Index.HNSWEFConstruct)
	if err != nil {
		return fmt.Errorf("build asset index definition: %w", err)
	}
	albumIdx, err := albumrepo.IndexDefinition()
	if err != nil {
		return fmt.Errorf("build album index definition: %w", err)
	}
	personIdx, err := personrepo.IndexDefinition()
	if err != nil {
		return fmt.Errorf("build person index definition: %w", err)
	}

	defs := []*db.IndexDefinition{assetIdx, albumIdx, personIdx}
	return db.EnsureIndexes(ctx, store, defs, cfg.Index.RecreateOnBoot, logger)
}
