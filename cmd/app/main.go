package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/osse101/PvPTrack_Go/internal/builder"
	"github.com/osse101/PvPTrack_Go/internal/catalog"
	"github.com/osse101/PvPTrack_Go/internal/config"
	"github.com/osse101/PvPTrack_Go/internal/logger"
	"github.com/osse101/PvPTrack_Go/internal/metrics"
	"github.com/osse101/PvPTrack_Go/internal/output"
	"github.com/osse101/PvPTrack_Go/internal/server"
	"github.com/osse101/PvPTrack_Go/internal/validation"
)

const shutdownTimeout = 10 * time.Second

func main() {
	serve := flag.Bool("serve", false, "Serve the built tables over HTTP instead of exiting after the build")
	skipSchema := flag.Bool("skip-schema", false, "Skip JSON schema validation of the input sheets")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration failed: %v", err)
	}
	initLogger(cfg)
	for _, w := range config.Warnings(cfg) {
		slog.Warn(w)
	}

	manifest, err := config.ManifestFor(cfg)
	if err != nil {
		slog.Error("Failed to load manifest", "error", err)
		os.Exit(1)
	}

	ctx := logger.WithRunID(context.Background(), logger.GenerateRunID())

	var schemas validation.SchemaValidator
	if !*skipSchema {
		schemas = validation.NewSchemaValidator()
	}
	svc := builder.NewService(builder.Options{
		MinLevel:      cfg.MinLevel,
		MaxLevel:      cfg.MaxLevel,
		CDNPrefix:     cfg.CDNPrefix,
		NameCacheSize: cfg.NameCacheSize,
	}, schemas)

	res, buildErr := svc.Build(ctx, inputsFrom(manifest))
	if buildErr == nil {
		_, buildErr = output.Write(ctx, cfg.OutputDir, res)
	}

	if cfg.MetricsTextfile != "" {
		if err := metrics.WriteTextfile(cfg.MetricsTextfile); err != nil {
			slog.Warn("Failed to write metrics textfile", "error", err)
		}
	}

	if buildErr != nil {
		logger.FromContext(ctx).Error("Build failed", "error", buildErr)
		os.Exit(1)
	}

	if !*serve {
		return
	}

	snapshot := &server.Snapshot{}
	snapshot.Publish(ctx, res)
	srv := server.NewServer(cfg.Port, nil, snapshot)

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	slog.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Stop(shutdownCtx); err != nil {
		slog.Error("Graceful shutdown failed", "error", err)
	}
}

func inputsFrom(m config.Manifest) builder.Inputs {
	return builder.Inputs{
		RewardWeights: m.RewardWeights,
		Rewards:       m.Rewards,
		LootTables:    m.LootTables,
		LootBuckets:   m.LootBuckets,
		Catalogs: catalog.Paths{
			ItemCSV:      m.Catalogs.Items,
			Localization: m.Catalogs.Localization,
			Emotes:       m.Catalogs.Emotes,
			Housing:      m.Catalogs.Housing,
			GameEvents:   m.Catalogs.GameEvents,
		},
	}
}
