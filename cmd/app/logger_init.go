package main

import (
	"github.com/osse101/PvPTrack_Go/internal/config"
	"github.com/osse101/PvPTrack_Go/internal/logger"
)

func initLogger(cfg *config.Config) {
	logger.InitLogger(logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		cfg.ServiceName,
		cfg.Version,
		cfg.Environment,
	))
}
