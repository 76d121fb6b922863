// Package logging builds the structured logger shared by the service
package logging

import (
	"go.uber.org/zap"
)

// Config holds logging configuration
type Config struct {
	Level       string
	Format      string // "json" or "console"
	Development bool
	Service     string
}

// NewLogger creates a zap logger from the configuration
func NewLogger(config Config) (*zap.Logger, error) {
	var zapConfig zap.Config
	if config.Development {
		zapConfig = zap.NewDevelopmentConfig()
	} else {
		zapConfig = zap.NewProductionConfig()
	}

	level, err := zap.ParseAtomicLevel(config.Level)
	if err != nil {
		level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	zapConfig.Level = level

	if config.Format == "console" {
		zapConfig.Encoding = "console"
	} else {
		zapConfig.Encoding = "json"
	}

	logger, err := zapConfig.Build()
	if err != nil {
		return nil, err
	}

	if config.Service != "" {
		logger = logger.With(zap.String("service", config.Service))
	}
	return logger, nil
}

// NewDefaultLogger creates a production logger, falling back to a no-op logger
func NewDefaultLogger() *zap.Logger {
	logger, err := NewLogger(Config{Level: "info", Format: "json", Service: "headcover-configurator"})
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
