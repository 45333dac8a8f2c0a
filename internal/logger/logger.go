// Package logger builds the application's zap logger.
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/culinarycode/backend/config"
)

// New creates a logger appropriate for the current environment: console
// output with caller info in development, JSON in production.
func New() (*zap.Logger, error) {
	if config.IsProduction() {
		return zap.NewProduction()
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return cfg.Build()
}
