package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/lukpoex/next-commerce/internal/config"
)

// New builds a zap logger from config. Unknown levels fall back to info,
// unknown encodings to console.
func New(cfg *config.LoggerConfig) *zap.Logger {
	level := zapcore.InfoLevel
	if cfg != nil {
		if l, err := zapcore.ParseLevel(cfg.Level); err == nil {
			level = l
		}
	}

	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(level)
	zcfg.Encoding = "console"
	if cfg != nil && cfg.Encoding == "json" {
		zcfg.Encoding = "json"
	}
	zcfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := zcfg.Build()
	if err != nil {
		// zap only fails to build on invalid config; ours is static.
		return zap.NewNop()
	}
	return logger
}
