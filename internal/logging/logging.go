package logging

import (
	"strings"

	"github.com/KirkDiggler/spell-duel/internal/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a console zap logger at the given level (debug, info, warn,
// error). An empty level means info.
func New(level string) (*zap.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.DisableStacktrace = true
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder

	logger, err := cfg.Build()
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInternal, "failed to build logger")
	}
	return logger, nil
}

// ParseLevel maps a LOG_LEVEL value to a zap level
func ParseLevel(level string) (zapcore.Level, error) {
	if strings.TrimSpace(level) == "" {
		return zapcore.InfoLevel, nil
	}

	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(strings.ToLower(strings.TrimSpace(level)))); err != nil {
		return zapcore.InfoLevel, errors.Validationf("unknown log level %q", level)
	}
	return lvl, nil
}
