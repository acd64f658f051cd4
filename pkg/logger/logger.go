package logger

import (
	"fmt"

	"github.com/GlebRadaev/cloudlesspay/internal/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	timeLayout = "15:04:05 02-01-2006"

	FormatConsole = "console"
	FormatJSON    = "json"
)

var logLvlMap = map[string]zapcore.Level{
	"debug": zapcore.DebugLevel,
	"info":  zapcore.InfoLevel,
	"warn":  zapcore.WarnLevel,
	"error": zapcore.ErrorLevel,
}

// InitLogger builds the process logger from conf and installs it as zap.L().
func InitLogger(conf *config.Config) error {
	logger, err := New(conf.LogLvl, conf.LogFormat)
	if err != nil {
		return err
	}
	zap.ReplaceGlobals(logger)
	return nil
}

// New returns a logger writing to stdout. An empty format means console.
func New(level, format string) (*zap.Logger, error) {
	lvl, ok := logLvlMap[level]
	if !ok {
		return nil, fmt.Errorf("unsupported log lvl: %s", level)
	}
	if format == "" {
		format = FormatConsole
	}
	encoderConfig, err := newEncoderConfig(format)
	if err != nil {
		return nil, err
	}

	c := zap.Config{
		Level:            zap.NewAtomicLevelAt(lvl),
		Encoding:         format,
		EncoderConfig:    encoderConfig,
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
		InitialFields:    map[string]any{"service": "cloudlesspay"},
	}

	logger, err := c.Build()
	if err != nil {
		return nil, fmt.Errorf("unable to create zap logger, error: %w", err)
	}
	return logger, nil
}

func newEncoderConfig(format string) (zapcore.EncoderConfig, error) {
	ec := zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       "level",
		NameKey:        "logger",
		MessageKey:     "msg",
		CallerKey:      "caller",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeDuration: zapcore.MillisDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	switch format {
	case FormatConsole:
		ec.EncodeTime = zapcore.TimeEncoderOfLayout(timeLayout)
		ec.EncodeLevel = zapcore.CapitalColorLevelEncoder
	case FormatJSON:
		ec.EncodeTime = zapcore.ISO8601TimeEncoder
		ec.EncodeLevel = zapcore.LowercaseLevelEncoder
		ec.StacktraceKey = "stacktrace"
	default:
		return ec, fmt.Errorf("unsupported log format: %s", format)
	}
	return ec, nil
}
