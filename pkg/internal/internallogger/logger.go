package internallogger

import (
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LoggerOption mutates the zap configuration, target level, and caller depth
// before the adapter is constructed.
type LoggerOption func(*zap.Config, *zapcore.Level, *int)

// ZapLoggerAdapter adapts a zap logger to the types.Logger interface used by
// every spikeband component.
type ZapLoggerAdapter struct {
	logger       *zap.Logger
	level        zapcore.Level
	callerDepth  int
	mu           sync.Mutex
	sinks        map[string]zapcore.Core
	combinedCore zapcore.Core
}

// NewLogger initializes a new ZapLoggerAdapter with configurable options.
func NewLogger(options ...LoggerOption) *ZapLoggerAdapter {
	config := zap.NewProductionConfig()
	var level zapcore.Level
	var callerDepth int = 3 // Default caller depth

	// Apply each provided option to the configuration
	for _, option := range options {
		option(&config, &level, &callerDepth)
	}

	encoderConfig := standardEncoderConfig()
	defaultCore := zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), zapcore.AddSync(os.Stdout), zap.NewAtomicLevelAt(level))
	cores := []zapcore.Core{defaultCore}

	combined := zapcore.NewTee(cores...)
	logger := zap.New(combined, zap.AddCaller(), zap.AddCallerSkip(callerDepth))
	if len(config.InitialFields) > 0 {
		logger = logger.With(fieldsFromMap(config.InitialFields)...)
	}

	return &ZapLoggerAdapter{
		logger:       logger,
		level:        level,
		callerDepth:  callerDepth,
		sinks:        make(map[string]zapcore.Core),
		combinedCore: combined,
	}
}
