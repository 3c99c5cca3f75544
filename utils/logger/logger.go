package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var globalLogger *zap.Logger

// Init builds the global logger. Production gets JSON with ISO8601
// timestamps, everything else gets the colored console encoder.
func Init(environment string) error {
	var config zap.Config
	if environment == "production" {
		config = zap.NewProductionConfig()
		config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	} else {
		config = zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	// Skip one frame so log lines point at the caller, not this package
	l, err := config.Build(zap.AddCallerSkip(1))
	if err != nil {
		return err
	}
	globalLogger = l
	return nil
}

// Get returns the global logger, falling back to a production logger when
// Init was never called (tests mostly).
func Get() *zap.Logger {
	if globalLogger == nil {
		globalLogger, _ = zap.NewProduction(zap.AddCallerSkip(1))
	}
	return globalLogger
}

// Close flushes buffered entries
func Close() error {
	if globalLogger == nil {
		return nil
	}
	return globalLogger.Sync()
}

func Debug(msg string, fields ...zap.Field) {
	Get().Debug(msg, fields...)
}

func Info(msg string, fields ...zap.Field) {
	Get().Info(msg, fields...)
}

func Warn(msg string, fields ...zap.Field) {
	Get().Warn(msg, fields...)
}

func Error(msg string, fields ...zap.Field) {
	Get().Error(msg, fields...)
}

// Fatal logs and exits
func Fatal(msg string, fields ...zap.Field) {
	Get().Fatal(msg, fields...)
}
