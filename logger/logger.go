package logger

import (
	"log"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var Logger *zap.Logger

// Init initializes the global logger. Development config unless ENV=production.
func Init() {
	env := os.Getenv("ENV")
	var err error
	var logger *zap.Logger
	if env == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}

	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}

	Logger = logger
}

// Close flushes the logger buffers.
func Close() {
	if err := Logger.Sync(); err != nil {
		log.Printf("failed to flush log entries: %v", err)
	}
}

func GetLogger() *zap.Logger {
	return Logger
}

// Global logging methods to avoid `logger.Logger` repetition

func Info(msg string, args ...zapcore.Field) {
	Logger.Info(msg, args...)
}

func Warn(msg string, args ...zapcore.Field) {
	Logger.Warn(msg, args...)
}

func Error(msg string, args ...zapcore.Field) {
	Logger.Error(msg, args...)
}

func Fatal(msg string, args ...zapcore.Field) {
	Logger.Fatal(msg, args...)
}

func Debug(msg string, args ...zapcore.Field) {
	Logger.Debug(msg, args...)
}
