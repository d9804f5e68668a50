package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"
)

type loggerCtxKeyType struct{}

var loggerCtxKey = loggerCtxKeyType{}

// createLogger builds the console logger. Warnings and up are logged by
// default, --verbose or --logfile raises the level to info and the DEBUG
// environment variable to debug. Color is dropped for logfiles and when
// stderr is not a terminal.
func createLogger(logfile string, verbose, noColor bool) (*zap.Logger, error) {
	level := zapcore.WarnLevel
	if verbose || logfile != "" {
		level = zapcore.InfoLevel
	}
	if debugEnv() {
		level = zapcore.DebugLevel
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)

	if logfile != "" {
		cfg.OutputPaths = []string{logfile}
		cfg.ErrorOutputPaths = []string{logfile}
		noColor = true
	} else {
		cfg.OutputPaths = []string{"stderr"}
		if !term.IsTerminal(int(os.Stderr.Fd())) {
			noColor = true
		}
	}

	if noColor {
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	} else {
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}

	return logger.Named("multiunpack"), nil
}

func debugEnv() bool {
	switch strings.ToLower(os.Getenv("DEBUG")) {
	case "1", "true", "yes":
		return true
	}
	return false
}

func withLogger(ctx context.Context, logger *zap.Logger) context.Context {
	return context.WithValue(ctx, loggerCtxKey, logger)
}

func tryLogger(ctx context.Context) *zap.Logger {
	logger, ok := ctx.Value(loggerCtxKey).(*zap.Logger)
	if !ok {
		return nil
	}
	return logger
}

func getLogger(ctx context.Context) *zap.Logger {
	logger, ok := ctx.Value(loggerCtxKey).(*zap.Logger)
	if !ok {
		panic("logger not found in context")
	}
	return logger
}
