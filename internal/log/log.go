// Package log provides the zap logger used by the command line tools.
package log

import (
	"fmt"
	"sync"

	"go.uber.org/zap"
)

var (
	mu         sync.Mutex
	baseLogger *zap.Logger
	sugar      *zap.SugaredLogger
)

// Init builds the package logger: a development logger at debug level when
// debug is set, a production JSON logger otherwise.
func Init(debug bool) error {
	var (
		l   *zap.Logger
		err error
	)
	if debug {
		l, err = zap.NewDevelopment()
	} else {
		l, err = zap.NewProduction()
	}
	if err != nil {
		return fmt.Errorf("can't initialize zap logger: %w", err)
	}

	mu.Lock()
	baseLogger, sugar = l, l.Sugar()
	mu.Unlock()

	return nil
}

// Logger returns the base logger, falling back to a no-op logger before Init.
func Logger() *zap.Logger {
	mu.Lock()
	defer mu.Unlock()
	if baseLogger == nil {
		baseLogger = zap.NewNop()
		sugar = baseLogger.Sugar()
	}

	return baseLogger
}

// Sugar returns the sugared form of Logger.
func Sugar() *zap.SugaredLogger {
	Logger()
	mu.Lock()
	defer mu.Unlock()

	return sugar
}

// Sync flushes buffered entries.
func Sync() {
	mu.Lock()
	defer mu.Unlock()
	if baseLogger != nil {
		_ = baseLogger.Sync()
	}
}
