package main

import (
	"errors"
	"fmt"
	"syscall"

	"go.uber.org/zap"
)

// newLogger builds a JSON logger on stderr, leaving stdout to command output.
// The returned func flushes buffered entries.
func newLogger(level string) (*zap.SugaredLogger, func(), error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("parse log level: %w", err)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = lvl
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}

	l, err := cfg.Build()
	if err != nil {
		return nil, nil, fmt.Errorf("can't init logger: %w", err)
	}
	sugar := l.Sugar()

	syncFunc := func() {
		if err := sugar.Sync(); err != nil && !errors.Is(err, syscall.EBADF) && !errors.Is(err, syscall.ENOTTY) && !errors.Is(err, syscall.EINVAL) {
			sugar.Errorf("%s: can't sync logger", err)
		}
	}
	return sugar, syncFunc, nil
}
