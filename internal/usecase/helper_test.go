//go:build unit

package usecase_test

import (
	"context"
	"io"
	"log/slog"
)

// passthroughTx runs the unit of work without a real store session so tests
// exercise the service logic in isolation.
type passthroughTx struct{}

func (passthroughTx) Run(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
