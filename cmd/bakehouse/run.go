package main

import (
	"context"
	"time"

	"go.uber.org/fx"
)

// stopTimeout bounds graceful shutdown once a signal or fatal error
// has ended the serving loop.
const stopTimeout = 15 * time.Second

// run drives the application through its lifecycle and reports the first
// startup or shutdown failure.
func run(ctx context.Context, app *fx.App) error {
	if err := app.Start(ctx); err != nil {
		return err
	}

	select {
	case <-ctx.Done():
	case <-app.Done():
	}

	stopCtx, cancel := context.WithTimeout(context.Background(), stopTimeout)
	defer cancel()

	return app.Stop(stopCtx)
}
