package async

import (
	"context"
	"runtime/debug"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/secmon-lab/issuereport/pkg/utils/apperr"
)

// Job wraps fn into a function suitable for a background scheduler. Every
// run gets its own context derived from context.Background carrying the
// logger of ctx, bounded by timeout when it is positive. Errors and panics
// are logged and never propagate to the scheduler.
func Job(ctx context.Context, name string, timeout time.Duration, fn func(ctx context.Context) error) func() {
	logger := ctxlog.From(ctx).With("job", name)

	return func() {
		runCtx := ctxlog.With(context.Background(), logger)
		if timeout > 0 {
			var cancel context.CancelFunc
			runCtx, cancel = context.WithTimeout(runCtx, timeout)
			defer cancel()
		}

		defer func() {
			if r := recover(); r != nil {
				logger.Error("Panic in background job",
					"recover", r,
					"stack", string(debug.Stack()),
				)
			}
		}()

		start := time.Now()
		if err := fn(runCtx); err != nil {
			apperr.Handle(runCtx, err)
			return
		}
		logger.Debug("Background job finished", "duration", time.Since(start))
	}
}
