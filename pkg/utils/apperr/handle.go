package apperr

import (
	"context"

	"github.com/m-mizutani/ctxlog"
)

// Handle logs an error that cannot be returned to a caller, such as one
// raised in an HTTP handler or a background job
func Handle(ctx context.Context, err error) {
	if err == nil {
		return
	}
	ctxlog.From(ctx).Error("application error", "error", err)
}
