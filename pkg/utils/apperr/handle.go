package apperr

import (
	"context"
	"errors"

	"github.com/m-mizutani/ctxlog"
	"github.com/secmon-lab/orgshift/pkg/domain/model"
)

// Handle logs an error that cannot be returned to a caller any more
func Handle(ctx context.Context, err error) {
	if err == nil {
		return
	}
	logger := ctxlog.From(ctx)

	var upstream *model.UpstreamError
	if errors.As(err, &upstream) {
		logger.Error("upstream error",
			"error", err,
			"operation", upstream.Operation,
			"status", upstream.StatusCode,
			"code", upstream.Code,
		)
		return
	}

	logger.Error("application error", "error", err)
}
