package apperr_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/orgshift/pkg/domain/model"
	"github.com/secmon-lab/orgshift/pkg/utils/apperr"
)

func newCapturingContext() (context.Context, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	return ctxlog.With(context.Background(), logger), &buf
}

func TestHandle(t *testing.T) {
	t.Run("generic error", func(t *testing.T) {
		ctx, buf := newCapturingContext()
		apperr.Handle(ctx, goerr.New("boom"))
		gt.S(t, buf.String()).Contains("application error")
	})

	t.Run("upstream error carries its attributes", func(t *testing.T) {
		ctx, buf := newCapturingContext()
		err := goerr.Wrap(&model.UpstreamError{
			Operation:  "search users",
			StatusCode: 503,
			Code:       "SERVER_ERROR",
		}, "fetch failed")

		apperr.Handle(ctx, err)
		gt.S(t, buf.String()).Contains("upstream error")
		gt.S(t, buf.String()).Contains(`"code":"SERVER_ERROR"`)
		gt.S(t, buf.String()).Contains(`"status":503`)
	})

	t.Run("nil error is ignored", func(t *testing.T) {
		ctx, buf := newCapturingContext()
		apperr.Handle(ctx, nil)
		gt.Equal(t, buf.Len(), 0)
	})
}
