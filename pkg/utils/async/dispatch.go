package async

import (
	"context"
	"runtime/debug"

	"github.com/m-mizutani/ctxlog"
)

// Dispatch runs handler in a new goroutine detached from the cancellation of
// ctx, so a run triggered over HTTP outlives the request. The returned channel
// is closed when the handler has returned or panicked.
func Dispatch(ctx context.Context, handler func(ctx context.Context) error) <-chan struct{} {
	newCtx := Detach(ctx)
	done := make(chan struct{})

	go func() {
		defer close(done)
		defer func() {
			if r := recover(); r != nil {
				stack := debug.Stack()
				ctxlog.From(newCtx).Error("Panic in async handler",
					"recover", r,
					"stack", string(stack),
				)
			}
		}()

		if err := handler(newCtx); err != nil {
			ctxlog.From(newCtx).Error("Error in async handler",
				"error", err,
			)
		}
	}()

	return done
}

// Detach keeps the values of ctx, including its logger, but drops its deadline
// and cancellation
func Detach(ctx context.Context) context.Context {
	newCtx := context.WithoutCancel(ctx)
	return ctxlog.With(newCtx, ctxlog.From(ctx))
}
