package model

import (
	"context"

	"github.com/secmon-lab/orgshift/pkg/domain/types"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

const (
	runContextKey contextKey = "runContext"
)

// Trigger names what started a run
type Trigger string

const (
	TriggerCLI       Trigger = "cli"
	TriggerHTTP      Trigger = "http"
	TriggerHTTPAsync Trigger = "http_async"
)

// RunContext carries who started a run and the ID it must use. It survives the
// hop to a background goroutine, so an async trigger can report the run ID
// before the run starts.
type RunContext struct {
	RunID     types.RunID `json:"run_id,omitempty"`
	Trigger   Trigger     `json:"trigger,omitempty"`
	Requester string      `json:"requester,omitempty"`
}

// NewRunContext creates a RunContext with a fresh run ID
func NewRunContext(trigger Trigger) *RunContext {
	return &RunContext{
		RunID:   types.NewRunID(),
		Trigger: trigger,
	}
}

// WithRunContext adds RunContext to the context
func WithRunContext(ctx context.Context, runCtx *RunContext) context.Context {
	if runCtx == nil {
		return ctx
	}
	return context.WithValue(ctx, runContextKey, runCtx)
}

// GetRunContext retrieves RunContext from the context
func GetRunContext(ctx context.Context) (*RunContext, bool) {
	runCtx, ok := ctx.Value(runContextKey).(*RunContext)
	return runCtx, ok && runCtx != nil
}

// GetOrCreateRunContext returns the RunContext of ctx, creating one with a
// fresh run ID when ctx has none or its run ID is empty
func GetOrCreateRunContext(ctx context.Context) *RunContext {
	runCtx, ok := GetRunContext(ctx)
	if !ok {
		return NewRunContext(TriggerCLI)
	}
	if runCtx.RunID == "" {
		cloned := runCtx.Clone()
		cloned.RunID = types.NewRunID()
		return cloned
	}
	return runCtx
}

// Clone creates a copy of the RunContext
func (r *RunContext) Clone() *RunContext {
	if r == nil {
		return nil
	}
	cloned := *r
	return &cloned
}
