package http

import (
	"context"
	"net/http"
	"strconv"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/orgshift/pkg/domain/interfaces"
	"github.com/secmon-lab/orgshift/pkg/domain/model"
	"github.com/secmon-lab/orgshift/pkg/utils/apperr"
	"github.com/secmon-lab/orgshift/pkg/utils/async"
)

const (
	defaultListLimit = 100
	maxListLimit     = 1000
)

// MigrationHandler serves the admin trigger endpoints
type MigrationHandler struct {
	migrationUC interfaces.Migration
	// runs counts dispatched runs that have not returned yet
	runs sync.WaitGroup
}

// NewMigrationHandler creates a new migration handler
func NewMigrationHandler(migrationUC interfaces.Migration) *MigrationHandler {
	return &MigrationHandler{
		migrationUC: migrationUC,
	}
}

func writeRunResult(w http.ResponseWriter, r *http.Request, result *model.BatchResult) {
	status := http.StatusOK
	if !result.AllSucceeded {
		status = http.StatusInternalServerError
	}
	writeJSON(w, r, status, result.Report())
}

// withRunContext starts the RunContext of a request, keeping the requester set
// by RequireAdmin
func withRunContext(ctx context.Context, trigger model.Trigger) (context.Context, *model.RunContext) {
	runCtx := model.NewRunContext(trigger)
	if authed, ok := model.GetRunContext(ctx); ok {
		runCtx.Requester = authed.Requester
	}
	return model.WithRunContext(ctx, runCtx), runCtx
}

// HandleRun runs the migration and responds once it has finished. The run
// continues when the client goes away, so no user is left between steps.
func (h *MigrationHandler) HandleRun(w http.ResponseWriter, r *http.Request) {
	ctx, _ := withRunContext(async.Detach(r.Context()), model.TriggerHTTP)
	result := h.migrationUC.RunBatch(ctx)
	writeRunResult(w, r, result)
}

// HandleDispatch starts the migration in the background and responds with the
// ID of the run
func (h *MigrationHandler) HandleDispatch(w http.ResponseWriter, r *http.Request) {
	ctx, runCtx := withRunContext(r.Context(), model.TriggerHTTPAsync)

	h.runs.Add(1)
	done := async.Dispatch(ctx, func(ctx context.Context) error {
		result := h.migrationUC.RunBatch(ctx)
		if !result.AllSucceeded {
			return goerr.New("migration run failed",
				goerr.V("runID", result.RunID),
				goerr.V("message", result.Message()),
			)
		}
		return nil
	})
	go func() {
		<-done
		h.runs.Done()
	}()

	writeJSON(w, r, http.StatusAccepted, map[string]string{
		"runId":  runCtx.RunID.String(),
		"status": "ACCEPTED",
	})
}

// HandleResume resumes partially migrated users
func (h *MigrationHandler) HandleResume(w http.ResponseWriter, r *http.Request) {
	limit, err := parseLimit(r)
	if err != nil {
		writeError(w, r, err.Error(), http.StatusBadRequest)
		return
	}

	ctx, _ := withRunContext(async.Detach(r.Context()), model.TriggerHTTP)
	result := h.migrationUC.ResumeIncomplete(ctx, limit)
	writeRunResult(w, r, result)
}

// Wait blocks until every dispatched run has returned or ctx is done
func (h *MigrationHandler) Wait(ctx context.Context) error {
	finished := make(chan struct{})
	go func() {
		h.runs.Wait()
		close(finished)
	}()

	select {
	case <-finished:
		return nil
	case <-ctx.Done():
		return goerr.Wrap(ctx.Err(), "dispatched migration runs are still in progress")
	}
}

type progressResponse struct {
	Progress []*model.MigrationProgress `json:"progress"`
	Count    int                        `json:"count"`
}

// HandleProgress lists the users left between saga steps
func (h *MigrationHandler) HandleProgress(w http.ResponseWriter, r *http.Request) {
	limit, err := parseLimit(r)
	if err != nil {
		writeError(w, r, err.Error(), http.StatusBadRequest)
		return
	}

	records, err := h.migrationUC.ListResumable(r.Context(), limit)
	if err != nil {
		apperr.Handle(r.Context(), err)
		writeError(w, r, "failed to list migration progress", http.StatusInternalServerError)
		return
	}
	if records == nil {
		records = []*model.MigrationProgress{}
	}

	writeJSON(w, r, http.StatusOK, progressResponse{
		Progress: records,
		Count:    len(records),
	})
}

func parseLimit(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return defaultListLimit, nil
	}

	limit, err := strconv.Atoi(raw)
	if err != nil || limit <= 0 || limit > maxListLimit {
		return 0, goerr.New("limit must be between 1 and "+strconv.Itoa(maxListLimit),
			goerr.V("limit", raw))
	}
	return limit, nil
}
