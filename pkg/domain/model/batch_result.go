package model

import (
	"fmt"
	"time"

	"github.com/secmon-lab/orgshift/pkg/domain/types"
)

// BatchStatus is the aggregate status reported for a run
type BatchStatus string

const (
	BatchStatusSuccess BatchStatus = "SUCCESS"
	BatchStatusFailed  BatchStatus = "FAILED"
)

// PageResult is what processing a single directory page contributed to a run
type PageResult struct {
	UsersProcessed int
	Failures       []SagaOutcome
}

// Add records one processed user. A nil outcome means no saga was needed.
func (p *PageResult) Add(outcome *SagaOutcome) {
	p.UsersProcessed++
	if outcome != nil && outcome.Failed {
		p.Failures = append(p.Failures, *outcome)
	}
}

// BatchResult is the aggregate outcome of one migration run
type BatchResult struct {
	RunID          types.RunID
	AllSucceeded   bool
	UsersProcessed int
	Failures       []SagaOutcome
	// FatalError is set when the run was aborted, e.g. by a directory failure
	FatalError string
	StartedAt  time.Time
	FinishedAt time.Time
}

// NewBatchResult starts the result for a new run
func NewBatchResult(runID types.RunID, startedAt time.Time) *BatchResult {
	return &BatchResult{
		RunID:        runID,
		AllSucceeded: true,
		StartedAt:    startedAt,
	}
}

// Merge folds a page result into the run result
func (b *BatchResult) Merge(page PageResult) {
	b.UsersProcessed += page.UsersProcessed
	if len(page.Failures) > 0 {
		b.Failures = append(b.Failures, page.Failures...)
		b.AllSucceeded = false
	}
}

// Abort marks the run as failed by a batch-fatal error
func (b *BatchResult) Abort(message string) {
	b.AllSucceeded = false
	b.FatalError = message
}

// Finish stamps the end time of the run
func (b *BatchResult) Finish(at time.Time) {
	b.FinishedAt = at
}

// Status returns SUCCESS iff every saga succeeded and the run was not aborted
func (b *BatchResult) Status() BatchStatus {
	if b.AllSucceeded {
		return BatchStatusSuccess
	}
	return BatchStatusFailed
}

// Message summarizes why the run failed. It is empty on success.
func (b *BatchResult) Message() string {
	switch {
	case b.AllSucceeded:
		return ""
	case b.FatalError != "":
		return b.FatalError
	default:
		return fmt.Sprintf("migration failed for %d of %d users", len(b.Failures), b.UsersProcessed)
	}
}

// Duration returns how long the run took
func (b *BatchResult) Duration() time.Duration {
	if b.FinishedAt.IsZero() {
		return 0
	}
	return b.FinishedAt.Sub(b.StartedAt)
}

// RunReport is the serialized form of a BatchResult returned to callers
type RunReport struct {
	RunID          types.RunID   `json:"runId"`
	Status         BatchStatus   `json:"status"`
	ErrorMessage   string        `json:"errorMessage,omitempty"`
	UsersProcessed int           `json:"usersProcessed"`
	FailedUsers    []SagaOutcome `json:"failedUsers"`
	StartedAt      time.Time     `json:"startedAt"`
	FinishedAt     time.Time     `json:"finishedAt"`
}

// Report converts the result to its serialized form. FailedUsers is never nil.
func (b *BatchResult) Report() RunReport {
	failed := b.Failures
	if failed == nil {
		failed = []SagaOutcome{}
	}
	return RunReport{
		RunID:          b.RunID,
		Status:         b.Status(),
		ErrorMessage:   b.Message(),
		UsersProcessed: b.UsersProcessed,
		FailedUsers:    failed,
		StartedAt:      b.StartedAt,
		FinishedAt:     b.FinishedAt,
	}
}
