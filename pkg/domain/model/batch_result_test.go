package model_test

import (
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/orgshift/pkg/domain/model"
	"github.com/secmon-lab/orgshift/pkg/domain/types"
)

func TestBatchResult_Merge(t *testing.T) {
	start := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	result := model.NewBatchResult("run-1", start)
	gt.True(t, result.AllSucceeded)
	gt.Equal(t, result.Status(), model.BatchStatusSuccess)
	gt.Equal(t, result.Message(), "")

	var first model.PageResult
	first.Add(nil)
	succeeded := model.NewSucceededOutcome("u2")
	first.Add(&succeeded)
	result.Merge(first)

	gt.True(t, result.AllSucceeded)
	gt.Equal(t, result.UsersProcessed, 2)
	gt.Equal(t, len(result.Failures), 0)

	var second model.PageResult
	failed := model.NewFailedOutcome("u3", types.SagaStepOrgMigrated, "profile locked")
	second.Add(&failed)
	result.Merge(second)

	gt.False(t, result.AllSucceeded)
	gt.Equal(t, result.UsersProcessed, 3)
	gt.Equal(t, len(result.Failures), 1)
	gt.Equal(t, result.Failures[0].UserID, types.UserID("u3"))
	gt.Equal(t, result.Status(), model.BatchStatusFailed)
	gt.Equal(t, result.Message(), "migration failed for 1 of 3 users")

	result.Finish(start.Add(90 * time.Second))
	gt.Equal(t, result.Duration(), 90*time.Second)
}

func TestBatchResult_Abort(t *testing.T) {
	result := model.NewBatchResult("run-2", time.Now())
	result.Abort("directory search failed")

	gt.False(t, result.AllSucceeded)
	gt.Equal(t, result.UsersProcessed, 0)
	gt.Equal(t, result.Status(), model.BatchStatusFailed)
	gt.Equal(t, result.Message(), "directory search failed")
}

func TestBatchResult_Report(t *testing.T) {
	start := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	t.Run("success has empty failure list", func(t *testing.T) {
		result := model.NewBatchResult("run-ok", start)
		result.Finish(start.Add(time.Minute))

		report := result.Report()
		gt.Equal(t, report.RunID, types.RunID("run-ok"))
		gt.Equal(t, report.Status, model.BatchStatusSuccess)
		gt.Equal(t, report.ErrorMessage, "")
		gt.NotNil(t, report.FailedUsers)
		gt.Equal(t, len(report.FailedUsers), 0)
		gt.Equal(t, report.FinishedAt, start.Add(time.Minute))
	})

	t.Run("aborted run carries fatal error", func(t *testing.T) {
		result := model.NewBatchResult("run-ng", start)
		result.Abort("failed to fetch user directory: timeout")

		report := result.Report()
		gt.Equal(t, report.Status, model.BatchStatusFailed)
		gt.Equal(t, report.ErrorMessage, "failed to fetch user directory: timeout")
	})
}
