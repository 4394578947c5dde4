package interfaces

//go:generate moq -out mocks/usecase_mock.go -pkg mocks . Migration

import (
	"context"

	"github.com/secmon-lab/orgshift/pkg/domain/model"
)

// Migration is the organization migration use case exposed to controllers
type Migration interface {
	// RunBatch scans the directory and migrates every stale user
	RunBatch(ctx context.Context) *model.BatchResult
	// ResumeIncomplete re-applies the pending steps of partially migrated users
	ResumeIncomplete(ctx context.Context, limit int) *model.BatchResult
	// ListResumable lists the progress records ResumeIncomplete would pick up
	ListResumable(ctx context.Context, limit int) ([]*model.MigrationProgress, error)
}
