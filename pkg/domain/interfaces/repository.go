package interfaces

//go:generate moq -out mocks/repository_mock.go -pkg mocks . Repository

import (
	"context"

	"github.com/secmon-lab/orgshift/pkg/domain/model"
	"github.com/secmon-lab/orgshift/pkg/domain/types"
)

// Repository defines the interface for migration progress persistence
type Repository interface {
	// PutProgress creates or replaces the progress record of a user
	PutProgress(ctx context.Context, progress *model.MigrationProgress) error
	// GetProgress returns model.ErrProgressNotFound when the user has no record
	GetProgress(ctx context.Context, userID types.UserID) (*model.MigrationProgress, error)
	// ListResumableProgress lists failed records that stopped between steps
	ListResumableProgress(ctx context.Context, limit int) ([]*model.MigrationProgress, error)

	// Close closes the repository connection
	Close() error
}
