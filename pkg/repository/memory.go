package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/orgshift/pkg/domain/interfaces"
	"github.com/secmon-lab/orgshift/pkg/domain/model"
	"github.com/secmon-lab/orgshift/pkg/domain/types"
)

// Memory implements Repository interface with in-memory storage
type Memory struct {
	mu       sync.RWMutex
	progress map[types.UserID]*model.MigrationProgress
}

// NewMemory creates a new memory repository
func NewMemory() interfaces.Repository {
	return &Memory{
		progress: make(map[types.UserID]*model.MigrationProgress),
	}
}

// PutProgress stores a copy of the progress record
func (m *Memory) PutProgress(ctx context.Context, progress *model.MigrationProgress) error {
	if progress == nil {
		return goerr.New("progress is nil")
	}
	if err := progress.Validate(); err != nil {
		return goerr.Wrap(err, "invalid progress record")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	stored := *progress
	m.progress[progress.UserID] = &stored
	return nil
}

// GetProgress retrieves the progress record of a user
func (m *Memory) GetProgress(ctx context.Context, userID types.UserID) (*model.MigrationProgress, error) {
	if userID == "" {
		return nil, goerr.New("user ID is empty")
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	progress, ok := m.progress[userID]
	if !ok {
		return nil, goerr.Wrap(model.ErrProgressNotFound, "no progress for user",
			goerr.V("userID", userID))
	}

	found := *progress
	return &found, nil
}

// ListResumableProgress lists resumable records, oldest update first
func (m *Memory) ListResumableProgress(ctx context.Context, limit int) ([]*model.MigrationProgress, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var result []*model.MigrationProgress
	for _, progress := range m.progress {
		if !progress.IsResumable() {
			continue
		}
		found := *progress
		result = append(result, &found)
	}

	sortProgress(result)
	return truncate(result, limit), nil
}

// Close does nothing for the memory repository
func (m *Memory) Close() error {
	return nil
}

func sortProgress(records []*model.MigrationProgress) {
	sort.Slice(records, func(i, j int) bool {
		if !records[i].UpdatedAt.Equal(records[j].UpdatedAt) {
			return records[i].UpdatedAt.Before(records[j].UpdatedAt)
		}
		return records[i].UserID < records[j].UserID
	})
}

func truncate(records []*model.MigrationProgress, limit int) []*model.MigrationProgress {
	if limit > 0 && len(records) > limit {
		return records[:limit]
	}
	return records
}
