package interfaces

//go:generate moq -out mocks/notifier_mock.go -pkg mocks . Notifier

import (
	"context"

	"github.com/secmon-lab/orgshift/pkg/domain/model"
)

// Notifier announces the outcome of a run to operators
type Notifier interface {
	NotifyRun(ctx context.Context, result *model.BatchResult) error
}
