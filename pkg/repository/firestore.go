package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/orgshift/pkg/domain/interfaces"
	"github.com/secmon-lab/orgshift/pkg/domain/model"
	"github.com/secmon-lab/orgshift/pkg/domain/types"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	// Collection names
	progressCollection = "migration_progress"

	// Field names
	fieldFailed = "failed"
)

// Firestore implements Repository interface with Firestore
type Firestore struct {
	client *firestore.Client
}

// NewFirestore creates a new Firestore repository
func NewFirestore(ctx context.Context, projectID, databaseID string) (interfaces.Repository, error) {
	logger := ctxlog.From(ctx)

	client, err := firestore.NewClientWithDatabase(ctx, projectID, databaseID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create firestore client")
	}

	// Fail fast on a wrong project or missing permissions. An empty collection
	// is not an error.
	_, err = client.Collection(progressCollection).Limit(1).Documents(ctx).Next()
	if err != nil && err != iterator.Done {
		if status.Code(err) == codes.PermissionDenied || status.Code(err) == codes.Unauthenticated {
			_ = client.Close()
			return nil, goerr.Wrap(err, "failed to connect to firestore project",
				goerr.V("firestore error code", status.Code(err).String()),
			)
		}
		logger.Debug("Firestore connection test returned error (may be empty collection)",
			"error", err,
			"errorCode", status.Code(err).String(),
		)
	}

	logger.Info("Firestore repository initialized successfully",
		"projectID", projectID,
		"databaseID", databaseID,
	)

	return &Firestore{
		client: client,
	}, nil
}

// PutProgress stores the progress record keyed by user ID
func (f *Firestore) PutProgress(ctx context.Context, progress *model.MigrationProgress) error {
	if progress == nil {
		return goerr.New("progress is nil")
	}
	if err := progress.Validate(); err != nil {
		return goerr.Wrap(err, "invalid progress record")
	}

	_, err := f.client.Collection(progressCollection).Doc(progress.UserID.String()).Set(ctx, progress)
	if err != nil {
		return goerr.Wrap(err, "failed to save progress to firestore",
			goerr.V("userID", progress.UserID))
	}

	return nil
}

// GetProgress retrieves the progress record of a user
func (f *Firestore) GetProgress(ctx context.Context, userID types.UserID) (*model.MigrationProgress, error) {
	if userID == "" {
		return nil, goerr.New("user ID is empty")
	}

	doc, err := f.client.Collection(progressCollection).Doc(userID.String()).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(model.ErrProgressNotFound, "no progress for user",
				goerr.V("userID", userID))
		}
		return nil, goerr.Wrap(err, "failed to get progress from firestore",
			goerr.V("userID", userID))
	}

	var progress model.MigrationProgress
	if err := doc.DataTo(&progress); err != nil {
		return nil, goerr.Wrap(err, "failed to decode progress", goerr.V("userID", userID))
	}

	return &progress, nil
}

// ListResumableProgress lists resumable records, oldest update first
func (f *Firestore) ListResumableProgress(ctx context.Context, limit int) ([]*model.MigrationProgress, error) {
	// Single equality filter so no composite index is needed. The step filter
	// and ordering are applied in memory.
	iter := f.client.Collection(progressCollection).
		Where(fieldFailed, "==", true).
		Documents(ctx)
	defer iter.Stop()

	var result []*model.MigrationProgress
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate progress")
		}

		var progress model.MigrationProgress
		if err := doc.DataTo(&progress); err != nil {
			return nil, goerr.Wrap(err, "failed to decode progress", goerr.V("docID", doc.Ref.ID))
		}
		if progress.IsResumable() {
			result = append(result, &progress)
		}
	}

	sortProgress(result)
	return truncate(result, limit), nil
}

// Close closes the Firestore client
func (f *Firestore) Close() error {
	return f.client.Close()
}
