package usecase

import (
	"context"

	"github.com/benbjohnson/clock"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/orgshift/pkg/domain/interfaces"
	"github.com/secmon-lab/orgshift/pkg/domain/model"
	"github.com/secmon-lab/orgshift/pkg/domain/types"
)

// DefaultResumeLimit caps the records picked up by one resume run
const DefaultResumeLimit = 100

// MigrationOption is a functional option for configuring Migration
type MigrationOption func(*Migration)

// WithClock replaces the wall clock, mainly for tests
func WithClock(clk clock.Clock) MigrationOption {
	return func(m *Migration) {
		m.clock = clk
	}
}

// WithNotifier sets where run summaries are sent
func WithNotifier(notifier interfaces.Notifier) MigrationOption {
	return func(m *Migration) {
		m.notifier = notifier
	}
}

// WithMessageCatalog replaces the built-in message catalog
func WithMessageCatalog(catalog *model.MessageCatalog) MigrationOption {
	return func(m *Migration) {
		m.catalog = catalog
	}
}

// Migration implements interfaces.Migration
type Migration struct {
	platform interfaces.Platform
	repo     interfaces.Repository
	config   model.MigrationConfig
	clock    clock.Clock
	notifier interfaces.Notifier
	catalog  *model.MessageCatalog

	reporter *ErrorReporter
	fetcher  *DirectoryPageFetcher
	saga     *MigrationSaga
}

var _ interfaces.Migration = (*Migration)(nil)

// NewMigration creates the migration use case
func NewMigration(platform interfaces.Platform, repo interfaces.Repository, config model.MigrationConfig, opts ...MigrationOption) (*Migration, error) {
	if err := config.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid migration config")
	}

	m := &Migration{
		platform: platform,
		repo:     repo,
		config:   config,
		clock:    clock.New(),
	}
	for _, opt := range opts {
		opt(m)
	}

	m.reporter = NewErrorReporter(m.catalog)
	m.fetcher = NewDirectoryPageFetcher(platform, m.clock)
	m.saga = NewMigrationSaga(platform, repo, config, m.reporter, m.clock)
	return m, nil
}

// RunBatch scans the directory page by page and runs the saga for every user
// whose organization differs from the target. A directory failure aborts the
// run; a saga failure only marks the run as failed.
func (m *Migration) RunBatch(ctx context.Context) *model.BatchResult {
	ctx, result := m.startRun(ctx)
	logger := ctxlog.From(ctx)

	logger.Info("Starting organization migration",
		"targetOrg", m.config.TargetOrgName,
		"pageSize", m.config.PageSize,
	)

	offset := 0
	for {
		if err := ctx.Err(); err != nil {
			result.Abort("migration run canceled: " + err.Error())
			break
		}

		records, err := m.fetcher.FetchPage(ctx, offset, m.config.PageSize)
		if err != nil {
			logger.Error("Directory fetch failed, aborting run",
				"offset", offset,
				"error", err,
			)
			result.Abort("failed to fetch user directory: " + m.reporter.Classify(err))
			break
		}
		if len(records) == 0 {
			break
		}

		result.Merge(m.processPage(ctx, result.RunID, records))
		offset += len(records)
	}

	m.finish(ctx, result)
	return result
}

func (m *Migration) processPage(ctx context.Context, runID types.RunID, records []model.UserRecord) model.PageResult {
	var page model.PageResult
	for i := range records {
		if records[i].ID == "" {
			org, _ := records[i].RootOrg()
			ctxlog.From(ctx).Warn("Skipping directory record without user ID",
				"rootOrgName", org,
			)
		}
		candidate := model.NewMigrationCandidate(&records[i], m.config.TargetOrgName)
		if !candidate.NeedsMigration {
			page.Add(nil)
			continue
		}

		outcome := m.saga.Run(ctx, runID, candidate)
		page.Add(&outcome)
	}
	return page
}

// ResumeIncomplete re-applies the pending steps of users whose saga stopped
// after the organization was migrated. It does not read the directory.
func (m *Migration) ResumeIncomplete(ctx context.Context, limit int) *model.BatchResult {
	if limit <= 0 {
		limit = DefaultResumeLimit
	}

	ctx, result := m.startRun(ctx)
	logger := ctxlog.From(ctx)

	records, err := m.ListResumable(ctx, limit)
	if err != nil {
		logger.Error("Failed to list resumable progress", "error", err)
		result.Abort("failed to list incomplete migrations: " + m.reporter.Classify(err))
		m.finish(ctx, result)
		return result
	}

	logger.Info("Resuming incomplete migrations", "count", len(records))

	var page model.PageResult
	for _, progress := range records {
		if err := ctx.Err(); err != nil {
			result.Abort("resume run canceled: " + err.Error())
			break
		}

		outcome, err := m.saga.Resume(ctx, result.RunID, progress)
		if err != nil {
			logger.Warn("Skipping progress record", "userID", progress.UserID, "error", err)
			outcome = model.NewFailedOutcome(progress.UserID, progress.LastStep, m.reporter.Classify(err))
		}
		page.Add(&outcome)
	}
	result.Merge(page)

	m.finish(ctx, result)
	return result
}

// ListResumable lists the progress records ResumeIncomplete would pick up
func (m *Migration) ListResumable(ctx context.Context, limit int) ([]*model.MigrationProgress, error) {
	if m.repo == nil {
		return nil, nil
	}

	records, err := m.repo.ListResumableProgress(ctx, limit)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list resumable progress", goerr.V("limit", limit))
	}
	return records, nil
}

// startRun creates the result of a new run. The run ID comes from the
// RunContext of ctx when the caller already assigned one.
func (m *Migration) startRun(ctx context.Context) (context.Context, *model.BatchResult) {
	runCtx := model.GetOrCreateRunContext(ctx)
	result := model.NewBatchResult(runCtx.RunID, m.clock.Now())

	logger := ctxlog.From(ctx).With("runID", result.RunID, "trigger", runCtx.Trigger)
	if runCtx.Requester != "" {
		logger = logger.With("requester", runCtx.Requester)
	}
	return ctxlog.With(ctx, logger), result
}

func (m *Migration) finish(ctx context.Context, result *model.BatchResult) {
	result.Finish(m.clock.Now())

	ctxlog.From(ctx).Info("Organization migration finished",
		"status", result.Status(),
		"usersProcessed", result.UsersProcessed,
		"failed", len(result.Failures),
		"duration", result.Duration(),
		"error", result.Message(),
	)

	if m.notifier == nil {
		return
	}
	if err := m.notifier.NotifyRun(ctx, result); err != nil {
		ctxlog.From(ctx).Warn("Failed to send run notification", "error", err)
	}
}
