package usecase

import (
	"context"
	"strings"

	"github.com/benbjohnson/clock"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/orgshift/pkg/domain/interfaces"
	"github.com/secmon-lab/orgshift/pkg/domain/model"
	"github.com/secmon-lab/orgshift/pkg/domain/types"
)

// MigrationSaga moves one user to the target organization in three ordered
// steps: organization migration, profile patch and role assignment. A failed
// step stops the saga and nothing already applied is rolled back.
type MigrationSaga struct {
	platform interfaces.Platform
	repo     interfaces.Repository
	config   model.MigrationConfig
	reporter *ErrorReporter
	clock    clock.Clock
}

// NewMigrationSaga creates a saga runner
func NewMigrationSaga(platform interfaces.Platform, repo interfaces.Repository, config model.MigrationConfig, reporter *ErrorReporter, clk clock.Clock) *MigrationSaga {
	return &MigrationSaga{
		platform: platform,
		repo:     repo,
		config:   config,
		reporter: reporter,
		clock:    clk,
	}
}

// Run applies every step to the candidate
func (s *MigrationSaga) Run(ctx context.Context, runID types.RunID, candidate model.MigrationCandidate) model.SagaOutcome {
	return s.execute(ctx, runID, candidate.UserID, candidate.CurrentOrgName, types.SagaStepNone)
}

// Resume applies only the steps after progress.LastStep
func (s *MigrationSaga) Resume(ctx context.Context, runID types.RunID, progress *model.MigrationProgress) (model.SagaOutcome, error) {
	if !progress.LastStep.IsPartial() {
		return model.SagaOutcome{}, goerr.Wrap(model.ErrNothingToResume, "cannot resume saga",
			goerr.V("userID", progress.UserID),
			goerr.V("lastStep", progress.LastStep),
		)
	}
	if !strings.EqualFold(progress.TargetOrgName.String(), s.config.TargetOrgName.String()) {
		return model.SagaOutcome{}, goerr.New("progress targets a different organization",
			goerr.V("userID", progress.UserID),
			goerr.V("progressTarget", progress.TargetOrgName),
			goerr.V("configuredTarget", s.config.TargetOrgName),
		)
	}

	return s.execute(ctx, runID, progress.UserID, progress.FromOrgName, progress.LastStep), nil
}

func (s *MigrationSaga) execute(ctx context.Context, runID types.RunID, userID types.UserID, fromOrg types.OrgName, reached types.SagaStep) model.SagaOutcome {
	logger := ctxlog.From(ctx).With("userID", userID)

	for !reached.IsComplete() {
		next := reached.Next()
		if err := s.apply(ctx, next, userID); err != nil {
			msg := s.reporter.Classify(err)
			logger.Warn("Migration step failed",
				"step", next,
				"stepReached", reached,
				"message", msg,
				"error", err,
			)
			s.record(ctx, runID, userID, fromOrg, reached, msg)
			return model.NewFailedOutcome(userID, reached, msg)
		}

		reached = next
		s.record(ctx, runID, userID, fromOrg, reached, "")
	}

	logger.Info("User migrated", "from", fromOrg, "to", s.config.TargetOrgName)
	return model.NewSucceededOutcome(userID)
}

func (s *MigrationSaga) apply(ctx context.Context, step types.SagaStep, userID types.UserID) error {
	switch step {
	case types.SagaStepOrgMigrated:
		return s.platform.MigrateUser(ctx, interfaces.MigrateUserRequest{
			UserID:           userID,
			Channel:          s.config.TargetOrgName,
			SoftDeleteOldOrg: true,
			NotifyMigration:  false,
			ForceMigration:   true,
		})
	case types.SagaStepProfilePatched:
		return s.platform.PatchDepartment(ctx, userID, s.config.DepartmentName())
	case types.SagaStepRoleAssigned:
		return s.platform.AssignRoles(ctx, s.config.TargetOrgID, userID, []types.RoleName{s.config.DefaultRole})
	default:
		return goerr.New("unknown saga step", goerr.V("step", step))
	}
}

// record saves the progress of the user. Failing to save never changes the
// outcome of the saga.
func (s *MigrationSaga) record(ctx context.Context, runID types.RunID, userID types.UserID, fromOrg types.OrgName, reached types.SagaStep, failure string) {
	if s.repo == nil {
		return
	}

	progress := &model.MigrationProgress{
		UserID:        userID,
		RunID:         runID,
		FromOrgName:   fromOrg,
		TargetOrgName: s.config.TargetOrgName,
		LastStep:      reached,
		Failed:        failure != "",
		ErrorMessage:  failure,
		UpdatedAt:     s.clock.Now().UTC(),
	}
	if err := s.repo.PutProgress(ctx, progress); err != nil {
		ctxlog.From(ctx).Warn("Failed to save migration progress",
			"userID", userID,
			"step", reached,
			"error", err,
		)
	}
}
