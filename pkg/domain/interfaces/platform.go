package interfaces

//go:generate moq -out mocks/platform_mock.go -pkg mocks . Platform

import (
	"context"

	"github.com/secmon-lab/orgshift/pkg/domain/model"
	"github.com/secmon-lab/orgshift/pkg/domain/types"
)

// MigrateUserRequest is the organization migration call for one user
type MigrateUserRequest struct {
	UserID           types.UserID
	Channel          types.OrgName
	SoftDeleteOldOrg bool
	NotifyMigration  bool
	ForceMigration   bool
}

// Platform is the set of external learning-platform services the migration
// workflow calls. Every failure is returned as an error; upstream rejections
// carry a *model.UpstreamError.
type Platform interface {
	SearchUsers(ctx context.Context, req model.PageRequest) ([]model.UserRecord, error)
	MigrateUser(ctx context.Context, req MigrateUserRequest) error
	PatchDepartment(ctx context.Context, userID types.UserID, departmentName string) error
	AssignRoles(ctx context.Context, orgID types.OrgID, userID types.UserID, roles []types.RoleName) error
}
