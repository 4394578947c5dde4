package model

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/orgshift/pkg/domain/types"
)

const (
	// DefaultPageSize is the number of directory records requested per page
	DefaultPageSize = 250

	// DefaultRole is assigned to migrated users in the target organization
	DefaultRole types.RoleName = "PUBLIC"

	// NotMyUserStatus is the profile status of users flagged as not belonging
	// to the organization that currently owns them
	NotMyUserStatus = "NOT-MY-USER"
)

// MigrationConfig describes where stale users are moved to
type MigrationConfig struct {
	TargetOrgName types.OrgName
	TargetOrgID   types.OrgID
	DefaultRole   types.RoleName
	PageSize      int
}

// Validate validates the migration configuration
func (c *MigrationConfig) Validate() error {
	if c.TargetOrgName == "" {
		return goerr.New("target organization name is required")
	}
	if c.TargetOrgID == "" {
		return goerr.New("target organization ID is required",
			goerr.V("name", c.TargetOrgName))
	}
	if c.DefaultRole == "" {
		return goerr.New("default role is required")
	}
	if c.PageSize <= 0 {
		return goerr.New("page size must be positive", goerr.V("pageSize", c.PageSize))
	}
	return nil
}

// DepartmentName is the profile department written for migrated users
func (c *MigrationConfig) DepartmentName() string {
	return c.TargetOrgName.String()
}
