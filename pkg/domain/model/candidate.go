package model

import (
	"strings"

	"github.com/secmon-lab/orgshift/pkg/domain/types"
)

// MigrationCandidate is the migration decision for one directory record
type MigrationCandidate struct {
	UserID         types.UserID
	CurrentOrgName types.OrgName
	NeedsMigration bool
}

// NeedsMigration reports whether the record belongs to an organization other
// than target. Records without a user ID or a root organization are never
// migrated.
func NeedsMigration(record *UserRecord, target types.OrgName) bool {
	if record.ID == "" {
		return false
	}
	current, ok := record.RootOrg()
	if !ok {
		return false
	}
	return !strings.EqualFold(current.String(), target.String())
}

// NewMigrationCandidate derives the candidate for record against target
func NewMigrationCandidate(record *UserRecord, target types.OrgName) MigrationCandidate {
	current, _ := record.RootOrg()
	return MigrationCandidate{
		UserID:         record.ID,
		CurrentOrgName: current,
		NeedsMigration: NeedsMigration(record, target),
	}
}
