package model

import (
	"encoding/json"

	"github.com/secmon-lab/orgshift/pkg/domain/types"
)

// UserRecord is one user as returned by the platform directory search
type UserRecord struct {
	ID types.UserID `json:"userId"`
	// RootOrgName is nil when the directory did not report an organization
	RootOrgName    *types.OrgName  `json:"rootOrgName,omitempty"`
	ProfileDetails json.RawMessage `json:"profileDetails,omitempty"`
}

// RootOrg returns the root organization name and whether it is known
func (r *UserRecord) RootOrg() (types.OrgName, bool) {
	if r.RootOrgName == nil {
		return "", false
	}
	return *r.RootOrgName, true
}
