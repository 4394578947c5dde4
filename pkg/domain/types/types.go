package types

import (
	"github.com/google/uuid"
)

// UserID represents a platform user identifier
type UserID string

// String returns the string representation
func (id UserID) String() string {
	return string(id)
}

// OrgName represents an organization (channel) name on the platform
type OrgName string

// String returns the string representation
func (n OrgName) String() string {
	return string(n)
}

// OrgID represents an organization identifier on the platform
type OrgID string

// String returns the string representation
func (id OrgID) String() string {
	return string(id)
}

// RoleName represents a platform role such as PUBLIC
type RoleName string

// String returns the string representation
func (r RoleName) String() string {
	return string(r)
}

// RunID identifies one invocation of the migration workflow
type RunID string

// String returns the string representation
func (id RunID) String() string {
	return string(id)
}

// NewRunID creates a new RunID using UUID v7 so that ids sort by start time
func NewRunID() RunID {
	id, err := uuid.NewV7()
	if err != nil {
		return RunID(uuid.New().String())
	}
	return RunID(id.String())
}
