package model

import "github.com/secmon-lab/orgshift/pkg/domain/types"

// SagaOutcome is the result of running the remediation saga for one user
type SagaOutcome struct {
	UserID       types.UserID   `json:"userId"`
	StepReached  types.SagaStep `json:"stepReached"`
	Failed       bool           `json:"failed"`
	ErrorMessage string         `json:"errorMessage,omitempty"`
}

// NewSucceededOutcome returns the outcome of a saga that completed every step
func NewSucceededOutcome(userID types.UserID) SagaOutcome {
	return SagaOutcome{
		UserID:      userID,
		StepReached: types.SagaStepRoleAssigned,
	}
}

// NewFailedOutcome returns the outcome of a saga that stopped after reached
func NewFailedOutcome(userID types.UserID, reached types.SagaStep, message string) SagaOutcome {
	return SagaOutcome{
		UserID:       userID,
		StepReached:  reached,
		Failed:       true,
		ErrorMessage: message,
	}
}
