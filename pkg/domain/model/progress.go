package model

import (
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/orgshift/pkg/domain/types"
)

// MigrationProgress is the durable record of how far a user's saga got. It is
// overwritten after every step so operators can find users left between steps.
type MigrationProgress struct {
	UserID        types.UserID   `json:"user_id" firestore:"user_id"`
	RunID         types.RunID    `json:"run_id" firestore:"run_id"`
	FromOrgName   types.OrgName  `json:"from_org_name" firestore:"from_org_name"`
	TargetOrgName types.OrgName  `json:"target_org_name" firestore:"target_org_name"`
	LastStep      types.SagaStep `json:"last_step" firestore:"last_step"`
	Failed        bool           `json:"failed" firestore:"failed"`
	ErrorMessage  string         `json:"error_message,omitempty" firestore:"error_message"`
	UpdatedAt     time.Time      `json:"updated_at" firestore:"updated_at"`
}

// Validate validates the progress record
func (p *MigrationProgress) Validate() error {
	if p.UserID == "" {
		return goerr.New("user ID is required")
	}
	if !p.LastStep.IsValid() {
		return goerr.New("invalid saga step", goerr.V("step", p.LastStep))
	}
	return nil
}

// IsResumable reports whether the saga stopped after migrating the organization
// and still has steps to apply
func (p *MigrationProgress) IsResumable() bool {
	return p.Failed && p.LastStep.IsPartial()
}
