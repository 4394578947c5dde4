package types

// SagaStep is the last remediation step a saga completed for a user
type SagaStep string

const (
	SagaStepNone           SagaStep = "none"
	SagaStepOrgMigrated    SagaStep = "org_migrated"
	SagaStepProfilePatched SagaStep = "profile_patched"
	SagaStepRoleAssigned   SagaStep = "role_assigned"
)

// String returns the string representation of the step
func (s SagaStep) String() string {
	return string(s)
}

// IsValid checks if the step is valid
func (s SagaStep) IsValid() bool {
	switch s {
	case SagaStepNone, SagaStepOrgMigrated, SagaStepProfilePatched, SagaStepRoleAssigned:
		return true
	default:
		return false
	}
}

// Next returns the step that follows s. The final step returns itself.
func (s SagaStep) Next() SagaStep {
	switch s {
	case SagaStepNone:
		return SagaStepOrgMigrated
	case SagaStepOrgMigrated:
		return SagaStepProfilePatched
	default:
		return SagaStepRoleAssigned
	}
}

// IsComplete reports whether every remediation step has been applied
func (s SagaStep) IsComplete() bool {
	return s == SagaStepRoleAssigned
}

// IsPartial reports whether the user was left between steps, with the
// organization already migrated but the saga not complete
func (s SagaStep) IsPartial() bool {
	return s == SagaStepOrgMigrated || s == SagaStepProfilePatched
}
