package types_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/orgshift/pkg/domain/types"
)

func TestSagaStepValidation(t *testing.T) {
	tests := []struct {
		name     string
		step     types.SagaStep
		expected bool
	}{
		{"Valid none", types.SagaStepNone, true},
		{"Valid org migrated", types.SagaStepOrgMigrated, true},
		{"Valid profile patched", types.SagaStepProfilePatched, true},
		{"Valid role assigned", types.SagaStepRoleAssigned, true},
		{"Invalid empty", types.SagaStep(""), false},
		{"Invalid mixed case", types.SagaStep("Org_Migrated"), false},
		{"Invalid unknown", types.SagaStep("deleted"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.step.IsValid()
			if result != tt.expected {
				t.Errorf("SagaStep(%q).IsValid() = %v, want %v", tt.step, result, tt.expected)
			}
		})
	}
}

func TestSagaStepNext(t *testing.T) {
	gt.Equal(t, types.SagaStepNone.Next(), types.SagaStepOrgMigrated)
	gt.Equal(t, types.SagaStepOrgMigrated.Next(), types.SagaStepProfilePatched)
	gt.Equal(t, types.SagaStepProfilePatched.Next(), types.SagaStepRoleAssigned)
	gt.Equal(t, types.SagaStepRoleAssigned.Next(), types.SagaStepRoleAssigned)
}

func TestSagaStepPartial(t *testing.T) {
	gt.False(t, types.SagaStepNone.IsPartial())
	gt.True(t, types.SagaStepOrgMigrated.IsPartial())
	gt.True(t, types.SagaStepProfilePatched.IsPartial())
	gt.False(t, types.SagaStepRoleAssigned.IsPartial())
	gt.True(t, types.SagaStepRoleAssigned.IsComplete())
}

func TestNewRunID(t *testing.T) {
	a := types.NewRunID()
	b := types.NewRunID()
	gt.NotEqual(t, a, b)
	gt.Equal(t, len(a.String()), 36)
}
