package model_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/orgshift/pkg/domain/model"
	"github.com/secmon-lab/orgshift/pkg/domain/types"
)

func orgName(s string) *types.OrgName {
	n := types.OrgName(s)
	return &n
}

func TestNeedsMigration(t *testing.T) {
	target := types.OrgName("Karmayogi Bharat")

	testCases := []struct {
		name     string
		record   model.UserRecord
		expected bool
	}{
		{
			name:     "different organization",
			record:   model.UserRecord{ID: "u1", RootOrgName: orgName("Old Ministry")},
			expected: true,
		},
		{
			name:     "same organization",
			record:   model.UserRecord{ID: "u2", RootOrgName: orgName("Karmayogi Bharat")},
			expected: false,
		},
		{
			name:     "same organization with different case",
			record:   model.UserRecord{ID: "u3", RootOrgName: orgName("KARMAYOGI bharat")},
			expected: false,
		},
		{
			name:     "missing organization is skipped",
			record:   model.UserRecord{ID: "u4"},
			expected: false,
		},
		{
			name:     "record without user ID is skipped",
			record:   model.UserRecord{RootOrgName: orgName("Old Ministry")},
			expected: false,
		},
		{
			name:     "empty organization name differs from target",
			record:   model.UserRecord{ID: "u5", RootOrgName: orgName("")},
			expected: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			gt.Equal(t, model.NeedsMigration(&tc.record, target), tc.expected)
		})
	}
}

func TestNewMigrationCandidate(t *testing.T) {
	record := model.UserRecord{ID: "u1", RootOrgName: orgName("Old Ministry")}
	candidate := model.NewMigrationCandidate(&record, "Karmayogi Bharat")

	gt.Equal(t, candidate.UserID, types.UserID("u1"))
	gt.Equal(t, candidate.CurrentOrgName, types.OrgName("Old Ministry"))
	gt.True(t, candidate.NeedsMigration)

	missing := model.NewMigrationCandidate(&model.UserRecord{ID: "u2"}, "Karmayogi Bharat")
	gt.Equal(t, missing.CurrentOrgName, types.OrgName(""))
	gt.False(t, missing.NeedsMigration)
}
