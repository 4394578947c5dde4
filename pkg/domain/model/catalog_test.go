package model_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/orgshift/pkg/domain/model"
)

func TestGetDefaultMessageCatalog(t *testing.T) {
	catalog := model.GetDefaultMessageCatalog()
	gt.NotEqual(t, catalog.DefaultMessage, "")

	msg, ok := catalog.Lookup("USER_NOT_FOUND")
	gt.True(t, ok)
	gt.Equal(t, msg, "User not found on the platform")

	_, ok = catalog.Lookup("NO_SUCH_CODE")
	gt.False(t, ok)

	_, ok = catalog.Lookup("")
	gt.False(t, ok)
}

func TestParseMessageCatalog(t *testing.T) {
	t.Run("valid catalog", func(t *testing.T) {
		catalog, err := model.ParseMessageCatalog([]byte(`
default_message: "failed"
messages:
  E1: "first"
`))
		gt.NoError(t, err).Required()
		gt.Equal(t, catalog.DefaultMessage, "failed")
		gt.Equal(t, catalog.Messages["E1"], "first")
	})

	t.Run("missing default message", func(t *testing.T) {
		_, err := model.ParseMessageCatalog([]byte(`messages: {E1: "first"}`))
		gt.Error(t, err)
	})

	t.Run("empty message", func(t *testing.T) {
		_, err := model.ParseMessageCatalog([]byte(`
default_message: "failed"
messages:
  E1: ""
`))
		gt.Error(t, err)
	})

	t.Run("broken yaml", func(t *testing.T) {
		_, err := model.ParseMessageCatalog([]byte("default_message: [unclosed"))
		gt.Error(t, err)
	})
}

func TestMigrationConfig_Validate(t *testing.T) {
	cfg := model.MigrationConfig{
		TargetOrgName: "Karmayogi Bharat",
		TargetOrgID:   "0140788510336040962",
		DefaultRole:   model.DefaultRole,
		PageSize:      model.DefaultPageSize,
	}
	gt.NoError(t, cfg.Validate())
	gt.Equal(t, cfg.DepartmentName(), "Karmayogi Bharat")

	noID := cfg
	noID.TargetOrgID = ""
	gt.Error(t, noID.Validate())

	noName := cfg
	noName.TargetOrgName = ""
	gt.Error(t, noName.Validate())

	badPage := cfg
	badPage.PageSize = 0
	gt.Error(t, badPage.Validate())
}
