package config

import (
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/orgshift/pkg/domain/model"
	"github.com/secmon-lab/orgshift/pkg/domain/types"
	"github.com/urfave/cli/v3"
)

// Migration holds the target of the organization migration
type Migration struct {
	TargetOrgName string
	TargetOrgID   string
	DefaultRole   string
	PageSize      int
	CatalogPath   string
}

// Flags returns CLI flags for Migration configuration
func (m *Migration) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "target-org-name",
			Usage:       "Name of the organization stale users are moved to",
			Category:    "Migration",
			Sources:     cli.EnvVars("ORGSHIFT_TARGET_ORG_NAME"),
			Destination: &m.TargetOrgName,
		},
		&cli.StringFlag{
			Name:        "target-org-id",
			Usage:       "ID of the target organization, used for role assignment",
			Category:    "Migration",
			Sources:     cli.EnvVars("ORGSHIFT_TARGET_ORG_ID"),
			Destination: &m.TargetOrgID,
		},
		&cli.StringFlag{
			Name:        "default-role",
			Usage:       "Role granted to migrated users",
			Category:    "Migration",
			Value:       model.DefaultRole.String(),
			Sources:     cli.EnvVars("ORGSHIFT_DEFAULT_ROLE"),
			Destination: &m.DefaultRole,
		},
		&cli.IntFlag{
			Name:        "page-size",
			Usage:       "Number of directory records requested per page",
			Category:    "Migration",
			Value:       model.DefaultPageSize,
			Sources:     cli.EnvVars("ORGSHIFT_PAGE_SIZE"),
			Destination: &m.PageSize,
		},
		&cli.StringFlag{
			Name:        "message-catalog",
			Usage:       "YAML file mapping upstream error codes to messages (built-in catalog when empty)",
			Category:    "Migration",
			Sources:     cli.EnvVars("ORGSHIFT_MESSAGE_CATALOG"),
			Destination: &m.CatalogPath,
		},
	}
}

// Configure returns the validated migration config and the message catalog
func (m *Migration) Configure() (model.MigrationConfig, *model.MessageCatalog, error) {
	cfg := model.MigrationConfig{
		TargetOrgName: types.OrgName(m.TargetOrgName),
		TargetOrgID:   types.OrgID(m.TargetOrgID),
		DefaultRole:   types.RoleName(m.DefaultRole),
		PageSize:      m.PageSize,
	}
	if err := cfg.Validate(); err != nil {
		return model.MigrationConfig{}, nil, goerr.Wrap(err, "invalid migration configuration")
	}

	if m.CatalogPath == "" {
		return cfg, model.GetDefaultMessageCatalog(), nil
	}

	catalog, err := LoadMessageCatalogFromFile(m.CatalogPath)
	if err != nil {
		return model.MigrationConfig{}, nil, err
	}
	return cfg, catalog, nil
}

// LogValue returns structured log value
func (m Migration) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("target_org_name", m.TargetOrgName),
		slog.String("target_org_id", m.TargetOrgID),
		slog.String("default_role", m.DefaultRole),
		slog.Int("page_size", m.PageSize),
		slog.String("message_catalog", m.CatalogPath),
	)
}
