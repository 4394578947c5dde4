package cli

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/orgshift/pkg/cli/config"
	"github.com/secmon-lab/orgshift/pkg/domain/interfaces"
	"github.com/secmon-lab/orgshift/pkg/usecase"
	"github.com/urfave/cli/v3"
)

// joinFlags combines multiple flag slices into one
func joinFlags(flags ...[]cli.Flag) []cli.Flag {
	var result []cli.Flag
	for _, f := range flags {
		result = append(result, f...)
	}
	return result
}

// migrationConfigs are the config groups every command that runs a migration
// needs
type migrationConfigs struct {
	platform  config.Platform
	migration config.Migration
	firestore config.Firestore
	slack     config.Slack
}

func (m *migrationConfigs) Flags() []cli.Flag {
	return joinFlags(
		m.platform.Flags(),
		m.migration.Flags(),
		m.firestore.Flags(),
		m.slack.Flags(),
	)
}

// build wires the migration use case. The returned repository must be closed
// by the caller.
func (m *migrationConfigs) build(ctx context.Context) (*usecase.Migration, interfaces.Repository, error) {
	ctxlog.From(ctx).Info("Loading configuration",
		slog.Any("platform", m.platform),
		slog.Any("migration", m.migration),
		slog.Any("firestore", m.firestore),
		slog.Any("slack", m.slack),
	)

	client, err := m.platform.Configure()
	if err != nil {
		return nil, nil, goerr.Wrap(err, "failed to configure platform client")
	}

	migrationCfg, catalog, err := m.migration.Configure()
	if err != nil {
		return nil, nil, err
	}

	repo, err := m.firestore.Configure(ctx)
	if err != nil {
		return nil, nil, err
	}

	uc, err := usecase.NewMigration(client, repo, migrationCfg,
		usecase.WithMessageCatalog(catalog),
		usecase.WithNotifier(m.slack.Configure(ctx)),
	)
	if err != nil {
		_ = repo.Close()
		return nil, nil, err
	}

	return uc, repo, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return goerr.Wrap(err, "failed to write output")
	}
	return nil
}
