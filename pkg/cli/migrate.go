package cli

import (
	"context"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/orgshift/pkg/domain/model"
	"github.com/urfave/cli/v3"
)

func cmdMigrate() *cli.Command {
	var cfg migrationConfigs

	return &cli.Command{
		Name:  "migrate",
		Usage: "Run one migration pass over the user directory and print the result",
		Flags: cfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			uc, repo, err := cfg.build(ctx)
			if err != nil {
				return err
			}
			defer repo.Close()

			ctx = model.WithRunContext(ctx, model.NewRunContext(model.TriggerCLI))
			result := uc.RunBatch(ctx)

			if err := writeJSON(os.Stdout, result.Report()); err != nil {
				return err
			}
			if !result.AllSucceeded {
				return goerr.New("migration run failed",
					goerr.V("runID", result.RunID),
					goerr.V("message", result.Message()),
				)
			}
			return nil
		},
	}
}
