package cli

import (
	"context"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/orgshift/pkg/domain/model"
	"github.com/secmon-lab/orgshift/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdResume() *cli.Command {
	var (
		cfg      migrationConfigs
		limit    int
		listOnly bool
	)

	flags := joinFlags(
		cfg.Flags(),
		[]cli.Flag{
			&cli.IntFlag{
				Name:        "limit",
				Usage:       "Maximum number of users to resume",
				Value:       usecase.DefaultResumeLimit,
				Destination: &limit,
			},
			&cli.BoolFlag{
				Name:        "list",
				Usage:       "Only list the users that would be resumed",
				Destination: &listOnly,
			},
		},
	)

	return &cli.Command{
		Name:  "resume",
		Usage: "Finish the migration of users left between steps by an earlier run",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			uc, repo, err := cfg.build(ctx)
			if err != nil {
				return err
			}
			defer repo.Close()

			if listOnly {
				records, err := uc.ListResumable(ctx, limit)
				if err != nil {
					return err
				}
				if records == nil {
					records = []*model.MigrationProgress{}
				}
				return writeJSON(os.Stdout, records)
			}

			ctx = model.WithRunContext(ctx, model.NewRunContext(model.TriggerCLI))
			result := uc.ResumeIncomplete(ctx, limit)

			if err := writeJSON(os.Stdout, result.Report()); err != nil {
				return err
			}
			if !result.AllSucceeded {
				return goerr.New("resume run failed",
					goerr.V("runID", result.RunID),
					goerr.V("message", result.Message()),
				)
			}
			return nil
		},
	}
}
