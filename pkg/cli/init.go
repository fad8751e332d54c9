package cli

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/minigit/pkg/domain/types"
	"github.com/m-mizutani/minigit/pkg/usecase"
	"github.com/m-mizutani/minigit/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func initCommand() *cli.Command {
	var initialBranch string

	return &cli.Command{
		Name:      "init",
		Usage:     "Create an empty repository",
		ArgsUsage: "[directory]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "initial-branch",
				Aliases:     []string{"b"},
				Usage:       "Branch name for the initial HEAD",
				Sources:     cli.EnvVars("MINIGIT_INITIAL_BRANCH"),
				Destination: &initialBranch,
				Value:       string(types.DefaultBranch),
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			if c.Args().Len() > 1 {
				return goerr.Wrap(types.ErrInvalidArgument, "too many arguments, expected at most one directory")
			}

			worktree := c.Args().First()
			if worktree == "" {
				worktree = "."
			}

			uc := usecase.New(usecase.WithDefaultBranch(types.BranchName(initialBranch)))
			repo, err := uc.InitRepository(ctx, worktree)
			if err != nil {
				return err
			}

			logging.From(ctx).Info("Initialized empty repository", "path", repo.GitDir)

			return nil
		},
	}
}
