package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/svnkit/pkg/iojson"
	"github.com/colonyops/svnkit/pkg/svn"
)

type CommitCmd struct {
	flags *Flags

	// flags
	message    string
	jsonOutput bool
}

func NewCommitCmd(flags *Flags) *CommitCmd {
	return &CommitCmd{flags: flags}
}

func (cmd *CommitCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "commit",
		Aliases:   []string{"ci"},
		Usage:     "Commit local changes",
		UsageText: "svnkit commit -m MESSAGE [PATH]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "message",
				Aliases:     []string{"m"},
				Usage:       "commit message",
				Required:    true,
				Destination: &cmd.message,
			},
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output as JSON",
				Destination: &cmd.jsonOutput,
			},
		},
		Action: cmd.run,
	})
	return app
}

func (cmd *CommitCmd) run(ctx context.Context, c *cli.Command) error {
	path := c.Args().First()
	if path == "" {
		path = "."
	}

	rev, err := cmd.flags.SVN.Commit(withOp(ctx, "commit", path), path, cmd.message)
	if errors.Is(err, svn.ErrNothingToCommit) {
		_, _ = fmt.Fprintln(c.Root().ErrWriter, "nothing to commit")
		return nil
	}
	if err != nil {
		return err
	}

	if cmd.jsonOutput {
		return iojson.WriteLine(c.Root().Writer, map[string]int{"revision": rev})
	}
	printDone(c.Root().Writer, "committed revision %d", rev)
	return nil
}
