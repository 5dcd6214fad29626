package commands

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/svnkit/pkg/iojson"
)

type UpdateCmd struct {
	flags *Flags

	// flags
	jsonOutput bool
}

func NewUpdateCmd(flags *Flags) *UpdateCmd {
	return &UpdateCmd{flags: flags}
}

func (cmd *UpdateCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "update",
		Aliases:   []string{"up"},
		Usage:     "Bring a working copy up to date",
		UsageText: "svnkit update [--json] [PATH]",
		Flags: []cli.Flag{
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

func (cmd *UpdateCmd) run(ctx context.Context, c *cli.Command) error {
	path := c.Args().First()
	if path == "" {
		path = "."
	}

	res, err := cmd.flags.SVN.UpdateEntries(withOp(ctx, "update", path), path)
	if err != nil {
		return err
	}

	if cmd.jsonOutput {
		return iojson.WriteWith(c.Root().Writer, c.Root().ErrWriter, res)
	}
	printEntries(c.Root().Writer, res.Entries)
	printDone(c.Root().Writer, "at revision %d", res.Revision)
	return nil
}
