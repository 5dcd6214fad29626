package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

type DeleteCmd struct {
	flags *Flags
}

func NewDeleteCmd(flags *Flags) *DeleteCmd {
	return &DeleteCmd{flags: flags}
}

func (cmd *DeleteCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "delete",
		Aliases:   []string{"rm"},
		Usage:     "Schedule paths for deletion",
		UsageText: "svnkit delete PATH...",
		Action:    cmd.run,
	})
	return app
}

func (cmd *DeleteCmd) run(ctx context.Context, c *cli.Command) error {
	if c.Args().Len() == 0 {
		return fmt.Errorf("at least one path is required")
	}

	for _, path := range c.Args().Slice() {
		if err := cmd.flags.SVN.Delete(withOp(ctx, "delete", path), path); err != nil {
			return err
		}
		printDone(c.Root().Writer, "deleted %s", path)
	}
	return nil
}
