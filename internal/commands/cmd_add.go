package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

type AddCmd struct {
	flags *Flags
}

func NewAddCmd(flags *Flags) *AddCmd {
	return &AddCmd{flags: flags}
}

func (cmd *AddCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "add",
		Usage:     "Schedule paths for addition",
		UsageText: "svnkit add PATH...",
		Action:    cmd.run,
	})
	return app
}

func (cmd *AddCmd) run(ctx context.Context, c *cli.Command) error {
	if c.Args().Len() == 0 {
		return fmt.Errorf("at least one path is required")
	}

	for _, path := range c.Args().Slice() {
		if err := cmd.flags.SVN.Add(withOp(ctx, "add", path), path); err != nil {
			return err
		}
		printDone(c.Root().Writer, "added %s", path)
	}
	return nil
}
