package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"
)

type RevertCmd struct {
	flags *Flags

	// flags
	yes bool

	// confirm is replaced in tests.
	confirm func(paths []string) (bool, error)
}

func NewRevertCmd(flags *Flags) *RevertCmd {
	return &RevertCmd{flags: flags, confirm: confirmRevert}
}

func (cmd *RevertCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:        "revert",
		Usage:       "Discard local changes to paths",
		UsageText:   "svnkit revert [--yes] PATH...",
		Description: "Asks for confirmation unless --yes is given. Without a terminal, --yes is required.",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "yes",
				Aliases:     []string{"y"},
				Usage:       "do not ask for confirmation",
				Destination: &cmd.yes,
			},
		},
		Action: cmd.run,
	})
	return app
}

func (cmd *RevertCmd) run(ctx context.Context, c *cli.Command) error {
	paths := c.Args().Slice()
	if len(paths) == 0 {
		return fmt.Errorf("at least one path is required")
	}

	if !cmd.yes {
		ok, err := cmd.confirm(paths)
		if err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			return err
		}
		if !ok {
			return nil
		}
	}

	for _, path := range paths {
		if err := cmd.flags.SVN.Revert(withOp(ctx, "revert", path), path); err != nil {
			return err
		}
		printDone(c.Root().Writer, "reverted %s", path)
	}
	return nil
}

func confirmRevert(paths []string) (bool, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return false, fmt.Errorf("refusing to revert without a terminal; pass --yes")
	}

	var ok bool
	err := huh.NewConfirm().
		Title("Discard local changes?").
		Description(strings.Join(paths, "\n")).
		Affirmative("Revert").
		Negative("Cancel").
		Value(&ok).
		Run()
	return ok, err
}
