package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/svnkit/internal/core/styles"
)

type IgnoreCmd struct {
	flags *Flags
}

func NewIgnoreCmd(flags *Flags) *IgnoreCmd {
	return &IgnoreCmd{flags: flags}
}

func (cmd *IgnoreCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "ignore",
		Usage: "Manage svn:ignore patterns of a directory",
		Commands: []*cli.Command{
			{
				Name:      "list",
				Usage:     "Print the ignore patterns of DIR",
				UsageText: "svnkit ignore list DIR",
				Action:    cmd.runList,
			},
			{
				Name:      "add",
				Usage:     "Add ignore patterns to DIR",
				UsageText: "svnkit ignore add DIR PATTERN...",
				Action:    cmd.runAdd,
			},
			{
				Name:      "remove",
				Usage:     "Remove ignore patterns from DIR",
				UsageText: "svnkit ignore remove DIR PATTERN...",
				Action:    cmd.runRemove,
			},
			{
				Name:      "set",
				Usage:     "Replace the ignore patterns of DIR with a single pattern",
				UsageText: "svnkit ignore set DIR PATTERN",
				Action:    cmd.runSet,
			},
			{
				Name:      "clear",
				Usage:     "Delete svn:ignore from DIR",
				UsageText: "svnkit ignore clear DIR",
				Action:    cmd.runClear,
			},
			{
				Name:        "check",
				Usage:       "Show which pattern of DIR ignores NAME",
				UsageText:   "svnkit ignore check DIR NAME",
				Description: "Exits non-zero when no pattern matches.",
				Action:      cmd.runCheck,
			},
		},
	})
	return app
}

func dirAndValues(c *cli.Command, minValues int) (string, []string, error) {
	args := c.Args().Slice()
	if len(args) < 1+minValues {
		return "", nil, fmt.Errorf("usage: %s", c.UsageText)
	}
	return args[0], args[1:], nil
}

func (cmd *IgnoreCmd) runList(ctx context.Context, c *cli.Command) error {
	dir, _, err := dirAndValues(c, 0)
	if err != nil {
		return err
	}

	patterns, err := cmd.flags.SVN.GetIgnoreValues(withOp(ctx, "ignore list", dir), dir)
	if err != nil {
		return err
	}
	for _, p := range patterns {
		_, _ = fmt.Fprintln(c.Root().Writer, p)
	}
	return nil
}

func (cmd *IgnoreCmd) runAdd(ctx context.Context, c *cli.Command) error {
	dir, patterns, err := dirAndValues(c, 1)
	if err != nil {
		return err
	}
	ctx = withOp(ctx, "ignore add", dir)

	for _, p := range patterns {
		if err := cmd.flags.SVN.AddIgnoreValue(ctx, dir, p); err != nil {
			return err
		}
		printDone(c.Root().Writer, "ignoring %s in %s", p, dir)
	}
	return nil
}

func (cmd *IgnoreCmd) runRemove(ctx context.Context, c *cli.Command) error {
	dir, patterns, err := dirAndValues(c, 1)
	if err != nil {
		return err
	}
	ctx = withOp(ctx, "ignore remove", dir)

	for _, p := range patterns {
		if err := cmd.flags.SVN.RemoveIgnoreValue(ctx, dir, p); err != nil {
			return err
		}
		printDone(c.Root().Writer, "no longer ignoring %s in %s", p, dir)
	}
	return nil
}

func (cmd *IgnoreCmd) runSet(ctx context.Context, c *cli.Command) error {
	dir, patterns, err := dirAndValues(c, 1)
	if err != nil {
		return err
	}
	if len(patterns) != 1 {
		return fmt.Errorf("usage: %s", c.UsageText)
	}

	if err := cmd.flags.SVN.SetIgnoreValue(withOp(ctx, "ignore set", dir), dir, patterns[0]); err != nil {
		return err
	}
	printDone(c.Root().Writer, "ignoring only %s in %s", patterns[0], dir)
	return nil
}

func (cmd *IgnoreCmd) runClear(ctx context.Context, c *cli.Command) error {
	dir, _, err := dirAndValues(c, 0)
	if err != nil {
		return err
	}

	if err := cmd.flags.SVN.DeleteIgnoreValues(withOp(ctx, "ignore clear", dir), dir); err != nil {
		return err
	}
	printDone(c.Root().Writer, "cleared svn:ignore on %s", dir)
	return nil
}

func (cmd *IgnoreCmd) runCheck(ctx context.Context, c *cli.Command) error {
	dir, names, err := dirAndValues(c, 1)
	if err != nil {
		return err
	}

	pattern, ok, err := cmd.flags.SVN.MatchIgnore(withOp(ctx, "ignore check", dir), dir, names[0])
	if err != nil {
		return err
	}
	if !ok {
		_, _ = fmt.Fprintf(c.Root().Writer, "%s is not ignored in %s\n", names[0], dir)
		return cli.Exit("", 1)
	}

	_, _ = fmt.Fprintf(c.Root().Writer, "%s %s\n", names[0], styles.TextMutedStyle.Render("matches "+pattern))
	return nil
}
