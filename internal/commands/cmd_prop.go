package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/svnkit/pkg/iojson"
)

type PropCmd struct {
	flags *Flags

	// flags
	raw        bool
	jsonOutput bool
	values     iojson.FileReader[[]string]
}

func NewPropCmd(flags *Flags) *PropCmd {
	return &PropCmd{flags: flags}
}

func (cmd *PropCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "prop",
		Usage: "Manage newline-separated property value sets",
		Description: `Properties such as svn:ignore hold one value per line. These commands treat
them as ordered sets: adding a present value or removing an absent one does
nothing, and removing the last value deletes the property.`,
		Commands: []*cli.Command{
			{
				Name:      "list",
				Usage:     "List the properties set on a path",
				UsageText: "svnkit prop list [--json] PATH",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:        "json",
						Usage:       "output names as a JSON array",
						Destination: &cmd.jsonOutput,
					},
				},
				Action: cmd.runList,
			},
			{
				Name:      "get",
				Usage:     "Print the values of a property",
				UsageText: "svnkit prop get [--raw] [--json] NAME PATH",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:        "raw",
						Usage:       "print the stored value unchanged",
						Destination: &cmd.raw,
					},
					&cli.BoolFlag{
						Name:        "json",
						Usage:       "output values as a JSON array",
						Destination: &cmd.jsonOutput,
					},
				},
				Action:        cmd.runGet,
				ShellComplete: PropertyNameCompleter(cmd.flags),
			},
			{
				Name:          "has",
				Usage:         "Exit non-zero unless the property (or one of its values) is set",
				UsageText:     "svnkit prop has NAME PATH [VALUE]",
				Action:        cmd.runHas,
				ShellComplete: PropertyNameCompleter(cmd.flags),
			},
			{
				Name:          "add",
				Usage:         "Add values to a property",
				UsageText:     "svnkit prop add NAME PATH VALUE...",
				Action:        cmd.runAdd,
				ShellComplete: PropertyNameCompleter(cmd.flags),
			},
			{
				Name:          "remove",
				Usage:         "Remove values from a property",
				UsageText:     "svnkit prop remove NAME PATH VALUE...",
				Action:        cmd.runRemove,
				ShellComplete: PropertyNameCompleter(cmd.flags),
			},
			{
				Name:          "set",
				Usage:         "Replace all values of a property",
				UsageText:     "svnkit prop set NAME PATH [VALUE...] [--file values.json]",
				Flags:         []cli.Flag{cmd.values.Flag()},
				Action:        cmd.runSet,
				ShellComplete: PropertyNameCompleter(cmd.flags),
			},
			{
				Name:          "delete",
				Usage:         "Delete a property",
				UsageText:     "svnkit prop delete NAME PATH",
				Action:        cmd.runDelete,
				ShellComplete: PropertyNameCompleter(cmd.flags),
			},
		},
	})
	return app
}

// nameAndPath returns the NAME and PATH arguments and any values after them.
func nameAndPath(c *cli.Command, minValues int) (name, path string, values []string, err error) {
	args := c.Args().Slice()
	if len(args) < 2+minValues {
		return "", "", nil, fmt.Errorf("usage: %s", c.UsageText)
	}
	return args[0], args[1], args[2:], nil
}

func (cmd *PropCmd) runList(ctx context.Context, c *cli.Command) error {
	path := c.Args().First()
	if path == "" {
		path = "."
	}

	names, err := cmd.flags.SVN.ListProperties(withOp(ctx, "prop list", path), path)
	if err != nil {
		return err
	}
	if cmd.jsonOutput {
		return iojson.WriteWith(c.Root().Writer, c.Root().ErrWriter, names)
	}
	for _, n := range names {
		_, _ = fmt.Fprintln(c.Root().Writer, n)
	}
	return nil
}

func (cmd *PropCmd) runGet(ctx context.Context, c *cli.Command) error {
	name, path, _, err := nameAndPath(c, 0)
	if err != nil {
		return err
	}
	ctx = withOp(ctx, "prop get", path)

	if cmd.raw {
		value, err := cmd.flags.SVN.GetProperty(ctx, path, name)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprint(c.Root().Writer, value)
		return nil
	}

	values, err := cmd.flags.SVN.GetPropertyValues(ctx, path, name)
	if err != nil {
		return err
	}
	if cmd.jsonOutput {
		return iojson.WriteWith(c.Root().Writer, c.Root().ErrWriter, values)
	}
	for _, v := range values {
		_, _ = fmt.Fprintln(c.Root().Writer, v)
	}
	return nil
}

func (cmd *PropCmd) runHas(ctx context.Context, c *cli.Command) error {
	name, path, values, err := nameAndPath(c, 0)
	if err != nil {
		return err
	}
	ctx = withOp(ctx, "prop has", path)

	var has bool
	if len(values) == 0 {
		has, err = cmd.flags.SVN.HasProperty(ctx, path, name)
	} else {
		has, err = cmd.flags.SVN.HasPropertyValue(ctx, path, name, values[0])
	}
	if err != nil {
		return err
	}

	if !has {
		return cli.Exit("", 1)
	}
	return nil
}

func (cmd *PropCmd) runAdd(ctx context.Context, c *cli.Command) error {
	name, path, values, err := nameAndPath(c, 1)
	if err != nil {
		return err
	}
	ctx = withOp(ctx, "prop add", path)

	for _, v := range values {
		if err := cmd.flags.SVN.AddPropertyValue(ctx, path, name, v); err != nil {
			return err
		}
	}
	printDone(c.Root().Writer, "%s on %s", name, path)
	return nil
}

func (cmd *PropCmd) runRemove(ctx context.Context, c *cli.Command) error {
	name, path, values, err := nameAndPath(c, 1)
	if err != nil {
		return err
	}
	ctx = withOp(ctx, "prop remove", path)

	for _, v := range values {
		if err := cmd.flags.SVN.RemovePropertyValue(ctx, path, name, v); err != nil {
			return err
		}
	}
	printDone(c.Root().Writer, "%s on %s", name, path)
	return nil
}

func (cmd *PropCmd) runSet(ctx context.Context, c *cli.Command) error {
	name, path, values, err := nameAndPath(c, 0)
	if err != nil {
		return err
	}

	if cmd.values.IsSet() {
		fromFile, err := cmd.values.Read()
		if err != nil {
			return err
		}
		values = append(values, fromFile...)
	}

	if err := cmd.flags.SVN.SetPropertyValues(withOp(ctx, "prop set", path), path, name, values); err != nil {
		return err
	}
	printDone(c.Root().Writer, "%s on %s", name, path)
	return nil
}

func (cmd *PropCmd) runDelete(ctx context.Context, c *cli.Command) error {
	name, path, _, err := nameAndPath(c, 0)
	if err != nil {
		return err
	}

	if err := cmd.flags.SVN.DeleteProperty(withOp(ctx, "prop delete", path), path, name); err != nil {
		return err
	}
	printDone(c.Root().Writer, "deleted %s from %s", name, path)
	return nil
}
