package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/svnkit/pkg/iojson"
	"github.com/colonyops/svnkit/pkg/svn"
)

type StatusCmd struct {
	flags *Flags

	// flags
	recursive  bool
	changes    bool
	jsonOutput bool
}

// NewStatusCmd creates a new status command
func NewStatusCmd(flags *Flags) *StatusCmd {
	return &StatusCmd{flags: flags}
}

// Register adds the status command to the application
func (cmd *StatusCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "status",
		Aliases:   []string{"st"},
		Usage:     "Show the working copy status of paths",
		UsageText: "svnkit status [--recursive] [--changes] [--json] PATH...",
		Description: `Prints one resolved status per path. Paths inside unversioned or ignored
directories report the status of the directory that contains them.

--recursive lists every item below each path as svn reports it.
--changes reports whether each path has uncommitted changes instead.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "recursive",
				Aliases:     []string{"r"},
				Usage:       "list every item below each path",
				Destination: &cmd.recursive,
			},
			&cli.BoolFlag{
				Name:        "changes",
				Usage:       "report whether each path has uncommitted changes",
				Destination: &cmd.changes,
			},
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output as JSON lines",
				Destination: &cmd.jsonOutput,
			},
		},
		Action: cmd.run,
	})

	return app
}

type changesInfo struct {
	Path    string `json:"path"`
	Changed bool   `json:"changed"`
}

func (cmd *StatusCmd) run(ctx context.Context, c *cli.Command) error {
	paths := c.Args().Slice()
	if len(paths) == 0 {
		paths = []string{"."}
	}

	out := c.Root().Writer

	for _, path := range paths {
		ctx := withOp(ctx, "status", path)

		switch {
		case cmd.changes:
			changed, err := cmd.flags.SVN.HasUncommittedChanges(ctx, path)
			if err != nil {
				return fmt.Errorf("check changes of %s: %w", path, err)
			}
			if cmd.jsonOutput {
				if err := iojson.WriteLine(out, changesInfo{Path: path, Changed: changed}); err != nil {
					return err
				}
				continue
			}
			state := "clean"
			if changed {
				state = "changed"
			}
			_, _ = fmt.Fprintf(out, "%s %s\n", state, path)

		case cmd.recursive:
			entries, err := cmd.flags.SVN.StatusAll(ctx, path)
			if err != nil {
				return fmt.Errorf("status of %s: %w", path, err)
			}
			for _, e := range entries {
				if err := cmd.print(c, e); err != nil {
					return err
				}
			}

		default:
			status, err := cmd.flags.SVN.Status(ctx, path)
			if err != nil {
				return fmt.Errorf("status of %s: %w", path, err)
			}
			if err := cmd.print(c, svn.PathStatus{Path: path, Status: status}); err != nil {
				return err
			}
		}
	}

	return nil
}

func (cmd *StatusCmd) print(c *cli.Command, ps svn.PathStatus) error {
	if cmd.jsonOutput {
		return iojson.WriteLine(c.Root().Writer, ps)
	}
	printStatus(c.Root().Writer, ps)
	return nil
}
