package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/svnkit/internal/core/styles"
	"github.com/colonyops/svnkit/pkg/iojson"
)

type VersionCmd struct {
	flags *Flags

	// flags
	wc         string
	jsonOutput bool
}

func NewVersionCmd(flags *Flags) *VersionCmd {
	return &VersionCmd{flags: flags}
}

func (cmd *VersionCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "version",
		Usage:     "Show the svn client version and working copy revision",
		UsageText: "svnkit version [--wc DIR] [--json]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "wc",
				Usage:       "also report the highest revision in this working copy",
				Destination: &cmd.wc,
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

type versionInfo struct {
	Client   string `json:"client"`
	Revision *int   `json:"revision,omitempty"`
}

func (cmd *VersionCmd) run(ctx context.Context, c *cli.Command) error {
	ctx = withOp(ctx, "version", cmd.wc)

	v, err := cmd.flags.SVN.Version(ctx)
	if err != nil {
		return err
	}
	info := versionInfo{Client: v.String()}

	if cmd.wc != "" {
		rev, err := cmd.flags.SVN.LatestRevision(ctx, cmd.wc)
		if err != nil {
			return err
		}
		info.Revision = &rev
	}

	if cmd.jsonOutput {
		return iojson.WriteWith(c.Root().Writer, c.Root().ErrWriter, info)
	}

	out := c.Root().Writer
	_, _ = fmt.Fprintf(out, "%s %s\n", styles.TextMutedStyle.Render("svn"), info.Client)
	if info.Revision != nil {
		_, _ = fmt.Fprintf(out, "%s %d\n", styles.TextMutedStyle.Render(cmd.wc), *info.Revision)
	}
	return nil
}
