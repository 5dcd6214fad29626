package commands

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/svnkit/pkg/iojson"
)

type CheckoutCmd struct {
	flags *Flags

	// flags
	jsonOutput bool
}

func NewCheckoutCmd(flags *Flags) *CheckoutCmd {
	return &CheckoutCmd{flags: flags}
}

func (cmd *CheckoutCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:        "checkout",
		Aliases:     []string{"co"},
		Usage:       "Check out a working copy",
		UsageText:   "svnkit checkout [--json] URL [PATH]",
		Description: "PATH defaults to the last segment of URL.",
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

func (cmd *CheckoutCmd) run(ctx context.Context, c *cli.Command) error {
	url := c.Args().Get(0)
	if url == "" {
		return fmt.Errorf("URL is required")
	}

	dest := c.Args().Get(1)
	if dest == "" {
		dest = path.Base(strings.TrimRight(url, "/"))
	}

	res, err := cmd.flags.SVN.Checkout(withOp(ctx, "checkout", dest), url, dest)
	if err != nil {
		return err
	}

	if cmd.jsonOutput {
		return iojson.WriteWith(c.Root().Writer, c.Root().ErrWriter, res)
	}
	printEntries(c.Root().Writer, res.Entries)
	printDone(c.Root().Writer, "checked out revision %d into %s", res.Revision, dest)
	return nil
}
