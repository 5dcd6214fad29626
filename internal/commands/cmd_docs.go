package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	docs "github.com/urfave/cli-docs/v3"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/colonyops/svnkit/internal/core/styles"
)

type DocsCmd struct {
	flags *Flags

	// flags
	raw   bool
	width int
}

func NewDocsCmd(flags *Flags) *DocsCmd {
	return &DocsCmd{flags: flags}
}

func (cmd *DocsCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:        "docs",
		Usage:       "Show the command reference",
		UsageText:   "svnkit docs [--raw] [--width N]",
		Description: "Renders the reference for a terminal. Output that is piped, or --raw, is plain markdown.",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "raw",
				Usage:       "print markdown without styling",
				Destination: &cmd.raw,
			},
			&cli.IntFlag{
				Name:        "width",
				Usage:       "wrap rendered text at this width",
				Value:       100,
				Destination: &cmd.width,
			},
		},
		Action: cmd.run,
	})
	return app
}

func (cmd *DocsCmd) run(_ context.Context, c *cli.Command) error {
	md, err := docs.ToMarkdown(c.Root())
	if err != nil {
		return fmt.Errorf("generate reference: %w", err)
	}
	out := c.Root().Writer

	if cmd.raw || out != os.Stdout || !term.IsTerminal(int(os.Stdout.Fd())) {
		_, err = fmt.Fprint(out, md)
		return err
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStyles(styles.GlamourStyle()),
		glamour.WithWordWrap(max(cmd.width, 20)),
	)
	if err != nil {
		return fmt.Errorf("create renderer: %w", err)
	}

	rendered, err := r.Render(md)
	if err != nil {
		return fmt.Errorf("render reference: %w", err)
	}
	_, err = fmt.Fprint(out, rendered)
	return err
}
