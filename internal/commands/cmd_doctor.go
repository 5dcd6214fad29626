package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/muesli/reflow/wrap"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/svnkit/internal/core/doctor"
	"github.com/colonyops/svnkit/internal/core/styles"
	"github.com/colonyops/svnkit/pkg/iojson"
)

// detailWidth is where long check details wrap onto indented lines.
const detailWidth = 60

type DoctorCmd struct {
	flags  *Flags
	format string
}

func NewDoctorCmd(flags *Flags) *DoctorCmd {
	return &DoctorCmd{flags: flags}
}

func (cmd *DoctorCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:        "doctor",
		Usage:       "Run health checks on your svnkit setup",
		UsageText:   "svnkit doctor [options]",
		Description: "Checks the configuration, the svn executables, and the svn client version.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "format",
				Usage:       "output format (text, json)",
				Value:       "text",
				Destination: &cmd.format,
			},
		},
		Action: cmd.run,
	})
	return app
}

func (cmd *DoctorCmd) checks() ([]doctor.Check, error) {
	cfg := cmd.flags.Config

	constraint, err := cfg.VersionConstraint()
	if err != nil {
		return nil, err
	}

	return []doctor.Check{
		doctor.NewConfigCheck(cfg, cmd.flags.ConfigPath),
		doctor.NewToolsCheck(cfg.SvnPath, cfg.SvnversionPath),
		doctor.NewVersionCheck(cmd.flags.SVN, constraint),
	}, nil
}

func (cmd *DoctorCmd) run(ctx context.Context, c *cli.Command) error {
	checks, err := cmd.checks()
	if err != nil {
		return err
	}

	results := doctor.RunAll(withOp(ctx, "doctor", ""), checks)

	if cmd.format == "json" {
		return cmd.outputJSON(c, results)
	}

	return cmd.outputText(c, results)
}

type summaryJSON struct {
	Passed int `json:"passed"`
	Warned int `json:"warned"`
	Failed int `json:"failed"`
}

func (cmd *DoctorCmd) outputJSON(c *cli.Command, results []doctor.Result) error {
	passed, warned, failed := doctor.Summary(results)

	out := struct {
		Healthy bool            `json:"healthy"`
		Summary summaryJSON     `json:"summary"`
		Checks  []doctor.Result `json:"checks"`
	}{
		Healthy: failed == 0,
		Summary: summaryJSON{Passed: passed, Warned: warned, Failed: failed},
		Checks:  results,
	}

	if err := iojson.WriteWith(c.Root().Writer, c.Root().ErrWriter, out); err != nil {
		return err
	}
	if failed > 0 {
		return cli.Exit("", 1)
	}
	return nil
}

func (cmd *DoctorCmd) outputText(c *cli.Command, results []doctor.Result) error {
	w := c.Root().Writer

	_, _ = fmt.Fprintln(w, styles.TextPrimaryBoldStyle.Render("svnkit doctor"))
	_, _ = fmt.Fprintln(w, styles.TextMutedStyle.Render(strings.Repeat("─", 40)))

	for _, result := range results {
		_, _ = fmt.Fprintln(w, styles.TextForegroundBoldStyle.Render(result.Name))

		for _, item := range result.Items {
			var detail string
			if item.Detail != "" {
				lines := strings.Split(wrap.String(item.Detail, detailWidth), "\n")
				detail = " " + styles.TextMutedStyle.Render(lines[0])
				for _, l := range lines[1:] {
					detail += "\n    " + styles.TextMutedStyle.Render(l)
				}
			}

			var icon string
			switch item.Status {
			case doctor.StatusPass:
				icon = styles.TextSuccessStyle.Render(styles.IconPass)
			case doctor.StatusWarn:
				icon = styles.TextWarningStyle.Render(styles.IconWarn)
			case doctor.StatusFail:
				icon = styles.TextErrorStyle.Render(styles.IconFail)
			}

			_, _ = fmt.Fprintf(w, "  %s %s%s\n", icon, item.Label, detail)
		}
		_, _ = fmt.Fprintln(w)
	}

	passed, warned, failed := doctor.Summary(results)
	_, _ = fmt.Fprintf(w, "%s  %s  %s\n",
		styles.TextSuccessStyle.Render(fmt.Sprintf("%d passed", passed)),
		styles.TextWarningStyle.Render(fmt.Sprintf("%d warnings", warned)),
		styles.TextErrorStyle.Render(fmt.Sprintf("%d failed", failed)),
	)

	if failed > 0 {
		return cli.Exit("", 1)
	}
	return nil
}
