package commands

import "github.com/urfave/cli/v3"

// NewApp returns the svnkit command tree with its global flags bound to
// flags. Callers attach Before/After hooks that populate flags.Config and
// flags.SVN.
func NewApp(flags *Flags, version string) *cli.Command {
	app := &cli.Command{
		Name:      "svnkit",
		Usage:     "Scriptable Subversion working copy automation",
		UsageText: "svnkit [global options] command [command options]",
		Description: `svnkit drives the svn command-line client and reports typed results.

Status queries always give a definite answer, property values are managed
as sets, and every command checks svn's output before reporting success.`,
		Version:               version,
		EnableShellCompletion: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (trace, debug, info, warn, error)",
				Sources:     cli.EnvVars("SVNKIT_LOG_LEVEL"),
				Value:       "warn",
				Destination: &flags.LogLevel,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "write JSON logs to this file instead of stderr",
				Sources:     cli.EnvVars("SVNKIT_LOG_FILE"),
				Destination: &flags.LogFile,
			},
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to config file",
				Sources:     cli.EnvVars("SVNKIT_CONFIG"),
				Value:       DefaultConfigPath(),
				Destination: &flags.ConfigPath,
			},
		},
	}

	app = NewStatusCmd(flags).Register(app)
	app = NewAddCmd(flags).Register(app)
	app = NewDeleteCmd(flags).Register(app)
	app = NewRevertCmd(flags).Register(app)
	app = NewCommitCmd(flags).Register(app)
	app = NewUpdateCmd(flags).Register(app)
	app = NewCheckoutCmd(flags).Register(app)
	app = NewPropCmd(flags).Register(app)
	app = NewIgnoreCmd(flags).Register(app)
	app = NewVersionCmd(flags).Register(app)
	app = NewDoctorCmd(flags).Register(app)
	app = NewDocsCmd(flags).Register(app)

	return app
}
