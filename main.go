package main

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/svnkit/internal/commands"
	"github.com/colonyops/svnkit/internal/core/config"
	"github.com/colonyops/svnkit/internal/core/logging"
	"github.com/colonyops/svnkit/internal/core/styles"
	"github.com/colonyops/svnkit/pkg/executil"
	"github.com/colonyops/svnkit/pkg/logutils"
	"github.com/colonyops/svnkit/pkg/svn"
)

var (
	// Build information. Populated at build-time via -ldflags flag.
	version = "dev"
	commit  = "HEAD"
	date    = "now"
)

func build() string {
	v, c, d := version, commit, date

	if v == "dev" {
		if info, ok := debug.ReadBuildInfo(); ok {
			if mv := info.Main.Version; mv != "" && mv != "(devel)" {
				v = mv
			}
			for _, s := range info.Settings {
				switch s.Key {
				case "vcs.revision":
					c = s.Value
				case "vcs.time":
					d = s.Value
				}
			}
		}
	}

	short := c
	if len(c) > 7 {
		short = c[:7]
	}

	return fmt.Sprintf("%s (%s) %s", v, short, d)
}

func main() {
	ctx := context.Background()

	var logCloser func()

	flags := &commands.Flags{}

	app := commands.NewApp(flags, build())
	app.Before = func(ctx context.Context, c *cli.Command) (context.Context, error) {
		logger, closer, err := logutils.New(flags.LogLevel, flags.LogFile, logging.ContextHook{})
		if err != nil {
			return ctx, fmt.Errorf("setup logger: %w", err)
		}
		log.Logger = logger
		logCloser = closer

		cfg, err := config.Load(flags.ConfigPath)
		if err != nil {
			return ctx, fmt.Errorf("load config: %w", err)
		}
		flags.Config = cfg

		palette, _ := styles.GetPalette(cfg.Theme)
		styles.SetTheme(palette)

		flags.SVN = svn.NewClient(svn.Options{
			SvnPath:        cfg.SvnPath,
			SvnversionPath: cfg.SvnversionPath,
			Timeout:        cfg.CommandTimeout,
			MaxStatusDepth: cfg.MaxStatusDepth,
		}, &executil.RealExecutor{}, logging.Component("svn"))

		return ctx, nil
	}
	app.After = func(ctx context.Context, c *cli.Command) error {
		if logCloser != nil {
			logCloser()
		}
		return nil
	}

	exitCode := 0
	if err := app.Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		exitCode = 1
	}

	os.Exit(exitCode)
}
