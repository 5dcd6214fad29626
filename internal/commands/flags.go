package commands

import (
	"context"
	"os"
	"path/filepath"

	"github.com/colonyops/svnkit/internal/core/config"
	"github.com/colonyops/svnkit/internal/core/logging"
	"github.com/colonyops/svnkit/pkg/svn"
)

type Flags struct {
	LogLevel   string
	LogFile    string
	ConfigPath string

	// Config is loaded in the Before hook and available to all commands
	Config *config.Config

	// SVN is the client every command runs through
	SVN svn.SVN
}

// DefaultConfigPath returns the default config file path using XDG_CONFIG_HOME.
func DefaultConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "svnkit", "config.yaml")
}

func withOp(ctx context.Context, op, target string) context.Context {
	ctx = logging.WithOperation(ctx, op)
	if target != "" {
		ctx = logging.WithTarget(ctx, target)
	}
	return ctx
}
