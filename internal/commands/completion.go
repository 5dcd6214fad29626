package commands

import (
	"context"
	"fmt"
	"slices"

	"github.com/urfave/cli/v3"
)

// wellKnownProperties are offered even when the current directory has no
// properties set.
var wellKnownProperties = []string{
	"svn:eol-style",
	"svn:executable",
	"svn:externals",
	"svn:global-ignores",
	"svn:ignore",
	"svn:keywords",
	"svn:mime-type",
	"svn:needs-lock",
}

// PropertyNameCompleter returns a ShellCompleteFunc that suggests property
// names for the NAME argument: the well-known svn: properties plus whatever is
// set on the current directory.
//
// When the user's last typed argument starts with "-", it falls back to the
// default flag completion behavior. Once NAME is typed nothing is suggested.
func PropertyNameCompleter(flags *Flags) cli.ShellCompleteFunc {
	return func(ctx context.Context, cmd *cli.Command) {
		args := cmd.Args()
		if args.Present() {
			last := args.Slice()[args.Len()-1]
			if len(last) > 0 && last[0] == '-' {
				cli.DefaultCompleteWithFlags(ctx, cmd)
				return
			}
			return
		}

		names := slices.Clone(wellKnownProperties)
		if flags.SVN != nil {
			if set, err := flags.SVN.ListProperties(ctx, "."); err == nil {
				for _, n := range set {
					if !slices.Contains(names, n) {
						names = append(names, n)
					}
				}
			}
		}

		w := cmd.Root().Writer
		for _, n := range names {
			_, _ = fmt.Fprintln(w, n)
		}
	}
}
