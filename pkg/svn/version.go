package svn

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/Masterminds/semver/v3"

	"github.com/colonyops/svnkit/pkg/executil"
)

// Version returns the version of the svn client, from `svn --version --quiet`.
func (c *Client) Version(ctx context.Context) (*semver.Version, error) {
	a := newArgs("").LongFlag("version").LongFlag("quiet")
	col, err := c.run(ctx, a)
	if err != nil {
		return nil, err
	}

	line := strings.TrimSpace(lastNonEmpty(col.OutputLines()))
	if line == "" {
		return nil, &ProtocolError{Op: "--version", Args: a.String(), Stderr: col.ErrorText(), Reason: "no version printed"}
	}

	v, err := semver.NewVersion(strings.Fields(line)[0])
	if err != nil {
		return nil, &ParseError{What: "svn version", Err: err}
	}

	c.log.Debug().Ctx(ctx).Str("version", v.String()).Msg("svn version")
	return v, nil
}

// LatestRevision returns the highest revision found in the working copy at
// dir. Mixed-revision output such as "4123:4168MS" yields 4168.
func (c *Client) LatestRevision(ctx context.Context, dir string) (int, error) {
	dir = normalizePath(dir)
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	stdout, stderr, err := executil.Output(ctx, c.exec, c.svnversionPath, dir, "--no-newline", "--quiet")
	if ctxErr := ctx.Err(); ctxErr != nil {
		return 0, fmt.Errorf("svnversion %s: %w", dir, ctxErr)
	}
	if err != nil {
		return 0, fmt.Errorf("svnversion %s: %w: %s", dir, err, strings.TrimSpace(string(stderr)))
	}

	rev, err := parseSvnversion(string(stdout))
	if err != nil {
		return 0, fmt.Errorf("svnversion %s: %w", dir, err)
	}

	c.log.Debug().Ctx(ctx).Str("path", dir).Int("revision", rev).Msg("latest revision")
	return rev, nil
}

func parseSvnversion(out string) (int, error) {
	s := strings.TrimSpace(out)
	if _, after, ok := strings.Cut(s, ":"); ok {
		s = after
	}
	s = strings.TrimRightFunc(s, func(r rune) bool { return !unicode.IsDigit(r) })

	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, &UnknownValueError{Kind: "svnversion output", Value: strings.TrimSpace(out)}
	}
	return n, nil
}
