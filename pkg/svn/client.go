package svn

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/colonyops/svnkit/pkg/executil"
)

// DefaultMaxStatusDepth bounds the ancestor walk performed by Status.
const DefaultMaxStatusDepth = 256

// Options configures a Client.
type Options struct {
	// SvnPath is the svn executable. Defaults to "svn".
	SvnPath string
	// SvnversionPath is the svnversion executable. Defaults to "svnversion".
	SvnversionPath string
	// Timeout limits each svn invocation. Zero means no limit.
	Timeout time.Duration
	// MaxStatusDepth bounds how many ancestors Status may visit above the
	// queried path, so a walk makes at most MaxStatusDepth+1 status calls.
	MaxStatusDepth int
}

// Client implements SVN using the svn command-line tool.
type Client struct {
	svnPath        string
	svnversionPath string
	timeout        time.Duration
	maxDepth       int
	exec           executil.Executor
	log            zerolog.Logger
}

// NewClient creates a client that runs svn through exec.
func NewClient(opts Options, exec executil.Executor, log zerolog.Logger) *Client {
	c := &Client{
		svnPath:        opts.SvnPath,
		svnversionPath: opts.SvnversionPath,
		timeout:        opts.Timeout,
		maxDepth:       opts.MaxStatusDepth,
		exec:           exec,
		log:            log,
	}
	if c.svnPath == "" {
		c.svnPath = "svn"
	}
	if c.svnversionPath == "" {
		c.svnversionPath = "svnversion"
	}
	if c.maxDepth <= 0 {
		c.maxDepth = DefaultMaxStatusDepth
	}
	return c
}

// run executes svn and collects both streams. A non-zero exit is not an
// error here; callers classify the collected output. Failing to start the
// process, or hitting the timeout, is.
func (c *Client) run(ctx context.Context, a *args) (*Collector, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	col := &Collector{}
	err := c.exec.RunStream(ctx, col.Output(), col.Error(), c.svnPath, a.Build()...)

	c.log.Trace().
		Ctx(ctx).
		Str("args", a.String()).
		Int("exit_code", executil.ExitCode(err)).
		Bool("stderr", col.AnyError()).
		Msg("svn finished")

	// A killed svn exits non-zero, so the deadline is checked before the
	// exit status.
	if ctxErr := ctx.Err(); ctxErr != nil {
		return col, fmt.Errorf("run svn %s: %w", a.verb, ctxErr)
	}
	if err != nil && !executil.IsExitError(err) {
		return col, fmt.Errorf("run svn %s: %w", a.verb, err)
	}
	return col, nil
}

// normalizePath removes trailing separators so files and directories are
// queried the same way.
func normalizePath(path string) string {
	return filepath.Clean(path)
}

// pathForms returns the spellings svn may use when echoing path back.
func pathForms(path string) []string {
	forms := []string{path}
	if abs, err := filepath.Abs(path); err == nil && abs != path {
		forms = append(forms, abs)
	}
	return forms
}
