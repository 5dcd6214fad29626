package svn

import (
	"context"
	"fmt"
	"path/filepath"
	"slices"
)

// Warnings svn prints on stderr instead of status output.
const (
	notWorkingCopyWarning = "svn: warning: W155007: '%s' is not a working copy"
	nodeNotFoundWarning   = "svn: warning: W155010: The node '%s' was not found."
)

// Status returns the status of path. When svn can only say that the node was
// not found (the path sits inside an ignored or unversioned directory), the
// parent directories are queried in turn and the first definite answer is
// returned for path.
func (c *Client) Status(ctx context.Context, path string) (ItemStatus, error) {
	path = normalizePath(path)

	current := path
	for depth := 0; depth <= c.maxDepth; depth++ {
		status, err := c.instanceStatus(ctx, current)
		if err != nil {
			return StatusNone, err
		}

		if status != StatusNotFound {
			if current != path {
				c.log.Debug().
					Ctx(ctx).
					Str("path", path).
					Str("resolved_from", current).
					Stringer("status", status).
					Msg("status resolved from ancestor")
			}
			return status, nil
		}

		parent := filepath.Dir(current)
		if parent == current {
			break
		}
		current = parent
	}

	return StatusNone, fmt.Errorf("%w: %s (stopped at %s)", ErrUnresolvedStatus, path, current)
}

// instanceStatus queries a single path without recursing. It may return
// StatusNotFound.
func (c *Client) instanceStatus(ctx context.Context, path string) (ItemStatus, error) {
	a := newArgs("status").Verbose().XML().InstanceOnly().Paths(path)

	col, err := c.run(ctx, a)
	if err != nil {
		return StatusNone, err
	}

	if !col.AnyError() {
		entries, err := ParseStatusXML(col.OutputText())
		if err != nil {
			return StatusNone, err
		}

		switch len(entries) {
		case 0:
			return StatusNone, nil
		case 1:
			return entries[0].Status, nil
		default:
			return StatusNone, &ProtocolError{
				Op:     "status",
				Args:   a.String(),
				Output: col.OutputText(),
				Reason: fmt.Sprintf("expected at most one entry for %s, got %d", path, len(entries)),
			}
		}
	}

	errLines := col.ErrorLines()
	for _, form := range pathForms(path) {
		if slices.Contains(errLines, fmt.Sprintf(notWorkingCopyWarning, form)) {
			return StatusNotWorkingCopy, nil
		}
		if slices.Contains(errLines, fmt.Sprintf(nodeNotFoundWarning, form)) {
			return StatusNotFound, nil
		}
	}

	return StatusNone, &UnrecognizedWarningError{Op: "status", Path: path, Stderr: col.ErrorText()}
}

// StatusAll returns the status of path and every item below it, in the order
// svn reports them.
func (c *Client) StatusAll(ctx context.Context, path string) ([]PathStatus, error) {
	records, err := c.statusRecords(ctx, path)
	if err != nil {
		return nil, err
	}

	out := make([]PathStatus, len(records))
	for i, r := range records {
		out[i] = r.PathStatus
	}
	return out, nil
}

func (c *Client) statusRecords(ctx context.Context, path string) ([]statusRecord, error) {
	path = normalizePath(path)
	a := newArgs("status").Verbose().XML().Depth("infinity").Paths(path)

	col, err := c.run(ctx, a)
	if err != nil {
		return nil, err
	}
	if col.AnyError() {
		return nil, &UnrecognizedWarningError{Op: "status", Path: path, Stderr: col.ErrorText()}
	}

	return parseStatusRecords(col.OutputText())
}

// HasUncommittedChanges reports whether any item under path carries a local
// change that a commit would send, including property-only changes.
func (c *Client) HasUncommittedChanges(ctx context.Context, path string) (bool, error) {
	records, err := c.statusRecords(ctx, path)
	if err != nil {
		return false, err
	}

	count := 0
	for _, r := range records {
		if r.propsChanged || isLocalChange(r.Status) {
			count++
		}
	}

	return count > 0, nil
}

func isLocalChange(s ItemStatus) bool {
	switch s {
	case StatusAdded, StatusConflicted, StatusDeleted, StatusIncomplete, StatusMerged,
		StatusMissing, StatusModified, StatusObstructed, StatusReplaced:
		return true
	default:
		return false
	}
}
