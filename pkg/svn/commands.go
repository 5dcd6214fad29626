package svn

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// Lines printed by the simple mutating commands.
const (
	addedLine       = "A         %s"
	addedBinaryLine = "A  (bin)  %s"
	deletedLine     = "D         %s"
	revertedLine    = "Reverted '%s'"
)

// Add schedules path for addition.
func (c *Client) Add(ctx context.Context, path string) error {
	path = normalizePath(path)
	c.log.Debug().Ctx(ctx).Str("op", "add").Str("path", path).Msg("adding")

	a := newArgs("add").Paths(path)
	col, err := c.run(ctx, a)
	if err != nil {
		return err
	}

	first, _ := col.OutputReader().Next()
	if !matchesPath(first, path, addedLine, addedBinaryLine) {
		return &ProtocolError{
			Op:     "add",
			Args:   a.String(),
			Output: col.OutputText(),
			Stderr: col.ErrorText(),
			Reason: "unexpected output adding " + path,
		}
	}

	c.log.Info().Ctx(ctx).Str("op", "add").Str("path", path).Msg("added")
	return nil
}

// Delete schedules path for deletion.
func (c *Client) Delete(ctx context.Context, path string) error {
	path = normalizePath(path)
	c.log.Debug().Ctx(ctx).Str("op", "delete").Str("path", path).Msg("deleting")

	a := newArgs("delete").Paths(path)
	col, err := c.run(ctx, a)
	if err != nil {
		return err
	}

	first, _ := col.OutputReader().Next()
	if !matchesPath(first, path, deletedLine) {
		return &ProtocolError{
			Op:     "delete",
			Args:   a.String(),
			Output: col.OutputText(),
			Stderr: col.ErrorText(),
			Reason: "unexpected output deleting " + path,
		}
	}

	c.log.Info().Ctx(ctx).Str("op", "delete").Str("path", path).Msg("deleted")
	return nil
}

// Revert discards local changes to path. Reverting an unmodified path, which
// makes svn print nothing, succeeds.
func (c *Client) Revert(ctx context.Context, path string) error {
	path = normalizePath(path)
	c.log.Debug().Ctx(ctx).Str("op", "revert").Str("path", path).Msg("reverting")

	a := newArgs("revert").Paths(path)
	col, err := c.run(ctx, a)
	if err != nil {
		return err
	}

	out := col.TrimmedOutput()
	quiet := out == "" && !col.AnyError()
	if !quiet && !matchesPath(out, path, revertedLine) {
		return &ProtocolError{
			Op:     "revert",
			Args:   a.String(),
			Output: col.OutputText(),
			Stderr: col.ErrorText(),
			Reason: "unexpected output reverting " + path,
		}
	}

	c.log.Info().Ctx(ctx).Str("op", "revert").Str("path", path).Bool("changed", !quiet).Msg("reverted")
	return nil
}

// Commit commits path with message and returns the new revision.
func (c *Client) Commit(ctx context.Context, path, message string) (int, error) {
	path = normalizePath(path)
	c.log.Debug().Ctx(ctx).Str("op", "commit").Str("path", path).Msg("committing")

	a := newArgs("commit").NameValue("message", message).Paths(path)
	col, err := c.run(ctx, a)
	if err != nil {
		return 0, err
	}

	if col.TrimmedOutput() == "" && !col.AnyError() {
		return 0, fmt.Errorf("commit %s: %w", path, ErrNothingToCommit)
	}

	lines := col.OutputLines()
	revision, ok := parseCommittedRevision(lastNonEmpty(lines))
	if !ok {
		return 0, &ProtocolError{
			Op:     "commit",
			Args:   a.String(),
			Output: col.OutputText(),
			Stderr: col.ErrorText(),
			Reason: "missing 'Committed revision' line",
		}
	}

	c.log.Info().Ctx(ctx).Str("op", "commit").Str("path", path).Int("revision", revision).Msg("committed")
	return revision, nil
}

// Update updates path and returns the revision it is now at.
func (c *Client) Update(ctx context.Context, path string) (int, error) {
	res, err := c.UpdateEntries(ctx, path)
	if err != nil {
		return 0, err
	}
	return res.Revision, nil
}

// UpdateEntries updates path and returns the revision along with the entries
// svn reported as changed.
func (c *Client) UpdateEntries(ctx context.Context, path string) (CheckoutResult, error) {
	path = normalizePath(path)
	c.log.Debug().Ctx(ctx).Str("op", "update").Str("path", path).Msg("updating")

	a := newArgs("update").Paths(path)
	res, err := c.runRevisionCommand(ctx, "update", a)
	if err != nil {
		return CheckoutResult{}, err
	}

	c.log.Info().Ctx(ctx).Str("op", "update").Str("path", path).Int("revision", res.Revision).Int("entries", len(res.Entries)).Msg("updated")
	return res, nil
}

// Checkout checks out url into path.
func (c *Client) Checkout(ctx context.Context, url, path string) (CheckoutResult, error) {
	path = normalizePath(path)
	c.log.Debug().Ctx(ctx).Str("op", "checkout").Str("url", url).Str("path", path).Msg("checking out")

	a := newArgs("checkout").Values(url, path)
	res, err := c.runRevisionCommand(ctx, "checkout", a)
	if err != nil {
		return CheckoutResult{}, err
	}

	c.log.Info().Ctx(ctx).Str("op", "checkout").Str("path", path).Int("revision", res.Revision).Int("entries", len(res.Entries)).Msg("checked out")
	return res, nil
}

func (c *Client) runRevisionCommand(ctx context.Context, op string, a *args) (CheckoutResult, error) {
	col, err := c.run(ctx, a)
	if err != nil {
		return CheckoutResult{}, err
	}

	res, err := parseUpdateOutput(col.OutputLines())
	if err != nil {
		return CheckoutResult{}, &ProtocolError{
			Op:     op,
			Args:   a.String(),
			Output: col.OutputText(),
			Stderr: col.ErrorText(),
			Reason: err.Error(),
		}
	}
	return res, nil
}

// parseUpdateOutput reads entry lines and the revision line of update or
// checkout output. Conflict summaries may follow the revision line.
func parseUpdateOutput(lines []string) (CheckoutResult, error) {
	res := CheckoutResult{Revision: -1}

	for _, line := range lines {
		if entry, ok, err := parseEntryLine(line); err != nil {
			return CheckoutResult{}, err
		} else if ok {
			res.Entries = append(res.Entries, entry)
			continue
		}
		if rev, ok := parseRevisionLine(line); ok {
			res.Revision = rev
		}
	}

	if res.Revision < 0 {
		return CheckoutResult{}, fmt.Errorf("missing revision line")
	}
	return res, nil
}

const entryCodes = "ACDEMRUGB "

// parseEntryLine parses lines such as "U    trunk/file.txt". The first four
// columns are status codes; the path starts after a separating space.
func parseEntryLine(line string) (EntryUpdateStatus, bool, error) {
	if len(line) < 6 || line[4] != ' ' {
		return EntryUpdateStatus{}, false, nil
	}

	cols := line[:4]
	if strings.TrimSpace(cols) == "" {
		return EntryUpdateStatus{}, false, nil
	}
	for _, r := range cols {
		if !strings.ContainsRune(entryCodes, r) {
			return EntryUpdateStatus{}, false, nil
		}
	}

	var code string
	for _, r := range cols {
		if r != ' ' && r != 'B' {
			code = string(r)
			break
		}
	}
	if code == "" {
		return EntryUpdateStatus{}, false, nil
	}

	// svn prints G (merGed) where the reporting vocabulary uses M.
	if code == "G" {
		code = MergedUpdateCode
	}

	status, err := ParseUpdateCode(code)
	if err != nil {
		return EntryUpdateStatus{}, false, err
	}

	return EntryUpdateStatus{Status: status, RelativePath: strings.TrimSpace(line[5:])}, true, nil
}

// parseRevisionLine accepts "At revision N.", "Updated to revision N." and
// "Checked out revision N.".
func parseRevisionLine(line string) (int, bool) {
	fields := strings.Fields(line)
	if len(fields) < 2 || fields[len(fields)-2] != "revision" {
		return 0, false
	}
	switch fields[0] {
	case "At", "Updated", "Checked":
	default:
		return 0, false
	}
	return parseRevisionToken(fields[len(fields)-1])
}

// parseCommittedRevision parses "Committed revision N.".
func parseCommittedRevision(line string) (int, bool) {
	fields := strings.Fields(line)
	if len(fields) != 3 || fields[0] != "Committed" || fields[1] != "revision" {
		return 0, false
	}
	return parseRevisionToken(fields[2])
}

func parseRevisionToken(tok string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSuffix(tok, "."))
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

func matchesPath(line, path string, formats ...string) bool {
	for _, form := range pathForms(path) {
		for _, format := range formats {
			if line == fmt.Sprintf(format, form) {
				return true
			}
		}
	}
	return false
}

func lastNonEmpty(lines []string) string {
	for i := len(lines) - 1; i >= 0; i-- {
		if strings.TrimSpace(lines[i]) != "" {
			return lines[i]
		}
	}
	return ""
}
