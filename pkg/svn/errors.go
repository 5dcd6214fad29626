package svn

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrPropertyNotFound indicates the requested property is not set on the path.
	ErrPropertyNotFound = errors.New("property not found")

	// ErrUnresolvedStatus indicates the ancestor walk ended without a definite status.
	ErrUnresolvedStatus = errors.New("status could not be resolved")

	// ErrNothingToCommit indicates a commit produced no output because nothing changed.
	ErrNothingToCommit = errors.New("nothing to commit")
)

// ProtocolError reports svn output that did not match the expected template.
type ProtocolError struct {
	Op     string // Operation that failed (e.g., "add", "commit")
	Args   string // Arguments passed to svn
	Output string // Raw captured stdout
	Stderr string // Raw captured stderr
	Reason string
}

func (e *ProtocolError) Error() string {
	var b strings.Builder
	b.WriteString("svn ")
	b.WriteString(e.Op)
	b.WriteString(": ")
	b.WriteString(e.Reason)
	if out := strings.TrimSpace(e.Output); out != "" {
		b.WriteString("\noutput:\n")
		b.WriteString(out)
	}
	if errText := strings.TrimSpace(e.Stderr); errText != "" {
		b.WriteString("\nerror:\n")
		b.WriteString(errText)
	}
	return b.String()
}

// UnrecognizedWarningError reports error-stream content that is not one of the
// known benign warnings.
type UnrecognizedWarningError struct {
	Op     string
	Path   string
	Stderr string
}

func (e *UnrecognizedWarningError) Error() string {
	return fmt.Sprintf("svn %s %s: unrecognized error output:\n%s", e.Op, e.Path, strings.TrimSpace(e.Stderr))
}

// UnknownValueError reports a value outside a closed enumeration.
type UnknownValueError struct {
	Kind  string
	Value string
}

func (e *UnknownValueError) Error() string {
	return fmt.Sprintf("unrecognized %s value %q", e.Kind, e.Value)
}

// ParseError reports structured output that could not be decoded.
type ParseError struct {
	What string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %v", e.What, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
