// Package executil provides process execution utilities.
package executil

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"time"
)

// DefaultWaitDelay is how long RunStream waits for output pipes to close
// after the command is killed.
const DefaultWaitDelay = 2 * time.Second

// Executor runs external commands.
type Executor interface {
	// RunStream executes a command and streams stdout/stderr to the provided writers.
	RunStream(ctx context.Context, stdout, stderr io.Writer, cmd string, args ...string) error
}

// RealExecutor calls actual commands.
type RealExecutor struct {
	// WaitDelay bounds the wait for child processes that still hold the
	// output pipes once the command is killed. Zero uses DefaultWaitDelay.
	WaitDelay time.Duration
}

// RunStream executes a command and streams stdout/stderr to the provided writers.
// A non-zero exit is returned as a wrapped *exec.ExitError; see IsExitError.
// When ctx ends before the command does, the returned error wraps ctx.Err()
// instead.
func (e *RealExecutor) RunStream(ctx context.Context, stdout, stderr io.Writer, cmd string, args ...string) error {
	c := exec.CommandContext(ctx, cmd, args...)
	c.Stdout = stdout
	c.Stderr = stderr
	c.WaitDelay = e.WaitDelay
	if c.WaitDelay <= 0 {
		c.WaitDelay = DefaultWaitDelay
	}

	err := c.Run()
	if ctxErr := ctx.Err(); ctxErr != nil {
		return fmt.Errorf("exec %s: %w", cmd, ctxErr)
	}
	if err != nil {
		return fmt.Errorf("exec %s: %w", cmd, err)
	}
	return nil
}

// IsExitError reports whether err only signals that the process ran and exited
// with a non-zero status. Start failures and errors wrapping a context error
// return false.
func IsExitError(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var exitErr *exec.ExitError
	return errors.As(err, &exitErr)
}

// ExitCode returns the exit code carried by err, 0 for a nil error and -1 when
// the process never produced one.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}

// Output runs cmd through e and returns stdout and stderr separately.
func Output(ctx context.Context, e Executor, cmd string, args ...string) (stdout, stderr []byte, err error) {
	var outBuf, errBuf bytes.Buffer
	err = e.RunStream(ctx, &outBuf, &errBuf, cmd, args...)
	return outBuf.Bytes(), errBuf.Bytes(), err
}
