package executil

import (
	"context"
	"io"
	"sync"
)

// RecordedCommand captures a command that was executed.
type RecordedCommand struct {
	Cmd  string
	Args []string
}

// Response is the scripted result of one recorded command.
type Response struct {
	Stdout string
	Stderr string
	Err    error
}

// RecordingExecutor captures commands for testing.
// Handler, when set, answers every command. Otherwise Outputs and Errors,
// keyed by command name, control the return values.
type RecordingExecutor struct {
	mu       sync.Mutex
	Commands []RecordedCommand

	// Handler computes the response for a command.
	Handler func(cmd string, args []string) Response

	// Outputs maps command names to their stdout.
	// Key is the command name (e.g., "svn").
	Outputs map[string][]byte

	// Errors maps command names to their error.
	Errors map[string]error
}

// RunStream records the command and writes the configured output to stdout and stderr.
func (e *RecordingExecutor) RunStream(ctx context.Context, stdout, stderr io.Writer, cmd string, args ...string) error {
	resp := e.record(cmd, args...)

	if resp.Stdout != "" && stdout != nil {
		if _, err := io.WriteString(stdout, resp.Stdout); err != nil {
			return err
		}
	}
	if resp.Stderr != "" && stderr != nil {
		if _, err := io.WriteString(stderr, resp.Stderr); err != nil {
			return err
		}
	}

	return resp.Err
}

func (e *RecordingExecutor) record(cmd string, args ...string) Response {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.Commands = append(e.Commands, RecordedCommand{
		Cmd:  cmd,
		Args: append([]string(nil), args...),
	})

	if e.Handler != nil {
		return e.Handler(cmd, args)
	}

	var resp Response
	if e.Outputs != nil {
		resp.Stdout = string(e.Outputs[cmd])
	}
	if e.Errors != nil {
		resp.Err = e.Errors[cmd]
	}

	return resp
}

// Calls returns a snapshot of the recorded commands.
func (e *RecordingExecutor) Calls() []RecordedCommand {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]RecordedCommand(nil), e.Commands...)
}

// Reset clears recorded commands.
func (e *RecordingExecutor) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.Commands = nil
}
