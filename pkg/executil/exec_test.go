package executil

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRealExecutor_RunStream(t *testing.T) {
	exec := &RealExecutor{}
	ctx := context.Background()

	t.Run("separates stdout and stderr", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		err := exec.RunStream(ctx, &stdout, &stderr, "sh", "-c", "echo out; echo err >&2")
		require.NoError(t, err)
		assert.Equal(t, "out\n", stdout.String())
		assert.Equal(t, "err\n", stderr.String())
	})

	t.Run("non-zero exit is an exit error", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		err := exec.RunStream(ctx, &stdout, &stderr, "sh", "-c", "echo warn >&2; exit 3")
		require.Error(t, err)
		assert.True(t, IsExitError(err))
		assert.Equal(t, 3, ExitCode(err))
		assert.Equal(t, "warn\n", stderr.String())
	})

	t.Run("deadline wins over the kill exit status", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(ctx, 100*time.Millisecond)
		defer cancel()

		err := exec.RunStream(ctx, nil, nil, "sleep", "5")
		require.ErrorIs(t, err, context.DeadlineExceeded)
		assert.False(t, IsExitError(err))
	})

	t.Run("orphaned children do not hold the call open", func(t *testing.T) {
		exec := &RealExecutor{WaitDelay: 100 * time.Millisecond}
		ctx, cancel := context.WithTimeout(ctx, 100*time.Millisecond)
		defer cancel()

		var stdout bytes.Buffer
		start := time.Now()
		err := exec.RunStream(ctx, &stdout, nil, "sh", "-c", "sleep 5; echo done")
		require.ErrorIs(t, err, context.DeadlineExceeded)
		assert.Less(t, time.Since(start), 3*time.Second)
	})

	t.Run("command not found is not an exit error", func(t *testing.T) {
		err := exec.RunStream(ctx, nil, nil, "nonexistent-command-12345")
		require.Error(t, err)
		assert.False(t, IsExitError(err))
		assert.Equal(t, -1, ExitCode(err))
		assert.Contains(t, err.Error(), "exec nonexistent-command-12345")
	})
}

func TestOutput(t *testing.T) {
	stdout, stderr, err := Output(context.Background(), &RealExecutor{}, "sh", "-c", "printf a; printf b >&2")
	require.NoError(t, err)
	assert.Equal(t, "a", string(stdout))
	assert.Equal(t, "b", string(stderr))
}

func TestExitCode_Nil(t *testing.T) {
	assert.Equal(t, 0, ExitCode(nil))
}

func TestRecordingExecutor_RunStream(t *testing.T) {
	t.Run("records commands", func(t *testing.T) {
		exec := &RecordingExecutor{}
		ctx := context.Background()

		_ = exec.RunStream(ctx, nil, nil, "svn", "status", "path")
		_ = exec.RunStream(ctx, nil, nil, "svn", "add", "path")

		calls := exec.Calls()
		require.Len(t, calls, 2)
		assert.Equal(t, "svn", calls[0].Cmd)
		assert.Equal(t, []string{"status", "path"}, calls[0].Args)
	})

	t.Run("returns configured output", func(t *testing.T) {
		exec := &RecordingExecutor{
			Outputs: map[string][]byte{
				"svn": []byte("output"),
			},
		}

		var stdout bytes.Buffer
		err := exec.RunStream(context.Background(), &stdout, nil, "svn", "status")
		require.NoError(t, err)
		assert.Equal(t, "output", stdout.String())
	})

	t.Run("returns configured error", func(t *testing.T) {
		expectedErr := errors.New("command failed")
		exec := &RecordingExecutor{
			Errors: map[string]error{
				"svn": expectedErr,
			},
		}

		err := exec.RunStream(context.Background(), nil, nil, "svn", "status")
		assert.Equal(t, expectedErr, err)
	})

	t.Run("handler takes precedence", func(t *testing.T) {
		exec := &RecordingExecutor{
			Outputs: map[string][]byte{"svn": []byte("ignored")},
			Handler: func(cmd string, args []string) Response {
				return Response{Stdout: args[0], Stderr: "warn"}
			},
		}

		var stdout, stderr bytes.Buffer
		err := exec.RunStream(context.Background(), &stdout, &stderr, "svn", "info")
		require.NoError(t, err)
		assert.Equal(t, "info", stdout.String())
		assert.Equal(t, "warn", stderr.String())
	})

	t.Run("reset clears commands", func(t *testing.T) {
		exec := &RecordingExecutor{}

		_ = exec.RunStream(context.Background(), nil, nil, "echo", "hello")
		require.Len(t, exec.Calls(), 1)

		exec.Reset()
		assert.Empty(t, exec.Calls())
	})
}
