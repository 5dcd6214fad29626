package svn

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/svnkit/pkg/executil"
)

func scripted(resp executil.Response) (*Client, *executil.RecordingExecutor) {
	rec := &executil.RecordingExecutor{
		Handler: func(cmd string, args []string) executil.Response { return resp },
	}
	return NewClient(Options{}, rec, testLogger()), rec
}

func TestAdd(t *testing.T) {
	abs, err := filepath.Abs("wc/new.txt")
	require.NoError(t, err)

	tests := []struct {
		name    string
		resp    executil.Response
		wantErr bool
	}{
		{"text file", executil.Response{Stdout: "A         wc/new.txt\n"}, false},
		{"binary file", executil.Response{Stdout: "A  (bin)  wc/new.txt\n"}, false},
		{"absolute echo", executil.Response{Stdout: "A         " + abs + "\n"}, false},
		{"already versioned", executil.Response{
			Stderr: "svn: warning: W150002: '/tmp/wc/new.txt' is already under version control\n",
			Err:    exitErr(),
		}, true},
		{"other path", executil.Response{Stdout: "A         wc/other.txt\n"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, rec := scripted(tt.resp)

			err := client.Add(context.Background(), "wc/new.txt")
			if tt.wantErr {
				var pe *ProtocolError
				require.ErrorAs(t, err, &pe)
				assert.Equal(t, "add", pe.Op)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, []string{"add", "--non-interactive", "--", "wc/new.txt@"}, rec.Calls()[0].Args)
		})
	}
}

func TestDelete(t *testing.T) {
	client, rec := scripted(executil.Response{Stdout: "D         wc/old.txt\n"})
	require.NoError(t, client.Delete(context.Background(), "wc/old.txt"))
	assert.Equal(t, []string{"delete", "--non-interactive", "--", "wc/old.txt@"}, rec.Calls()[0].Args)

	client, _ = scripted(executil.Response{Stderr: "svn: E155010: The node 'wc/old.txt' was not found.\n", Err: exitErr()})
	var pe *ProtocolError
	assert.ErrorAs(t, client.Delete(context.Background(), "wc/old.txt"), &pe)
}

func TestRevert(t *testing.T) {
	tests := []struct {
		name    string
		resp    executil.Response
		wantErr bool
	}{
		{"reverted", executil.Response{Stdout: "Reverted 'wc/a.txt'\n"}, false},
		{"nothing to revert", executil.Response{}, false},
		{"unexpected", executil.Response{Stdout: "Skipped 'wc/a.txt'\n"}, true},
		{"error only", executil.Response{Stderr: "svn: E155007: not a working copy\n", Err: exitErr()}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := scripted(tt.resp)
			err := client.Revert(context.Background(), "wc/a.txt")
			if tt.wantErr {
				var pe *ProtocolError
				assert.ErrorAs(t, err, &pe)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestCommit(t *testing.T) {
	client, rec := scripted(executil.Response{Stdout: "Sending        wc/a.txt\nTransmitting file data .done\nCommitting transaction...\nCommitted revision 42.\n"})

	rev, err := client.Commit(context.Background(), "wc", "fix the thing")
	require.NoError(t, err)
	assert.Equal(t, 42, rev)
	assert.Equal(t, []string{"commit", "--message", "fix the thing", "--non-interactive", "--", "wc@"}, rec.Calls()[0].Args)
}

func TestCommit_NothingToCommit(t *testing.T) {
	client, _ := scripted(executil.Response{})

	_, err := client.Commit(context.Background(), "wc", "msg")
	require.ErrorIs(t, err, ErrNothingToCommit)
}

func TestCommit_MissingRevision(t *testing.T) {
	client, _ := scripted(executil.Response{
		Stdout: "Sending        wc/a.txt\n",
		Stderr: "svn: E155011: Commit failed (details follow):\nsvn: E155011: File 'wc/a.txt' is out of date\n",
		Err:    exitErr(),
	})

	_, err := client.Commit(context.Background(), "wc", "msg")

	var pe *ProtocolError
	require.ErrorAs(t, err, &pe)
	assert.Contains(t, pe.Stderr, "out of date")
}

func TestUpdateEntries(t *testing.T) {
	client, rec := scripted(executil.Response{Stdout: "Updating 'wc':\n" +
		"U    wc/a.txt\n" +
		"A    wc/new\n" +
		"A    wc/new/b.txt\n" +
		"D    wc/gone.txt\n" +
		" U   wc/props.txt\n" +
		"G    wc/merged.txt\n" +
		"C    wc/conflict.txt\n" +
		"Updated to revision 17.\n" +
		"Summary of conflicts:\n" +
		"  Text conflicts: 1\n"})

	res, err := client.UpdateEntries(context.Background(), "wc")
	require.NoError(t, err)
	assert.Equal(t, 17, res.Revision)
	assert.Equal(t, []EntryUpdateStatus{
		{Status: UpdateUpdated, RelativePath: "wc/a.txt"},
		{Status: UpdateAdded, RelativePath: "wc/new"},
		{Status: UpdateAdded, RelativePath: "wc/new/b.txt"},
		{Status: UpdateDeleted, RelativePath: "wc/gone.txt"},
		{Status: UpdateUpdated, RelativePath: "wc/props.txt"},
		{Status: UpdateMerged, RelativePath: "wc/merged.txt"},
		{Status: UpdateConflict, RelativePath: "wc/conflict.txt"},
	}, res.Entries)
	assert.Equal(t, []string{"update", "--non-interactive", "--", "wc@"}, rec.Calls()[0].Args)
}

func TestUpdate_AtRevision(t *testing.T) {
	client, _ := scripted(executil.Response{Stdout: "Updating 'wc':\nAt revision 9.\n"})

	rev, err := client.Update(context.Background(), "wc")
	require.NoError(t, err)
	assert.Equal(t, 9, rev)
}

func TestUpdate_MissingRevision(t *testing.T) {
	client, _ := scripted(executil.Response{
		Stderr: "svn: E170013: Unable to connect to a repository\n",
		Err:    exitErr(),
	})

	_, err := client.Update(context.Background(), "wc")

	var pe *ProtocolError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "update", pe.Op)
}

func TestCheckout(t *testing.T) {
	client, rec := scripted(executil.Response{Stdout: "A    wc/trunk\nA    wc/trunk/README\nChecked out revision 3.\n"})

	res, err := client.Checkout(context.Background(), "https://svn.example.com/repo/trunk", "wc")
	require.NoError(t, err)
	assert.Equal(t, 3, res.Revision)
	assert.Len(t, res.Entries, 2)
	assert.Equal(t, []string{"checkout", "--non-interactive", "--", "https://svn.example.com/repo/trunk", "wc"}, rec.Calls()[0].Args)
}

func TestParseEntryLine(t *testing.T) {
	tests := []struct {
		line   string
		want   EntryUpdateStatus
		wantOK bool
	}{
		{"U    a.txt", EntryUpdateStatus{Status: UpdateUpdated, RelativePath: "a.txt"}, true},
		{"E    dir", EntryUpdateStatus{Status: UpdateExisted, RelativePath: "dir"}, true},
		{"R    r.txt", EntryUpdateStatus{Status: UpdateReplaced, RelativePath: "r.txt"}, true},
		{"  B  locked.txt", EntryUpdateStatus{}, false},
		{"Updating 'wc':", EntryUpdateStatus{}, false},
		{"At revision 3.", EntryUpdateStatus{}, false},
		{"", EntryUpdateStatus{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got, ok, err := parseEntryLine(tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseRevisionLines(t *testing.T) {
	rev, ok := parseRevisionLine("Updated to revision 1234.")
	assert.True(t, ok)
	assert.Equal(t, 1234, rev)

	_, ok = parseRevisionLine("Committed revision 5.")
	assert.False(t, ok)

	rev, ok = parseCommittedRevision("Committed revision 5.")
	assert.True(t, ok)
	assert.Equal(t, 5, rev)

	_, ok = parseCommittedRevision("Committed revision five.")
	assert.False(t, ok)
}
