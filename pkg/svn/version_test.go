package svn

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/svnkit/pkg/executil"
)

func TestVersion(t *testing.T) {
	client, rec := scripted(executil.Response{Stdout: "1.14.2\n"})

	v, err := client.Version(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "1.14.2", v.String())
	assert.Equal(t, []string{"--version", "--quiet", "--non-interactive"}, rec.Calls()[0].Args)
}

func TestVersion_Garbage(t *testing.T) {
	client, _ := scripted(executil.Response{Stdout: "not a version\n"})

	_, err := client.Version(context.Background())

	var pe *ParseError
	assert.ErrorAs(t, err, &pe)
}

func TestVersion_Empty(t *testing.T) {
	client, _ := scripted(executil.Response{})

	_, err := client.Version(context.Background())

	var pe *ProtocolError
	assert.ErrorAs(t, err, &pe)
}

func TestLatestRevision(t *testing.T) {
	rec := &executil.RecordingExecutor{
		Outputs: map[string][]byte{"/opt/svn/bin/svnversion": []byte("4123:4168MS")},
	}
	client := NewClient(Options{SvnversionPath: "/opt/svn/bin/svnversion"}, rec, testLogger())

	rev, err := client.LatestRevision(context.Background(), "wc/")
	require.NoError(t, err)
	assert.Equal(t, 4168, rev)

	calls := rec.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, "/opt/svn/bin/svnversion", calls[0].Cmd)
	assert.Equal(t, []string{"wc", "--no-newline", "--quiet"}, calls[0].Args)
}

func TestParseSvnversion(t *testing.T) {
	tests := []struct {
		out     string
		want    int
		wantErr bool
	}{
		{"4168", 4168, false},
		{"4168M", 4168, false},
		{"4123:4168MS", 4168, false},
		{"4168P\n", 4168, false},
		{"Unversioned directory", 0, true},
		{"exported", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.out, func(t *testing.T) {
			got, err := parseSvnversion(tt.out)
			if tt.wantErr {
				var uv *UnknownValueError
				assert.ErrorAs(t, err, &uv)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
