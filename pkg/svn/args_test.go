package svn

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArgs_Build(t *testing.T) {
	tests := []struct {
		name string
		args *args
		want []string
	}{
		{
			name: "instance status",
			args: newArgs("status").Verbose().XML().InstanceOnly().Paths("wc/file.txt"),
			want: []string{"status", "-v", "--xml", "--depth", "empty", "--non-interactive", "--", "wc/file.txt@"},
		},
		{
			name: "commit message",
			args: newArgs("commit").NameValue("message", "fix it").Paths("wc"),
			want: []string{"commit", "--message", "fix it", "--non-interactive", "--", "wc@"},
		},
		{
			name: "no verb",
			args: newArgs("").LongFlag("version").LongFlag("quiet"),
			want: []string{"--version", "--quiet", "--non-interactive"},
		},
		{
			name: "propset keeps value order",
			args: newArgs("propset").Values("svn:ignore", "*.log\n*.tmp").Paths("wc"),
			want: []string{"propset", "--non-interactive", "--", "svn:ignore", "*.log\n*.tmp", "wc@"},
		},
		{
			name: "path containing @",
			args: newArgs("add").Paths("wc/icon@2x.png"),
			want: []string{"add", "--non-interactive", "--", "wc/icon@2x.png@"},
		},
		{
			name: "dash values are not options",
			args: newArgs("propset").Values("svn:ignore", "-foo").Paths("-wc"),
			want: []string{"propset", "--non-interactive", "--", "svn:ignore", "-foo", "-wc@"},
		},
		{
			name: "checkout url and destination",
			args: newArgs("checkout").Values("https://svn.example.com/repo", "wc"),
			want: []string{"checkout", "--non-interactive", "--", "https://svn.example.com/repo", "wc"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.args.Build())
		})
	}
}

func TestArgs_String(t *testing.T) {
	a := newArgs("commit").NameValue("message", "say \"hi\"").Values("wc")
	assert.Equal(t, `commit --message "say \"hi\"" --non-interactive -- wc`, a.String())
}
