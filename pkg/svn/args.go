package svn

import "strings"

// args composes an svn argument vector. The verb comes first, then flags,
// then positional values.
type args struct {
	verb   string
	flags  []string
	values []string
}

func newArgs(verb string) *args {
	return &args{verb: verb}
}

// Flag adds a short flag such as -v.
func (a *args) Flag(name string) *args {
	a.flags = append(a.flags, "-"+name)
	return a
}

// LongFlag adds a long flag such as --xml.
func (a *args) LongFlag(name string) *args {
	a.flags = append(a.flags, "--"+name)
	return a
}

// NameValue adds a long flag followed by its value as a separate argument.
func (a *args) NameValue(name, value string) *args {
	a.flags = append(a.flags, "--"+name, value)
	return a
}

func (a *args) Verbose() *args { return a.Flag("v") }

func (a *args) XML() *args { return a.LongFlag("xml") }

func (a *args) Depth(depth string) *args { return a.NameValue("depth", depth) }

// InstanceOnly limits the operation to the target itself.
func (a *args) InstanceOnly() *args { return a.Depth("empty") }

// Values appends positional values such as property names and values.
func (a *args) Values(values ...string) *args {
	a.values = append(a.values, values...)
	return a
}

// Paths appends working copy paths. svn reads the text after the last @ as a
// peg revision, so each path gets a trailing @ to keep names like
// icon@2x.png intact.
func (a *args) Paths(paths ...string) *args {
	for _, p := range paths {
		a.values = append(a.values, p+"@")
	}
	return a
}

// Build returns the argument vector. --non-interactive is always present so an
// authentication prompt can never block a caller. Positional values follow
// "--" so a value starting with a dash is not read as an option.
func (a *args) Build() []string {
	out := make([]string, 0, 3+len(a.flags)+len(a.values))
	if a.verb != "" {
		out = append(out, a.verb)
	}
	out = append(out, a.flags...)
	out = append(out, "--non-interactive")
	if len(a.values) > 0 {
		out = append(out, "--")
		out = append(out, a.values...)
	}
	return out
}

// String renders the arguments for logs and error messages.
func (a *args) String() string {
	parts := a.Build()
	for i, p := range parts {
		if p == "" || strings.ContainsAny(p, " \t\n\"'") {
			parts[i] = quote(p)
		}
	}
	return strings.Join(parts, " ")
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `\"`) + `"`
}
