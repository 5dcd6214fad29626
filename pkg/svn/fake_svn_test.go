package svn

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"os/exec"
	"slices"
	"sort"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/colonyops/svnkit/pkg/executil"
)

// fakeSVN answers svn invocations from in-memory state using the same text
// the real client prints.
type fakeSVN struct {
	mu sync.Mutex

	statuses       map[string]ItemStatus
	notWorkingCopy map[string]bool
	notFound       map[string]bool
	props          map[string]map[string]string

	// legacyPropdel prints the nonexistent-property message on stdout, as
	// older clients did, instead of a W200017 warning.
	legacyPropdel bool

	propsets int
	propdels int
}

func newFakeSVN() *fakeSVN {
	return &fakeSVN{
		statuses:       map[string]ItemStatus{},
		notWorkingCopy: map[string]bool{},
		notFound:       map[string]bool{},
		props:          map[string]map[string]string{},
	}
}

func newTestClient(fake *fakeSVN) (*Client, *executil.RecordingExecutor) {
	rec := &executil.RecordingExecutor{Handler: fake.handle}
	return NewClient(Options{}, rec, testLogger()), rec
}

func testLogger() zerolog.Logger { return zerolog.Nop() }

func exitErr() error { return &exec.ExitError{} }

func esc(s string) string {
	var b bytes.Buffer
	_ = xml.EscapeText(&b, []byte(s))
	return b.String()
}

// positional strips flags (and the values of --depth/--message) from args.
// Everything after "--" is positional, and the trailing path loses the @ that
// escapes its peg revision.
func positional(args []string) (verb string, values []string, flags map[string]string) {
	flags = map[string]string{}
	if len(args) == 0 {
		return "", nil, flags
	}
	verb = args[0]
	for i := 1; i < len(args); i++ {
		a := args[i]
		switch {
		case a == "--":
			values = append(values, args[i+1:]...)
			i = len(args)
		case a == "--depth" || a == "--message":
			flags[a] = args[i+1]
			i++
		case strings.HasPrefix(a, "-"):
			flags[a] = ""
		default:
			values = append(values, a)
		}
	}
	if n := len(values); n > 0 {
		values[n-1] = strings.TrimSuffix(values[n-1], "@")
	}
	return verb, values, flags
}

func (f *fakeSVN) handle(cmd string, args []string) executil.Response {
	f.mu.Lock()
	defer f.mu.Unlock()

	verb, values, flags := positional(args)
	switch verb {
	case "status":
		if flags["--depth"] == "infinity" {
			return f.statusAll(values[0])
		}
		return f.status(values[0])
	case "proplist":
		return f.proplist(values[0])
	case "propget":
		return f.propget(values[0], values[1])
	case "propset":
		return f.propset(values[0], values[1], values[2])
	case "propdel":
		return f.propdel(values[0], values[1])
	default:
		return executil.Response{Stderr: "svn: E205000: unsupported by fake: " + verb + "\n", Err: exitErr()}
	}
}

func statusXML(target string, entries ...PathStatus) string {
	var b strings.Builder
	b.WriteString("<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n<status>\n")
	fmt.Fprintf(&b, "<target\n   path=\"%s\">\n", esc(target))
	for _, e := range entries {
		item, _ := e.Status.WorkingCopyItem()
		fmt.Fprintf(&b, "<entry\n   path=\"%s\">\n<wc-status\n   props=\"none\"\n   item=\"%s\"\n   revision=\"3\">\n</wc-status>\n</entry>\n", esc(e.Path), item)
	}
	b.WriteString("</target>\n</status>\n")
	return b.String()
}

func (f *fakeSVN) status(path string) executil.Response {
	switch {
	case f.notWorkingCopy[path]:
		return executil.Response{
			Stdout: "<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n<status>\n",
			Stderr: fmt.Sprintf("svn: warning: W155007: '%s' is not a working copy\n", path),
		}
	case f.notFound[path]:
		return executil.Response{
			Stdout: "<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n<status>\n",
			Stderr: fmt.Sprintf("svn: warning: W155010: The node '%s' was not found.\n", path),
		}
	}

	if s, ok := f.statuses[path]; ok {
		return executil.Response{Stdout: statusXML(path, PathStatus{Path: path, Status: s})}
	}
	return executil.Response{Stdout: statusXML(path)}
}

func (f *fakeSVN) statusAll(path string) executil.Response {
	keys := make([]string, 0, len(f.statuses))
	for k := range f.statuses {
		if k == path || strings.HasPrefix(k, path+"/") {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	entries := make([]PathStatus, 0, len(keys))
	for _, k := range keys {
		entries = append(entries, PathStatus{Path: k, Status: f.statuses[k]})
	}
	return executil.Response{Stdout: statusXML(path, entries...)}
}

func (f *fakeSVN) proplist(path string) executil.Response {
	var b strings.Builder
	b.WriteString("<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n<properties>\n")
	props := f.props[path]
	if len(props) > 0 {
		fmt.Fprintf(&b, "<target\n   path=\"%s\">\n", esc(path))
		names := make([]string, 0, len(props))
		for name := range props {
			names = append(names, name)
		}
		slices.Sort(names)
		for _, name := range names {
			fmt.Fprintf(&b, "<property\n   name=\"%s\"/>\n", esc(name))
		}
		b.WriteString("</target>\n")
	}
	b.WriteString("</properties>\n")
	return executil.Response{Stdout: b.String()}
}

func (f *fakeSVN) propget(name, path string) executil.Response {
	value, ok := f.props[path][name]
	if !ok {
		return executil.Response{
			Stdout: "<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n<properties>\n</properties>\n",
			Stderr: fmt.Sprintf("svn: warning: W200017: Property '%s' not found on '%s'\n", name, path),
			Err:    exitErr(),
		}
	}

	return executil.Response{Stdout: fmt.Sprintf(
		"<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n<properties>\n<target\n   path=\"%s\">\n<property\n   name=\"%s\">%s</property>\n</target>\n</properties>\n",
		esc(path), esc(name), esc(value),
	)}
}

func (f *fakeSVN) propset(name, value, path string) executil.Response {
	f.propsets++
	if f.props[path] == nil {
		f.props[path] = map[string]string{}
	}
	// svn stores svn:ignore with a trailing newline.
	f.props[path][name] = value + "\n"
	return executil.Response{Stdout: fmt.Sprintf("property '%s' set on '%s'\n", name, path)}
}

func (f *fakeSVN) propdel(name, path string) executil.Response {
	f.propdels++
	if _, ok := f.props[path][name]; !ok {
		msg := fmt.Sprintf("Attempting to delete nonexistent property '%s' on '%s'", name, path)
		if f.legacyPropdel {
			return executil.Response{Stdout: msg + "\n"}
		}
		return executil.Response{Stderr: "svn: warning: W200017: " + msg + "\n"}
	}
	delete(f.props[path], name)
	return executil.Response{Stdout: fmt.Sprintf("property '%s' deleted from '%s'.\n", name, path)}
}
