package svn

import (
	"io"
	"strings"
	"sync"
)

// Collector buffers the output and error streams of one svn invocation.
// Output() and Error() return writers suitable for an executor's stdout and
// stderr. Lines keep their arrival order within each stream.
type Collector struct {
	mu       sync.Mutex
	out      stream
	err      stream
	anyError bool
}

type stream struct {
	lines   []string
	partial strings.Builder
}

func (s *stream) write(p []byte) {
	data := string(p)
	for {
		idx := strings.IndexByte(data, '\n')
		if idx < 0 {
			s.partial.WriteString(data)
			return
		}
		s.partial.WriteString(data[:idx])
		s.lines = append(s.lines, s.partial.String())
		s.partial.Reset()
		data = data[idx+1:]
	}
}

// raw returns the lines as received, including any carriage returns.
func (s *stream) raw() []string {
	lines := append([]string(nil), s.lines...)
	if s.partial.Len() > 0 {
		lines = append(lines, s.partial.String())
	}
	return lines
}

func (s *stream) snapshot() []string {
	lines := s.raw()
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

type streamWriter struct {
	c     *Collector
	isErr bool
}

func (w streamWriter) Write(p []byte) (int, error) {
	w.c.mu.Lock()
	defer w.c.mu.Unlock()

	if w.isErr {
		if len(p) > 0 {
			w.c.anyError = true
		}
		w.c.err.write(p)
	} else {
		w.c.out.write(p)
	}
	return len(p), nil
}

// Output returns the writer for the output stream.
func (c *Collector) Output() io.Writer { return streamWriter{c: c} }

// Error returns the writer for the error stream.
func (c *Collector) Error() io.Writer { return streamWriter{c: c, isErr: true} }

// AnyError reports whether any data arrived on the error stream.
func (c *Collector) AnyError() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.anyError
}

// OutputLines returns the collected output lines without terminators.
func (c *Collector) OutputLines() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.out.snapshot()
}

// ErrorLines returns the collected error lines without terminators.
func (c *Collector) ErrorLines() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err.snapshot()
}

// OutputText returns the output stream with every line newline-terminated.
// Carriage returns written by the tool are kept.
func (c *Collector) OutputText() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return joinLines(c.out.raw())
}

// ErrorText returns the error stream with every line newline-terminated.
func (c *Collector) ErrorText() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return joinLines(c.err.raw())
}

// TrimmedOutput returns the output text with trailing whitespace removed.
func (c *Collector) TrimmedOutput() string {
	return strings.TrimRight(c.OutputText(), " \t\r\n")
}

// TrimmedError returns the error text with trailing whitespace removed.
func (c *Collector) TrimmedError() string {
	return strings.TrimRight(c.ErrorText(), " \t\r\n")
}

// OutputReader returns a sequential reader over the output lines.
func (c *Collector) OutputReader() *LineReader {
	return &LineReader{lines: c.OutputLines()}
}

func joinLines(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	var b strings.Builder
	for _, l := range lines {
		b.WriteString(l)
		b.WriteByte('\n')
	}
	return b.String()
}

// LineReader reads collected lines one at a time.
type LineReader struct {
	lines []string
	pos   int
}

// Next returns the next line; ok is false at end of stream.
func (r *LineReader) Next() (line string, ok bool) {
	if r.pos >= len(r.lines) {
		return "", false
	}
	line = r.lines[r.pos]
	r.pos++
	return line, true
}

// Done reports whether all lines have been read.
func (r *LineReader) Done() bool {
	return r.pos >= len(r.lines)
}
