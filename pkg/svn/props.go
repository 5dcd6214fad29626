package svn

import (
	"context"
	"fmt"
	"slices"
	"strings"
)

// Confirmation lines printed by propset and propdel.
const (
	propertySetLine         = "property '%s' set on '%s'"
	propertyDeletedLine     = "property '%s' deleted from '%s'."
	propertyNonexistentLine = "Attempting to delete nonexistent property '%s' on '%s'"
)

// propertyNotFoundCode prefixes the warning propget prints for an absent property.
const propertyNotFoundCode = "svn: warning: W200017:"

// ListProperties returns the names of the properties set on path, in the
// order svn lists them.
func (c *Client) ListProperties(ctx context.Context, path string) ([]string, error) {
	path = normalizePath(path)
	a := newArgs("proplist").XML().Paths(path)

	col, err := c.run(ctx, a)
	if err != nil {
		return nil, err
	}
	if col.AnyError() {
		return nil, &UnrecognizedWarningError{Op: "proplist", Path: path, Stderr: col.ErrorText()}
	}

	props, err := parsePropertiesXML(col.OutputText())
	if err != nil {
		return nil, err
	}

	names := make([]string, len(props))
	for i, p := range props {
		names[i] = p[0]
	}
	return names, nil
}

// HasProperty reports whether property name is set on path.
func (c *Client) HasProperty(ctx context.Context, path, name string) (bool, error) {
	names, err := c.ListProperties(ctx, path)
	if err != nil {
		return false, err
	}
	return slices.Contains(names, name), nil
}

// GetProperty returns the raw value of property name on path. It fails with
// ErrPropertyNotFound when the property is not set.
func (c *Client) GetProperty(ctx context.Context, path, name string) (string, error) {
	path = normalizePath(path)
	a := newArgs("propget").XML().Values(name).Paths(path)

	col, err := c.run(ctx, a)
	if err != nil {
		return "", err
	}

	if col.AnyError() {
		for _, line := range col.ErrorLines() {
			if strings.HasPrefix(line, propertyNotFoundCode) {
				return "", fmt.Errorf("%w: %s on %s", ErrPropertyNotFound, name, path)
			}
		}
		return "", &UnrecognizedWarningError{Op: "propget", Path: path, Stderr: col.ErrorText()}
	}

	props, err := parsePropertiesXML(col.OutputText())
	if err != nil {
		return "", err
	}
	for _, p := range props {
		if p[0] == name {
			return p[1], nil
		}
	}
	return "", fmt.Errorf("%w: %s on %s", ErrPropertyNotFound, name, path)
}

// SetProperty sets property name on path to value.
func (c *Client) SetProperty(ctx context.Context, path, name, value string) error {
	path = normalizePath(path)
	c.log.Debug().Ctx(ctx).Str("op", "propset").Str("path", path).Str("property", name).Msg("setting property")

	a := newArgs("propset").Values(name, value).Paths(path)
	col, err := c.run(ctx, a)
	if err != nil {
		return err
	}

	out := col.TrimmedOutput()
	if !matchesAny(out, propertySetLine, name, path) {
		return &ProtocolError{
			Op:     "propset",
			Args:   a.String(),
			Output: col.OutputText(),
			Stderr: col.ErrorText(),
			Reason: fmt.Sprintf("unexpected output setting %s on %s", name, path),
		}
	}

	c.log.Info().Ctx(ctx).Str("op", "propset").Str("path", path).Str("property", name).Msg("set property")
	return nil
}

// DeleteProperty removes property name from path. Deleting a property that is
// not set succeeds.
func (c *Client) DeleteProperty(ctx context.Context, path, name string) error {
	path = normalizePath(path)
	c.log.Debug().Ctx(ctx).Str("op", "propdel").Str("path", path).Str("property", name).Msg("deleting property")

	a := newArgs("propdel").Values(name).Paths(path)
	col, err := c.run(ctx, a)
	if err != nil {
		return err
	}

	out := col.TrimmedOutput()
	switch {
	case matchesAny(out, propertyDeletedLine, name, path):
	case matchesAny(out, propertyNonexistentLine, name, path):
	case warnedNonexistent(col.ErrorLines(), name, path):
	default:
		return &ProtocolError{
			Op:     "propdel",
			Args:   a.String(),
			Output: col.OutputText(),
			Stderr: col.ErrorText(),
			Reason: fmt.Sprintf("unexpected output deleting %s from %s", name, path),
		}
	}

	c.log.Info().Ctx(ctx).Str("op", "propdel").Str("path", path).Str("property", name).Msg("deleted property")
	return nil
}

func matchesAny(out, format, name, path string) bool {
	for _, form := range pathForms(path) {
		if out == fmt.Sprintf(format, name, form) {
			return true
		}
	}
	return false
}

// warnedNonexistent handles clients that report a missing property on stderr
// as "svn: warning: W200017: Attempting to delete nonexistent property ...".
func warnedNonexistent(lines []string, name, path string) bool {
	for _, line := range lines {
		if !strings.HasPrefix(line, "svn: warning: ") {
			continue
		}
		for _, form := range pathForms(path) {
			if strings.HasSuffix(line, fmt.Sprintf(propertyNonexistentLine, name, form)) {
				return true
			}
		}
	}
	return false
}

// The property value set operations below read, modify, and write the
// property in separate svn invocations. They are not atomic: two callers
// changing the same property on the same path race and the last write wins.
// Callers that need atomicity must serialize mutations per path.

// GetPropertyValues returns the values of a newline-separated property in
// order. An absent property yields no values.
func (c *Client) GetPropertyValues(ctx context.Context, path, name string) ([]string, error) {
	has, err := c.HasProperty(ctx, path, name)
	if err != nil {
		return nil, err
	}
	if !has {
		return []string{}, nil
	}

	raw, err := c.GetProperty(ctx, path, name)
	if err != nil {
		return nil, err
	}
	return splitValues(raw), nil
}

// HasPropertyValue reports whether value is one of the property's values.
func (c *Client) HasPropertyValue(ctx context.Context, path, name, value string) (bool, error) {
	values, err := c.GetPropertyValues(ctx, path, name)
	if err != nil {
		return false, err
	}
	return slices.Contains(values, value), nil
}

// AddPropertyValue appends value to the property unless it is already present.
func (c *Client) AddPropertyValue(ctx context.Context, path, name, value string) error {
	values, err := c.GetPropertyValues(ctx, path, name)
	if err != nil {
		return err
	}
	if slices.Contains(values, value) {
		return nil
	}
	return c.SetProperty(ctx, path, name, joinValues(append(values, value)))
}

// RemovePropertyValue removes value from the property. Removing the last
// value deletes the property; removing an absent value does nothing.
func (c *Client) RemovePropertyValue(ctx context.Context, path, name, value string) error {
	values, err := c.GetPropertyValues(ctx, path, name)
	if err != nil {
		return err
	}

	idx := slices.Index(values, value)
	if idx < 0 {
		return nil
	}
	values = slices.Delete(values, idx, idx+1)

	if len(values) == 0 {
		return c.DeleteProperty(ctx, path, name)
	}
	return c.SetProperty(ctx, path, name, joinValues(values))
}

// SetPropertyValues replaces the property with values, dropping duplicates
// and keeping first-seen order. An empty set deletes the property.
func (c *Client) SetPropertyValues(ctx context.Context, path, name string, values []string) error {
	set := make([]string, 0, len(values))
	for _, v := range values {
		if v == "" || slices.Contains(set, v) {
			continue
		}
		set = append(set, v)
	}

	if len(set) == 0 {
		return c.DeleteProperty(ctx, path, name)
	}
	return c.SetProperty(ctx, path, name, joinValues(set))
}

// splitValues splits on line breaks; empty segments are dropped.
func splitValues(raw string) []string {
	return strings.FieldsFunc(raw, func(r rune) bool { return r == '\n' || r == '\r' })
}

func joinValues(values []string) string {
	return strings.Join(values, "\n")
}
