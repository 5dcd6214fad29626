package svn

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
)

// IgnoreProperty holds the ignore patterns of a directory.
const IgnoreProperty = "svn:ignore"

// GetIgnoreValues returns the svn:ignore patterns of dir.
func (c *Client) GetIgnoreValues(ctx context.Context, dir string) ([]string, error) {
	return c.GetPropertyValues(ctx, dir, IgnoreProperty)
}

// HasIgnoreValue reports whether dir ignores value.
func (c *Client) HasIgnoreValue(ctx context.Context, dir, value string) (bool, error) {
	return c.HasPropertyValue(ctx, dir, IgnoreProperty, value)
}

// AddIgnoreValue adds value to the svn:ignore patterns of dir.
func (c *Client) AddIgnoreValue(ctx context.Context, dir, value string) error {
	return c.AddPropertyValue(ctx, dir, IgnoreProperty, value)
}

// RemoveIgnoreValue removes value from the svn:ignore patterns of dir.
func (c *Client) RemoveIgnoreValue(ctx context.Context, dir, value string) error {
	return c.RemovePropertyValue(ctx, dir, IgnoreProperty, value)
}

// SetIgnoreValue replaces every svn:ignore pattern of dir with value.
func (c *Client) SetIgnoreValue(ctx context.Context, dir, value string) error {
	return c.SetPropertyValues(ctx, dir, IgnoreProperty, []string{value})
}

// DeleteIgnoreValues removes the svn:ignore property from dir.
func (c *Client) DeleteIgnoreValues(ctx context.Context, dir string) error {
	return c.DeleteProperty(ctx, dir, IgnoreProperty)
}

// MatchIgnore returns the first svn:ignore pattern of dir that matches the
// base name of name.
func (c *Client) MatchIgnore(ctx context.Context, dir, name string) (string, bool, error) {
	patterns, err := c.GetIgnoreValues(ctx, dir)
	if err != nil {
		return "", false, err
	}

	base := filepath.Base(name)
	for _, pattern := range patterns {
		ok, err := doublestar.Match(pattern, base)
		if err != nil {
			return "", false, fmt.Errorf("svn:ignore pattern %q on %s: %w", pattern, dir, err)
		}
		if ok {
			return pattern, true, nil
		}
	}
	return "", false, nil
}
