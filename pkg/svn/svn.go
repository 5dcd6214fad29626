// Package svn automates the Subversion command-line client. It runs svn,
// classifies what it prints, and turns the result into typed values.
//
// Every method runs one or more svn processes synchronously. Nothing is
// cached between calls because the working copy can change at any time.
package svn

import (
	"context"

	"github.com/Masterminds/semver/v3"
)

// SVN defines the svn operations exposed to callers.
type SVN interface {
	// Status returns the unambiguous status of a single path. It never
	// returns StatusNotFound.
	Status(ctx context.Context, path string) (ItemStatus, error)
	// StatusAll returns the status of path and everything below it.
	StatusAll(ctx context.Context, path string) ([]PathStatus, error)
	// HasUncommittedChanges reports whether anything under path is changed locally.
	HasUncommittedChanges(ctx context.Context, path string) (bool, error)

	// Add schedules path for addition.
	Add(ctx context.Context, path string) error
	// Delete schedules path for deletion.
	Delete(ctx context.Context, path string) error
	// Revert discards local changes to path.
	Revert(ctx context.Context, path string) error
	// Commit commits path and returns the new revision.
	Commit(ctx context.Context, path, message string) (int, error)
	// Update updates path and returns the revision it is now at.
	Update(ctx context.Context, path string) (int, error)
	// UpdateEntries updates path and returns the revision plus per-entry results.
	UpdateEntries(ctx context.Context, path string) (CheckoutResult, error)
	// Checkout checks out url into path.
	Checkout(ctx context.Context, url, path string) (CheckoutResult, error)

	// ListProperties returns the names of the properties set on path.
	ListProperties(ctx context.Context, path string) ([]string, error)
	HasProperty(ctx context.Context, path, name string) (bool, error)
	GetProperty(ctx context.Context, path, name string) (string, error)
	SetProperty(ctx context.Context, path, name, value string) error
	DeleteProperty(ctx context.Context, path, name string) error

	GetPropertyValues(ctx context.Context, path, name string) ([]string, error)
	HasPropertyValue(ctx context.Context, path, name, value string) (bool, error)
	AddPropertyValue(ctx context.Context, path, name, value string) error
	RemovePropertyValue(ctx context.Context, path, name, value string) error
	SetPropertyValues(ctx context.Context, path, name string, values []string) error

	GetIgnoreValues(ctx context.Context, dir string) ([]string, error)
	HasIgnoreValue(ctx context.Context, dir, value string) (bool, error)
	AddIgnoreValue(ctx context.Context, dir, value string) error
	RemoveIgnoreValue(ctx context.Context, dir, value string) error
	SetIgnoreValue(ctx context.Context, dir, value string) error
	DeleteIgnoreValues(ctx context.Context, dir string) error
	MatchIgnore(ctx context.Context, dir, name string) (string, bool, error)

	// Version returns the version of the svn client.
	Version(ctx context.Context) (*semver.Version, error)
	// LatestRevision returns the highest revision present in a working copy directory.
	LatestRevision(ctx context.Context, dir string) (int, error)
}

var _ SVN = (*Client)(nil)
