package doctor

import (
	"context"
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// VersionSource reports the installed svn client version.
type VersionSource interface {
	Version(ctx context.Context) (*semver.Version, error)
}

// VersionCheck verifies that the svn client satisfies the configured constraint.
type VersionCheck struct {
	source     VersionSource
	constraint *semver.Constraints
}

func NewVersionCheck(source VersionSource, constraint *semver.Constraints) *VersionCheck {
	return &VersionCheck{source: source, constraint: constraint}
}

func (c *VersionCheck) Name() string {
	return "Client Version"
}

func (c *VersionCheck) Run(ctx context.Context) Result {
	result := Result{Name: c.Name()}

	v, err := c.source.Version(ctx)
	if err != nil {
		result.Items = append(result.Items, CheckItem{
			Label:  "svn --version",
			Status: StatusFail,
			Detail: err.Error(),
		})
		return result
	}

	item := CheckItem{Label: v.String(), Status: StatusPass}
	if ok, errs := c.constraint.Validate(v); !ok {
		item.Status = StatusFail
		item.Detail = fmt.Sprintf("does not satisfy %s", c.constraint)
		if len(errs) > 0 {
			item.Detail = errs[0].Error()
		}
	}

	result.Items = append(result.Items, item)
	return result
}
