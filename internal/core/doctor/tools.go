package doctor

import (
	"context"
	"os/exec"
)

// lookPathFunc is replaced in tests.
var lookPathFunc = exec.LookPath

// ToolsCheck verifies that the svn executables are available.
type ToolsCheck struct {
	svnPath        string
	svnversionPath string
}

// NewToolsCheck creates a tools check for the configured executables.
func NewToolsCheck(svnPath, svnversionPath string) *ToolsCheck {
	return &ToolsCheck{svnPath: svnPath, svnversionPath: svnversionPath}
}

func (c *ToolsCheck) Name() string {
	return "Tools"
}

func (c *ToolsCheck) Run(_ context.Context) Result {
	return Result{
		Name: c.Name(),
		Items: []CheckItem{
			lookup(c.svnPath, StatusFail, "not found on PATH"),
			// svnversion is only needed for `svnkit version --wc`
			lookup(c.svnversionPath, StatusWarn, "not found on PATH (needed for working copy revisions)"),
		},
	}
}

func lookup(name string, missing Status, detail string) CheckItem {
	path, err := lookPathFunc(name)
	if err != nil {
		return CheckItem{Label: name, Status: missing, Detail: detail}
	}
	return CheckItem{Label: name, Status: StatusPass, Detail: path}
}
