package commands

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/colonyops/svnkit/internal/core/styles"
	"github.com/colonyops/svnkit/pkg/svn"
)

func statusStyle(s svn.ItemStatus) lipgloss.Style {
	switch s {
	case svn.StatusNoModifications, svn.StatusExternal:
		return styles.TextSuccessStyle
	case svn.StatusAdded, svn.StatusModified, svn.StatusReplaced, svn.StatusMerged, svn.StatusDeleted:
		return styles.TextWarningStyle
	case svn.StatusConflicted, svn.StatusMissing, svn.StatusObstructed, svn.StatusIncomplete:
		return styles.TextErrorStyle
	default:
		return styles.TextMutedStyle
	}
}

func printStatus(w io.Writer, ps svn.PathStatus) {
	label := styles.StatusColumnStyle.Render(statusStyle(ps.Status).Render(ps.Status.String()))
	_, _ = fmt.Fprintf(w, "%s %s\n", label, ps.Path)
}

func printDone(w io.Writer, format string, args ...any) {
	_, _ = fmt.Fprintf(w, "%s %s\n", styles.TextSuccessStyle.Render(styles.IconPass), fmt.Sprintf(format, args...))
}

func printEntries(w io.Writer, entries []svn.EntryUpdateStatus) {
	for _, e := range entries {
		code, err := e.Status.Code()
		if err != nil {
			code = "?"
		}
		_, _ = fmt.Fprintf(w, "%s  %s\n", styles.TextMutedStyle.Render(code), e.RelativePath)
	}
}
