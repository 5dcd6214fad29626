package svn

import "fmt"

// ItemStatus is the working copy status of a file or directory.
type ItemStatus int

const (
	// StatusNone means the item does not exist.
	StatusNone ItemStatus = iota
	// StatusNotWorkingCopy means the item is outside any working copy.
	StatusNotWorkingCopy
	// StatusNotFound means the item lies inside an ignored or unversioned
	// directory. It is ambiguous and never returned by Client.Status.
	StatusNotFound
	// StatusNoModifications is svn's "normal".
	StatusNoModifications
	StatusAdded
	StatusConflicted
	StatusDeleted
	StatusExternal
	StatusIgnored
	StatusIncomplete
	StatusMerged
	StatusMissing
	StatusModified
	StatusObstructed
	StatusReplaced
	// StatusUnversioned means the item is not under version control.
	StatusUnversioned
)

var itemStatusNames = [...]string{
	StatusNone:            "none",
	StatusNotWorkingCopy:  "not-working-copy",
	StatusNotFound:        "not-found",
	StatusNoModifications: "no-modifications",
	StatusAdded:           "added",
	StatusConflicted:      "conflicted",
	StatusDeleted:         "deleted",
	StatusExternal:        "external",
	StatusIgnored:         "ignored",
	StatusIncomplete:      "incomplete",
	StatusMerged:          "merged",
	StatusMissing:         "missing",
	StatusModified:        "modified",
	StatusObstructed:      "obstructed",
	StatusReplaced:        "replaced",
	StatusUnversioned:     "unversioned",
}

func (s ItemStatus) String() string {
	if s < 0 || int(s) >= len(itemStatusNames) {
		return fmt.Sprintf("ItemStatus(%d)", int(s))
	}
	return itemStatusNames[s]
}

// MarshalText implements encoding.TextMarshaler.
func (s ItemStatus) MarshalText() ([]byte, error) {
	if s < 0 || int(s) >= len(itemStatusNames) {
		return nil, &UnknownValueError{Kind: "item status", Value: fmt.Sprint(int(s))}
	}
	return []byte(itemStatusNames[s]), nil
}

// ParseWorkingCopyItem maps a wc-status item attribute to an ItemStatus.
func ParseWorkingCopyItem(item string) (ItemStatus, error) {
	switch item {
	case "added":
		return StatusAdded, nil
	case "conflicted":
		return StatusConflicted, nil
	case "deleted":
		return StatusDeleted, nil
	case "external":
		return StatusExternal, nil
	case "ignored":
		return StatusIgnored, nil
	case "incomplete":
		return StatusIncomplete, nil
	case "merged":
		return StatusMerged, nil
	case "missing":
		return StatusMissing, nil
	case "modified":
		return StatusModified, nil
	case "none":
		return StatusNone, nil
	case "normal":
		return StatusNoModifications, nil
	case "obstructed":
		return StatusObstructed, nil
	case "replaced":
		return StatusReplaced, nil
	case "unversioned":
		return StatusUnversioned, nil
	default:
		return StatusNone, &UnknownValueError{Kind: "wc-status item", Value: item}
	}
}

// WorkingCopyItem returns the wc-status item name for s. NotWorkingCopy and
// NotFound have no svn counterpart.
func (s ItemStatus) WorkingCopyItem() (string, error) {
	switch s {
	case StatusAdded:
		return "added", nil
	case StatusConflicted:
		return "conflicted", nil
	case StatusDeleted:
		return "deleted", nil
	case StatusExternal:
		return "external", nil
	case StatusIgnored:
		return "ignored", nil
	case StatusIncomplete:
		return "incomplete", nil
	case StatusMerged:
		return "merged", nil
	case StatusMissing:
		return "missing", nil
	case StatusModified:
		return "modified", nil
	case StatusNoModifications:
		return "normal", nil
	case StatusNone:
		return "none", nil
	case StatusObstructed:
		return "obstructed", nil
	case StatusReplaced:
		return "replaced", nil
	case StatusUnversioned:
		return "unversioned", nil
	default:
		return "", &UnknownValueError{Kind: "item status", Value: s.String()}
	}
}

// PathStatus pairs a path with its status.
type PathStatus struct {
	Path   string     `json:"path"`
	Status ItemStatus `json:"status"`
}
