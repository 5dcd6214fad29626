package svn

import "fmt"

// UpdateStatus is the per-entry result reported by svn update and checkout.
type UpdateStatus int

const (
	UpdateNone UpdateStatus = iota
	UpdateAdded
	UpdateConflict
	UpdateDeleted
	UpdateExisted
	UpdateMerged
	UpdateReplaced
	UpdateUpdated
)

// Reporting characters printed in the first columns of update output.
const (
	AddedUpdateCode    = "A"
	ConflictUpdateCode = "C"
	DeletedUpdateCode  = "D"
	ExistedUpdateCode  = "E"
	MergedUpdateCode   = "M"
	ReplacedUpdateCode = "R"
	UpdatedUpdateCode  = "U"
)

func (s UpdateStatus) String() string {
	switch s {
	case UpdateNone:
		return "none"
	case UpdateAdded:
		return "added"
	case UpdateConflict:
		return "conflict"
	case UpdateDeleted:
		return "deleted"
	case UpdateExisted:
		return "existed"
	case UpdateMerged:
		return "merged"
	case UpdateReplaced:
		return "replaced"
	case UpdateUpdated:
		return "updated"
	default:
		return fmt.Sprintf("UpdateStatus(%d)", int(s))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s UpdateStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Code returns the single-character reporting code for s.
func (s UpdateStatus) Code() (string, error) {
	switch s {
	case UpdateAdded:
		return AddedUpdateCode, nil
	case UpdateConflict:
		return ConflictUpdateCode, nil
	case UpdateDeleted:
		return DeletedUpdateCode, nil
	case UpdateExisted:
		return ExistedUpdateCode, nil
	case UpdateMerged:
		return MergedUpdateCode, nil
	case UpdateReplaced:
		return ReplacedUpdateCode, nil
	case UpdateUpdated:
		return UpdatedUpdateCode, nil
	default:
		return "", &UnknownValueError{Kind: "update status", Value: s.String()}
	}
}

// ParseUpdateCode maps a reporting code back to its UpdateStatus.
func ParseUpdateCode(code string) (UpdateStatus, error) {
	switch code {
	case AddedUpdateCode:
		return UpdateAdded, nil
	case ConflictUpdateCode:
		return UpdateConflict, nil
	case DeletedUpdateCode:
		return UpdateDeleted, nil
	case ExistedUpdateCode:
		return UpdateExisted, nil
	case MergedUpdateCode:
		return UpdateMerged, nil
	case ReplacedUpdateCode:
		return UpdateReplaced, nil
	case UpdatedUpdateCode:
		return UpdateUpdated, nil
	default:
		return UpdateNone, &UnknownValueError{Kind: "update code", Value: code}
	}
}

// EntryUpdateStatus is one entry line of update or checkout output. The path
// is printed by svn relative to the current directory of the invocation.
type EntryUpdateStatus struct {
	Status       UpdateStatus `json:"status"`
	RelativePath string       `json:"path"`
}

// CheckoutResult is the outcome of a checkout or update.
type CheckoutResult struct {
	Revision int                 `json:"revision"`
	Entries  []EntryUpdateStatus `json:"entries"`
}
