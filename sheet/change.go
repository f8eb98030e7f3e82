package sheet

// ChangeKind identifies the mutation that produced a Change.
type ChangeKind uint8

const (
	ChangeSet ChangeKind = iota + 1
	ChangeRemove
	ChangeAddRow
	ChangeAddCol
)

func (k ChangeKind) String() string {
	switch k {
	case ChangeSet:
		return "set"
	case ChangeRemove:
		return "remove"
	case ChangeAddRow:
		return "add-row"
	case ChangeAddCol:
		return "add-col"
	default:
		return "unknown"
	}
}

// Change is a normalized, versioned mutation payload.
//
// Pos, Before and After are meaningful for ChangeSet and ChangeRemove only.
type Change struct {
	Kind          ChangeKind
	VersionBefore uint64
	VersionAfter  uint64
	SizeBefore    Size
	SizeAfter     Size

	Pos       Pos
	Before    string
	HadBefore bool
	After     string
	HasAfter  bool
}

// CellChanged reports whether the change touched a single cell's value.
func (c Change) CellChanged() bool {
	return c.Kind == ChangeSet || c.Kind == ChangeRemove
}

type changeBuilder struct {
	kind          ChangeKind
	versionBefore uint64
	sizeBefore    Size

	pos       Pos
	before    string
	hadBefore bool
	after     string
	hasAfter  bool
}

// LastChange returns the most recent effective change.
func (s *Sheet) LastChange() (Change, bool) {
	if !s.hasLastChange {
		return Change{}, false
	}
	return s.lastChange, true
}

func (s *Sheet) beginChange(kind ChangeKind) changeBuilder {
	return changeBuilder{
		kind:          kind,
		versionBefore: s.version,
		sizeBefore:    s.size,
	}
}

func (s *Sheet) commitChange(cb changeBuilder) {
	if s.version == cb.versionBefore {
		return
	}
	s.lastChange = Change{
		Kind:          cb.kind,
		VersionBefore: cb.versionBefore,
		VersionAfter:  s.version,
		SizeBefore:    cb.sizeBefore,
		SizeAfter:     s.size,
		Pos:           cb.pos,
		Before:        cb.before,
		HadBefore:     cb.hadBefore,
		After:         cb.after,
		HasAfter:      cb.hasAfter,
	}
	s.hasLastChange = true
}
