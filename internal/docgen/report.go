package docgen

import "fmt"

// DivergenceKind tells how a persisted document differs from a fresh one.
type DivergenceKind int

const (
	// Missing means the document does not exist.
	Missing DivergenceKind = iota
	// OutOfDate means the document content differs.
	OutOfDate
	// Unreadable means the path exists but could not be read.
	Unreadable
)

func (k DivergenceKind) String() string {
	switch k {
	case Missing:
		return "missing"
	case OutOfDate:
		return "out of date"
	case Unreadable:
		return "unreadable"
	default:
		return fmt.Sprintf("DivergenceKind(%d)", int(k))
	}
}

// Divergence describes one stale document.
type Divergence struct {
	Artifact string
	Path     string
	Kind     DivergenceKind
	// Section is the heading under which an out-of-date document first
	// differs, if known.
	Section string
	// Reason is the read error of an unreadable document.
	Reason string
}

func (d Divergence) String() string {
	switch d.Kind {
	case Missing:
		return "Missing: " + d.Path
	case Unreadable:
		return fmt.Sprintf("Unreadable: %s (%s)", d.Path, d.Reason)
	}
	if d.Section != "" {
		return fmt.Sprintf("Out of date: %s (section: %s)", d.Path, d.Section)
	}
	return "Out of date: " + d.Path
}

// Report is the outcome of a check.
type Report struct {
	Divergences []Divergence
}

func (r *Report) add(d Divergence) {
	r.Divergences = append(r.Divergences, d)
}

// OK reports whether every document is present and current.
func (r *Report) OK() bool {
	return len(r.Divergences) == 0
}

// Summary is the one-line verdict printed after the divergences.
func (r *Report) Summary() string {
	if r.OK() {
		return "Documentation is up to date."
	}
	return fmt.Sprintf("Documentation is out of date: %d problem(s).", len(r.Divergences))
}
