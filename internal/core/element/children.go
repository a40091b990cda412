package element

// ChildState is the child-collection state of a container: raw reference
// strings before assembly, owned elements after.
type ChildState uint8

const (
	ChildrenPending ChildState = iota
	ChildrenResolved
)

// ChildSet is the single tagged union a container's children live in. The
// two representations are never independently settable from outside: the
// set starts Pending, transitions to Resolved exactly once during
// assembly, and inline children decoded before assembly are queued on the
// resolved side where they take precedence over any raw references.
type ChildSet struct {
	state    ChildState
	pending  []string
	resolved []Element
}

func (s *ChildSet) State() ChildState { return s.state }

// AppendReference records one raw reference string. It reports false once
// the set has been resolved; references can only arrive from the document.
func (s *ChildSet) AppendReference(ref string) bool {
	if s.state == ChildrenResolved {
		return false
	}
	s.pending = append(s.pending, ref)
	return true
}

// AppendInline appends an inline-decoded child. The set stays Pending so a
// later assembly pass still visits it, but the child is already owned.
func (s *ChildSet) AppendInline(el Element) {
	s.resolved = append(s.resolved, el)
}

// Attach appends a child resolved or heuristically assigned by the
// assembler.
func (s *ChildSet) Attach(el Element) {
	s.resolved = append(s.resolved, el)
}

// MarkResolved finalizes the transition: pending references are discarded
// and the set is never read as Pending again.
func (s *ChildSet) MarkResolved() {
	s.pending = nil
	s.state = ChildrenResolved
}

// Mixed reports whether the source document populated both forms, which
// the format forbids. Resolved entries win; the caller drops the pending
// side and records a diagnostic.
func (s *ChildSet) Mixed() bool {
	return len(s.pending) > 0 && len(s.resolved) > 0
}

// DropPending clears and returns the pending references.
func (s *ChildSet) DropPending() []string {
	dropped := s.pending
	s.pending = nil
	return dropped
}

// References returns the raw reference strings still pending.
func (s *ChildSet) References() []string { return s.pending }

// Children returns the resolved children in attachment order. The order is
// load-bearing for later rendering and is never resorted.
func (s *ChildSet) Children() []Element { return s.resolved }

func (s *ChildSet) Len() int { return len(s.resolved) }
