// Package assemble resolves cross-references and heuristic parent
// assignment across the deserialized elements of one document. Nothing
// here is fatal: every anomaly becomes a diagnostic and assembly always
// returns a best-effort result.
package assemble

import (
	"strings"

	"github.com/eqforge/sidl/internal/core/diag"
	"github.com/eqforge/sidl/internal/core/element"
	"github.com/eqforge/sidl/internal/core/observability/log"
	"github.com/eqforge/sidl/pkg/sequence"
)

// Result is the three-part assembly output.
type Result struct {
	// Containers maps container ScreenIDs to their finalized elements.
	Containers map[string]element.Container
	// Index maps every encountered ScreenID, nested ones included.
	Index map[string]element.Element
	// Orphans are the non-container elements left without a parent.
	Orphans []element.Element
}

type Assembler struct {
	diags      *diag.Collector
	log        log.Log
	heuristics bool
}

type Option func(*Assembler)

// WithoutHeuristics disables the stage 3 prefix-derived parent assignment.
func WithoutHeuristics() Option {
	return func(a *Assembler) { a.heuristics = false }
}

func New(diags *diag.Collector, l log.Log, opts ...Option) *Assembler {
	if l == nil {
		l = log.Nop()
	}
	if diags == nil {
		diags = diag.NewCollector(l)
	}
	a := &Assembler{diags: diags, log: l, heuristics: true}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Assemble runs the four stages over the top-level elements of one
// document. Each stage iterates a snapshot captured before its own
// mutations begin, so a container nested inside another container is
// visited exactly once per stage.
func (a *Assembler) Assemble(top []element.Element) *Result {
	res := &Result{
		Containers: make(map[string]element.Container),
		Index:      make(map[string]element.Element),
	}

	var (
		all          []element.Element   // every element, encounter order
		containers   []element.Container // every container, encounter order
		containerIDs []string            // named containers, document order
	)

	// Stage 1: index. Recurses into children already resolved inline so
	// nested elements are indexed too.
	var walk func(el element.Element)
	walk = func(el element.Element) {
		all = append(all, el)
		id := el.Base().ScreenID
		if id != "" {
			if _, dup := res.Index[id]; dup {
				a.diags.Report(diag.KindDuplicateScreenID, id, "later element not indexed")
			} else {
				res.Index[id] = el
			}
		}
		c, ok := el.(element.Container)
		if !ok {
			return
		}
		containers = append(containers, c)
		if id != "" {
			if _, dup := res.Containers[id]; !dup {
				res.Containers[id] = c
				containerIDs = append(containerIDs, id)
			}
		}
		for _, child := range c.Children().Children() {
			walk(child)
		}
	}
	for _, el := range top {
		walk(el)
	}

	// Stage 2: explicit resolution. Reference order is load-bearing for
	// rendering and is preserved as-is.
	for _, c := range containers {
		set := c.Children()
		for _, ref := range set.References() {
			id := ref
			if i := strings.IndexByte(ref, ':'); i >= 0 {
				id = ref[i+1:]
			}
			target, ok := res.Index[id]
			if !ok {
				a.diags.Report(diag.KindDanglingReference, c.Base().Identity(), ref)
				continue
			}
			if p := target.Base().Parent(); p != nil {
				a.diags.Report(diag.KindDuplicateOwner, id,
					"already owned by "+p.Base().Identity())
				continue
			}
			set.Attach(target)
			target.Base().SetParent(c)
		}
		set.MarkResolved()
	}

	// Stage 3: heuristic fallback for unreferenced elements.
	if a.heuristics {
		candidates := sequence.From(all).Filter(func(el element.Element) bool {
			if _, isContainer := el.(element.Container); isContainer {
				return false
			}
			return el.Base().Parent() == nil && el.Base().ScreenID != ""
		}).Collect()
		for _, el := range candidates {
			a.attachByPrefix(el, containerIDs, res)
		}
	}

	// Stage 4: orphan detection.
	res.Orphans = sequence.From(all).Filter(func(el element.Element) bool {
		if _, isContainer := el.(element.Container); isContainer {
			return false
		}
		return el.Base().Parent() == nil
	}).Collect()

	a.log.Info("assembly complete",
		log.Int("elements", len(all)),
		log.Int("containers", len(containers)),
		log.Int("orphans", len(res.Orphans)),
	)
	return res
}

// attachByPrefix attaches el to the first container, in document order,
// whose derived prefix matches its ScreenID. Later matches are recorded as
// ambiguous but never override the first.
func (a *Assembler) attachByPrefix(el element.Element, containerIDs []string, res *Result) {
	id := el.Base().ScreenID
	attached := false
	for _, cid := range containerIDs {
		if !matchesPrefix(id, cid) {
			continue
		}
		if attached {
			a.diags.Report(diag.KindAmbiguousHeuristicAssignment, id,
				"also matches container "+cid)
			continue
		}
		c := res.Containers[cid]
		c.Children().Attach(el)
		el.Base().SetParent(c)
		attached = true
	}
}

// prefixes derives a container's candidate ScreenID prefixes: the name
// with a trailing "Window" stripped, and its capital-initial abbreviation
// ("CharacterWindow" matches both "Character_" and "CW_").
func prefixes(containerID string) []string {
	out := []string{strings.TrimSuffix(containerID, "Window") + "_"}
	var initials []byte
	for i := 0; i < len(containerID); i++ {
		if containerID[i] >= 'A' && containerID[i] <= 'Z' {
			initials = append(initials, containerID[i])
		}
	}
	if len(initials) >= 2 {
		out = append(out, string(initials)+"_")
	}
	return out
}

func matchesPrefix(id, containerID string) bool {
	for _, p := range prefixes(containerID) {
		if strings.HasPrefix(id, p) {
			return true
		}
	}
	return false
}
