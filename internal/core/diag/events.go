// Package diag collects the recoverable anomalies produced while a skin
// document is deserialized and assembled. Nothing reported here aborts
// processing; callers inspect the collected events next to the result.
package diag

import (
	"fmt"

	"github.com/eqforge/sidl/internal/core/observability/log"
	"github.com/eqforge/sidl/pkg/sequence"
)

// Kind classifies a recoverable event.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindUnknownElementType
	KindAttributeCoercionFailure
	KindDanglingReference
	KindAmbiguousHeuristicAssignment
	KindDuplicateScreenID
	KindMixedChildForms
	KindDuplicateOwner
)

func (k Kind) String() string {
	switch k {
	case KindUnknownElementType:
		return "unknown element type"
	case KindAttributeCoercionFailure:
		return "attribute coercion failure"
	case KindDanglingReference:
		return "dangling reference"
	case KindAmbiguousHeuristicAssignment:
		return "ambiguous heuristic assignment"
	case KindDuplicateScreenID:
		return "duplicate screen id"
	case KindMixedChildForms:
		return "mixed child forms"
	case KindDuplicateOwner:
		return "duplicate owner"
	default:
		return "unknown"
	}
}

// Event is one recorded anomaly. Element carries the ScreenID (or generated
// UID) of the element the event concerns, when one is known.
type Event struct {
	Kind    Kind
	Element string
	Detail  string
}

func (e Event) String() string {
	if e.Element == "" {
		return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
	}
	return fmt.Sprintf("%s: %s: %s", e.Kind, e.Element, e.Detail)
}

// Collector accumulates events in report order. It is not safe for
// concurrent use; one collector belongs to one document pipeline.
type Collector struct {
	events []Event
	log    log.Log
}

func NewCollector(l log.Log) *Collector {
	if l == nil {
		l = log.Nop()
	}
	return &Collector{log: l}
}

// Report appends an event and mirrors it to the logger at warn level.
func (c *Collector) Report(kind Kind, element, detail string) {
	c.events = append(c.events, Event{Kind: kind, Element: element, Detail: detail})
	c.log.Warn(kind.String(),
		log.String("element", element),
		log.String("detail", detail),
	)
}

// Events returns the recorded events in report order.
func (c *Collector) Events() []Event {
	return c.events
}

func (c *Collector) Len() int {
	return len(c.events)
}

// Has reports whether at least one event of the given kind was recorded.
func (c *Collector) Has(kind Kind) bool {
	return sequence.From(c.events).Any(func(e Event) bool {
		return e.Kind == kind
	})
}

// ByKind returns the recorded events of one kind, in report order.
func (c *Collector) ByKind(kind Kind) []Event {
	return sequence.From(c.events).Filter(func(e Event) bool {
		return e.Kind == kind
	}).Collect()
}
