// Package registry maps document tags to element constructors. New
// variants plug in through Register without touching the deserializer or
// the assembler.
package registry

import (
	"errors"

	"github.com/eqforge/sidl/internal/core/element"
)

var (
	ErrAlreadyRegistered = errors.New("tag already registered")
	ErrNotRegistered     = errors.New("tag not registered")
)

// Constructor produces a default-valued instance of one element variant.
// The defaults are authoritative: each field's default fixes its coercion
// kind.
type Constructor func() element.Element

type Registry struct {
	ctors map[string]Constructor
	order []string
}

func New() *Registry {
	return &Registry{ctors: make(map[string]Constructor)}
}

// Default returns a registry preloaded with the builtin variants.
func Default() *Registry {
	r := New()
	for _, b := range builtins {
		// builtins is a literal table, collisions are a programming error
		if err := r.Register(b.tag, b.ctor); err != nil {
			panic(err)
		}
	}
	return r
}

func (r *Registry) Register(tag string, ctor Constructor) error {
	if _, ok := r.ctors[tag]; ok {
		return ErrAlreadyRegistered
	}
	r.ctors[tag] = ctor
	r.order = append(r.order, tag)
	return nil
}

func (r *Registry) Lookup(tag string) (Constructor, bool) {
	ctor, ok := r.ctors[tag]
	return ctor, ok
}

// Tags returns the registered tags in registration order.
func (r *Registry) Tags() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// The document calls a Window a Screen; the remaining tags match their
// variant names.
var builtins = []struct {
	tag  string
	ctor Constructor
}{
	{"Screen", func() element.Element { return element.NewWindow() }},
	{"Button", func() element.Element { return element.NewButton() }},
	{"Label", func() element.Element { return element.NewLabel() }},
	{"Gauge", func() element.Element { return element.NewGauge() }},
	{"StaticText", func() element.Element { return element.NewStaticText() }},
	{"InvSlot", func() element.Element { return element.NewInventorySlot() }},
	{"Page", func() element.Element { return element.NewPage() }},
	{"TabBox", func() element.Element { return element.NewTabBox() }},
	{"VerticalLayoutBox", func() element.Element { return element.NewVerticalLayoutBox() }},
	{"HorizontalLayoutBox", func() element.Element { return element.NewHorizontalLayoutBox() }},
}
