// Package decode converts generic markup nodes into typed elements. It
// resolves variants through the schema registry and binds attributes and
// child tags through the variants' static field tables.
package decode

import (
	"strings"

	"github.com/eqforge/sidl/internal/core/diag"
	"github.com/eqforge/sidl/internal/core/element"
	"github.com/eqforge/sidl/internal/core/node"
	"github.com/eqforge/sidl/internal/core/observability/log"
	"github.com/eqforge/sidl/internal/core/registry"
)

// WrapperTag is the root tag enclosing top-level elements in a skin
// document.
const WrapperTag = "XML"

type Decoder struct {
	reg   *registry.Registry
	diags *diag.Collector
	log   log.Log
}

func New(reg *registry.Registry, diags *diag.Collector, l log.Log) *Decoder {
	if reg == nil {
		reg = registry.Default()
	}
	if l == nil {
		l = log.Nop()
	}
	if diags == nil {
		diags = diag.NewCollector(l)
	}
	return &Decoder{reg: reg, diags: diags, log: l}
}

// Diagnostics returns the collector shared by this decoder.
func (d *Decoder) Diagnostics() *diag.Collector { return d.diags }

// Document converts a parsed tree into the ordered top-level elements. The
// root is either the XML wrapper enclosing the elements or directly a
// recognized element node.
func (d *Decoder) Document(root *node.Node) []element.Element {
	if root == nil {
		return nil
	}

	var out []element.Element
	if root.Tag == WrapperTag {
		for _, child := range root.Children {
			if el, ok := d.Element(child); ok {
				out = append(out, el)
			}
		}
		return out
	}

	if el, ok := d.Element(root); ok {
		out = append(out, el)
	}
	return out
}

// Element converts one node into a populated element. It reports false
// when the tag is unrecognized; the caller omits the node from its result.
func (d *Decoder) Element(n *node.Node) (element.Element, bool) {
	ctor, ok := d.reg.Lookup(n.Tag)
	if !ok {
		d.diags.Report(diag.KindUnknownElementType, "", n.Tag)
		return nil, false
	}

	el := ctor()
	base := el.Base()
	fields := el.Fields()
	comps := el.Composites()
	cont, isContainer := el.(element.Container)

	// Attributes are applied before any child node is examined. ID wins
	// unconditionally, name only fills an empty ScreenID.
	for _, a := range n.Attrs {
		switch a.Name {
		case "ID":
			base.ScreenID = a.Value
		case "name":
			if base.ScreenID == "" {
				base.ScreenID = a.Value
			}
		default:
			if f, ok := fields[strings.ToLower(a.Name)]; ok {
				d.assign(base, strings.ToLower(a.Name), f, a.Value)
			}
		}
	}

	for _, child := range n.Children {
		target, isComposite := comps[child.Tag]
		switch {
		case isComposite:
			d.composite(base, child.Tag, target, child)
		case child.Tag == "ScreenID":
			// a ScreenID child tag outranks any attribute-derived value
			base.ScreenID = child.Text
		case isContainer && child.Tag == cont.CollectionTag():
			d.collection(cont, child)
		case child.Tag == "Text":
			// assigns even when empty: a bare <Text/> clears any earlier value
			base.Text = child.Text
		case child.Text != "":
			if f, ok := fields[strings.ToLower(child.Tag)]; ok {
				d.assign(base, strings.ToLower(child.Tag), f, child.Text)
			}
		}
	}

	if isContainer && cont.Children().Mixed() {
		dropped := cont.Children().DropPending()
		d.diags.Report(diag.KindMixedChildForms, base.Identity(),
			"inline children shadow references: "+strings.Join(dropped, ", "))
	}

	d.log.Debug("decoded element",
		log.String("tag", n.Tag),
		log.String("id", base.Identity()),
	)
	return el, true
}

// collection handles a reference-collection node (Pieces, Pages). Text
// form records one raw reference; node form decodes each child inline.
func (d *Decoder) collection(cont element.Container, n *node.Node) {
	set := cont.Children()
	if n.HasChildren() {
		for _, child := range n.Children {
			el, ok := d.Element(child)
			if !ok {
				continue
			}
			el.Base().SetParent(cont)
			set.AppendInline(el)
		}
		return
	}
	if n.Text != "" {
		set.AppendReference(n.Text)
	}
}
