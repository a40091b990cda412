package decode

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/eqforge/sidl/internal/core/diag"
	"github.com/eqforge/sidl/internal/core/element"
	"github.com/eqforge/sidl/internal/core/node"
)

// assign coerces raw into the field's declared kind. Booleans are a
// case-insensitive comparison against "true"; numeric parse failures leave
// the field at its previous value and record a diagnostic; strings pass
// through verbatim.
func (d *Decoder) assign(base *element.Common, name string, f element.Field, raw string) {
	switch f.Kind {
	case element.KindBool:
		f.SetBool(strings.EqualFold(strings.TrimSpace(raw), "true"))
	case element.KindInt:
		v, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			d.diags.Report(diag.KindAttributeCoercionFailure, base.Identity(),
				fmt.Sprintf("%s: %q is not an integer", name, raw))
			return
		}
		f.SetInt(v)
	case element.KindFloat:
		v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			d.diags.Report(diag.KindAttributeCoercionFailure, base.Identity(),
				fmt.Sprintf("%s: %q is not a number", name, raw))
			return
		}
		f.SetFloat(v)
	case element.KindString:
		f.SetString(raw)
	}
}

// composite routes a composite node into its target value type. Same-named
// attributes on the node itself apply first, then sub-node text; a later
// write overwrites an earlier one, so sub-nodes take final precedence.
func (d *Decoder) composite(base *element.Common, tag string, target element.Composite, n *node.Node) {
	for _, a := range n.Attrs {
		if err := target.SetField(a.Name, a.Value); err != nil {
			d.diags.Report(diag.KindAttributeCoercionFailure, base.Identity(),
				fmt.Sprintf("%s.%s: %v", tag, a.Name, err))
		}
	}
	for _, sub := range n.Children {
		if sub.Text == "" {
			continue
		}
		if err := target.SetField(sub.Tag, sub.Text); err != nil {
			d.diags.Report(diag.KindAttributeCoercionFailure, base.Identity(),
				fmt.Sprintf("%s.%s: %v", tag, sub.Tag, err))
		}
	}
}
