package decode

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eqforge/sidl/internal/core/diag"
	"github.com/eqforge/sidl/internal/core/element"
	"github.com/eqforge/sidl/internal/core/node"
	"github.com/eqforge/sidl/internal/core/registry"
)

func elem(tag string, attrs []node.Attr, text string, children ...*node.Node) *node.Node {
	return &node.Node{Tag: tag, Attrs: attrs, Text: text, Children: children}
}

func newDecoder() *Decoder {
	return New(nil, nil, nil)
}

func TestBoolCoercion(t *testing.T) {
	cases := []struct {
		raw  string
		want bool
	}{
		{"true", true},
		{"TRUE", true},
		{"True", true},
		{"false", false},
		{"1", false},
		{"yes", false},
		{"", false},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("%q", tc.raw), func(t *testing.T) {
			d := newDecoder()
			el, ok := d.Element(elem("Screen", []node.Attr{{Name: "Escapable", Value: tc.raw}}, ""))
			require.True(t, ok)
			assert.Equal(t, tc.want, el.(*element.Window).Escapable)
		})
	}
}

func TestIDAttributeOutranksName(t *testing.T) {
	d := newDecoder()

	// name before ID: ID still wins, it assigns unconditionally
	el, ok := d.Element(elem("Button", []node.Attr{
		{Name: "name", Value: "FromName"},
		{Name: "ID", Value: "FromID"},
	}, ""))
	require.True(t, ok)
	assert.Equal(t, "FromID", el.Base().ScreenID)

	// ID before name: name only fills an empty ScreenID
	el, ok = d.Element(elem("Button", []node.Attr{
		{Name: "ID", Value: "FromID"},
		{Name: "name", Value: "FromName"},
	}, ""))
	require.True(t, ok)
	assert.Equal(t, "FromID", el.Base().ScreenID)

	// name alone is good enough
	el, ok = d.Element(elem("Button", []node.Attr{{Name: "name", Value: "FromName"}}, ""))
	require.True(t, ok)
	assert.Equal(t, "FromName", el.Base().ScreenID)
}

func TestScreenIDChildOutranksAttributes(t *testing.T) {
	d := newDecoder()
	el, ok := d.Element(elem("Button",
		[]node.Attr{{Name: "ID", Value: "FromAttr"}}, "",
		elem("ScreenID", nil, "FromChild"),
	))
	require.True(t, ok)
	assert.Equal(t, "FromChild", el.Base().ScreenID)
}

func TestCompositeFromAttributesOnly(t *testing.T) {
	d := newDecoder()
	el, ok := d.Element(elem("Label", nil, "",
		elem("Location", []node.Attr{{Name: "X", Value: "5"}, {Name: "Y", Value: "7"}}, ""),
	))
	require.True(t, ok)
	assert.Equal(t, element.Point{X: 5, Y: 7}, el.Base().Location)
}

func TestCompositeFromSubNodesOnly(t *testing.T) {
	d := newDecoder()
	el, ok := d.Element(elem("Label", nil, "",
		elem("TextColor", nil, "",
			elem("R", nil, "10"),
			elem("G", nil, "20"),
			elem("B", nil, "30"),
			elem("Alpha", nil, "40"),
		),
	))
	require.True(t, ok)
	assert.Equal(t, element.Color{R: 10, G: 20, B: 30, Alpha: 40}, el.Base().TextColor)
}

func TestCompositeSubNodeWinsOverAttribute(t *testing.T) {
	d := newDecoder()
	el, ok := d.Element(elem("Label", nil, "",
		elem("Size", []node.Attr{{Name: "CX", Value: "100"}, {Name: "CY", Value: "50"}}, "",
			elem("CX", nil, "200"),
		),
	))
	require.True(t, ok)
	// CX from the sub-node overwrites the attribute, CY keeps the attribute
	assert.Equal(t, element.Size{CX: 200, CY: 50}, el.Base().Size)
}

func TestVariantCompositeRouting(t *testing.T) {
	d := newDecoder()
	el, ok := d.Element(elem("Button", nil, "",
		elem("MouseoverColor", nil, "", elem("R", nil, "255")),
		elem("DecalOffset", nil, "", elem("X", nil, "4"), elem("Y", nil, "6")),
	))
	require.True(t, ok)
	btn := el.(*element.Button)
	assert.Equal(t, 255, btn.MouseoverColor.R)
	assert.Equal(t, element.Point{X: 4, Y: 6}, btn.DecalOffset)
}

func TestCompositeIgnoredWhenVariantLacksField(t *testing.T) {
	d := newDecoder()
	// Labels have no FillTint; the sub-tree is ignored without complaint
	el, ok := d.Element(elem("Label", nil, "",
		elem("FillTint", nil, "", elem("R", nil, "9")),
	))
	require.True(t, ok)
	require.NotNil(t, el)
	assert.Zero(t, d.Diagnostics().Len())
}

func TestScalarPassThroughTags(t *testing.T) {
	d := newDecoder()
	el, ok := d.Element(elem("Gauge", nil, "",
		elem("Text", nil, "Mana"),
		elem("EQType", nil, "2"),
		elem("Font", nil, "5"),
	))
	require.True(t, ok)
	g := el.(*element.Gauge)
	assert.Equal(t, "Mana", g.Text)
	assert.Equal(t, "2", g.EQType)
	assert.Equal(t, 5, g.Font)
}

func TestFallbackScalarBinding(t *testing.T) {
	d := newDecoder()
	el, ok := d.Element(elem("Label", nil, "",
		elem("NoWrap", nil, "true"),
		elem("AlignCenter", nil, "True"),
	))
	require.True(t, ok)
	l := el.(*element.Label)
	assert.True(t, l.NoWrap)
	assert.True(t, l.AlignCenter)
}

func TestWindowCornerBorderFlags(t *testing.T) {
	d := newDecoder()
	el, ok := d.Element(elem("Screen", []node.Attr{
		{Name: "Style_SizableBorderTopLeft", Value: "false"},
	}, "",
		elem("Style_SizableBorderBottomRight", nil, "false"),
	))
	require.True(t, ok)
	w := el.(*element.Window)
	assert.False(t, w.StyleSizableBorderTopLeft)
	assert.False(t, w.StyleSizableBorderBottomRight)
	assert.True(t, w.StyleSizableBorderTopRight)
	assert.True(t, w.StyleSizableBorderBottomLeft)
}

func TestEmptyTextChildClears(t *testing.T) {
	d := newDecoder()
	el, ok := d.Element(elem("Label",
		[]node.Attr{{Name: "text", Value: "Seed"}}, "",
		elem("Text", nil, ""),
	))
	require.True(t, ok)
	assert.Empty(t, el.Base().Text)
}

func TestUnknownChildTagIgnored(t *testing.T) {
	d := newDecoder()
	el, ok := d.Element(elem("Label", nil, "",
		elem("Bogus", nil, "whatever"),
	))
	require.True(t, ok)
	require.NotNil(t, el)
	assert.Zero(t, d.Diagnostics().Len())
}

func TestCoercionFailureLeavesPreviousValue(t *testing.T) {
	d := newDecoder()
	el, ok := d.Element(elem("Button", []node.Attr{{Name: "font", Value: "abc"}}, ""))
	require.True(t, ok)
	assert.Equal(t, 3, el.Base().Font)

	events := d.Diagnostics().ByKind(diag.KindAttributeCoercionFailure)
	require.Len(t, events, 1)
	assert.Contains(t, events[0].Detail, "abc")
}

func TestUnknownTopLevelTagSkipped(t *testing.T) {
	d := newDecoder()
	out := d.Document(elem("XML", nil, "",
		elem("FooBar", []node.Attr{{Name: "ID", Value: "X"}}, ""),
		elem("Label", []node.Attr{{Name: "ID", Value: "MyLabel"}}, ""),
	))

	require.Len(t, out, 1)
	assert.Equal(t, "MyLabel", out[0].Base().ScreenID)

	events := d.Diagnostics().ByKind(diag.KindUnknownElementType)
	require.Len(t, events, 1)
	assert.Equal(t, "FooBar", events[0].Detail)
}

func TestDirectElementRoot(t *testing.T) {
	d := newDecoder()
	out := d.Document(elem("Screen", []node.Attr{{Name: "ID", Value: "Root"}}, ""))
	require.Len(t, out, 1)
	assert.Equal(t, "Root", out[0].Base().ScreenID)
}

func TestEmptyDocument(t *testing.T) {
	d := newDecoder()
	out := d.Document(elem("XML", nil, ""))
	assert.Empty(t, out)
	assert.Zero(t, d.Diagnostics().Len())
}

func TestReferenceCollectionTextForm(t *testing.T) {
	d := newDecoder()
	el, ok := d.Element(elem("Screen", []node.Attr{{Name: "ID", Value: "InventoryWindow"}}, "",
		elem("Pieces", nil, "IW_Slot1"),
		elem("Pieces", nil, "Button:IW_Done"),
	))
	require.True(t, ok)
	w := el.(*element.Window)
	assert.Equal(t, element.ChildrenPending, w.Pieces.State())
	assert.Equal(t, []string{"IW_Slot1", "Button:IW_Done"}, w.Pieces.References())
}

func TestInlineChildrenRecurse(t *testing.T) {
	d := newDecoder()
	el, ok := d.Element(elem("Screen", []node.Attr{{Name: "ID", Value: "BankWindow"}}, "",
		elem("Pieces", nil, "",
			elem("Button", []node.Attr{{Name: "ID", Value: "BW_Done"}}, ""),
			elem("Bogus", nil, ""),
			elem("Label", []node.Attr{{Name: "ID", Value: "BW_Title"}}, ""),
		),
	))
	require.True(t, ok)
	w := el.(*element.Window)

	children := w.Pieces.Children()
	require.Len(t, children, 2)
	assert.Equal(t, "BW_Done", children[0].Base().ScreenID)
	assert.Equal(t, "BW_Title", children[1].Base().ScreenID)
	for _, child := range children {
		assert.Same(t, el, child.Base().Parent())
	}

	assert.True(t, d.Diagnostics().Has(diag.KindUnknownElementType))
}

func TestMixedChildFormsPreferInline(t *testing.T) {
	d := newDecoder()
	el, ok := d.Element(elem("Screen", []node.Attr{{Name: "ID", Value: "MixedWindow"}}, "",
		elem("Pieces", nil, "MW_Ref"),
		elem("Pieces", nil, "",
			elem("Button", []node.Attr{{Name: "ID", Value: "MW_Inline"}}, ""),
		),
	))
	require.True(t, ok)
	w := el.(*element.Window)

	assert.Empty(t, w.Pieces.References())
	require.Equal(t, 1, w.Pieces.Len())
	assert.Equal(t, "MW_Inline", w.Pieces.Children()[0].Base().ScreenID)

	events := d.Diagnostics().ByKind(diag.KindMixedChildForms)
	require.Len(t, events, 1)
	assert.Equal(t, "MixedWindow", events[0].Element)
}

func TestTabBoxCollectsPages(t *testing.T) {
	d := newDecoder()
	el, ok := d.Element(elem("TabBox", []node.Attr{{Name: "ID", Value: "TradeskillTabs"}}, "",
		elem("Pages", nil, "TST_Page1"),
		elem("Pages", nil, "TST_Page2"),
	))
	require.True(t, ok)
	tb := el.(*element.TabBox)
	assert.Equal(t, []string{"TST_Page1", "TST_Page2"}, tb.Pages.References())
}

// slider exercises extension: a caller-registered variant with a float
// field, bound through the same tables as the builtins.
type slider struct {
	element.Common
	Value float64
}

func (s *slider) Tag() string { return "Slider" }

func (s *slider) Fields() element.FieldMap {
	return s.Common.Fields().Merge(element.FieldMap{
		"value": element.FloatField(&s.Value),
	})
}

func TestCustomVariantFloatBinding(t *testing.T) {
	reg := registry.Default()
	require.NoError(t, reg.Register("Slider", func() element.Element {
		return &slider{}
	}))
	d := New(reg, nil, nil)

	el, ok := d.Element(elem("Slider", []node.Attr{{Name: "value", Value: "0.75"}}, ""))
	require.True(t, ok)
	assert.InDelta(t, 0.75, el.(*slider).Value, 1e-9)

	// parse failure leaves the previous value
	el, ok = d.Element(elem("Slider", []node.Attr{{Name: "value", Value: "wide"}}, ""))
	require.True(t, ok)
	assert.Zero(t, el.(*slider).Value)
	assert.True(t, d.Diagnostics().Has(diag.KindAttributeCoercionFailure))
}
