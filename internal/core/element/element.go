// Package element defines the typed UI element variants a skin document
// deserializes into, their shared attribute block, and the static field
// tables that bind document names to typed setters without reflection.
package element

import "github.com/google/uuid"

// Element is one deserialized UI building block.
type Element interface {
	// Tag is the document tag this variant deserializes from.
	Tag() string
	// Base exposes the shared attribute block.
	Base() *Common
	// Fields is the variant's scalar binding table.
	Fields() FieldMap
	// Composites maps composite child tags to their target value types.
	Composites() map[string]Composite
}

// Container is an Element variant that owns children.
type Container interface {
	Element
	// Children is the container's child collection.
	Children() *ChildSet
	// CollectionTag is the child tag holding references or inline children
	// (Pieces for windows and layout boxes, Pages for tab boxes).
	CollectionTag() string
}

// Common is the attribute block every variant shares.
type Common struct {
	// UID is a generated identity used in diagnostics when ScreenID is
	// absent. It never appears in documents.
	UID string

	ScreenID         string
	Font             int
	RelativePosition bool

	Location Point
	Size     Size
	Text     string

	TextColor             Color
	DisabledColor         Color
	BackgroundTextureTint Color

	AutoStretch           bool
	AutoStretchVertical   bool
	AutoStretchHorizontal bool

	TopAnchorToTop    bool
	LeftAnchorToLeft  bool
	BottomAnchorToTop bool
	RightAnchorToLeft bool

	TopAnchorOffset    int
	BottomAnchorOffset int
	LeftAnchorOffset   int
	RightAnchorOffset  int

	MinVSize int
	MinHSize int
	MaxVSize int
	MaxHSize int

	UseInLayoutHorizontal bool
	UseInLayoutVertical   bool

	parent Element
}

func newCommon() Common {
	return Common{
		UID:                   uuid.NewString(),
		Font:                  3,
		RelativePosition:      true,
		TextColor:             White(),
		DisabledColor:         Black(),
		BackgroundTextureTint: White(),
		TopAnchorToTop:        true,
		LeftAnchorToLeft:      true,
		BottomAnchorToTop:     true,
		RightAnchorToLeft:     true,
		UseInLayoutHorizontal: true,
		UseInLayoutVertical:   true,
	}
}

func (c *Common) Base() *Common { return c }

// Identity returns the ScreenID when present, the generated UID otherwise.
func (c *Common) Identity() string {
	if c.ScreenID != "" {
		return c.ScreenID
	}
	return c.UID
}

// Parent returns the owning container recorded during assembly, or nil.
func (c *Common) Parent() Element { return c.parent }

// SetParent records the owning container. The assembler guarantees at most
// one owner per element.
func (c *Common) SetParent(p Element) { c.parent = p }

// Fields is the shared scalar binding table. Variants layer their own
// entries on top via Merge.
func (c *Common) Fields() FieldMap {
	return FieldMap{
		"font":                  IntField(&c.Font),
		"relativeposition":      BoolField(&c.RelativePosition),
		"text":                  StringField(&c.Text),
		"autostretch":           BoolField(&c.AutoStretch),
		"autostretchvertical":   BoolField(&c.AutoStretchVertical),
		"autostretchhorizontal": BoolField(&c.AutoStretchHorizontal),
		"topanchortotop":        BoolField(&c.TopAnchorToTop),
		"leftanchortoleft":      BoolField(&c.LeftAnchorToLeft),
		"bottomanchortotop":     BoolField(&c.BottomAnchorToTop),
		"rightanchortoleft":     BoolField(&c.RightAnchorToLeft),
		"topanchoroffset":       IntField(&c.TopAnchorOffset),
		"bottomanchoroffset":    IntField(&c.BottomAnchorOffset),
		"leftanchoroffset":      IntField(&c.LeftAnchorOffset),
		"rightanchoroffset":     IntField(&c.RightAnchorOffset),
		"minvsize":              IntField(&c.MinVSize),
		"minhsize":              IntField(&c.MinHSize),
		"maxvsize":              IntField(&c.MaxVSize),
		"maxhsize":              IntField(&c.MaxHSize),
		"useinlayouthorizontal": BoolField(&c.UseInLayoutHorizontal),
		"useinlayoutvertical":   BoolField(&c.UseInLayoutVertical),
	}
}

// Composites maps the shared composite tags to their targets. Variants
// with extra color or offset composites shadow this method.
func (c *Common) Composites() map[string]Composite {
	return map[string]Composite{
		"Location":              &c.Location,
		"Size":                  &c.Size,
		"TextColor":             &c.TextColor,
		"DisabledColor":         &c.DisabledColor,
		"BackgroundTextureTint": &c.BackgroundTextureTint,
	}
}

// Control is the block shared by interactive variants.
type Control struct {
	Common

	EQType string

	StyleVScroll            bool
	StyleHScroll            bool
	StyleAutoVScroll        bool
	StyleAutoHScroll        bool
	StyleTransparent        bool
	StyleTransparentControl bool
	StyleBorder             bool
	StyleTooltip            bool

	TooltipReference string
	DrawTemplate     string
}

func newControl() Control {
	return Control{
		Common:       newCommon(),
		StyleTooltip: true,
	}
}

func (c *Control) Fields() FieldMap {
	return c.Common.Fields().Merge(FieldMap{
		"eqtype":                   StringField(&c.EQType),
		"style_vscroll":            BoolField(&c.StyleVScroll),
		"style_hscroll":            BoolField(&c.StyleHScroll),
		"style_autovscroll":        BoolField(&c.StyleAutoVScroll),
		"style_autohscroll":        BoolField(&c.StyleAutoHScroll),
		"style_transparent":        BoolField(&c.StyleTransparent),
		"style_transparentcontrol": BoolField(&c.StyleTransparentControl),
		"style_border":             BoolField(&c.StyleBorder),
		"style_tooltip":            BoolField(&c.StyleTooltip),
		"tooltipreference":         StringField(&c.TooltipReference),
		"drawtemplate":             StringField(&c.DrawTemplate),
	})
}
