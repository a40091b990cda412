package element

// Container variants. All carry a single ChildSet; windows, pages, and
// layout boxes collect children under Pieces, tab boxes under Pages.

// Window is a top-level screen. Its document tag is Screen.
type Window struct {
	Control

	StyleTitlebar    bool
	StyleClosebox    bool
	StyleMaximizebox bool
	StyleQMarkbox    bool
	StyleMinimizebox bool

	StyleSizable             bool
	StyleSizableBorderTop    bool
	StyleSizableBorderBottom bool
	StyleSizableBorderLeft   bool
	StyleSizableBorderRight  bool

	StyleSizableBorderTopLeft     bool
	StyleSizableBorderTopRight    bool
	StyleSizableBorderBottomLeft  bool
	StyleSizableBorderBottomRight bool

	StyleClientMovable bool
	Escapable          bool

	Pieces ChildSet
}

func NewWindow() *Window {
	return &Window{
		Control:                       newControl(),
		StyleSizableBorderTop:         true,
		StyleSizableBorderBottom:      true,
		StyleSizableBorderLeft:        true,
		StyleSizableBorderRight:       true,
		StyleSizableBorderTopLeft:     true,
		StyleSizableBorderTopRight:    true,
		StyleSizableBorderBottomLeft:  true,
		StyleSizableBorderBottomRight: true,
		Escapable:                     true,
	}
}

func (w *Window) Tag() string { return "Screen" }

func (w *Window) Fields() FieldMap {
	return w.Control.Fields().Merge(FieldMap{
		"style_titlebar":                 BoolField(&w.StyleTitlebar),
		"style_closebox":                 BoolField(&w.StyleClosebox),
		"style_maximizebox":              BoolField(&w.StyleMaximizebox),
		"style_qmarkbox":                 BoolField(&w.StyleQMarkbox),
		"style_minimizebox":              BoolField(&w.StyleMinimizebox),
		"style_sizable":                  BoolField(&w.StyleSizable),
		"style_sizablebordertop":         BoolField(&w.StyleSizableBorderTop),
		"style_sizableborderbottom":      BoolField(&w.StyleSizableBorderBottom),
		"style_sizableborderleft":        BoolField(&w.StyleSizableBorderLeft),
		"style_sizableborderright":       BoolField(&w.StyleSizableBorderRight),
		"style_sizablebordertopleft":     BoolField(&w.StyleSizableBorderTopLeft),
		"style_sizablebordertopright":    BoolField(&w.StyleSizableBorderTopRight),
		"style_sizableborderbottomleft":  BoolField(&w.StyleSizableBorderBottomLeft),
		"style_sizableborderbottomright": BoolField(&w.StyleSizableBorderBottomRight),
		"style_clientmovable":            BoolField(&w.StyleClientMovable),
		"escapable":                      BoolField(&w.Escapable),
	})
}

func (w *Window) Composites() map[string]Composite {
	return w.Common.Composites()
}

func (w *Window) Children() *ChildSet { return &w.Pieces }
func (w *Window) CollectionTag() string { return "Pieces" }

// Page is one tab page inside a TabBox.
type Page struct {
	Control

	TabText string

	Pieces ChildSet
}

func NewPage() *Page {
	return &Page{Control: newControl()}
}

func (p *Page) Tag() string { return "Page" }

func (p *Page) Fields() FieldMap {
	return p.Control.Fields().Merge(FieldMap{
		"tabtext": StringField(&p.TabText),
	})
}

func (p *Page) Composites() map[string]Composite {
	return p.Common.Composites()
}

func (p *Page) Children() *ChildSet { return &p.Pieces }
func (p *Page) CollectionTag() string { return "Pieces" }

// TabBox owns a set of Pages.
type TabBox struct {
	Control

	TabBorderTemplate  string
	PageBorderTemplate string

	Pages ChildSet
}

func NewTabBox() *TabBox {
	return &TabBox{Control: newControl()}
}

func (t *TabBox) Tag() string { return "TabBox" }

func (t *TabBox) Fields() FieldMap {
	return t.Control.Fields().Merge(FieldMap{
		"tabbordertemplate":  StringField(&t.TabBorderTemplate),
		"pagebordertemplate": StringField(&t.PageBorderTemplate),
	})
}

func (t *TabBox) Composites() map[string]Composite {
	return t.Common.Composites()
}

func (t *TabBox) Children() *ChildSet { return &t.Pages }
func (t *TabBox) CollectionTag() string { return "Pages" }

// VerticalLayoutBox stacks its pieces top to bottom.
type VerticalLayoutBox struct {
	Control

	Spacing              int
	SecondarySpacing     int
	FirstElementCentered bool

	Pieces ChildSet
}

func NewVerticalLayoutBox() *VerticalLayoutBox {
	return &VerticalLayoutBox{Control: newControl()}
}

func (v *VerticalLayoutBox) Tag() string { return "VerticalLayoutBox" }

func (v *VerticalLayoutBox) Fields() FieldMap {
	return v.Control.Fields().Merge(FieldMap{
		"spacing":              IntField(&v.Spacing),
		"secondaryspacing":     IntField(&v.SecondarySpacing),
		"firstelementcentered": BoolField(&v.FirstElementCentered),
	})
}

func (v *VerticalLayoutBox) Composites() map[string]Composite {
	return v.Common.Composites()
}

func (v *VerticalLayoutBox) Children() *ChildSet { return &v.Pieces }
func (v *VerticalLayoutBox) CollectionTag() string { return "Pieces" }

// HorizontalLayoutBox lays its pieces left to right.
type HorizontalLayoutBox struct {
	Control

	Spacing              int
	SecondarySpacing     int
	FirstElementCentered bool

	Pieces ChildSet
}

func NewHorizontalLayoutBox() *HorizontalLayoutBox {
	return &HorizontalLayoutBox{Control: newControl()}
}

func (h *HorizontalLayoutBox) Tag() string { return "HorizontalLayoutBox" }

func (h *HorizontalLayoutBox) Fields() FieldMap {
	return h.Control.Fields().Merge(FieldMap{
		"spacing":              IntField(&h.Spacing),
		"secondaryspacing":     IntField(&h.SecondarySpacing),
		"firstelementcentered": BoolField(&h.FirstElementCentered),
	})
}

func (h *HorizontalLayoutBox) Composites() map[string]Composite {
	return h.Common.Composites()
}

func (h *HorizontalLayoutBox) Children() *ChildSet { return &h.Pieces }
func (h *HorizontalLayoutBox) CollectionTag() string { return "Pieces" }
