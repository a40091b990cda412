package element

// Leaf variants. Each constructor returns a fully defaulted instance; the
// defaults fix every field's coercion kind in the binding tables below.

// Button is a clickable control, optionally checkbox-styled.
type Button struct {
	Control

	StyleCheckbox bool
	RadioGroup    string

	MouseoverColor Color
	PressedColor   Color

	UseCustomMouseoverColor bool
	UseCustomDisabledColor  bool
	UseCustomPressedColor   bool

	TextAlignCenter  bool
	TextAlignRight   bool
	TextAlignVCenter bool
	TextOffsetX      int
	TextOffsetY      int

	ButtonDrawTemplate string
	Template           string

	SoundPressed string
	SoundUp      string
	SoundFlyby   string

	DecalOffset Point
	DecalSize   Size
}

func NewButton() *Button {
	return &Button{
		Control:          newControl(),
		MouseoverColor:   Black(),
		PressedColor:     Black(),
		TextAlignCenter:  true,
		TextAlignVCenter: true,
	}
}

func (b *Button) Tag() string { return "Button" }

func (b *Button) Fields() FieldMap {
	return b.Control.Fields().Merge(FieldMap{
		"style_checkbox":          BoolField(&b.StyleCheckbox),
		"radiogroup":              StringField(&b.RadioGroup),
		"usecustommouseovercolor": BoolField(&b.UseCustomMouseoverColor),
		"usecustomdisabledcolor":  BoolField(&b.UseCustomDisabledColor),
		"usecustompressedcolor":   BoolField(&b.UseCustomPressedColor),
		"textaligncenter":         BoolField(&b.TextAlignCenter),
		"textalignright":          BoolField(&b.TextAlignRight),
		"textalignvcenter":        BoolField(&b.TextAlignVCenter),
		"textoffsetx":             IntField(&b.TextOffsetX),
		"textoffsety":             IntField(&b.TextOffsetY),
		"buttondrawtemplate":      StringField(&b.ButtonDrawTemplate),
		"template":                StringField(&b.Template),
		"soundpressed":            StringField(&b.SoundPressed),
		"soundup":                 StringField(&b.SoundUp),
		"soundflyby":              StringField(&b.SoundFlyby),
	})
}

func (b *Button) Composites() map[string]Composite {
	m := b.Common.Composites()
	m["MouseoverColor"] = &b.MouseoverColor
	m["PressedColor"] = &b.PressedColor
	m["DecalOffset"] = &b.DecalOffset
	m["DecalSize"] = &b.DecalSize
	return m
}

// Gauge is a fillable progress bar bound to a game stat via EQType.
type Gauge struct {
	Control

	GaugeDrawTemplate string
	FillTint          Color
	DrawLinesFill     bool
	LinesFillTint     Color

	TextOffsetX  int
	TextOffsetY  int
	GaugeOffsetX int
	GaugeOffsetY int
}

func NewGauge() *Gauge {
	return &Gauge{
		Control:       newControl(),
		FillTint:      Black(),
		LinesFillTint: Black(),
		GaugeOffsetY:  16,
	}
}

func (g *Gauge) Tag() string { return "Gauge" }

func (g *Gauge) Fields() FieldMap {
	return g.Control.Fields().Merge(FieldMap{
		"gaugedrawtemplate": StringField(&g.GaugeDrawTemplate),
		"drawlinesfill":     BoolField(&g.DrawLinesFill),
		"textoffsetx":       IntField(&g.TextOffsetX),
		"textoffsety":       IntField(&g.TextOffsetY),
		"gaugeoffsetx":      IntField(&g.GaugeOffsetX),
		"gaugeoffsety":      IntField(&g.GaugeOffsetY),
	})
}

func (g *Gauge) Composites() map[string]Composite {
	m := g.Common.Composites()
	m["FillTint"] = &g.FillTint
	m["LinesFillTint"] = &g.LinesFillTint
	return m
}

// Label displays dynamic text.
type Label struct {
	Control

	NoWrap             bool
	AlignCenter        bool
	AlignRight         bool
	ResizeHeightToText bool
}

func NewLabel() *Label {
	return &Label{Control: newControl()}
}

func (l *Label) Tag() string { return "Label" }

func (l *Label) Fields() FieldMap {
	return l.Control.Fields().Merge(FieldMap{
		"nowrap":             BoolField(&l.NoWrap),
		"aligncenter":        BoolField(&l.AlignCenter),
		"alignright":         BoolField(&l.AlignRight),
		"resizeheighttotext": BoolField(&l.ResizeHeightToText),
	})
}

func (l *Label) Composites() map[string]Composite {
	return l.Common.Composites()
}

// StaticText is a non-interactive text block.
type StaticText struct {
	Common

	AutoDraw    bool
	NoWrap      bool
	AlignCenter bool
	AlignRight  bool
}

func NewStaticText() *StaticText {
	return &StaticText{
		Common:   newCommon(),
		AutoDraw: true,
	}
}

func (s *StaticText) Tag() string { return "StaticText" }

func (s *StaticText) Fields() FieldMap {
	return s.Common.Fields().Merge(FieldMap{
		"autodraw":    BoolField(&s.AutoDraw),
		"nowrap":      BoolField(&s.NoWrap),
		"aligncenter": BoolField(&s.AlignCenter),
		"alignright":  BoolField(&s.AlignRight),
	})
}

func (s *StaticText) Composites() map[string]Composite {
	return s.Common.Composites()
}

// InventorySlot is an item slot; EQType selects the inventory position.
type InventorySlot struct {
	Control

	Background string
}

func NewInventorySlot() *InventorySlot {
	return &InventorySlot{Control: newControl()}
}

func (i *InventorySlot) Tag() string { return "InvSlot" }

func (i *InventorySlot) Fields() FieldMap {
	return i.Control.Fields().Merge(FieldMap{
		"background": StringField(&i.Background),
	})
}

func (i *InventorySlot) Composites() map[string]Composite {
	return i.Common.Composites()
}
