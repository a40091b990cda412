package element

import (
	"fmt"
	"strconv"
	"strings"
)

// Composite is a value type a composite child tag (Location, Size,
// TextColor, ...) routes into. Each value type binds its own sub-fields by
// name; unknown names are ignored, a bad integer leaves the sub-field at
// its previous value and surfaces as an error for the caller to record.
type Composite interface {
	SetField(name, raw string) error
}

// Point is a 2D coordinate.
type Point struct {
	X int
	Y int
}

func (p *Point) SetField(name, raw string) error {
	switch name {
	case "X":
		return setInt(&p.X, raw)
	case "Y":
		return setInt(&p.Y, raw)
	}
	return nil
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Size is a 2D extent; CX is width, CY is height, following the source
// document vocabulary.
type Size struct {
	CX int
	CY int
}

func (s *Size) SetField(name, raw string) error {
	switch name {
	case "CX":
		return setInt(&s.CX, raw)
	case "CY":
		return setInt(&s.CY, raw)
	}
	return nil
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.CX, s.CY)
}

// Color is an RGBA color with integer components in [0,255].
type Color struct {
	R     int
	G     int
	B     int
	Alpha int
}

// Black is opaque black, the default for most color-bearing fields.
func Black() Color { return Color{Alpha: 255} }

// White is opaque white, the default for text color and texture tints.
func White() Color { return Color{R: 255, G: 255, B: 255, Alpha: 255} }

func (c *Color) SetField(name, raw string) error {
	switch name {
	case "R":
		return setInt(&c.R, raw)
	case "G":
		return setInt(&c.G, raw)
	case "B":
		return setInt(&c.B, raw)
	case "Alpha":
		return setInt(&c.Alpha, raw)
	}
	return nil
}

func (c Color) String() string {
	return fmt.Sprintf("rgba(%d,%d,%d,%d)", c.R, c.G, c.B, c.Alpha)
}

func setInt(dst *int, raw string) error {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return err
	}
	*dst = v
	return nil
}
