package element

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColorDefaults(t *testing.T) {
	assert.Equal(t, Color{R: 0, G: 0, B: 0, Alpha: 255}, Black())
	assert.Equal(t, Color{R: 255, G: 255, B: 255, Alpha: 255}, White())
}

func TestPointSetField(t *testing.T) {
	p := Point{}
	require.NoError(t, p.SetField("X", "12"))
	require.NoError(t, p.SetField("Y", " 34 "))
	assert.Equal(t, Point{X: 12, Y: 34}, p)

	// unknown sub-fields are ignored
	require.NoError(t, p.SetField("Z", "99"))
	assert.Equal(t, Point{X: 12, Y: 34}, p)
}

func TestSizeSetField(t *testing.T) {
	s := Size{}
	require.NoError(t, s.SetField("CX", "640"))
	require.NoError(t, s.SetField("CY", "480"))
	assert.Equal(t, Size{CX: 640, CY: 480}, s)
}

func TestColorSetFieldBadValueKeepsPrevious(t *testing.T) {
	c := White()
	err := c.SetField("R", "not-a-number")
	require.Error(t, err)
	assert.Equal(t, 255, c.R)

	require.NoError(t, c.SetField("R", "128"))
	require.NoError(t, c.SetField("Alpha", "64"))
	assert.Equal(t, Color{R: 128, G: 255, B: 255, Alpha: 64}, c)
}

func TestVariantDefaults(t *testing.T) {
	w := NewWindow()
	assert.Equal(t, 3, w.Font)
	assert.True(t, w.RelativePosition)
	assert.True(t, w.Escapable)
	assert.True(t, w.StyleTooltip)
	assert.True(t, w.StyleSizableBorderTop)
	assert.True(t, w.StyleSizableBorderTopLeft)
	assert.True(t, w.StyleSizableBorderTopRight)
	assert.True(t, w.StyleSizableBorderBottomLeft)
	assert.True(t, w.StyleSizableBorderBottomRight)
	assert.False(t, w.StyleSizable)
	assert.Equal(t, White(), w.TextColor)
	assert.Equal(t, Black(), w.DisabledColor)
	assert.NotEmpty(t, w.UID)

	g := NewGauge()
	assert.Equal(t, 16, g.GaugeOffsetY)
	assert.Equal(t, Black(), g.FillTint)

	b := NewButton()
	assert.True(t, b.TextAlignCenter)
	assert.True(t, b.TextAlignVCenter)
	assert.False(t, b.TextAlignRight)

	s := NewStaticText()
	assert.True(t, s.AutoDraw)
}

func TestIdentityFallsBackToUID(t *testing.T) {
	l := NewLabel()
	assert.Equal(t, l.UID, l.Identity())
	l.ScreenID = "MyLabel"
	assert.Equal(t, "MyLabel", l.Identity())
}
