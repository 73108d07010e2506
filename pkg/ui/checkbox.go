package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Checkbox toggles a boolean, the viewer uses it for pause and overlays.
type Checkbox struct {
	Label   string
	Value   bool
	X, Y    float64
	Size    float64
	pressed bool
}

func NewCheckbox(x, y float64, label string, value bool) *Checkbox {
	return &Checkbox{Label: label, Value: value, X: x, Y: y, Size: 14}
}

// Update toggles on click.
func (c *Checkbox) Update() {
	mx, my := ebiten.CursorPosition()
	over := float64(mx) >= c.X && float64(mx) <= c.X+c.Size &&
		float64(my) >= c.Y && float64(my) <= c.Y+c.Size
	if over && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		if !c.pressed {
			c.Value = !c.Value
		}
		c.pressed = true
		return
	}
	c.pressed = false
}

func (c *Checkbox) Draw(screen *ebiten.Image) {
	vector.StrokeRect(screen, float32(c.X), float32(c.Y), float32(c.Size), float32(c.Size),
		2, color.RGBA{R: 200, G: 200, B: 200, A: 255}, true)
	if c.Value {
		vector.FillRect(screen, float32(c.X+3), float32(c.Y+3), float32(c.Size-6), float32(c.Size-6),
			color.RGBA{R: 100, G: 200, B: 100, A: 255}, true)
	}
	ebitenutil.DebugPrintAt(screen, c.Label, int(c.X+c.Size+6), int(c.Y-1))
}

func (c *Checkbox) height() float64 { return c.Size + 8 }
func (c *Checkbox) moveTo(y float64) { c.Y = y }
