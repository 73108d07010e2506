package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Slider edits a float value in [Min, Max] by dragging.
type Slider struct {
	Label    string
	Value    float64
	Min, Max float64
	X, Y     float64
	W, H     float64
	changed  bool
}

func NewSlider(x, y, w float64, label string, min, max, value float64) *Slider {
	s := &Slider{Label: label, Min: min, Max: max, X: x, Y: y, W: w, H: 10}
	s.Value = s.clamp(value)
	return s
}

// Update checks for mouse interaction
func (s *Slider) Update() {
	if !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	if float64(mx) < s.X || float64(mx) > s.X+s.W || float64(my) < s.Y || float64(my) > s.Y+s.H {
		return
	}
	v := s.clamp(s.Min + (float64(mx)-s.X)/s.W*(s.Max-s.Min))
	if v != s.Value {
		s.Value = v
		s.changed = true
	}
}

// Changed reports whether the value moved since the last call.
func (s *Slider) Changed() bool {
	c := s.changed
	s.changed = false
	return c
}

// Set moves the slider without flagging a change.
func (s *Slider) Set(v float64) {
	s.Value = s.clamp(v)
}

func (s *Slider) clamp(v float64) float64 {
	return min(max(v, s.Min), s.Max)
}

// Draw renders the slider
func (s *Slider) Draw(screen *ebiten.Image) {
	vector.FillRect(screen, float32(s.X), float32(s.Y), float32(s.W), float32(s.H), color.RGBA{R: 80, G: 80, B: 80, A: 255}, true)

	ratio := (s.Value - s.Min) / (s.Max - s.Min)
	vector.FillRect(screen, float32(s.X), float32(s.Y), float32(s.W*ratio), float32(s.H), color.RGBA{R: 200, G: 200, B: 200, A: 255}, true)

	// zero marker, the couplings change sign there
	if s.Min < 0 && s.Max > 0 {
		zx := float32(s.X + s.W*(-s.Min)/(s.Max-s.Min))
		vector.StrokeLine(screen, zx, float32(s.Y-2), zx, float32(s.Y+s.H+2), 1, color.RGBA{R: 220, G: 80, B: 80, A: 255}, true)
	}
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%+.3f", s.Value), int(s.X+s.W-48), int(s.Y-16))
}

func (s *Slider) height() float64 { return s.H + 25 }
func (s *Slider) moveTo(y float64) { s.Y = y }
