// Package ui holds the small ebiten widgets of the swarm viewer.
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Widget is anything the panel can stack.
type Widget interface {
	Update()
	Draw(screen *ebiten.Image)
	height() float64
	moveTo(y float64)
}

type entry struct {
	title  string // section header when set
	label  string // drawn above the widget
	widget Widget
}

// Panel stacks sections of widgets vertically.
type Panel struct {
	X, Y          float64
	Width, Height float64
	Title         string
	entries       []entry

	BGColor     color.RGBA
	BorderColor color.RGBA
}

func NewPanel(x, y, width, height float64, title string) *Panel {
	return &Panel{
		X:           x,
		Y:           y,
		Width:       width,
		Height:      height,
		Title:       title,
		BGColor:     color.RGBA{R: 40, G: 40, B: 45, A: 230},
		BorderColor: color.RGBA{R: 100, G: 100, B: 110, A: 255},
	}
}

// AddSection starts a new section header.
func (p *Panel) AddSection(title string) {
	p.entries = append(p.entries, entry{title: title})
}

// AddSlider adds a labelled slider.
func (p *Panel) AddSlider(label string, min, max, value float64) *Slider {
	s := NewSlider(p.X+10, 0, p.Width-20, label, min, max, value)
	p.entries = append(p.entries, entry{label: label, widget: s})
	p.layout()
	return s
}

// AddButton adds a full-width button.
func (p *Panel) AddButton(label string, onClick func()) *Button {
	b := NewButton(p.X+10, 0, p.Width-20, 22, label, onClick)
	p.entries = append(p.entries, entry{widget: b})
	p.layout()
	return b
}

// AddCheckbox adds a checkbox.
func (p *Panel) AddCheckbox(label string, value bool) *Checkbox {
	c := NewCheckbox(p.X+10, 0, label, value)
	p.entries = append(p.entries, entry{widget: c})
	p.layout()
	return c
}

func (p *Panel) layout() {
	y := p.Y + 30
	for _, e := range p.entries {
		switch {
		case e.title != "":
			y += 25
		case e.label != "":
			e.widget.moveTo(y + 15)
			y += e.widget.height()
		default:
			e.widget.moveTo(y)
			y += e.widget.height()
		}
	}
}

// Update handles input for all widgets
func (p *Panel) Update() {
	for _, e := range p.entries {
		if e.widget != nil {
			e.widget.Update()
		}
	}
}

// Draw renders the panel and all widgets
func (p *Panel) Draw(screen *ebiten.Image) {
	vector.FillRect(screen, float32(p.X), float32(p.Y), float32(p.Width), float32(p.Height), p.BGColor, true)
	vector.StrokeRect(screen, float32(p.X), float32(p.Y), float32(p.Width), float32(p.Height), 2, p.BorderColor, true)
	ebitenutil.DebugPrintAt(screen, p.Title, int(p.X+10), int(p.Y+5))

	y := p.Y + 30
	for _, e := range p.entries {
		if e.title != "" {
			vector.FillRect(screen, float32(p.X+5), float32(y), float32(p.Width-10), 20,
				color.RGBA{R: 60, G: 60, B: 70, A: 255}, true)
			ebitenutil.DebugPrintAt(screen, e.title, int(p.X+10), int(y+3))
			y += 25
			continue
		}
		if e.label != "" {
			ebitenutil.DebugPrintAt(screen, e.label, int(p.X+10), int(y))
		}
		e.widget.Draw(screen)
		y += e.widget.height()
	}
}
