package game

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/iburimskiy/time-dilation/internal/config"
)

// slider is an integer-stepped horizontal track. Exponent sliders hold a
// base-10 exponent and display 10^value in scientific notation.
type slider struct {
	label    string
	x, y     int
	min, max int
	value    int
	exponent bool

	hovered  bool
	dragging bool
}

func newSlider(label string, x, y, min, max, value int, exponent bool) *slider {
	return &slider{label: label, x: x, y: y, min: min, max: max, value: value, exponent: exponent}
}

// update handles hover, click and drag; it reports whether the value
// changed this frame.
func (s *slider) update(mx, my int) bool {
	s.hovered = mx >= s.x && mx <= s.x+config.SliderWidth &&
		my >= s.y && my <= s.y+config.SliderHeight

	if s.hovered && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		s.dragging = true
	}
	if !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		s.dragging = false
	}
	if !s.dragging {
		return false
	}

	frac := clamp01(float64(mx-s.x) / float64(config.SliderWidth))
	v := s.min + int(math.Round(frac*float64(s.max-s.min)))
	if v == s.value {
		return false
	}
	s.value = v
	return true
}

// floatValue resolves the slider to its physical value.
func (s *slider) floatValue() float64 {
	if s.exponent {
		return math.Pow(10, float64(s.value))
	}
	return float64(s.value)
}

func (s *slider) readout() string {
	if s.exponent {
		return fmt.Sprintf("%.2e", s.floatValue())
	}
	return fmt.Sprintf("%d", s.value)
}

func (s *slider) draw(screen *ebiten.Image) {
	text.Draw(screen, s.label, basicfont.Face7x13, s.x, s.y-6, color.RGBA{R: 210, G: 215, B: 225, A: 255})

	// Track
	trackY := s.y + config.SliderHeight/2
	vector.DrawFilledRect(screen, float32(s.x), float32(trackY-3), float32(config.SliderWidth), 6,
		color.RGBA{R: 45, G: 52, B: 68, A: 255}, false)
	vector.StrokeRect(screen, float32(s.x), float32(trackY-3), float32(config.SliderWidth), 6, 1,
		color.RGBA{R: 70, G: 80, B: 100, A: 255}, false)

	// Knob
	frac := float64(s.value-s.min) / float64(s.max-s.min)
	knobX := float64(s.x) + frac*float64(config.SliderWidth)
	knobColor := color.RGBA{R: 120, G: 150, B: 200, A: 255}
	if s.hovered || s.dragging {
		knobColor = color.RGBA{R: 160, G: 190, B: 240, A: 255}
	}
	vector.DrawFilledCircle(screen, float32(knobX), float32(trackY), 8, knobColor, false)
	vector.StrokeCircle(screen, float32(knobX), float32(trackY), 8, 1.5,
		color.RGBA{R: 200, G: 215, B: 240, A: 255}, false)

	text.Draw(screen, s.readout(), basicfont.Face7x13, s.x, s.y+config.SliderHeight+14,
		color.RGBA{R: 160, G: 170, B: 190, A: 255})
}

// button is a plain click button with hover and press feedback.
type button struct {
	label string
	x, y  int
	w, h  int

	hovered bool
	pressed bool
}

func newButton(label string, x, y, w, h int) *button {
	return &button{label: label, x: x, y: y, w: w, h: h}
}

// update reports whether the button was clicked this frame: pressed on
// it and released while still on it.
func (b *button) update(mx, my int) bool {
	b.hovered = mx >= b.x && mx <= b.x+b.w && my >= b.y && my <= b.y+b.h

	if b.hovered && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		b.pressed = true
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		clicked := b.pressed && b.hovered
		b.pressed = false
		return clicked
	}
	return false
}

func (b *button) draw(screen *ebiten.Image) {
	var bg color.RGBA
	switch {
	case b.pressed:
		bg = color.RGBA{R: 60, G: 80, B: 120, A: 255}
	case b.hovered:
		bg = color.RGBA{R: 80, G: 100, B: 140, A: 255}
	default:
		bg = color.RGBA{R: 100, G: 120, B: 160, A: 255}
	}

	vector.DrawFilledRect(screen, float32(b.x), float32(b.y), float32(b.w), float32(b.h), bg, false)
	vector.StrokeRect(screen, float32(b.x), float32(b.y), float32(b.w), float32(b.h), 2,
		color.RGBA{R: 150, G: 170, B: 200, A: 255}, false)

	textWidth := len(b.label) * 7
	tx := b.x + (b.w-textWidth)/2
	ty := b.y + (b.h+basicfont.Face7x13.Ascent)/2 - 1
	text.Draw(screen, b.label, basicfont.Face7x13, tx, ty, color.RGBA{R: 235, G: 240, B: 250, A: 255})
}
