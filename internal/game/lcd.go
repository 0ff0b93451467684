package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Seven-segment layout, indices:
//
//	 _        0
//	|_|    5 6 1
//	|_|    4 3 2
var segmentsByRune = map[rune][7]bool{
	'0': {true, true, true, true, true, true, false},
	'1': {false, true, true, false, false, false, false},
	'2': {true, true, false, true, true, false, true},
	'3': {true, true, true, true, false, false, true},
	'4': {false, true, true, false, false, true, true},
	'5': {true, false, true, true, false, true, true},
	'6': {true, false, true, true, true, true, true},
	'7': {true, true, true, false, false, false, false},
	'8': {true, true, true, true, true, true, true},
	'9': {true, true, true, true, false, true, true},
	'-': {false, false, false, false, false, false, true},
	' ': {},
}

const (
	lcdDigitWidth  = 22
	lcdDigitHeight = 40
	lcdStroke      = 4
	lcdGap         = 8
)

// drawLCDText renders text as seven-segment digits starting at (x, y).
// A '.' attaches as a dot after the preceding digit instead of taking a
// full cell, matching the six-digit LCD look of the clock displays.
func drawLCDText(screen *ebiten.Image, x, y float64, s string, clr color.RGBA) {
	for _, r := range s {
		if r == '.' {
			vector.DrawFilledRect(screen, float32(x-lcdGap/2-lcdStroke/2), float32(y+lcdDigitHeight-lcdStroke),
				lcdStroke, lcdStroke, clr, false)
			continue
		}
		drawLCDDigit(screen, x, y, r, clr)
		x += lcdDigitWidth + lcdGap
	}
}

func drawLCDDigit(screen *ebiten.Image, x, y float64, r rune, clr color.RGBA) {
	segs, ok := segmentsByRune[r]
	if !ok {
		segs = segmentsByRune['-']
	}

	w := float32(lcdDigitWidth)
	h := float32(lcdDigitHeight)
	half := h / 2
	fx := float32(x)
	fy := float32(y)

	stroke := func(x0, y0, x1, y1 float32) {
		vector.StrokeLine(screen, x0, y0, x1, y1, lcdStroke, clr, false)
	}

	if segs[0] {
		stroke(fx, fy, fx+w, fy)
	}
	if segs[1] {
		stroke(fx+w, fy, fx+w, fy+half)
	}
	if segs[2] {
		stroke(fx+w, fy+half, fx+w, fy+h)
	}
	if segs[3] {
		stroke(fx, fy+h, fx+w, fy+h)
	}
	if segs[4] {
		stroke(fx, fy+half, fx, fy+h)
	}
	if segs[5] {
		stroke(fx, fy, fx, fy+half)
	}
	if segs[6] {
		stroke(fx, fy+half, fx+w, fy+half)
	}
}

// lcdTextWidth returns the pixel width of s when rendered by drawLCDText.
func lcdTextWidth(s string) float64 {
	w := 0.0
	for _, r := range s {
		if r == '.' {
			continue
		}
		w += lcdDigitWidth + lcdGap
	}
	if w > 0 {
		w -= lcdGap
	}
	return w
}
