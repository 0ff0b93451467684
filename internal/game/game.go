// Package game is the ebiten front end: it owns the input widgets, the
// orbit camera and the clock displays, and calls into the physics,
// geometry and sim packages on every parameter change.
package game

import (
	"fmt"
	"image"
	"image/color"
	"log"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/iburimskiy/time-dilation/internal/config"
	"github.com/iburimskiy/time-dilation/internal/geometry"
	"github.com/iburimskiy/time-dilation/internal/physics"
	"github.com/iburimskiy/time-dilation/internal/sim"
)

const (
	clockPanelHeight = 140
	viewHeight       = config.WindowHeight - clockPanelHeight

	// Panel layout, top to bottom.
	panelTitleY     = 30
	pointsSliderY   = 70
	massSliderY     = 150
	pointMassLabelY = 212
	radiusSliderY   = 270
	infoY           = 340
	infoLineHeight  = 20
	buttonRowY      = 470
	resetButtonY    = 520
	exportButtonY   = 570

	dragSensitivity = 0.01
)

type Game struct {
	params  physics.Params
	derived physics.Derived
	points  []r3.Vec

	clock *sim.Clock
	zoom  *sim.Zoom

	// Values shown on the LCDs, refreshed by tick and reset only.
	outsideDisplay float64
	insideDisplay  float64
	lastTick       time.Time

	cam        camera
	dragging   bool
	lastMouseX int
	lastMouseY int

	pointsSlider *slider
	massSlider   *slider
	radiusSlider *slider

	zoomInBtn  *button
	zoomOutBtn *button
	resetBtn   *button
	exportBtn  *button

	sound *tickSound // nil when muted or audio init failed

	capturePending bool
	captured       *image.RGBA

	// input edge detection
	prevKey map[ebiten.Key]bool

	lastErr error
}

func New(mute bool) *Game {
	pad := config.PanelPadding
	g := &Game{
		clock:   &sim.Clock{},
		zoom:    sim.NewZoom(),
		cam:     camera{yaw: 0.6, pitch: 0.35},
		prevKey: map[ebiten.Key]bool{},

		pointsSlider: newSlider("Number of Points", pad, pointsSliderY,
			config.PointCountMin, config.PointCountMax, config.PointCountDefault, false),
		massSlider: newSlider("Mass of Each Point (kg, 10^x)", pad, massSliderY,
			config.MassExponentMin, config.MassExponentMax, config.MassExponentDefault, true),
		radiusSlider: newSlider("Radius (meters, 10^x)", pad, radiusSliderY,
			config.RadiusExponentMin, config.RadiusExponentMax, config.RadiusExponentDefault, true),

		zoomInBtn:  newButton("Zoom In", pad, buttonRowY, config.ButtonWidth, config.ButtonHeight),
		zoomOutBtn: newButton("Zoom Out", pad+config.ButtonWidth+20, buttonRowY, config.ButtonWidth, config.ButtonHeight),
		resetBtn:   newButton("Reset Clocks", pad, resetButtonY, 2*config.ButtonWidth+20, config.ButtonHeight),
		exportBtn:  newButton("Save Screenshot", pad, exportButtonY, 2*config.ButtonWidth+20, config.ButtonHeight),
	}

	if !mute {
		s, err := newTickSound()
		if err != nil {
			log.Printf("clock sound disabled: %v", err)
		} else {
			g.sound = s
		}
	}

	g.recompute()
	g.lastTick = time.Now()
	return g
}

func (g *Game) Update() error {
	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if justPressed(ebiten.KeyR) {
		g.resetClocks()
	}
	if justPressed(ebiten.KeyZ) {
		g.zoom.In()
	}
	if justPressed(ebiten.KeyX) {
		g.zoom.Out()
	}
	if justPressed(ebiten.KeyS) {
		g.capturePending = true
	}

	// A frame captured during the previous draw is ready to save.
	if g.captured != nil {
		if err := g.saveCaptured(); err != nil {
			g.lastErr = err
		}
	}

	mx, my := ebiten.CursorPosition()

	if g.zoomInBtn.update(mx, my) {
		g.zoom.In()
	}
	if g.zoomOutBtn.update(mx, my) {
		g.zoom.Out()
	}
	if g.resetBtn.update(mx, my) {
		g.resetClocks()
	}
	if g.exportBtn.update(mx, my) {
		g.capturePending = true
	}

	changed := g.pointsSlider.update(mx, my)
	changed = g.massSlider.update(mx, my) || changed
	changed = g.radiusSlider.update(mx, my) || changed
	if changed {
		g.recompute()
	}

	if _, wy := ebiten.Wheel(); wy > 0 {
		g.zoom.In()
	} else if wy < 0 {
		g.zoom.Out()
	}

	g.updateCameraDrag(mx, my)

	if time.Since(g.lastTick) >= config.TickPeriod {
		g.tickClock()
	}

	return nil
}

// recompute rebuilds the derived physics and the shell point cloud from
// the sliders. The slider ranges keep parameters inside the valid
// domain; should that invariant ever break, the last valid state stays
// on screen.
func (g *Game) recompute() {
	p := physics.Params{
		PointCount: int(g.pointsSlider.floatValue()),
		PointMass:  g.massSlider.floatValue(),
		Radius:     g.radiusSlider.floatValue(),
	}

	d, err := physics.Compute(p)
	if err != nil {
		g.lastErr = err
		return
	}
	points, err := geometry.Shell(p.PointCount, p.Radius)
	if err != nil {
		g.lastErr = err
		return
	}

	g.params = p
	g.derived = d
	g.points = points
}

// tickClock advances the simulation by one day. The dilation factor is
// read from the latest derived physics at this moment, never cached.
func (g *Game) tickClock() {
	outside, inside := g.clock.Tick(g.derived.Dilation)
	g.outsideDisplay = float64(outside)
	g.insideDisplay = inside
	g.lastTick = time.Now()

	if g.sound != nil {
		g.sound.play()
	}
}

func (g *Game) resetClocks() {
	outside, inside := g.clock.Reset()
	g.outsideDisplay = float64(outside)
	g.insideDisplay = inside
	g.lastTick = time.Now()
}

func (g *Game) updateCameraDrag(mx, my int) {
	inView := mx >= config.PanelWidth && my < viewHeight
	if inView && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.dragging = true
	}
	if !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		g.dragging = false
	}

	if g.dragging {
		g.cam.yaw += float64(mx-g.lastMouseX) * dragSensitivity
		g.cam.pitch += float64(my-g.lastMouseY) * dragSensitivity
		if g.cam.pitch > math.Pi/2 {
			g.cam.pitch = math.Pi / 2
		}
		if g.cam.pitch < -math.Pi/2 {
			g.cam.pitch = -math.Pi / 2
		}
	}
	g.lastMouseX, g.lastMouseY = mx, my
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 8, G: 10, B: 16, A: 255})

	g.drawView(screen)
	g.drawPanel(screen)
	g.drawClocks(screen)

	status := "Drag: rotate | Scroll/Z/X: zoom | R: reset clocks | S: screenshot | Esc/Q: quit"
	if g.lastErr != nil {
		status += " | Error: " + g.lastErr.Error()
	}
	ebitenutil.DebugPrintAt(screen, status, config.PanelWidth+12, 8)

	if g.capturePending {
		g.captureFrame(screen)
	}
}

func (g *Game) drawPanel(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0, config.PanelWidth, config.WindowHeight,
		color.RGBA{R: 18, G: 22, B: 30, A: 255}, false)
	vector.StrokeLine(screen, config.PanelWidth, 0, config.PanelWidth, config.WindowHeight, 1,
		color.RGBA{R: 60, G: 70, B: 90, A: 255}, false)

	white := color.RGBA{R: 235, G: 240, B: 250, A: 255}
	dim := color.RGBA{R: 160, G: 170, B: 190, A: 255}
	pad := config.PanelPadding

	text.Draw(screen, "Simulation Controls", basicfont.Face7x13, pad, panelTitleY, white)

	g.pointsSlider.draw(screen)
	g.massSlider.draw(screen)
	g.radiusSlider.draw(screen)

	text.Draw(screen, "Each Point Mass Equivalent:", basicfont.Face7x13, pad, pointMassLabelY, white)
	text.Draw(screen, physics.FormatMass(g.params.PointMass), basicfont.Face7x13, pad, pointMassLabelY+16, dim)

	y := infoY
	text.Draw(screen, fmt.Sprintf("Time Dilation: %.6f", g.derived.Dilation), basicfont.Face7x13, pad, y, white)
	y += infoLineHeight
	text.Draw(screen, fmt.Sprintf("Safe Radius: %.2e m", g.derived.SafeRadius), basicfont.Face7x13, pad, y, white)
	y += infoLineHeight
	text.Draw(screen, "Total Mass Equivalent:", basicfont.Face7x13, pad, y, white)
	y += 16
	text.Draw(screen, physics.FormatMass(g.derived.TotalMass), basicfont.Face7x13, pad, y, dim)
	y += infoLineHeight
	text.Draw(screen, fmt.Sprintf("Zoom: %.3f", g.zoom.Level()), basicfont.Face7x13, pad, y, dim)

	g.zoomInBtn.draw(screen)
	g.zoomOutBtn.draw(screen)
	g.resetBtn.draw(screen)
	g.exportBtn.draw(screen)
}

func (g *Game) drawClocks(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, config.PanelWidth, viewHeight,
		config.WindowWidth-config.PanelWidth, clockPanelHeight,
		color.RGBA{R: 12, G: 15, B: 22, A: 255}, false)
	vector.StrokeLine(screen, config.PanelWidth, viewHeight, config.WindowWidth, viewHeight, 1,
		color.RGBA{R: 60, G: 70, B: 90, A: 255}, false)

	quarter := (config.WindowWidth - config.PanelWidth) / 4
	drawClock(screen, config.PanelWidth+quarter, viewHeight,
		"Outside Time (days)", g.outsideDisplay, color.RGBA{R: 60, G: 230, B: 90, A: 255})
	drawClock(screen, config.PanelWidth+3*quarter, viewHeight,
		"Inside Time (days)", g.insideDisplay, color.RGBA{R: 235, G: 70, B: 70, A: 255})
}

// drawClock renders one labeled LCD centered on cx.
func drawClock(screen *ebiten.Image, cx, top int, label string, value float64, clr color.RGBA) {
	white := color.RGBA{R: 235, G: 240, B: 250, A: 255}
	text.Draw(screen, label, basicfont.Face7x13, cx-len(label)*7/2, top+24, white)

	s := formatClock(value)
	w := lcdTextWidth(s)
	boxW := w + 30
	boxH := float64(lcdDigitHeight + 28)
	boxX := float64(cx) - boxW/2
	boxY := float64(top + 36)

	vector.DrawFilledRect(screen, float32(boxX), float32(boxY), float32(boxW), float32(boxH),
		color.RGBA{A: 255}, false)
	vector.StrokeRect(screen, float32(boxX), float32(boxY), float32(boxW), float32(boxH), 2,
		color.RGBA{R: 60, G: 70, B: 90, A: 255}, false)

	drawLCDText(screen, boxX+15, boxY+14, s, clr)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.WindowWidth, config.WindowHeight
}
