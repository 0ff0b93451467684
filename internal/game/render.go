package game

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/iburimskiy/time-dilation/internal/config"
)

// camera is a yaw/pitch orbit around the shell center. It only rotates;
// the projection itself is orthographic.
type camera struct {
	yaw   float64
	pitch float64
}

func (c *camera) rotate(p r3.Vec) r3.Vec {
	sy, cy := math.Sincos(c.yaw)
	x := p.X*cy + p.Z*sy
	z := -p.X*sy + p.Z*cy

	sp, cp := math.Sincos(c.pitch)
	y := p.Y*cp - z*sp
	z = p.Y*sp + z*cp

	return r3.Vec{X: x, Y: y, Z: z}
}

// viewport maps rotated world coordinates (meters) to screen pixels.
type viewport struct {
	cx, cy float64 // screen center of the 3D view
	scale  float64 // pixels per meter
	extent float64 // world half-extent in meters
}

func (g *Game) currentViewport() viewport {
	extent := math.Max(g.params.Radius, g.derived.SafeRadius) * config.ViewportSlack / g.zoom.Level()

	w := float64(config.WindowWidth - config.PanelWidth)
	h := float64(viewHeight)
	half := math.Min(w, h) / 2

	return viewport{
		cx:     float64(config.PanelWidth) + w/2,
		cy:     h / 2,
		scale:  half / extent,
		extent: extent,
	}
}

// project returns the screen position of p plus its rotated depth, used
// for tinting. Positive depth is toward the viewer.
func (g *Game) project(vp viewport, p r3.Vec) (sx, sy float32, depth float64) {
	r := g.cam.rotate(p)
	return float32(vp.cx + r.X*vp.scale), float32(vp.cy - r.Y*vp.scale), r.Z
}

func (g *Game) drawView(screen *ebiten.Image) {
	vp := g.currentViewport()

	g.drawSafeSphere(screen, vp)
	g.drawPointCloud(screen, vp)
	g.drawPerson(screen, vp)
	g.drawScaleBar(screen, vp)
}

func (g *Game) drawPointCloud(screen *ebiten.Image, vp viewport) {
	for _, p := range g.points {
		sx, sy, depth := g.project(vp, p)

		// Nearer points render brighter.
		d := clamp01((depth/g.params.Radius + 1) / 2)
		r, gr, b := hsvToRgb(215, 0.8, 0.4+0.6*d)
		vector.DrawFilledCircle(screen, sx, sy, 2, color.RGBA{R: r, G: gr, B: b, A: 255}, false)
	}
}

const (
	wireMeridians = 20
	wireParallels = 10
)

// drawSafeSphere draws the green wireframe sphere at the safe radius.
func (g *Game) drawSafeSphere(screen *ebiten.Image, vp viewport) {
	wire := color.RGBA{R: 60, G: 190, B: 90, A: 128}
	rad := g.derived.SafeRadius

	surface := func(u, v float64) r3.Vec {
		return r3.Vec{
			X: rad * math.Cos(u) * math.Sin(v),
			Y: rad * math.Cos(v),
			Z: rad * math.Sin(u) * math.Sin(v),
		}
	}

	// Meridians: constant u, v sweeping pole to pole.
	for i := 0; i < wireMeridians; i++ {
		u := float64(i) * 2 * math.Pi / wireMeridians
		for j := 0; j < wireParallels; j++ {
			v0 := float64(j) * math.Pi / wireParallels
			v1 := float64(j+1) * math.Pi / wireParallels
			x0, y0, _ := g.project(vp, surface(u, v0))
			x1, y1, _ := g.project(vp, surface(u, v1))
			vector.StrokeLine(screen, x0, y0, x1, y1, 1, wire, false)
		}
	}

	// Parallels: constant v rings.
	for j := 1; j < wireParallels; j++ {
		v := float64(j) * math.Pi / wireParallels
		for i := 0; i < wireMeridians; i++ {
			u0 := float64(i) * 2 * math.Pi / wireMeridians
			u1 := float64(i+1) * 2 * math.Pi / wireMeridians
			x0, y0, _ := g.project(vp, surface(u0, v))
			x1, y1, _ := g.project(vp, surface(u1, v))
			vector.StrokeLine(screen, x0, y0, x1, y1, 1, wire, false)
		}
	}
}

// drawPerson draws the 1.8 m reference figure at the shell center. At
// astronomical radii it collapses to a dot, which is the point.
func (g *Game) drawPerson(screen *ebiten.Image, vp viewport) {
	half := config.PersonHeightMeters / 2
	red := color.RGBA{R: 230, G: 60, B: 60, A: 255}

	x0, y0, _ := g.project(vp, r3.Vec{Y: -half})
	x1, y1, _ := g.project(vp, r3.Vec{Y: half})
	vector.StrokeLine(screen, x0, y0, x1, y1, 2, red, false)

	text.Draw(screen, "Person", basicfont.Face7x13, int(x1)-21, int(y1)-4, red)
}

// drawScaleBar draws a distance indicator a fifth of the half-extent
// long in the lower right corner of the view.
func (g *Game) drawScaleBar(screen *ebiten.Image, vp viewport) {
	lengthMeters := vp.extent / 5
	lengthPx := float32(lengthMeters * vp.scale)

	x1 := float32(config.WindowWidth - 30)
	x0 := x1 - lengthPx
	y := float32(viewHeight - 24)

	bar := color.RGBA{R: 220, G: 225, B: 235, A: 255}
	vector.StrokeLine(screen, x0, y, x1, y, 2, bar, false)
	vector.StrokeLine(screen, x0, y-4, x0, y+4, 2, bar, false)
	vector.StrokeLine(screen, x1, y-4, x1, y+4, 2, bar, false)

	label := fmt.Sprintf("%.2e m", lengthMeters)
	text.Draw(screen, label, basicfont.Face7x13, int(x0+lengthPx/2)-len(label)*7/2, int(y)-8, bar)
}
