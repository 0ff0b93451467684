package game

import (
	"errors"
	"image"
	"image/png"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"
)

// captureFrame copies the finished frame out of the draw pass so the
// next Update can offer it for saving. Reading pixels is only valid
// while the image is current, hence the copy.
func (g *Game) captureFrame(screen *ebiten.Image) {
	img := image.NewRGBA(screen.Bounds())
	screen.ReadPixels(img.Pix)
	g.captured = img
	g.capturePending = false
}

// saveCaptured runs the save dialog for the frame captured on the
// previous draw. The dialog blocks the game loop, same as the file
// picker; that is fine for a desktop tool.
func (g *Game) saveCaptured() error {
	img := g.captured
	g.captured = nil

	name, err := zenity.SelectFileSave(
		zenity.Title("Save Screenshot"),
		zenity.ConfirmOverwrite(),
		zenity.Filename("time-dilation.png"),
		zenity.FileFilters{{
			Name:     "PNG image",
			Patterns: []string{"*.png"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return err
	}

	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}
