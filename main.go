package main

import (
	"errors"
	"flag"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/time-dilation/internal/config"
	"github.com/iburimskiy/time-dilation/internal/game"
)

func main() {
	mute := flag.Bool("mute", false, "Disable the once-per-day clock tick sound")
	flag.Parse()

	fmt.Println("=== Gravitational Time Dilation Simulator ===")
	fmt.Println("Adjust the shell with the sliders; the inside clock runs slow.")
	fmt.Println("Drag: rotate | Scroll/Z/X: zoom | R: reset clocks | S: screenshot | Esc/Q: quit")

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle("Time Machine Simulation")

	if err := ebiten.RunGame(game.New(*mute)); err != nil && !errors.Is(err, ebiten.Termination) {
		_ = zenity.Error(err.Error(), zenity.Title("Time Machine Simulation"))
		log.Fatal(err)
	}
}
