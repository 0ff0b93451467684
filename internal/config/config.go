package config

import "time"

const (
	WindowWidth  = 1200
	WindowHeight = 800

	// Control panel geometry
	PanelWidth   = 340
	PanelPadding = 20

	// Slider dimensions
	SliderWidth  = PanelWidth - 2*PanelPadding
	SliderHeight = 20

	// Button dimensions
	ButtonWidth  = 140
	ButtonHeight = 36

	// Slider ranges. Mass and radius sliders carry base-10 exponents.
	PointCountMin     = 20
	PointCountMax     = 2000
	PointCountDefault = 100

	MassExponentMin     = 20
	MassExponentMax     = 50
	MassExponentDefault = 30

	RadiusExponentMin     = -2
	RadiusExponentMax     = 12
	RadiusExponentDefault = 7

	// Viewport half-extent = max(radius, safe radius) * ViewportSlack / zoom.
	ViewportSlack = 1.1

	// Clock cadence: one real second advances the simulation by one day.
	TickPeriod = time.Second

	PersonHeightMeters = 1.8
)
