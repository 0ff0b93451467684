package game

import (
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/generators"
	"github.com/faiface/beep/speaker"
)

const (
	tickSampleRate beep.SampleRate = 44100
	tickFrequency                  = 880
	tickDuration                   = 60 * time.Millisecond
)

// tickSound plays a short blip each simulated day.
type tickSound struct {
	sr beep.SampleRate
}

func newTickSound() (*tickSound, error) {
	if err := speaker.Init(tickSampleRate, tickSampleRate.N(time.Second/20)); err != nil {
		return nil, err
	}
	return &tickSound{sr: tickSampleRate}, nil
}

func (t *tickSound) play() {
	tone, err := generators.SinTone(t.sr, tickFrequency)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(t.sr.N(tickDuration), tone))
}
