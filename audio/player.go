// Package audio plays short feedback tones through the system speaker.
// Everything here is best-effort: if the speaker cannot be opened the
// game runs silent, it never fails because of sound.
package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Player satisfies the game loop's Sounder interface
type Player struct {
	enabled bool
}

// NewPlayer opens the speaker. The returned error is informational;
// the Player is still usable (as a no-op) when it is non-nil
func NewPlayer(enabled bool) (*Player, error) {
	if !enabled {
		return &Player{}, nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return &Player{}, err
	}
	return &Player{enabled: true}, nil
}

// FoodEaten plays a short high blip
func (p *Player) FoodEaten() {
	p.play(tone(880, 60*time.Millisecond))
}

// Died plays a falling two-note sting
func (p *Player) Died() {
	p.play(beep.Seq(
		tone(440, 120*time.Millisecond),
		tone(220, 240*time.Millisecond),
	))
}

// Close releases the speaker
func (p *Player) Close() {
	if p.enabled {
		speaker.Close()
	}
}

func (p *Player) play(s beep.Streamer) {
	if !p.enabled {
		return
	}
	speaker.Play(s)
}

// tone builds a fixed-length sine burst, softened so the blips sit
// under normal system volume
func tone(freq float64, d time.Duration) beep.Streamer {
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return beep.Silence(sampleRate.N(d))
	}
	return &effects.Volume{
		Streamer: beep.Take(sampleRate.N(d), sine),
		Base:     2,
		Volume:   -2,
	}
}
