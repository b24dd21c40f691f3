// Package audio plays short selection feedback cues. Audio is strictly
// optional: if the speaker cannot initialize the player degrades to
// silent no-ops.
package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Player emits selection cues through the system speaker
type Player struct {
	enabled bool
}

// NewPlayer initializes the speaker when enable is set
// Initialization failure is non-fatal; the map runs without sound
func NewPlayer(enable bool) (*Player, error) {
	p := &Player{}
	if !enable {
		return p, nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return p, err
	}
	p.enabled = true
	return p, nil
}

// Select plays a short high blip for a successful toggle
func (p *Player) Select() {
	p.tone(880, 40*time.Millisecond)
}

// Reject plays a low buzz for a refused toggle on a sold seat
func (p *Player) Reject() {
	p.tone(220, 90*time.Millisecond)
}

func (p *Player) tone(freq int, dur time.Duration) {
	if !p.enabled {
		return
	}
	sine, err := generators.SineTone(sampleRate, float64(freq))
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(dur), sine))
}

// Close releases the speaker
func (p *Player) Close() {
	if p.enabled {
		speaker.Close()
		p.enabled = false
	}
}
