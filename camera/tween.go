package camera

import (
	"math"
	"time"
)

// Tween is a fire-and-forget camera animation toward a target scale and
// center. The app loop steps it once per frame; starting a new tween
// replaces (cancels) an in-flight one rather than composing with it
type Tween struct {
	fromScale, toScale float64
	fromCX, fromCY     float64
	toCX, toCY         float64
	start              time.Time
	duration           time.Duration
}

// NewTween captures the viewport's current pose as the start state
func NewTween(v *Viewport, toScale, toCX, toCY float64, dur time.Duration, now time.Time) *Tween {
	cx, cy := v.ToWorld(v.screenW/2, v.screenH/2)
	return &Tween{
		fromScale: v.scale,
		toScale:   clampScale(toScale),
		fromCX:    cx,
		fromCY:    cy,
		toCX:      toCX,
		toCY:      toCY,
		start:     now,
		duration:  dur,
	}
}

// Step advances the animation and applies the interpolated pose
// Returns true when the tween has reached its target
func (t *Tween) Step(v *Viewport, now time.Time) bool {
	p := 1.0
	if t.duration > 0 {
		p = float64(now.Sub(t.start)) / float64(t.duration)
	}
	if p >= 1.0 {
		v.SetScaleCenter(t.toScale, t.toCX, t.toCY)
		return true
	}
	if p < 0 {
		p = 0
	}

	e := smoothstep(p)
	// Scale interpolates in log space so zoom speed feels uniform
	scale := t.fromScale * math.Exp(e*math.Log(t.toScale/t.fromScale))
	cx := t.fromCX + (t.toCX-t.fromCX)*e
	cy := t.fromCY + (t.toCY-t.fromCY)*e
	v.SetScaleCenter(scale, cx, cy)
	return false
}

func smoothstep(p float64) float64 {
	return p * p * (3 - 2*p)
}
