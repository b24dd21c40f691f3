package camera

import (
	"seatmap/event"
	"seatmap/parameter"
	"seatmap/world"
)

// Viewport owns the affine transform between screen cells and world
// coordinates: a uniform scale plus the world position of the screen
// origin. Every mutation emits a viewport event so the app loop can
// recompute LOD and re-cull; scale changes and position-only changes
// are distinct event types since LOD depends only on scale.
//
// Operations requested before the first Resize (screen size unknown)
// are queued and replayed once dimensions arrive.
type Viewport struct {
	queue *event.Queue // nil in tests that only exercise the math

	screenW, screenH float64
	scale            float64
	offsetX, offsetY float64 // world coordinates of the screen origin

	worldBounds world.BBox

	ready   bool
	pending []func()
}

// New creates a viewport over the given world extent
// The viewport is inert until the first Resize
func New(bounds world.BBox, queue *event.Queue) *Viewport {
	return &Viewport{
		queue:       queue,
		scale:       1.0,
		worldBounds: bounds,
	}
}

// Ready reports whether screen dimensions have been established
func (v *Viewport) Ready() bool {
	return v.ready
}

// Scale returns the current world-to-screen scale factor
func (v *Viewport) Scale() float64 {
	return v.scale
}

// ScreenSize returns the current screen dimensions in cells
func (v *Viewport) ScreenSize() (w, h float64) {
	return v.screenW, v.screenH
}

// ToWorld inverts the transform for a screen point
func (v *Viewport) ToWorld(sx, sy float64) (wx, wy float64) {
	return v.offsetX + sx/v.scale, v.offsetY + sy/v.scale
}

// ToScreen maps a world point to screen cells
func (v *Viewport) ToScreen(wx, wy float64) (sx, sy float64) {
	return (wx - v.offsetX) * v.scale, (wy - v.offsetY) * v.scale
}

// WorldBBox returns the full screen inverse-mapped into world space
// This is the query rectangle for seat culling
func (v *Viewport) WorldBBox() world.BBox {
	minX, minY := v.ToWorld(0, 0)
	maxX, maxY := v.ToWorld(v.screenW, v.screenH)
	return world.BBox{MinX: minX, MinY: minY, MaxX: maxX, MaxY: maxY}
}

// Pan shifts the view window by a screen-space delta
// Positive dx reveals world further right
func (v *Viewport) Pan(dx, dy float64) {
	if !v.ready {
		v.postpone(func() { v.Pan(dx, dy) })
		return
	}
	if dx == 0 && dy == 0 {
		return
	}
	v.offsetX += dx / v.scale
	v.offsetY += dy / v.scale
	v.emitMoved()
}

// ZoomBy multiplies the scale by factor, keeping the world point under
// the screen anchor fixed. Non-positive factors are rejected as no-ops
func (v *Viewport) ZoomBy(factor, anchorX, anchorY float64) {
	if factor <= 0 {
		return
	}
	if !v.ready {
		v.postpone(func() { v.ZoomBy(factor, anchorX, anchorY) })
		return
	}

	newScale := clampScale(v.scale * factor)
	if newScale == v.scale {
		return
	}

	// World point under the anchor stays put on screen
	wx, wy := v.ToWorld(anchorX, anchorY)
	v.scale = newScale
	v.offsetX = wx - anchorX/v.scale
	v.offsetY = wy - anchorY/v.scale
	v.emitScaled()
}

// Fit computes the scale and offset that contain the full world extent,
// preserving aspect ratio (letterboxing allowed), centered on screen
func (v *Viewport) Fit() {
	if !v.ready {
		v.postpone(func() { v.Fit() })
		return
	}

	ww := v.worldBounds.Width()
	wh := v.worldBounds.Height()
	if ww > 0 && wh > 0 {
		sx := v.screenW / ww
		sy := v.screenH / wh
		if sy < sx {
			sx = sy
		}
		v.scale = clampScale(sx)
	}
	v.centerOn(v.worldBounds.CenterX(), v.worldBounds.CenterY())
	v.emitScaled()
}

// MoveCenter recenters the view on a world point without changing scale
func (v *Viewport) MoveCenter(wx, wy float64) {
	if !v.ready {
		v.postpone(func() { v.MoveCenter(wx, wy) })
		return
	}
	v.centerOn(wx, wy)
	v.emitMoved()
}

// Resize updates screen dimensions, preserving the world point at the
// screen center. Non-positive dimensions are rejected as no-ops.
// The first successful Resize replays any queued operations
func (v *Viewport) Resize(w, h float64) {
	if w <= 0 || h <= 0 {
		return
	}

	if !v.ready {
		v.screenW = w
		v.screenH = h
		v.ready = true
		pending := v.pending
		v.pending = nil
		for _, op := range pending {
			op()
		}
		v.emitMoved()
		return
	}

	cx, cy := v.ToWorld(v.screenW/2, v.screenH/2)
	v.screenW = w
	v.screenH = h
	v.centerOn(cx, cy)
	v.emitMoved()
}

// SetScaleCenter applies an absolute scale and center in one step
// Used by camera tweens; emits a single scale event
func (v *Viewport) SetScaleCenter(scale, wx, wy float64) {
	if scale <= 0 {
		return
	}
	if !v.ready {
		v.postpone(func() { v.SetScaleCenter(scale, wx, wy) })
		return
	}
	v.scale = clampScale(scale)
	v.centerOn(wx, wy)
	v.emitScaled()
}

// centerOn positions the offset so (wx, wy) maps to the screen center
func (v *Viewport) centerOn(wx, wy float64) {
	v.offsetX = wx - v.screenW/2/v.scale
	v.offsetY = wy - v.screenH/2/v.scale
}

func (v *Viewport) postpone(op func()) {
	v.pending = append(v.pending, op)
}

func (v *Viewport) emitScaled() {
	if v.queue != nil {
		v.queue.Push(event.Event{
			Type:    event.TypeViewportScaled,
			Payload: &event.ViewportScaledPayload{Scale: v.scale},
		})
	}
}

func (v *Viewport) emitMoved() {
	if v.queue != nil {
		v.queue.Push(event.Event{Type: event.TypeViewportMoved})
	}
}

func clampScale(s float64) float64 {
	if s < parameter.ZoomMin {
		return parameter.ZoomMin
	}
	if s > parameter.ZoomMax {
		return parameter.ZoomMax
	}
	return s
}
