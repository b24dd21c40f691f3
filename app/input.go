package app

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"seatmap/event"
	"seatmap/lod"
	"seatmap/parameter"
	"seatmap/world"
)

// handleInput dispatches one tcell event
func (a *App) handleInput(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		w, h := ev.Size()
		a.vp.Resize(float64(w), float64(h))
		a.screen.Sync()

	case *tcell.EventKey:
		a.handleKey(ev)

	case *tcell.EventMouse:
		a.handleMouse(ev)
	}

	// Input handlers emit queue events; settle them before the next frame
	a.pump()
}

func (a *App) handleKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		a.quit = true
		return
	case tcell.KeyUp:
		a.vp.Pan(0, -parameter.PanStepCells)
		return
	case tcell.KeyDown:
		a.vp.Pan(0, parameter.PanStepCells)
		return
	case tcell.KeyLeft:
		a.vp.Pan(-parameter.PanStepCells, 0)
		return
	case tcell.KeyRight:
		a.vp.Pan(parameter.PanStepCells, 0)
		return
	}

	if ev.Key() != tcell.KeyRune {
		return
	}

	sw, sh := a.vp.ScreenSize()
	switch ev.Rune() {
	case 'q':
		a.quit = true
	case 'h':
		a.vp.Pan(-parameter.PanStepCells, 0)
	case 'l':
		a.vp.Pan(parameter.PanStepCells, 0)
	case 'k':
		a.vp.Pan(0, -parameter.PanStepCells)
	case 'j':
		a.vp.Pan(0, parameter.PanStepCells)
	case '+', '=':
		a.vp.ZoomBy(parameter.ZoomStepKey, sw/2, sh/2)
	case '-', '_':
		a.vp.ZoomBy(1/parameter.ZoomStepKey, sw/2, sh/2)
	case 'r':
		a.ResetView()
	case 'f':
		a.FocusSeats()
	case 'b':
		a.BookSelected()
	}
}

func (a *App) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()

	switch {
	case ev.Buttons()&tcell.WheelUp != 0:
		a.vp.ZoomBy(parameter.ZoomStepWheel, float64(x), float64(y))
	case ev.Buttons()&tcell.WheelDown != 0:
		a.vp.ZoomBy(1/parameter.ZoomStepWheel, float64(x), float64(y))
	case ev.Buttons()&tcell.Button1 != 0:
		a.handleClick(float64(x), float64(y))
	}
}

// handleClick toggles the seat under the pointer, if any
// A click that lands on no seat, or on a seat id the world no longer
// knows, is a benign no-op: stale render sets race status ticks by
// design and the window is tolerated
func (a *App) handleClick(sx, sy float64) {
	if a.tier != lod.SeatView {
		return
	}

	seat := a.pickSeat(sx, sy)
	if seat == nil {
		return
	}
	current := a.world.SeatByID(seat.ID)
	if current == nil {
		return
	}

	selected, rejected := a.sel.Toggle(current.ID, current.Status)
	if rejected {
		a.player.Reject()
		a.queue.Push(event.Event{
			Type:    event.TypeSelectionRejected,
			Payload: &event.SelectionChangedPayload{SeatID: current.ID},
		})
		return
	}

	a.player.Select()
	a.queue.Push(event.Event{
		Type:    event.TypeSelectionChanged,
		Payload: &event.SelectionChangedPayload{SeatID: current.ID, Selected: selected},
	})
	a.log.Debug("selection toggled",
		zap.String("seat", current.ID),
		zap.Bool("selected", selected),
		zap.Int("total", a.sel.Size()))
}

// pickSeat finds the nearest visible seat within pick range of a screen
// point. Pick range is the seat radius, widened to one cell at low zoom
// so seats stay clickable
func (a *App) pickSeat(sx, sy float64) *world.Seat {
	wx, wy := a.vp.ToWorld(sx, sy)
	reach := 1.0 / a.vp.Scale()

	var best *world.Seat
	bestDist := math.MaxFloat64
	for _, s := range a.visible {
		r := s.Radius
		if r < reach {
			r = reach
		}
		dx, dy := s.X-wx, s.Y-wy
		d := dx*dx + dy*dy
		if d <= r*r && d < bestDist {
			best = s
			bestDist = d
		}
	}
	return best
}
