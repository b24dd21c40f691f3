// Package app wires the seat map together: world dataset, viewport,
// LOD controller, spatial index, selection, status simulator, and the
// tcell screen, all driven by one event loop.
//
// Concurrency model: the loop goroutine is the only one that mutates
// shared state. The input goroutine and the status ticker are pure
// producers pushing into the event queue; every handler runs to
// completion on the loop before the next one starts.
package app

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"seatmap/audio"
	"seatmap/camera"
	"seatmap/config"
	"seatmap/event"
	"seatmap/lod"
	"seatmap/parameter"
	"seatmap/render"
	"seatmap/selection"
	"seatmap/spatial"
	"seatmap/status"
	"seatmap/world"
	"seatmap/worldgen"
)

// App owns the full runtime state of the seat map
type App struct {
	screen tcell.Screen
	log    *zap.Logger
	cfg    config.Config

	world  *world.World
	grid   *spatial.Grid
	vp     *camera.Viewport
	lodc   *lod.Controller
	sel    *selection.Store
	engine *status.Engine
	queue  *event.Queue
	player *audio.Player

	tier    lod.Tier
	visible []*world.Seat // seat render set, valid only in SeatView
	tween   *camera.Tween

	needCull  bool
	needFrame bool
	quit      bool
}

// New builds an app around an initialized screen
// The screen is injected so tests can pass a tcell.SimulationScreen
func New(cfg config.Config, screen tcell.Screen, log *zap.Logger) (*App, error) {
	w, err := worldgen.Generate(worldgen.Shape{
		Zones:        cfg.Venue.Zones,
		RowsPerZone:  cfg.Venue.RowsPerZone,
		SeatsPerRow:  cfg.Venue.SeatsPerRow,
		HoldFraction: 0.10,
		SoldFraction: 0.15,
	}, cfg.Venue.Seed)
	if err != nil {
		return nil, fmt.Errorf("generate venue: %w", err)
	}

	queue := event.NewQueue()

	player, err := audio.NewPlayer(cfg.Audio)
	if err != nil {
		// Sound is a nicety; the map runs without it
		log.Warn("audio init failed", zap.Error(err))
	}

	a := &App{
		screen: screen,
		log:    log,
		cfg:    cfg,
		world:  w,
		grid:   spatial.NewGrid(w.Seats, parameter.GridCellSize),
		vp:     camera.New(w.Bounds, queue),
		lodc:   lod.NewController(cfg.LOD.ZoneThreshold, cfg.LOD.RowThreshold),
		sel:    selection.NewStore(),
		engine: status.NewEngine(cfg.Venue.Seed, cfg.Status.SeatsPerTick, cfg.Status.HoldProb, cfg.Status.ReleaseProb, queue),
		queue:  queue,
		player: player,
	}
	return a, nil
}

// Run drives the event loop until quit
// Teardown order matters: the status ticker and any camera animation
// stop before the screen is released, so no handler ever runs against
// destroyed state
func (a *App) Run() {
	defer a.teardown()

	a.screen.EnableMouse()

	sw, sh := a.screen.Size()
	a.vp.Resize(float64(sw), float64(sh))
	a.vp.Fit()

	a.engine.Start(a.cfg.TickInterval())
	a.log.Info("seat map started",
		zap.Int("seats", len(a.world.Seats)),
		zap.Int("zones", len(a.world.Zones)))

	inputCh := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				close(inputCh)
				return
			}
			inputCh <- ev
		}
	}()

	ticker := time.NewTicker(parameter.FrameUpdateInterval)
	defer ticker.Stop()

	for !a.quit {
		select {
		case ev, ok := <-inputCh:
			if !ok {
				return
			}
			a.handleInput(ev)
		case <-ticker.C:
			a.stepTween(time.Now())
			a.pump()
			a.redraw()
		}
	}
}

func (a *App) teardown() {
	a.engine.Stop()
	a.tween = nil
	a.player.Close()
	a.screen.Fini()
	a.log.Info("seat map stopped")
}

// pump consumes queued events and dispatches their handlers in FIFO order
func (a *App) pump() {
	for _, ev := range a.queue.Consume() {
		a.handleEvent(ev)
	}
}

// handleEvent applies one queued notification
func (a *App) handleEvent(ev event.Event) {
	switch ev.Type {
	case event.TypeViewportScaled:
		payload, ok := ev.Payload.(*event.ViewportScaledPayload)
		if !ok {
			return
		}
		a.setTier(a.lodc.TierFor(payload.Scale))
		a.needCull = true

	case event.TypeViewportMoved:
		// Position-only change: tier cannot move, the cull rectangle did
		a.needCull = true

	case event.TypeStatusTick:
		changed := a.engine.Step(a.world)
		evicted := a.sel.EvictSold(a.world)
		if len(evicted) > 0 {
			a.log.Debug("selection evicted", zap.Strings("seats", evicted))
		}
		if changed > 0 || len(evicted) > 0 {
			// Statuses changed, positions did not: redraw without re-cull
			a.needFrame = true
		}

	case event.TypeSelectionChanged, event.TypeSelectionRejected:
		a.needFrame = true

	case event.TypeSeatSold:
		payload, ok := ev.Payload.(*event.SeatSoldPayload)
		if !ok {
			return
		}
		if a.world.MarkSold(payload.SeatID) {
			a.sel.EvictSold(a.world)
			a.needFrame = true
		}
	}
}

// setTier switches the LOD tier, discarding the seat render set when
// leaving SeatView to bound memory and draw cost
func (a *App) setTier(t lod.Tier) {
	if t == a.tier {
		return
	}
	a.log.Debug("tier change", zap.String("from", a.tier.String()), zap.String("to", t.String()))
	if a.tier == lod.SeatView {
		a.visible = nil
	}
	a.tier = t
}

// redraw runs the cull pass if the view changed, then paints
func (a *App) redraw() {
	if a.needCull {
		if a.tier == lod.SeatView {
			a.visible = a.grid.Query(a.vp.WorldBBox())
		}
		a.needCull = false
		a.needFrame = true
	}
	if !a.needFrame {
		return
	}
	a.needFrame = false

	frame := render.BuildFrame(a.world, a.vp, a.tier, a.sel, a.visible)
	a.screen.Clear()
	render.Draw(a.screen, frame)
	a.screen.Show()
}

// stepTween advances an in-flight camera animation
func (a *App) stepTween(now time.Time) {
	if a.tween == nil {
		return
	}
	if a.tween.Step(a.vp, now) {
		a.tween = nil
	}
}

// ResetView fits the full venue in the viewport and centers it
// Idempotent recovery path regardless of prior pan/zoom state
func (a *App) ResetView() {
	a.tween = nil
	a.vp.Fit()
	a.vp.MoveCenter(a.world.Bounds.CenterX(), a.world.Bounds.CenterY())
}

// FocusSeats animates to a seat-tier scale centered on the venue
// A new request supersedes any in-flight animation
func (a *App) FocusSeats() {
	target := a.lodc.RowThreshold * 1.25
	a.tween = camera.NewTween(a.vp, target, a.world.Bounds.CenterX(), a.world.Bounds.CenterY(), parameter.AnimationDuration, time.Now())
}

// BookSelected marks every selected seat SOLD, modeling the external
// booking action. Eviction follows through the queued events
func (a *App) BookSelected() {
	for _, id := range a.sel.IDs() {
		a.queue.Push(event.Event{
			Type:    event.TypeSeatSold,
			Payload: &event.SeatSoldPayload{SeatID: id},
		})
	}
}

// StatusLine returns the current footer text
func (a *App) StatusLine() string {
	return render.StatusLine(a.sel.Size(), len(a.visible), a.vp.Scale(), a.tier)
}
