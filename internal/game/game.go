package game

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/mazewalk/internal/audio"
	"github.com/samdwyer/mazewalk/internal/gamedata"
	"github.com/samdwyer/mazewalk/internal/input"
	"github.com/samdwyer/mazewalk/internal/ui"
)

// Game drives a State on a terminal screen at a fixed frame rate.
type Game struct {
	screen   *ui.Screen
	renderer *ui.Renderer
	tracker  *input.Tracker
	state    *State
	sounds   audio.Trigger
	interval time.Duration
	tunings  <-chan gamedata.Tuning
}

// New creates a game for state on screen.
func New(screen *ui.Screen, state *State, sounds audio.Trigger, interval time.Duration) *Game {
	return &Game{
		screen:   screen,
		renderer: ui.NewRenderer(screen),
		tracker:  input.NewTracker(input.DefaultHoldFrames),
		state:    state,
		sounds:   sounds,
		interval: interval,
	}
}

// WatchTuning makes the game apply tunings received on ch at the next frame
// boundary.
func (g *Game) WatchTuning(ch <-chan gamedata.Tuning) {
	g.tunings = ch
}

// State returns the game's state.
func (g *Game) State() *State {
	return g.state
}

// Run executes the main game loop until a quit intent, a closed screen or
// ctx cancellation. It closes the screen on return.
func (g *Game) Run(ctx context.Context) error {
	defer g.screen.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	events := g.pollEvents(ctx)

	ticker := time.NewTicker(g.interval)
	defer ticker.Stop()

	g.sounds.Play(audio.SoundMusic)
	g.renderer.Render(g.state.Frame())

	for g.state.Phase == PhasePlaying {
		select {
		case <-ctx.Done():
			g.state.Phase = PhaseQuit
		case ev, ok := <-events:
			if !ok {
				g.state.Phase = PhaseQuit
				break
			}
			g.handleEvent(ev)
		case t, ok := <-g.tunings:
			if !ok {
				g.tunings = nil
				break
			}
			g.state.ApplyTuning(t)
		case <-ticker.C:
			g.frame(ctx, events)
		}
	}

	return nil
}

// pollEvents forwards screen events to a channel until the screen closes or
// ctx is done.
func (g *Game) pollEvents(ctx context.Context) <-chan tcell.Event {
	events := make(chan tcell.Event, 64)
	go func() {
		defer close(events)
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()
	return events
}

// frame drains pending input, steps the state once and draws it.
func (g *Game) frame(ctx context.Context, events <-chan tcell.Event) {
drain:
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				break drain
			}
			g.handleEvent(ev)
		default:
			break drain
		}
	}

	g.state.Step(ctx, g.tracker.Snapshot())
	if g.state.Phase == PhasePlaying {
		g.renderer.Render(g.state.Frame())
	}
}

// handleEvent processes a single input event.
func (g *Game) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.tracker.HandleEvent(ev)
	case *tcell.EventResize:
		g.screen.Sync()
	}
}
