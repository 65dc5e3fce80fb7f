package input

import "github.com/gdamore/tcell/v2"

// DefaultHoldFrames covers the gap between a key press and the terminal's
// first auto-repeat at 60 frames per second.
const DefaultHoldFrames = 12

// Tracker keeps actions held between key events. Terminals report presses
// and auto-repeats but no releases, so a press holds its action for a number
// of frames and each repeat renews it.
type Tracker struct {
	hold      int
	remaining [actionCount]int
	quit      bool
}

// NewTracker creates a tracker that holds each action for holdFrames frames
// after its last press.
func NewTracker(holdFrames int) *Tracker {
	if holdFrames < 1 {
		holdFrames = 1
	}
	return &Tracker{hold: holdFrames}
}

// ActionFor maps a key to its action.
func ActionFor(key tcell.Key, r rune) (Action, bool) {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit, true
	case tcell.KeyUp:
		return ActionForward, true
	case tcell.KeyDown:
		return ActionBack, true
	case tcell.KeyLeft:
		return ActionTurnLeft, true
	case tcell.KeyRight:
		return ActionTurnRight, true
	case tcell.KeyEnter:
		return ActionAttack, true
	case tcell.KeyRune:
		switch r {
		case 'w', 'W':
			return ActionForward, true
		case 's', 'S':
			return ActionBack, true
		case 'a', 'A':
			return ActionStrafeLeft, true
		case 'd', 'D':
			return ActionStrafeRight, true
		case ' ':
			return ActionAttack, true
		case 'q', 'Q':
			return ActionQuit, true
		}
	}
	return 0, false
}

// HandleEvent records a key event. It reports whether the key was mapped.
func (t *Tracker) HandleEvent(ev *tcell.EventKey) bool {
	return t.Press(ev.Key(), ev.Rune())
}

// Press records a key press. It reports whether the key was mapped.
func (t *Tracker) Press(key tcell.Key, r rune) bool {
	a, ok := ActionFor(key, r)
	if !ok {
		return false
	}
	t.Hold(a)
	return true
}

// Hold marks a as held for the tracker's hold time. Holding an action drops
// its opposite so reversing takes effect at once. Quit latches until Reset.
func (t *Tracker) Hold(a Action) {
	if a == ActionQuit {
		t.quit = true
		return
	}
	if opp, ok := a.opposite(); ok {
		t.remaining[opp] = 0
	}
	t.remaining[a] = t.hold
}

// Snapshot returns the current intent and ages every held action by one
// frame.
func (t *Tracker) Snapshot() Intent {
	var intent Intent
	for a := Action(0); a < actionCount; a++ {
		if t.remaining[a] > 0 {
			intent = intent.With(a)
			t.remaining[a]--
		}
	}
	if t.quit {
		intent.Quit = true
	}
	return intent
}

// Reset releases every action.
func (t *Tracker) Reset() {
	t.remaining = [actionCount]int{}
	t.quit = false
}
