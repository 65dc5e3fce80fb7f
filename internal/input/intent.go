// Package input turns terminal key events into the per-frame intent set the
// player controller consumes.
package input

// Action is a single intent flag.
type Action int

const (
	ActionForward Action = iota
	ActionBack
	ActionStrafeLeft
	ActionStrafeRight
	ActionTurnLeft
	ActionTurnRight
	ActionAttack
	ActionQuit

	actionCount
)

// String returns the action name.
func (a Action) String() string {
	switch a {
	case ActionForward:
		return "forward"
	case ActionBack:
		return "back"
	case ActionStrafeLeft:
		return "strafe_left"
	case ActionStrafeRight:
		return "strafe_right"
	case ActionTurnLeft:
		return "turn_left"
	case ActionTurnRight:
		return "turn_right"
	case ActionAttack:
		return "attack"
	case ActionQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// opposite returns the action cancelled by a, if any.
func (a Action) opposite() (Action, bool) {
	switch a {
	case ActionForward:
		return ActionBack, true
	case ActionBack:
		return ActionForward, true
	case ActionStrafeLeft:
		return ActionStrafeRight, true
	case ActionStrafeRight:
		return ActionStrafeLeft, true
	case ActionTurnLeft:
		return ActionTurnRight, true
	case ActionTurnRight:
		return ActionTurnLeft, true
	default:
		return 0, false
	}
}

// Intent is one frame's directional intent set.
type Intent struct {
	Forward     bool
	Back        bool
	StrafeLeft  bool
	StrafeRight bool
	TurnLeft    bool
	TurnRight   bool
	Attack      bool
	Quit        bool
}

// Moving reports whether any translation intent is set.
func (i Intent) Moving() bool {
	return i.Forward || i.Back || i.StrafeLeft || i.StrafeRight
}

// With returns a copy of i with action a set.
func (i Intent) With(a Action) Intent {
	switch a {
	case ActionForward:
		i.Forward = true
	case ActionBack:
		i.Back = true
	case ActionStrafeLeft:
		i.StrafeLeft = true
	case ActionStrafeRight:
		i.StrafeRight = true
	case ActionTurnLeft:
		i.TurnLeft = true
	case ActionTurnRight:
		i.TurnRight = true
	case ActionAttack:
		i.Attack = true
	case ActionQuit:
		i.Quit = true
	}
	return i
}
