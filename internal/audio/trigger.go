// Package audio defines the fire-and-forget sound triggers used by the game.
// The speaker-backed implementation lives in beepaudio.
package audio

// Sound identifies one of the game's sounds.
type Sound int

const (
	// SoundHit confirms that a strike knocked down at least one enemy.
	SoundHit Sound = iota
	// SoundSwing plays when the avatar starts an attack.
	SoundSwing
	// SoundVocalize plays when a wandering enemy's speak countdown elapses.
	SoundVocalize
	// SoundMusic is the ambient background loop.
	SoundMusic
)

// String returns the sound's name.
func (s Sound) String() string {
	switch s {
	case SoundHit:
		return "hit"
	case SoundSwing:
		return "swing"
	case SoundVocalize:
		return "vocalize"
	case SoundMusic:
		return "music"
	default:
		return "unknown"
	}
}

// Trigger plays sounds. Implementations play a sound only if that sound is not
// already playing; callers never manage playback state.
type Trigger interface {
	Play(s Sound)
}

// Nop is a Trigger that plays nothing.
type Nop struct{}

// Play does nothing.
func (Nop) Play(Sound) {}

// Recorder is a Trigger that remembers every request, in order.
type Recorder struct {
	Played []Sound
}

// Play records s.
func (r *Recorder) Play(s Sound) {
	r.Played = append(r.Played, s)
}

// Count returns how many times s was requested.
func (r *Recorder) Count(s Sound) int {
	n := 0
	for _, p := range r.Played {
		if p == s {
			n++
		}
	}
	return n
}
