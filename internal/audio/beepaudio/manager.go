// Package beepaudio plays the game's sounds by synthesizing them with beep.
package beepaudio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/samdwyer/mazewalk/internal/audio"
)

const (
	sampleRate = beep.SampleRate(44100)
)

var _ audio.Trigger = (*Manager)(nil)

// Manager is an audio.Trigger that plays synthesized sounds through the
// system speaker.
type Manager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	playing     map[audio.Sound]bool
	initialized bool
}

// NewManager creates a sound manager. Call Initialize before playing.
func NewManager() *Manager {
	return &Manager{
		mixer:   &beep.Mixer{},
		playing: make(map[audio.Sound]bool),
	}
}

// Initialize opens the speaker and starts the mixer.
func (m *Manager) Initialize() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return fmt.Errorf("failed to open speaker: %w", err)
	}

	speaker.Play(m.mixer)
	m.initialized = true
	return nil
}

// Close stops all sounds and releases the speaker.
func (m *Manager) Close() {
	m.mu.Lock()
	if !m.initialized {
		m.mu.Unlock()
		return
	}
	m.initialized = false
	m.playing = make(map[audio.Sound]bool)
	m.mu.Unlock()

	// The speaker lock is taken without holding mu: finished sounds clear
	// their playing flag from the speaker goroutine under the speaker lock.
	speaker.Lock()
	m.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
}

// Play starts s unless it is already playing.
func (m *Manager) Play(s audio.Sound) {
	m.mu.Lock()
	if !m.initialized || m.playing[s] {
		m.mu.Unlock()
		return
	}
	m.playing[s] = true
	m.mu.Unlock()

	streamer, err := Synthesize(s)
	if err != nil {
		m.finished(s)
		return
	}

	done := beep.Callback(func() { m.finished(s) })

	speaker.Lock()
	m.mixer.Add(beep.Seq(streamer, done))
	speaker.Unlock()
}

func (m *Manager) finished(s audio.Sound) {
	m.mu.Lock()
	delete(m.playing, s)
	m.mu.Unlock()
}

// Playing reports whether s is currently playing.
func (m *Manager) Playing(s audio.Sound) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.playing[s]
}

// Synthesize builds the streamer for a sound. Every sound except the music
// loop is finite.
func Synthesize(s audio.Sound) (beep.Streamer, error) {
	switch s {
	case audio.SoundHit:
		return tone(220, 120*time.Millisecond, 0.3)
	case audio.SoundSwing:
		return beep.Take(sampleRate.N(180*time.Millisecond), NewSweepGenerator(sampleRate, 900, 300, 180*time.Millisecond)), nil
	case audio.SoundVocalize:
		low, err := tone(140, 150*time.Millisecond, 0.15)
		if err != nil {
			return nil, err
		}
		high, err := tone(110, 250*time.Millisecond, 0.15)
		if err != nil {
			return nil, err
		}
		return beep.Seq(low, high), nil
	case audio.SoundMusic:
		return NewDroneGenerator(sampleRate), nil
	default:
		return nil, fmt.Errorf("unknown sound %d", s)
	}
}

// tone returns a sine tone of the given length, scaled by volume.
func tone(freq float64, d time.Duration, volume float64) (beep.Streamer, error) {
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return nil, err
	}
	return &gain{Streamer: beep.Take(sampleRate.N(d), sine), volume: volume}, nil
}

// gain scales every sample of the wrapped streamer.
type gain struct {
	beep.Streamer
	volume float64
}

func (g *gain) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = g.Streamer.Stream(samples)
	for i := range samples[:n] {
		samples[i][0] *= g.volume
		samples[i][1] *= g.volume
	}
	return n, ok
}
