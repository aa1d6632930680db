// Package audio plays short procedurally generated sound cues.
package audio

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/flappy-dash/internal/core"
)

const sampleRate = beep.SampleRate(44100)

// Cue builds the streamer for a sound. Unknown sounds return nil.
func Cue(s core.Sound) beep.Streamer {
	switch s {
	case core.SoundFlap:
		return NewTone(sampleRate, 380, 620, 60*time.Millisecond, WaveSine, 0.25)
	case core.SoundPoint:
		return beep.Seq(
			NewTone(sampleRate, 880, 880, 70*time.Millisecond, WaveSine, 0.3),
			NewTone(sampleRate, 1320, 1320, 110*time.Millisecond, WaveSine, 0.3),
		)
	case core.SoundDie:
		return NewTone(sampleRate, 420, 80, 400*time.Millisecond, WaveSquare, 0.3)
	default:
		return nil
	}
}

// Player mixes cues into the system speaker. A Player that failed to
// initialise stays silent.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	log         *log.Logger
	initialized bool
}

// NewPlayer creates a player. Call Init before the first cue.
func NewPlayer(logger *log.Logger) *Player {
	if logger == nil {
		logger = log.Default()
	}
	return &Player{
		mixer: &beep.Mixer{},
		log:   logger,
	}
}

// Init opens the speaker.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return err
	}

	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Play starts a cue and returns immediately.
func (p *Player) Play(s core.Sound) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	cue := Cue(s)
	if cue == nil {
		p.log.Debug("unknown sound cue", "sound", int(s))
		return
	}

	speaker.Lock()
	p.mixer.Add(cue)
	speaker.Unlock()
}

// Close stops all cues and releases the speaker.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.initialized = false
}

// Open returns a started Player, or Nop when no audio device is usable.
func Open(logger *log.Logger) core.SoundPlayer {
	p := NewPlayer(logger)
	if err := p.Init(); err != nil {
		p.log.Warn("audio unavailable, sound disabled", "error", err)
		return Nop{}
	}
	return p
}

// Nop is a silent SoundPlayer.
type Nop struct{}

// Play does nothing.
func (Nop) Play(core.Sound) {}

var (
	_ core.SoundPlayer = (*Player)(nil)
	_ core.SoundPlayer = Nop{}
)
