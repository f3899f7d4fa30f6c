// Package audio plays the duel's synthesized sound effects through beep.
// A Player that cannot open an audio device stays silent; the game never
// depends on sound being available.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/spacefight/internal/core"
)

const (
	sampleRate = beep.SampleRate(44100)

	fireDuration = 120 * time.Millisecond
	hitDuration  = 350 * time.Millisecond
)

// Player mixes sound effects onto the default audio device.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
	logger      *log.Logger
}

// NewPlayer creates a player with volume in [0, 1].
// Call Init before Play; until then Play does nothing.
func NewPlayer(volume float64, logger *log.Logger) *Player {
	if logger == nil {
		logger = log.Default()
	}
	return &Player{
		mixer:  &beep.Mixer{},
		volume: volume,
		logger: logger,
	}
}

// Init opens the audio device and starts the mixer.
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
	p.logger.Debug("audio initialized", "rate", int(sampleRate), "volume", p.volume)
	return nil
}

// Play starts effect and returns immediately. Overlapping effects are mixed.
func (p *Player) Play(effect core.SoundEffect) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	s := Effect(effect, p.volume)
	if s == nil {
		return
	}

	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Close stops every playing effect.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()

	p.initialized = false
}

// Effect returns a finite streamer for effect at the given volume,
// or nil for an unknown effect.
func Effect(effect core.SoundEffect, volume float64) beep.Streamer {
	var s beep.Streamer
	switch effect {
	case core.SoundFire:
		s = beep.Take(sampleRate.N(fireDuration), newLaser(sampleRate))
	case core.SoundHit:
		s = beep.Take(sampleRate.N(hitDuration), newBlast(sampleRate))
	default:
		return nil
	}
	return withVolume(s, volume)
}

// withVolume maps a linear volume onto beep's logarithmic scale.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// laser is a fast downward pitch sweep.
type laser struct {
	sr    beep.SampleRate
	pos   int
	phase float64
}

func newLaser(sr beep.SampleRate) *laser {
	return &laser{sr: sr}
}

func (g *laser) Stream(samples [][2]float64) (n int, ok bool) {
	total := float64(g.sr.N(fireDuration))
	for i := range samples {
		progress := math.Min(float64(g.pos)/total, 1)
		freq := 1800 - 1400*progress

		g.phase += 2 * math.Pi * freq / float64(g.sr)
		sample := 0.3 * (1 - progress) * math.Sin(g.phase)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *laser) Err() error {
	return nil
}

// blast is decaying noise over a low rumble.
type blast struct {
	sr   beep.SampleRate
	pos  int
	seed uint32
}

func newBlast(sr beep.SampleRate) *blast {
	return &blast{sr: sr, seed: 0x2545f491}
}

func (g *blast) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		envelope := math.Exp(-t * 9)

		g.seed ^= g.seed << 13
		g.seed ^= g.seed >> 17
		g.seed ^= g.seed << 5
		noise := float64(g.seed)/float64(math.MaxUint32)*2 - 1

		rumble := math.Sin(2 * math.Pi * 60 * t)
		sample := envelope * (0.3*noise + 0.25*rumble)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *blast) Err() error {
	return nil
}
