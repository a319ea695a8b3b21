// Package audio plays procedurally generated sound cues and a looping
// background tune through oto. When no output device is available the
// game runs silent through a no-op player.
package audio

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/oto/v2"

	"github.com/vovakirdan/greedy-snake/internal/core"
)

const (
	SampleRate   = 44100
	ChannelCount = 2
	BitDepth     = 0 // 32-bit float (oto.FormatFloat32LE)
)

// Cue identifies a sound effect.
type Cue int

const (
	CueEat Cue = iota
	CueSpecial
	CueLevelUp
	CueLifeLost
	CueGameOver
)

func (c Cue) String() string {
	switch c {
	case CueEat:
		return "eat"
	case CueSpecial:
		return "special"
	case CueLevelUp:
		return "level_up"
	case CueLifeLost:
		return "life_lost"
	case CueGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Player is the sound output used by the session driver.
type Player interface {
	Play(cue Cue)
	StartMusic()
	StopMusic()
	Close()
}

// Options configures a player.
type Options struct {
	Enabled     bool
	SFXVolume   float64
	MusicVolume float64
}

// CuesFor maps the events of one tick to the cues that should sound.
// Game over supersedes the life lost cue of the same tick.
func CuesFor(events []core.Event) []Cue {
	var cues []Cue
	over := core.HasEvent(events, core.EventGameOver)
	for _, e := range events {
		switch e.Kind {
		case core.EventAteFood:
			cues = append(cues, CueEat)
		case core.EventAteSpecial:
			cues = append(cues, CueSpecial)
		case core.EventLevelUp:
			cues = append(cues, CueLevelUp)
		case core.EventLifeLost:
			if !over {
				cues = append(cues, CueLifeLost)
			}
		case core.EventGameOver:
			cues = append(cues, CueGameOver)
		}
	}
	return cues
}

// New opens the audio device. It returns a no-op player when audio is
// disabled or the device cannot be opened; the failure is logged.
func New(opts Options, logger *log.Logger) Player {
	if !opts.Enabled {
		return Nop{}
	}
	if logger == nil {
		logger = log.Default()
	}
	logger = logger.WithPrefix("audio")

	ctx, ready, err := oto.NewContext(SampleRate, ChannelCount, BitDepth)
	if err != nil {
		logger.Warn("audio device unavailable, continuing without sound", "err", err)
		return Nop{}
	}
	p := &otoPlayer{
		ctx:    ctx,
		ready:  ready,
		sfx:    clampF(opts.SFXVolume, 0, 1),
		music:  clampF(opts.MusicVolume, 0, 1),
		logger: logger,
		cues:   make(map[Cue][]byte),
	}
	for _, c := range []Cue{CueEat, CueSpecial, CueLevelUp, CueLifeLost, CueGameOver} {
		p.cues[c] = generate(c)
	}
	return p
}

// otoPlayer plays through an oto context.
type otoPlayer struct {
	ctx    *oto.Context
	ready  chan struct{}
	sfx    float64
	music  float64
	logger *log.Logger
	cues   map[Cue][]byte // Pre-rendered, read-only after New

	mu          sync.Mutex
	musicPlayer oto.Player
	closed      bool
}

// isReady reports whether the device finished initialising.
func (p *otoPlayer) isReady() bool {
	select {
	case <-p.ready:
		return true
	default:
		return false
	}
}

// Play starts a cue in the background.
func (p *otoPlayer) Play(cue Cue) {
	p.mu.Lock()
	closed := p.closed
	p.mu.Unlock()
	if closed || !p.isReady() || p.sfx <= 0 {
		return
	}
	samples := p.cues[cue]
	if len(samples) == 0 {
		return
	}
	go func() {
		player := p.ctx.NewPlayer(&soundReader{data: samples})
		player.SetVolume(p.sfx)
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		player.Close() //nolint:errcheck
	}()
}

// StartMusic (re)starts the background loop.
func (p *otoPlayer) StartMusic() {
	if !p.isReady() || p.music <= 0 {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	if p.musicPlayer != nil {
		p.musicPlayer.Close() //nolint:errcheck
	}
	player := p.ctx.NewPlayer(newMusicReader())
	player.SetVolume(p.music)
	player.Play()
	p.musicPlayer = player
	p.logger.Debug("music started")
}

// StopMusic stops the background loop.
func (p *otoPlayer) StopMusic() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.musicPlayer != nil {
		p.musicPlayer.Close() //nolint:errcheck
		p.musicPlayer = nil
	}
}

// Close stops music and ignores further cues.
func (p *otoPlayer) Close() {
	p.StopMusic()
	p.mu.Lock()
	p.closed = true
	p.mu.Unlock()
}

// Nop is a silent player.
type Nop struct{}

func (Nop) Play(Cue)    {}
func (Nop) StartMusic() {}
func (Nop) StopMusic()  {}
func (Nop) Close()      {}

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
