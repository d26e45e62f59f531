// Package audio plays the game's sound effects. Every call is a no-op until
// Initialize succeeds, so the game runs fine without an audio device.
package audio

import (
	"math"
	"snake-game/game"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

const (
	eatDuration  = 80 * time.Millisecond
	lossDuration = 300 * time.Millisecond
)

// SoundManager mixes short effects onto the speaker.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

func NewSoundManager() *SoundManager {
	return &SoundManager{mixer: &beep.Mixer{}}
}

// Initialize opens the speaker. Calling it twice is harmless.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return err
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup drops every queued sound and closes the speaker.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sm.initialized = false
}

func (sm *SoundManager) add(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// PlayEat plays a short rising chirp.
func (sm *SoundManager) PlayEat() {
	sm.add(beep.Take(sampleRate.N(eatDuration), NewChirpGenerator(sampleRate, 600, 1200, eatDuration)))
}

// PlayLoss plays a low buzz.
func (sm *SoundManager) PlayLoss() {
	sm.add(beep.Take(sampleRate.N(lossDuration), NewBuzzGenerator(sampleRate, 110)))
}

// Play picks the effect for a tick outcome, if any.
func (sm *SoundManager) Play(out game.Outcome) {
	switch {
	case out.Lost:
		sm.PlayLoss()
	case out.Ate:
		sm.PlayEat()
	}
}

// ChirpGenerator sweeps a sine from one frequency to another.
type ChirpGenerator struct {
	sr       beep.SampleRate
	from, to float64
	total    int
	pos      int
	phase    float64
}

func NewChirpGenerator(sr beep.SampleRate, from, to float64, d time.Duration) *ChirpGenerator {
	return &ChirpGenerator{sr: sr, from: from, to: to, total: max(sr.N(d), 1)}
}

func (g *ChirpGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		progress := math.Min(float64(g.pos)/float64(g.total), 1)
		freq := g.from + (g.to-g.from)*progress
		val := math.Sin(2*math.Pi*g.phase) * 0.3 * (1 - progress)

		samples[i][0] = val
		samples[i][1] = val

		g.phase += freq / float64(g.sr)
		g.phase -= math.Floor(g.phase)
		g.pos++
	}
	return len(samples), true
}

func (g *ChirpGenerator) Err() error {
	return nil
}

// BuzzGenerator is a quiet square wave.
type BuzzGenerator struct {
	sr    beep.SampleRate
	freq  float64
	phase float64
}

func NewBuzzGenerator(sr beep.SampleRate, freq float64) *BuzzGenerator {
	return &BuzzGenerator{sr: sr, freq: freq}
}

func (g *BuzzGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		val := 0.2
		if g.phase >= 0.5 {
			val = -0.2
		}
		samples[i][0] = val
		samples[i][1] = val

		g.phase += g.freq / float64(g.sr)
		g.phase -= math.Floor(g.phase)
	}
	return len(samples), true
}

func (g *BuzzGenerator) Err() error {
	return nil
}
