// Package audio plays short cues when papers are picked up and dropped
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(48000)

	pickDuration = 60 * time.Millisecond
	dropDuration = 120 * time.Millisecond

	pickFreq       = 660.0
	pickRotateFreq = 990.0
	dropFreq       = 140.0
)

// SoundManager owns the speaker and mixes cues into it
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewSoundManager creates a sound manager. Nothing plays until Initialize succeeds
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	sm.initialized = false
}

// Pickup plays a short rising chirp, higher when the paper is being rotated
func (sm *SoundManager) Pickup(rotating bool) {
	freq := pickFreq
	if rotating {
		freq = pickRotateFreq
	}
	sm.play(beep.Take(sampleRate.N(pickDuration), NewChirpGenerator(sampleRate, freq, pickDuration)))
}

// Drop plays a soft low thud
func (sm *SoundManager) Drop() {
	sm.play(beep.Take(sampleRate.N(dropDuration), NewThudGenerator(sampleRate, dropFreq, dropDuration)))
}

func (sm *SoundManager) play(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	// The mixer is being read by the speaker goroutine
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}
