package audio

import (
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/lixenwraith/tilerunner/constant"
	"github.com/lixenwraith/tilerunner/core"
	"github.com/lixenwraith/tilerunner/logger"
	"github.com/pkg/errors"
)

const sampleRate = beep.SampleRate(constant.AudioSampleRate)

// maxVoices bounds concurrently mixed effects; extra requests are dropped
const maxVoices = 16

// SoundManager plays logical sounds through the speaker
// Every method is safe to call before Initialize or after a failed one
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	master      float64
	muted       bool
	initialized bool
}

// NewSoundManager creates a sound manager at full master volume
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		master: 1.0,
	}
}

// Initialize opens the speaker and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(constant.AudioBufferDuration)); err != nil {
		return errors.Wrap(err, "speaker init")
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	logger.Component("audio").WithField("rate", int(sampleRate)).Info("speaker ready")
	return nil
}

// Play queues a sound at volume in [0, 1]; false when dropped
func (sm *SoundManager) Play(s core.SoundType, volume float64) bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted || volume <= 0 {
		return false
	}

	st := Effect(s, min(volume, 1)*sm.master, sampleRate)
	if st == nil {
		return false
	}

	speaker.Lock()
	defer speaker.Unlock()
	if sm.mixer.Len() >= maxVoices {
		return false
	}
	sm.mixer.Add(st)
	return true
}

// SetMasterVolume scales every effect; clamped to [0, 1]
func (sm *SoundManager) SetMasterVolume(v float64) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.master = min(max(v, 0), 1)
}

// ToggleMute flips the mute state and returns the new one
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = !sm.muted
	return sm.muted
}

func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = muted
}

func (sm *SoundManager) IsMuted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

func (sm *SoundManager) IsInitialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// Cleanup stops all sounds
// beep has no speaker close; clearing the mixer leaves no audio artifacts
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}
