package audio

import (
	"sync/atomic"

	"github.com/lixenwraith/tilerunner/core"
	"github.com/lixenwraith/tilerunner/logger"
)

// AudioService wraps SoundManager as a Service
// Handles graceful degradation when no audio device is available
type AudioService struct {
	manager  *SoundManager
	muted    bool
	volume   float64
	disabled atomic.Bool
}

// NewService creates a new audio service
func NewService() *AudioService {
	return &AudioService{manager: NewSoundManager(), volume: 1.0}
}

// Name implements Service
func (s *AudioService) Name() string {
	return "audio"
}

// Dependencies implements Service
func (s *AudioService) Dependencies() []string {
	return nil
}

// Init implements Service
// args[0]: bool - initial mute state
// args[1]: float64 - master volume
func (s *AudioService) Init(args ...any) error {
	if len(args) > 0 {
		if muted, ok := args[0].(bool); ok {
			s.muted = muted
		}
	}
	if len(args) > 1 {
		if v, ok := args[1].(float64); ok {
			s.volume = v
		}
	}
	s.manager.SetMuted(s.muted)
	s.manager.SetMasterVolume(s.volume)
	return nil
}

// Start implements Service
// Opens the speaker; sets disabled on failure (no error returned)
func (s *AudioService) Start() error {
	if s.disabled.Load() {
		return nil
	}
	if err := s.manager.Initialize(); err != nil {
		s.disabled.Store(true)
		logger.Component("audio").WithError(err).Warn("audio disabled")
	}
	return nil
}

// Stop implements Service
func (s *AudioService) Stop() error {
	s.manager.Cleanup()
	return nil
}

// IsDisabled returns true if audio is unavailable
func (s *AudioService) IsDisabled() bool {
	return s.disabled.Load()
}

// Manager returns the underlying SoundManager
func (s *AudioService) Manager() *SoundManager {
	return s.manager
}

// Hook returns the sound callback for core.Hooks; a silent no-op while disabled
func (s *AudioService) Hook() func(core.SoundType, float64) {
	return func(st core.SoundType, volume float64) {
		if s.disabled.Load() {
			return
		}
		s.manager.Play(st, volume)
	}
}
