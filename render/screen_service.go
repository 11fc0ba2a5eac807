package render

import (
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
)

// ScreenService owns the terminal screen lifecycle
type ScreenService struct {
	mu      sync.Mutex
	factory func() (tcell.Screen, error)
	screen  tcell.Screen
}

// NewScreenService uses factory to create the screen on Start; nil means tcell.NewScreen
func NewScreenService(factory func() (tcell.Screen, error)) *ScreenService {
	if factory == nil {
		factory = tcell.NewScreen
	}
	return &ScreenService{factory: factory}
}

// Name implements Service
func (s *ScreenService) Name() string {
	return "screen"
}

// Dependencies implements Service
func (s *ScreenService) Dependencies() []string {
	return nil
}

// Init implements Service
func (s *ScreenService) Init(args ...any) error {
	return nil
}

// Start implements Service
// Unlike audio there is no degraded mode: the sandbox cannot run without a screen
func (s *ScreenService) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.screen != nil {
		return nil
	}
	screen, err := s.factory()
	if err != nil {
		return errors.Wrap(err, "create screen")
	}
	if err := screen.Init(); err != nil {
		return errors.Wrap(err, "init screen")
	}
	screen.HideCursor()
	screen.Clear()
	s.screen = screen
	return nil
}

// Stop implements Service; restores the terminal
func (s *ScreenService) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.screen != nil {
		s.screen.Fini()
		s.screen = nil
	}
	return nil
}

// Screen returns the live screen, nil before Start or after Stop
func (s *ScreenService) Screen() tcell.Screen {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.screen
}
