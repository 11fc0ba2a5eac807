package input

import (
	"sort"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/tilerunner/player"
	"github.com/pkg/errors"
)

// Mapper turns terminal key events into player intents
// Terminals deliver presses and auto-repeats only, so a held key is modelled
// as pressed until holdTicks pass without another event for it
type Mapper struct {
	keys      map[binding]action
	held      [holdableCount]float64
	holdTicks float64
	quit      bool
}

// NewMapper resolves action name to key name bindings
// Unknown actions or key names are errors; one key may serve one action only
func NewMapper(bindings map[string][]string, holdTicks int) (*Mapper, error) {
	if holdTicks <= 0 {
		return nil, errors.Errorf("hold ticks must be positive, got %d", holdTicks)
	}
	m := &Mapper{
		keys:      make(map[binding]action),
		holdTicks: float64(holdTicks),
	}

	// Sorted for deterministic conflict errors
	names := make([]string, 0, len(bindings))
	for name := range bindings {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		a, ok := actionByName[name]
		if !ok {
			return nil, errors.Errorf("unknown action %q", name)
		}
		for _, keyName := range bindings[name] {
			b, err := resolveKey(keyName)
			if err != nil {
				return nil, errors.Wrapf(err, "action %s", name)
			}
			if prev, dup := m.keys[b]; dup && prev != a {
				return nil, errors.Errorf("key %q bound to more than one action", keyName)
			}
			m.keys[b] = a
		}
	}
	return m, nil
}

// Handle consumes one terminal event and returns any system intent
func (m *Mapper) Handle(ev tcell.Event) IntentType {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		return IntentResize
	case *tcell.EventKey:
		a, ok := m.keys[bindingOf(ev)]
		if !ok {
			return IntentNone
		}
		if a < holdableCount {
			m.held[a] = m.holdTicks
			return IntentNone
		}
		if a == actionQuit {
			m.quit = true
		}
		return actionIntents[a]
	}
	return IntentNone
}

// Advance ages the hold windows by tick
func (m *Mapper) Advance(tick float64) {
	for i := range m.held {
		m.held[i] = max(m.held[i]-tick, 0)
	}
}

// Input returns the intents currently held
func (m *Mapper) Input() player.Input {
	return player.Input{
		Left:   m.held[actionLeft] > 0,
		Right:  m.held[actionRight] > 0,
		Up:     m.held[actionUp] > 0,
		Down:   m.held[actionDown] > 0,
		Jump:   m.held[actionJump] > 0,
		Attack: m.held[actionAttack] > 0,
	}
}

// Release drops every held key, used when focus or pause interrupts play
func (m *Mapper) Release() {
	m.held = [holdableCount]float64{}
}

// Quit reports that a quit key was pressed
func (m *Mapper) Quit() bool {
	return m.quit
}
