package config

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/lixenwraith/tilerunner/constant"
	"github.com/lixenwraith/tilerunner/logger"
	"github.com/pkg/errors"
)

// Config is the sandbox runtime configuration
type Config struct {
	Game  GameConfig  `toml:"game"`
	Audio AudioConfig `toml:"audio"`
	Keys  KeyConfig   `toml:"keys"`
}

type GameConfig struct {
	// Seed drives the simulation rng; 0 picks one from the clock at startup
	Seed uint64 `toml:"seed"`

	// TickRate is logical updates per second
	TickRate int `toml:"tick_rate"`

	// Level is an ASCII level file; empty uses the built-in level
	Level string `toml:"level"`

	// HoldTicks is how long a key press counts as held without a repeat
	// Terminals report presses only, never releases
	HoldTicks int `toml:"hold_ticks"`
}

type AudioConfig struct {
	Muted  bool    `toml:"muted"`
	Volume float64 `toml:"volume"`
}

// KeyConfig binds each action to key names
// Names are single characters, "space", or tcell key names ("left", "enter", "ctrl-c")
type KeyConfig struct {
	Left   []string `toml:"left"`
	Right  []string `toml:"right"`
	Up     []string `toml:"up"`
	Down   []string `toml:"down"`
	Jump   []string `toml:"jump"`
	Attack []string `toml:"attack"`
	Pause  []string `toml:"pause"`
	Mute   []string `toml:"mute"`
	Quit   []string `toml:"quit"`
}

// Bindings returns action name to key names
func (k KeyConfig) Bindings() map[string][]string {
	return map[string][]string{
		"left":   k.Left,
		"right":  k.Right,
		"up":     k.Up,
		"down":   k.Down,
		"jump":   k.Jump,
		"attack": k.Attack,
		"pause":  k.Pause,
		"mute":   k.Mute,
		"quit":   k.Quit,
	}
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Game: GameConfig{
			TickRate:  constant.TickRate,
			HoldTicks: 8,
		},
		Audio: AudioConfig{
			Muted:  false,
			Volume: 0.8,
		},
		Keys: KeyConfig{
			Left:   []string{"left", "a"},
			Right:  []string{"right", "d"},
			Up:     []string{"up", "w"},
			Down:   []string{"down", "s"},
			Jump:   []string{"space", "z"},
			Attack: []string{"x", "j"},
			Pause:  []string{"p"},
			Mute:   []string{"m"},
			Quit:   []string{"q", "esc", "ctrl-c"},
		},
	}
}

// Load overlays the TOML file at path on Default
// An empty path returns the defaults; keys present in the file replace whole bindings
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read config")
	}
	if err := Parse(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

// Parse decodes TOML data over cfg and validates the result
func Parse(data []byte, cfg *Config) error {
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return errors.Wrap(err, "decode")
	}
	for _, key := range md.Undecoded() {
		logger.Component("config").WithField("key", key.String()).Warn("unknown config key ignored")
	}
	return cfg.Validate()
}

// Validate rejects values the sandbox cannot run with
func (c *Config) Validate() error {
	if c.Game.TickRate <= 0 {
		return errors.Errorf("game.tick_rate must be positive, got %d", c.Game.TickRate)
	}
	if c.Game.HoldTicks <= 0 {
		return errors.Errorf("game.hold_ticks must be positive, got %d", c.Game.HoldTicks)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return errors.Errorf("audio.volume must be in [0, 1], got %g", c.Audio.Volume)
	}
	for action, keys := range c.Keys.Bindings() {
		if len(keys) == 0 {
			return errors.Errorf("keys.%s has no binding", action)
		}
	}
	return nil
}
