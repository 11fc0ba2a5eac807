package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 60, cfg.Game.TickRate)
	assert.Contains(t, cfg.Keys.Quit, "q")
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sandbox.toml")
	data := `
[game]
seed = 42
level = "cave.txt"

[audio]
muted = true

[keys]
jump = ["k"]
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, uint64(42), cfg.Game.Seed)
	assert.Equal(t, "cave.txt", cfg.Game.Level)
	assert.Equal(t, 60, cfg.Game.TickRate, "absent keys keep defaults")
	assert.True(t, cfg.Audio.Muted)
	assert.InDelta(t, 0.8, cfg.Audio.Volume, 1e-9)
	assert.Equal(t, []string{"k"}, cfg.Keys.Jump)
	assert.Equal(t, []string{"left", "a"}, cfg.Keys.Left)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"syntax", "[game\nseed = 1", "decode"},
		{"type", "[game]\ntick_rate = \"fast\"", "decode"},
		{"zero tick rate", "[game]\ntick_rate = 0", "tick_rate"},
		{"volume range", "[audio]\nvolume = 1.5", "volume"},
		{"empty binding", "[keys]\nquit = []", "keys.quit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "bad.toml")
			require.NoError(t, os.WriteFile(path, []byte(tt.data), 0o644))

			_, err := Load(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config")
}

func TestUnknownKeysIgnored(t *testing.T) {
	cfg := Default()
	require.NoError(t, Parse([]byte("[game]\nwarp = true\n"), cfg))
	assert.Equal(t, Default(), cfg)
}
