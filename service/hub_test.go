package service

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fake struct {
	name    string
	deps    []string
	log     *[]string
	args    []any
	failOn  string
	stopped int
}

func (f *fake) Name() string           { return f.name }
func (f *fake) Dependencies() []string { return f.deps }

func (f *fake) Init(args ...any) error {
	f.args = args
	*f.log = append(*f.log, "init:"+f.name)
	if f.failOn == "init" {
		return errors.New("boom")
	}
	return nil
}

func (f *fake) Start() error {
	*f.log = append(*f.log, "start:"+f.name)
	if f.failOn == "start" {
		return errors.New("boom")
	}
	return nil
}

func (f *fake) Stop() error {
	f.stopped++
	*f.log = append(*f.log, "stop:"+f.name)
	return nil
}

func TestHubLifecycleOrder(t *testing.T) {
	var log []string
	screen := &fake{name: "screen", log: &log}
	audio := &fake{name: "audio", log: &log}
	game := &fake{name: "game", deps: []string{"screen", "audio"}, log: &log}

	h := NewHub()
	require.NoError(t, h.Register(game))
	require.NoError(t, h.Register(screen))
	require.NoError(t, h.Register(audio))

	require.NoError(t, h.InitAll(map[string][]any{"audio": {true, 0.5}}))
	require.NoError(t, h.StartAll())
	h.StopAll()

	assert.Equal(t, []string{
		"init:audio", "init:screen", "init:game",
		"start:audio", "start:screen", "start:game",
		"stop:game", "stop:screen", "stop:audio",
	}, log)
	assert.Equal(t, []any{true, 0.5}, audio.args)
	assert.Empty(t, screen.args)
	assert.Equal(t, []string{"audio", "screen", "game"}, h.Names())
}

func TestHubRegisterDuplicate(t *testing.T) {
	var log []string
	h := NewHub()
	require.NoError(t, h.Register(&fake{name: "audio", log: &log}))
	assert.Error(t, h.Register(&fake{name: "audio", log: &log}))
}

func TestHubDependencyErrors(t *testing.T) {
	tests := []struct {
		name     string
		services []*fake
	}{
		{"missing dependency", []*fake{{name: "a", deps: []string{"ghost"}}}},
		{"cycle", []*fake{{name: "a", deps: []string{"b"}}, {name: "b", deps: []string{"a"}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var log []string
			h := NewHub()
			for _, s := range tt.services {
				s.log = &log
				require.NoError(t, h.Register(s))
			}
			assert.Error(t, h.InitAll(nil))
			assert.Empty(t, log)
		})
	}
}

func TestHubStartRollback(t *testing.T) {
	var log []string
	a := &fake{name: "a", log: &log}
	b := &fake{name: "b", deps: []string{"a"}, log: &log, failOn: "start"}

	h := NewHub()
	require.NoError(t, h.Register(a))
	require.NoError(t, h.Register(b))
	require.NoError(t, h.InitAll(nil))

	err := h.StartAll()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "service b start")
	assert.Equal(t, 1, a.stopped)

	// Nothing left to stop
	h.StopAll()
	assert.Equal(t, 1, a.stopped)
}

func TestLookup(t *testing.T) {
	var log []string
	h := NewHub()
	require.NoError(t, h.Register(&fake{name: "a", log: &log}))

	f, ok := Lookup[*fake](h, "a")
	require.True(t, ok)
	assert.Equal(t, "a", f.Name())

	_, ok = Lookup[*Hub](h, "a")
	assert.False(t, ok)
	_, ok = Lookup[*fake](h, "missing")
	assert.False(t, ok)
}
