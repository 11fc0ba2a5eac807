package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/tilerunner/service"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ service.Service = (*ScreenService)(nil)

func TestScreenServiceLifecycle(t *testing.T) {
	sim := tcell.NewSimulationScreen("UTF-8")
	s := NewScreenService(func() (tcell.Screen, error) { return sim, nil })

	assert.Nil(t, s.Screen())
	require.NoError(t, s.Init())
	require.NoError(t, s.Start())
	assert.Same(t, sim, s.Screen())

	// Second Start keeps the screen
	require.NoError(t, s.Start())
	assert.Same(t, sim, s.Screen())

	require.NoError(t, s.Stop())
	assert.Nil(t, s.Screen())
	require.NoError(t, s.Stop())
}

func TestScreenServiceFactoryError(t *testing.T) {
	s := NewScreenService(func() (tcell.Screen, error) { return nil, errors.New("no tty") })

	err := s.Start()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "create screen: no tty")
	assert.Nil(t, s.Screen())
}
