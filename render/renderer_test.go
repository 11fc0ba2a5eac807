package render

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/tilerunner/constant"
	"github.com/lixenwraith/tilerunner/engine"
	"github.com/lixenwraith/tilerunner/entity"
	"github.com/lixenwraith/tilerunner/player"
	"github.com/lixenwraith/tilerunner/tile"
	"github.com/lixenwraith/tilerunner/vmath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	s.SetSize(ViewCols, ViewRows+1)
	t.Cleanup(s.Fini)
	return s
}

func runeAt(s tcell.Screen, x, y int) rune {
	r, _, _, _ := s.GetContent(x, y)
	return r
}

func rowText(s tcell.Screen, y int) string {
	w, _ := s.Size()
	var b strings.Builder
	for x := 0; x < w; x++ {
		b.WriteRune(runeAt(s, x, y))
	}
	return b.String()
}

// floorLevel is one room with a floor along row 10
func floorLevel() *engine.Level {
	w := constant.RoomWidth / constant.TileSize
	h := constant.RoomHeight / constant.TileSize
	layer := make([]int, w*h)
	for i := range layer {
		layer[i] = constant.TileEmpty
	}
	for col := 0; col < w; col++ {
		layer[10*w+col] = 1
	}
	ch := make([]int, constant.TileTableSize)
	ch[1] = constant.ChannelThreshold + constant.CodeTop
	m := tile.NewMap(tile.Source{Width: w, Height: h, Middle: layer, Channels: [][]int{ch}})
	return engine.NewLevel(m, vmath.Vec(40, 140), engine.Options{Seed: 1})
}

func TestFrameDrawsTilesPlayerAndStatus(t *testing.T) {
	s := newScreen(t)
	l := floorLevel()
	for i := 0; i < 60; i++ {
		l.Update(1)
	}

	r := New(s)
	r.SetStatus("PAUSED")
	r.Frame(l)

	// Floor tile row 10 covers cell rows 20 and 21
	assert.Equal(t, '#', runeAt(s, 0, 20))
	assert.Equal(t, '#', runeAt(s, ViewCols-1, 21))
	assert.Equal(t, ' ', runeAt(s, 0, 19))

	// Player center (40, 153)
	assert.Equal(t, '@', runeAt(s, 10, 19))

	status := rowText(s, ViewRows)
	assert.Contains(t, status, "SCORE 0")
	assert.Contains(t, status, "ROOM 0,0")
	assert.Contains(t, status, "[PAUSED]")
	assert.Contains(t, status, strings.Repeat("♥", 6))
}

func TestTileGlyphOverride(t *testing.T) {
	s := newScreen(t)
	r := New(s)
	r.SetTileGlyph(7, glyph('L', RgbSolidTile))

	r.DrawTile(tile.LayerMiddle, 7, vmath.Vec(16, 16))
	for y := 2; y < 4; y++ {
		for x := 4; x < 8; x++ {
			assert.Equal(t, 'L', runeAt(s, x, y), "cell %d,%d", x, y)
		}
	}
	assert.NotEqual(t, 'L', runeAt(s, 8, 2))
}

func TestDrawClipsToPlayArea(t *testing.T) {
	s := newScreen(t)
	r := New(s)

	assert.NotPanics(t, func() {
		r.DrawTile(tile.LayerBottom, 1, vmath.Vec(-8, -8))
		r.DrawTile(tile.LayerBottom, 1, vmath.Vec(constant.RoomWidth-4, constant.RoomHeight-4))
		r.DrawSprite(entity.Sprite{Kind: "bat"}, vmath.Vec(-100, 50))
		r.DrawText("+10", vmath.Vec(1000, 1000))
	})
	assert.Equal(t, '.', runeAt(s, 0, 0))
	assert.Equal(t, ' ', runeAt(s, 0, ViewRows), "status row untouched by tiles")
}

func TestSpriteGlyph(t *testing.T) {
	tests := []struct {
		name   string
		sprite entity.Sprite
		want   rune
	}{
		{"player idle", entity.Sprite{Kind: "player"}, '@'},
		{"player climb", entity.Sprite{Kind: "player", Frame: player.FrameClimb}, 'H'},
		{"player attack right", entity.Sprite{Kind: "player", Frame: player.FrameAttack}, '/'},
		{"player attack left", entity.Sprite{Kind: "player", Frame: player.FrameAttack, FlipX: true}, '\\'},
		{"shot right", entity.Sprite{Kind: "shot"}, '>'},
		{"shot left", entity.Sprite{Kind: "enemy-shot", FlipX: true}, '<'},
		{"species", entity.Sprite{Kind: "golem"}, 'O'},
		{"unknown", entity.Sprite{Kind: "dragon"}, '?'},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, spriteGlyph(tt.sprite).Rune)
		})
	}
}

func TestSpriteFlashReverses(t *testing.T) {
	_, _, attrs := spriteGlyph(entity.Sprite{Kind: "bat", Flash: true}).Style.Decompose()
	assert.NotZero(t, attrs&tcell.AttrReverse)
}

func TestDrawTextCentered(t *testing.T) {
	s := newScreen(t)
	r := New(s)
	r.DrawText("+10", vmath.Vec(40, 40))
	assert.Equal(t, "+10", rowText(s, 5)[9:12])
}
