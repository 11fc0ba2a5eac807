package render

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/tilerunner/constant"
	"github.com/lixenwraith/tilerunner/engine"
	"github.com/lixenwraith/tilerunner/entity"
	"github.com/lixenwraith/tilerunner/player"
	"github.com/lixenwraith/tilerunner/vmath"
)

// Cell size in world pixels; one room fills 80x24 cells
const (
	CellWidth  = 4
	CellHeight = 8
)

// ViewCols and ViewRows are the play area size in cells; the status bar sits below
const (
	ViewCols = constant.RoomWidth / CellWidth
	ViewRows = constant.RoomHeight / CellHeight
)

var _ engine.Drawer = (*Renderer)(nil)

// Renderer draws a level onto a tcell screen
type Renderer struct {
	screen tcell.Screen
	tiles  map[int]Glyph
	status string
}

// New returns a renderer over an initialized screen
func New(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen, tiles: make(map[int]Glyph)}
}

// SetTileGlyph overrides the glyph of one tile id on every layer
func (r *Renderer) SetTileGlyph(id int, g Glyph) {
	r.tiles[id] = g
}

// SetStatus shows a short notice in the status bar, "" clears it
func (r *Renderer) SetStatus(s string) {
	r.status = s
}

// Frame draws the level and status bar, then presents the screen
func (r *Renderer) Frame(level *engine.Level) {
	r.screen.Fill(' ', tcell.StyleDefault.Background(RgbBackground))
	level.Draw(r)
	r.drawStatus(level.Stats())
	r.screen.Show()
}

// DrawTile implements engine.Drawer
func (r *Renderer) DrawTile(layer, id int, at vmath.Vector) {
	g, ok := r.tiles[id]
	if !ok {
		if layer < 0 || layer >= len(layerGlyphs) {
			return
		}
		g = layerGlyphs[layer]
	}

	x0, y0 := cellOf(at)
	w, h := constant.TileSize/CellWidth, constant.TileSize/CellHeight
	for y := y0; y < y0+h; y++ {
		for x := x0; x < x0+w; x++ {
			r.set(x, y, g)
		}
	}
}

// DrawSprite implements engine.Drawer
func (r *Renderer) DrawSprite(s entity.Sprite, at vmath.Vector) {
	x, y := cellOf(at)
	r.set(x, y, spriteGlyph(s))
}

// DrawText implements engine.Drawer; text is centered on at
func (r *Renderer) DrawText(text string, at vmath.Vector) {
	x, y := cellOf(at)
	r.print(x-utf8.RuneCountInString(text)/2, y, text, tcell.StyleDefault.Foreground(RgbText).Background(RgbBackground))
}

func (r *Renderer) drawStatus(s engine.Stats) {
	hearts := strings.Repeat("♥", max(s.Health, 0)) + strings.Repeat("·", max(s.MaxHealth-s.Health, 0))
	line := fmt.Sprintf(" %s  SCORE %d  ROOM %d,%d  FOES %d", hearts, s.Score, s.Room.X, s.Room.Y, s.Enemies)
	if r.status != "" {
		line += "  [" + r.status + "]"
	}
	r.print(0, ViewRows, line, tcell.StyleDefault.Foreground(RgbStatusBar).Background(RgbBackground).Bold(true))
}

// set writes one cell clipped to the play area
func (r *Renderer) set(x, y int, g Glyph) {
	if x < 0 || y < 0 || x >= ViewCols || y >= ViewRows {
		return
	}
	r.screen.SetContent(x, y, g.Rune, nil, g.Style)
}

func (r *Renderer) print(x, y int, text string, style tcell.Style) {
	w, _ := r.screen.Size()
	for _, ch := range text {
		if x >= 0 && x < w {
			r.screen.SetContent(x, y, ch, nil, style)
		}
		x++
	}
}

func cellOf(at vmath.Vector) (int, int) {
	return int(math.Floor(at.X / CellWidth)), int(math.Floor(at.Y / CellHeight))
}

// spriteGlyph resolves kind, frame and flash into a cell
func spriteGlyph(s entity.Sprite) Glyph {
	g, ok := spriteGlyphs[s.Kind]
	if !ok {
		g = unknownGlyph
	}
	if s.Kind == "player" && s.Frame >= 0 && s.Frame < len(playerFrames) {
		g.Rune = playerFrames[s.Frame]
		if s.Frame == player.FrameAttack && s.FlipX {
			g.Rune = '\\'
		}
	}
	if s.Kind == "shot" || s.Kind == "enemy-shot" {
		if s.FlipX {
			g.Rune = '<'
		} else if s.Kind == "shot" {
			g.Rune = '>'
		}
	}
	if s.Flash {
		g.Style = g.Style.Reverse(true)
	}
	return g
}
