package render

import "github.com/gdamore/tcell/v2"

// RGB color definitions
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbBackTile   = tcell.NewRGBColor(52, 54, 76)    // Dim blue-gray scenery
	RgbSolidTile  = tcell.NewRGBColor(140, 140, 160) // Light gray walls
	RgbFrontTile  = tcell.NewRGBColor(70, 110, 70)   // Foliage over actors
	RgbStatusBar  = tcell.NewRGBColor(255, 255, 255) // White

	RgbPlayer    = tcell.NewRGBColor(255, 165, 0)  // Orange
	RgbEnemy     = tcell.NewRGBColor(255, 80, 80)  // Normal Red
	RgbBoss      = tcell.NewRGBColor(200, 40, 200) // Magenta
	RgbCoin      = tcell.NewRGBColor(255, 255, 0)  // Bright Yellow
	RgbHeart     = tcell.NewRGBColor(255, 60, 120) // Pink
	RgbShot      = tcell.NewRGBColor(140, 190, 255)
	RgbEnemyShot = tcell.NewRGBColor(255, 120, 120)
	RgbPlatform  = tcell.NewRGBColor(180, 140, 90) // Wood
	RgbDoor      = tcell.NewRGBColor(0, 200, 200)  // Vibrant Cyan
	RgbParticle  = tcell.NewRGBColor(255, 200, 120)
	RgbText      = tcell.NewRGBColor(255, 255, 255)
)

// Glyph is one terminal cell's rune and style
type Glyph struct {
	Rune  rune
	Style tcell.Style
}

func glyph(r rune, fg tcell.Color) Glyph {
	return Glyph{Rune: r, Style: tcell.StyleDefault.Foreground(fg).Background(RgbBackground)}
}

// spriteGlyphs maps sprite kinds to glyphs; frame variants are resolved in spriteGlyph
var spriteGlyphs = map[string]Glyph{
	"player":     glyph('@', RgbPlayer),
	"coin":       glyph('o', RgbCoin),
	"heart":      glyph('♥', RgbHeart),
	"shot":       glyph('-', RgbShot),
	"enemy-shot": glyph('*', RgbEnemyShot),
	"platform":   glyph('=', RgbPlatform),
	"door":       glyph('Π', RgbDoor),
	"spark":      glyph('\'', RgbParticle),
	"rock":       glyph(',', RgbSolidTile),
	"slime":      glyph('s', RgbEnemy),
	"bat":        glyph('v', RgbEnemy),
	"skeleton":   glyph('S', RgbEnemy),
	"knight":     glyph('K', RgbEnemy),
	"archer":     glyph('A', RgbEnemy),
	"ghost":      glyph('G', RgbEnemy),
	"spider":     glyph('x', RgbEnemy),
	"frog":       glyph('f', RgbEnemy),
	"mushroom":   glyph('m', RgbEnemy),
	"bomber":     glyph('b', RgbEnemy),
	"wisp":       glyph('~', RgbEnemy),
	"golem":      glyph('O', RgbEnemy),
	"fish":       glyph('<', RgbEnemy),
	"crow":       glyph('w', RgbEnemy),
	"mimic":      glyph('$', RgbEnemy),
	"turret":     glyph('T', RgbEnemy),
	"boss":       glyph('B', RgbBoss),
	"hand":       glyph('W', RgbBoss),
}

// Player frame runes, indexed by player frame constant
var playerFrames = [...]rune{'@', '@', '^', 'H', '/', 'x'}

var unknownGlyph = glyph('?', RgbText)

// Default tile glyphs per layer
var layerGlyphs = [...]Glyph{
	glyph('.', RgbBackTile),
	glyph('#', RgbSolidTile),
	glyph('%', RgbFrontTile),
}
