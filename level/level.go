// Package level decodes the ASCII level format used by the sandbox
//
// One character is one tile. Lines starting with ';' are comments; lines
// starting with ':' are directives. Rows shorter than the widest row are
// padded with empty cells.
//
//	#  solid block          =  one-way floor       H  ladder
//	^  floor spikes         v  ceiling spikes      .  scenery (behind)
//	%  foliage (in front)   @  player start        D  door
//	~  moving platform      letters: enemy spawn points (see SpawnChars)
//
// Directives:
//
//	:door <target>   names the next unnamed door in reading order
package level

import (
	"bufio"
	"io"
	"strings"

	"github.com/lixenwraith/tilerunner/constant"
	"github.com/lixenwraith/tilerunner/enemy"
	"github.com/lixenwraith/tilerunner/engine"
	"github.com/lixenwraith/tilerunner/tile"
	"github.com/lixenwraith/tilerunner/vmath"
	"github.com/pkg/errors"
)

// Tileset ids painted by the decoder
const (
	TileSolid = iota + 1
	TileOneWay
	TileLadder
	TileLadderTop
	TileSpikes
	TileCeilingSpikes
	TileScenery
	TileFoliage
)

// DefaultDoorTarget names doors without a :door directive
const DefaultDoorTarget = "exit"

// Moving platform shape for '~'
const (
	PlatformWidth  = 32.0
	PlatformTravel = 48.0
	PlatformPeriod = 180.0
)

// SpawnChars maps spawn point characters to species
var SpawnChars = map[rune]enemy.SpeciesID{
	's': enemy.Slime,
	'b': enemy.Bat,
	'k': enemy.Skeleton,
	'K': enemy.Knight,
	'a': enemy.Archer,
	'g': enemy.Ghost,
	'x': enemy.Spider,
	'f': enemy.Frog,
	'm': enemy.Mushroom,
	'o': enemy.Bomber,
	'w': enemy.Wisp,
	'G': enemy.Golem,
	'F': enemy.Fish,
	'c': enemy.Crow,
	'$': enemy.Mimic,
	'T': enemy.Turret,
	'B': enemy.Boss,
}

type Spawn struct {
	Species enemy.SpeciesID
	Pos     vmath.Vector
}

type Door struct {
	Pos    vmath.Vector
	Target string
}

type Platform struct {
	Pos    vmath.Vector
	Travel vmath.Vector
	Width  float64
	Period float64
}

// Layout is a decoded level ready to build
type Layout struct {
	Width, Height int
	Bottom        []int
	Middle        []int
	Top           []int
	Channels      [][]int

	Start     vmath.Vector
	Spawns    []Spawn
	Doors     []Door
	Platforms []Platform
}

// Parse decodes an ASCII level
func Parse(r io.Reader) (*Layout, error) {
	var rows [][]rune
	var targets []string

	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimRight(sc.Text(), "\r")
		switch {
		case strings.HasPrefix(text, ";"):
			continue
		case strings.HasPrefix(text, ":"):
			fields := strings.Fields(text[1:])
			if len(fields) != 2 || fields[0] != "door" {
				return nil, errors.Errorf("line %d: bad directive %q", line, text)
			}
			targets = append(targets, fields[1])
		default:
			rows = append(rows, []rune(text))
		}
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "read level")
	}

	// Trailing blank rows are not part of the grid
	for len(rows) > 0 && strings.TrimSpace(string(rows[len(rows)-1])) == "" {
		rows = rows[:len(rows)-1]
	}
	if len(rows) == 0 {
		return nil, errors.New("level has no rows")
	}

	w := 0
	for _, row := range rows {
		w = max(w, len(row))
	}
	lay := newLayout(w, len(rows))

	startFound := false
	for y, row := range rows {
		for x := 0; x < w; x++ {
			ch := ' '
			if x < len(row) {
				ch = row[x]
			}
			if err := lay.place(ch, x, y, rows); err != nil {
				return nil, errors.Wrapf(err, "row %d col %d", y+1, x+1)
			}
			if ch == '@' {
				if startFound {
					return nil, errors.Errorf("row %d col %d: second player start", y+1, x+1)
				}
				startFound = true
			}
		}
	}
	if !startFound {
		return nil, errors.New("level has no player start '@'")
	}

	for i := range lay.Doors {
		lay.Doors[i].Target = DefaultDoorTarget
		if i < len(targets) {
			lay.Doors[i].Target = targets[i]
		}
	}
	if len(targets) > len(lay.Doors) {
		return nil, errors.Errorf("%d door directives for %d doors", len(targets), len(lay.Doors))
	}
	return lay, nil
}

func newLayout(w, h int) *Layout {
	empty := func() []int {
		s := make([]int, w*h)
		for i := range s {
			s[i] = constant.TileEmpty
		}
		return s
	}
	return &Layout{
		Width:    w,
		Height:   h,
		Bottom:   empty(),
		Middle:   empty(),
		Top:      empty(),
		Channels: Channels(),
	}
}

func (lay *Layout) place(ch rune, x, y int, rows [][]rune) error {
	i := y*lay.Width + x
	ts := float64(constant.TileSize)
	center := vmath.Vec((float64(x)+0.5)*ts, (float64(y)+0.5)*ts)

	switch ch {
	case ' ':
	case '#':
		lay.Middle[i] = TileSolid
	case '=':
		lay.Middle[i] = TileOneWay
	case 'H':
		lay.Middle[i] = TileLadder
		if y == 0 || x >= len(rows[y-1]) || rows[y-1][x] != 'H' {
			lay.Middle[i] = TileLadderTop
		}
	case '^':
		lay.Middle[i] = TileSpikes
	case 'v':
		lay.Middle[i] = TileCeilingSpikes
	case '.':
		lay.Bottom[i] = TileScenery
	case '%':
		lay.Top[i] = TileFoliage
	case '@':
		lay.Start = center
	case 'D':
		lay.Doors = append(lay.Doors, Door{Pos: center})
	case '~':
		lay.Platforms = append(lay.Platforms, Platform{
			Pos:    center,
			Travel: vmath.Vec(PlatformTravel, 0),
			Width:  PlatformWidth,
			Period: PlatformPeriod,
		})
	default:
		id, ok := SpawnChars[ch]
		if !ok {
			return errors.Errorf("unknown tile %q", ch)
		}
		lay.Spawns = append(lay.Spawns, Spawn{Species: id, Pos: center})
	}
	return nil
}

// Channels returns the collision channels of the decoder's tileset
// Each channel carries at most one code per tile id, so a solid block spans four
func Channels() [][]int {
	codes := map[int][]int{
		TileSolid:         {constant.CodeTop, constant.CodeRight, constant.CodeBottom, constant.CodeLeft},
		TileOneWay:        {constant.CodeTop},
		TileLadder:        {constant.CodeLadderBase},
		TileLadderTop:     {constant.CodeLadderTop},
		TileSpikes:        {constant.CodeHurtTop, constant.CodeRight, constant.CodeLeft},
		TileCeilingSpikes: {constant.CodeHurtBottom, constant.CodeRight, constant.CodeLeft},
	}

	channels := make([][]int, constant.MaxChannels)
	for c := range channels {
		channels[c] = make([]int, constant.TileTableSize)
	}
	for id, list := range codes {
		for c, code := range list {
			channels[c][id] = constant.ChannelThreshold + code
		}
	}
	return channels
}

// Map returns the tile map of the layout
func (lay *Layout) Map() *tile.Map {
	return tile.NewMap(tile.Source{
		Width:    lay.Width,
		Height:   lay.Height,
		Bottom:   lay.Bottom,
		Middle:   lay.Middle,
		Top:      lay.Top,
		Channels: lay.Channels,
	})
}

// Build creates a level with every placed object registered
func (lay *Layout) Build(opts engine.Options) *engine.Level {
	m := lay.Map()
	l := engine.NewLevel(m, lay.Start, opts)
	for _, p := range lay.Platforms {
		l.AddPlatform(p.Pos, p.Travel, p.Width, p.Period)
	}
	for _, d := range lay.Doors {
		l.AddDoor(d.Pos, d.Target)
	}
	for _, s := range lay.Spawns {
		l.AddSpawnPoint(s.Species, s.Pos)
	}
	return l
}
