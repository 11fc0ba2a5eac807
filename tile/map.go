package tile

import (
	"github.com/lixenwraith/tilerunner/constant"
	"github.com/lixenwraith/tilerunner/logger"
	"github.com/lixenwraith/tilerunner/vmath"
	"github.com/sirupsen/logrus"
)

// Layer indices
const (
	LayerBottom = iota
	LayerMiddle
	LayerTop
	LayerCount
)

// Source is decoded tile data handed over by the asset collaborator
// Layers are row-major tile ids of Width*Height; Middle may be nil
type Source struct {
	Width, Height int
	Bottom        []int
	Middle        []int
	Top           []int
	Channels      [][]int
}

// Map holds visual layers and the per-tile-id collision table
type Map struct {
	width, height int
	layers        [LayerCount][]int
	flags         []Flags
}

// NewMap decodes src; layers with the wrong cell count are dropped
func NewMap(src Source) *Map {
	m := &Map{
		width:  max(src.Width, 0),
		height: max(src.Height, 0),
		flags:  DecodeFlags(src.Channels),
	}

	cells := m.width * m.height
	for i, layer := range [LayerCount][]int{src.Bottom, src.Middle, src.Top} {
		if layer == nil {
			continue
		}
		if len(layer) != cells {
			logger.Component("tile").WithFields(logrus.Fields{
				"layer": i,
				"cells": len(layer),
				"want":  cells,
			}).Warn("layer size mismatch, layer dropped")
			continue
		}
		m.layers[i] = layer
	}
	return m
}

// Size returns the map extent in tiles
func (m *Map) Size() (w, h int) {
	return m.width, m.height
}

// PixelSize returns the map extent in pixels
func (m *Map) PixelSize() (w, h float64) {
	return float64(m.width * constant.TileSize), float64(m.height * constant.TileSize)
}

// HasLayer reports whether layer was decoded
func (m *Map) HasLayer(layer int) bool {
	return layer >= 0 && layer < LayerCount && m.layers[layer] != nil
}

// Flags returns the mask for a tile id; out of range is empty
func (m *Map) Flags(id int) Flags {
	if id < 0 || id >= len(m.flags) {
		return 0
	}
	return m.flags[id]
}

// TileAt returns the tile id at a cell; out of range is TileEmpty
func (m *Map) TileAt(layer, col, row int) int {
	if !m.HasLayer(layer) || col < 0 || row < 0 || col >= m.width || row >= m.height {
		return constant.TileEmpty
	}
	return m.layers[layer][row*m.width+col]
}

// FlagsAt ORs the masks of every layer at a cell
func (m *Map) FlagsAt(col, row int) Flags {
	var f Flags
	for layer := range m.layers {
		f |= m.Flags(m.TileAt(layer, col, row))
	}
	return f
}

// WorldRect returns a cell's world-space rect
func (m *Map) WorldRect(col, row int) vmath.Rect {
	ts := float64(constant.TileSize)
	return vmath.FromCorner(float64(col)*ts, float64(row)*ts, ts, ts)
}

// CellAt converts a world position to cell coordinates
func CellAt(p vmath.Vector) (col, row int) {
	ts := float64(constant.TileSize)
	return floorDiv(p.X, ts), floorDiv(p.Y, ts)
}
