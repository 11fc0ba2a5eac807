package tile

import "github.com/lixenwraith/tilerunner/constant"

// Flags is the per-tile-id collision bitmask
type Flags uint16

const (
	FlagTop Flags = 1 << iota
	FlagRight
	FlagBottom
	FlagLeft
	FlagLadderBase
	FlagLadderTop
	FlagHurtTop
	FlagHurtBottom
	FlagHurtLeft
	FlagHurtRight
)

// Flag groups
const (
	SolidMask  = FlagTop | FlagRight | FlagBottom | FlagLeft
	LadderMask = FlagLadderBase | FlagLadderTop
	HurtMask   = FlagHurtTop | FlagHurtBottom | FlagHurtLeft | FlagHurtRight
)

// Has reports whether any bit of g is set
func (f Flags) Has(g Flags) bool {
	return f&g != 0
}

// FlagForCode maps a collision code to its bit; unknown codes map to zero
func FlagForCode(code int) Flags {
	if code < 1 || code > constant.CodeCount {
		return 0
	}
	return Flags(1) << (code - 1)
}

// DecodeFlags builds the per-tile-id table from up to MaxChannels raw channels
// Channel cell index is the tile id; values above ChannelThreshold carry one code
// Malformed values contribute nothing
func DecodeFlags(channels [][]int) []Flags {
	size := constant.TileTableSize
	for i, ch := range channels {
		if i >= constant.MaxChannels {
			break
		}
		if len(ch) > size {
			size = len(ch)
		}
	}

	table := make([]Flags, size)
	for i, ch := range channels {
		if i >= constant.MaxChannels {
			break
		}
		for id, raw := range ch {
			if raw <= constant.ChannelThreshold {
				continue
			}
			table[id] |= FlagForCode(raw - constant.ChannelThreshold)
		}
	}
	return table
}
