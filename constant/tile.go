package constant

// Tile Geometry
const (
	// TileSize is the edge length of one square tile in pixels
	TileSize = 16

	// TileTableSize is the number of tile ids one collision table covers
	// Matches a 16x16 tileset sheet
	TileTableSize = 256

	// TileEmpty marks an empty visual layer cell
	TileEmpty = -1
)

// Collision Channel Encoding
// Raw channel cells above ChannelThreshold carry one collision code each
// Channel cell index equals tile id (channels are painted over the tileset sheet)
const (
	ChannelThreshold = 256
	MaxChannels      = 4
)

// Collision codes (raw value - ChannelThreshold)
const (
	CodeTop = iota + 1
	CodeRight
	CodeBottom
	CodeLeft
	CodeLadderBase
	CodeLadderTop
	CodeHurtTop
	CodeHurtBottom
	CodeHurtLeft
	CodeHurtRight
	CodeCount = CodeHurtRight
)
