package constant

import "time"

// Fixed-Timestep Loop
const (
	// TickRate is the logical update rate; one tick = 1.0 at this rate
	TickRate = 60

	// TickInterval is the wall-clock duration of a nominal tick
	TickInterval = time.Second / TickRate

	// MaxTickDelta caps the tick scalar after a stall so swept tests stay in margin
	MaxTickDelta = 3.0
)

// Room Geometry (pixels)
const (
	// RoomWidth is the width of one camera room
	RoomWidth = 320

	// RoomHeight is the height of one camera room
	RoomHeight = 192
)
