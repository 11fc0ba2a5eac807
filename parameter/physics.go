package parameter

// Swept collision margins (pixels)
const (
	// CollisionFarMargin is how deep an old edge may already sit past an obstacle
	// line and still register; grows by |speed|*tick on top of this base
	CollisionFarMargin = 2.0

	// CollisionNearMargin is how far short of the line the new edge may stop
	// and still register; keeps resting contact stable
	CollisionNearMargin = 0.5
)

// Gravity is modelled as a target fall speed approached at GravityFriction
const (
	// FallSpeed is terminal downward speed in px/tick
	FallSpeed = 5.0

	// GravityFriction is the per-tick approach rate toward FallSpeed
	GravityFriction = 0.3
)

// TileScanMargin is the extra tile ring scanned around an entity's box
const TileScanMargin = 1
