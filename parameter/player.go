package parameter

// Player shape (pixels)
const (
	PlayerWidth  = 10
	PlayerHeight = 14

	// SwordReach is horizontal weapon extent in front of the player
	SwordReach = 16
	// SwordHeight is vertical weapon extent
	SwordHeight = 10
)

// Player movement (px/tick, ticks)
const (
	PlayerWalkSpeed      = 1.5
	PlayerGroundFriction = 0.25
	PlayerAirFriction    = 0.12
	PlayerClimbSpeed     = 1.0
	PlayerClimbFriction  = 0.5

	// PlayerJumpSpeed is the upward speed set on jump
	PlayerJumpSpeed = 4.2

	// PlayerJumpCut scales upward speed when jump is released early
	PlayerJumpCut = 0.5

	// PlayerLedgeTime is how long after leaving ground a jump is still accepted
	PlayerLedgeTime = 6.0

	// PlayerJumpBuffer is how long a jump press is remembered before landing
	PlayerJumpBuffer = 6.0

	// PlayerLandSpeed is the minimum fall speed that plays a landing sound
	PlayerLandSpeed = 3.0
)

// Player combat
const (
	PlayerMaxHealth = 6

	// PlayerSwordDamage is damage per sword hit
	PlayerSwordDamage = 2

	// PlayerAttackTime is the swing duration; the weapon is live for all of it
	PlayerAttackTime = 16.0

	// PlayerInvulnTime is the grace period after taking damage
	PlayerInvulnTime = 60.0

	// PlayerKnockbackX/Y is the impulse applied when hurt
	PlayerKnockbackX = 2.0
	PlayerKnockbackY = 2.5

	// PlayerDeathTime is the death animation length
	PlayerDeathTime = 60.0

	// PlayerLootBonus scales enemy drop probability for sword kills
	PlayerLootBonus = 1.0
)
