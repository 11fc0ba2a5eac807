package parameter

// Shared enemy mechanics
const (
	// EnemyHurtTime is the invulnerable flash after a non-lethal hit
	EnemyHurtTime = 20.0

	// EnemyDeathTime is the default death animation length
	EnemyDeathTime = 24.0

	// EnemyKnockbackSpeed is horizontal impulse for weight 1.0
	EnemyKnockbackSpeed = 3.0

	// EnemyKnockbackLift is upward impulse applied with knockback
	EnemyKnockbackLift = 1.5

	// EnemyDeathParticles is the particle burst size on death
	EnemyDeathParticles = 6
)

// Boss
const (
	// BossHandOffsetX/Y is hand rest position relative to the boss body
	BossHandOffsetX = 40.0
	BossHandOffsetY = 12.0

	// BossCooldown is ticks between attacks in phase one
	BossCooldown = 90.0

	// BossCooldownEnraged is ticks between attacks in phase two
	BossCooldownEnraged = 50.0

	// BossWindUp is the hand telegraph before a strike
	BossWindUp = 30.0

	// BossStrikeSpeed is hand speed during a strike
	BossStrikeSpeed = 4.0

	// BossShakeAmplitude is camera shake when a hand hits ground
	BossShakeAmplitude = 3.0
	BossShakeDuration  = 20.0
)
