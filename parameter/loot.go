package parameter

// Collectibles
const (
	// CollectibleLifetime is ticks before an uncollected drop expires
	CollectibleLifetime = 600.0

	// CollectibleBounce is vertical restitution on tile contact
	CollectibleBounce = 0.5

	// CollectiblePopSpeed is upward speed when dropped
	CollectiblePopSpeed = 2.5

	// HeartChance is the share of drops that are hearts instead of coins
	HeartChance = 0.2

	// HeartHeal is health restored by a heart
	HeartHeal = 2

	// CoinValue is score per coin
	CoinValue = 10
)

// Particles and messages
const (
	ParticleLifetime = 30.0
	ParticleSpeed    = 2.0

	MessageLifetime  = 45.0
	MessageRiseSpeed = 0.5
)

// Projectiles
const (
	ProjectileSpeed    = 2.5
	ProjectileLifetime = 240.0
	ProjectileSize     = 4
)
