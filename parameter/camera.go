package parameter

// Camera
const (
	// CameraMoveSpeed is fraction of a room travelled per tick during a room move
	CameraMoveSpeed = 0.04

	// CameraCheckPadding widens visibility tests so objects activate just off-screen
	CameraCheckPadding = 16.0
)

// Pool initial capacities
const (
	EnemyPoolSize       = 32
	ProjectilePoolSize  = 32
	ParticlePoolSize    = 128
	CollectiblePoolSize = 32
	MessagePoolSize     = 16
)
