package core

// SoundType is a logical sound identifier handed to the audio collaborator
type SoundType int

const (
	SoundJump        SoundType = iota // Player leaves ground
	SoundLand                         // Player lands after a fall
	SoundSwing                        // Sword swing
	SoundHit                          // Enemy takes damage
	SoundEnemyDeath                   // Enemy death animation starts
	SoundPlayerHurt                   // Player takes damage
	SoundPlayerDeath                  // Player dies
	SoundCoin                         // Coin collected
	SoundHeart                        // Heart collected
	SoundShoot                        // Projectile fired
	SoundBossRoar                     // Boss phase change
	SoundDoor                         // Door activated
	SoundBounce                       // Projectile or loot bounce
	SoundTypeCount
)

var soundNames = [SoundTypeCount]string{
	"jump", "land", "swing", "hit", "enemy_death", "player_hurt",
	"player_death", "coin", "heart", "shoot", "boss_roar", "door", "bounce",
}

func (s SoundType) String() string {
	if s < 0 || s >= SoundTypeCount {
		return "unknown"
	}
	return soundNames[s]
}
