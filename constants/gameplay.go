package constants

// Spawn Schedule (milliseconds since PLAYING start)
const (
	// EnemySpawnWindowMs ends the enemy wave phase
	EnemySpawnWindowMs = 10000

	// EnemyFireStartMs is when enemies begin shooting
	EnemyFireStartMs = 5000

	// BossSpawnAfterMs is when the boss may appear once the field is clear
	BossSpawnAfterMs = 10000

	// EnemyRampIntervalMs raises the live enemy cap by one per interval
	EnemyRampIntervalMs = 2000

	// MaxEnemies is the absolute cap on live enemies
	MaxEnemies = 5
)

// Per-tick probabilities
const (
	EnemySpawnChance    = 0.02
	EnemyFireChance     = 0.005
	BossFireChance      = 0.05
	BossRetreatChance   = 0.005
	MaxBossEnemyBullets = 5
)

// Scoring
const (
	EnemyKillScore  = 10
	BossDefeatScore = 100
)

// Collision
const (
	// ContactDistance is the center-to-center distance that counts as a body collision
	ContactDistance = 5.0
)
