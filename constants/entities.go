package constants

import "time"

// --- Fighter ---
const (
	// FighterWidth and FighterHeight are the 16px sprite scaled x2
	FighterWidth  = 32.0
	FighterHeight = 32.0

	// FighterSpeed is the axial and diagonal movement speed (units/s)
	FighterSpeed = 200.0

	// FighterShotCooldown is the minimum gap between accepted shots
	FighterShotCooldown = 250 * time.Millisecond

	// MaxPlayerBullets caps live player bullets
	MaxPlayerBullets = 2
)

// --- Player Bullet ---
const (
	BulletRadius    = 5.0
	BulletVelocityX = 400.0
)

// --- Enemy ---
const (
	EnemyWidth  = 32.0
	EnemyHeight = 32.0
	EnemySpeed  = 100.0

	// EnemyWaveAmplitude and EnemyWaveFrequency shape y = baseY + A·sin(f·t)
	EnemyWaveAmplitude = 50.0
	EnemyWaveFrequency = 3.0

	// EnemySpawnOffsetX places new enemies just past the right edge
	EnemySpawnOffsetX = 20.0

	// EnemySpawnMarginY keeps spawn y within [margin, H-margin)
	EnemySpawnMarginY = 20.0
)

// --- Enemy Bullet ---
const (
	EnemyBulletRadius = 5.0

	// EnemyBulletSpeed is the straight-left speed of enemy shots
	EnemyBulletSpeed = 200.0

	// AimedBulletSpeed is twice the fighter base speed
	AimedBulletSpeed = 2 * FighterSpeed
)

// --- Boss ---
const (
	// BossWidth and BossHeight are the 16px sprite scaled x8
	BossWidth  = 128.0
	BossHeight = 128.0
	BossSpeed  = 150.0

	// BossSpawnOffsetX places a new boss past the right edge
	BossSpawnOffsetX = 50.0

	// BossRestMargin is the gap between the resting boss and the right edge
	BossRestMargin = 20.0

	// BossTargetTolerance triggers a target re-roll when within this distance
	BossTargetTolerance = 5.0

	// BossTargetMargin bounds the random target y to [margin, H-height-margin)
	BossTargetMargin = 50.0

	// BossWaitDuration is the hold time at the left edge (seconds)
	BossWaitDuration = 1.0

	// BossDefeatHits is the hit count that defeats the boss
	BossDefeatHits = 10

	// BossAimJitter is the half-range of the random aim offset per axis
	BossAimJitter = 50
)

// --- Explosion ---
const (
	// ExplosionDuration is the lifetime of an explosion (seconds)
	ExplosionDuration = 0.8

	// ExplosionFrameInterval is the flip interval of the two-frame animation (seconds)
	ExplosionFrameInterval = 0.1

	ExplosionFrameCount = 2
)
