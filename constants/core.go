package constants

const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 256

	// EventBufferMask is the bitmask for fast modulo operations (256 - 1)
	EventBufferMask = 255
)

// System Execution Priorities (lower runs first)
const (
	PriorityFighter     = 10
	PriorityBullet      = 20
	PriorityEnemy       = 30
	PriorityBoss        = 40
	PriorityEnemyBullet = 50
	PriorityExplosion   = 60
	PriorityCollision   = 900 // Last: resolves hits against the settled positions
)
