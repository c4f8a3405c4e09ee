// internal/event/types.go
package event

import "go-combat-core/internal/types"

const (
	TargetChanged     EventType = "TargetChanged"     // a unit's current target switched identity
	UnitAttacked      EventType = "UnitAttacked"      // a unit fired or struck directly
	ProjectileHit     EventType = "ProjectileHit"     // a projectile resolved as a hit
	ProjectileExpired EventType = "ProjectileExpired" // a projectile ran out its lifetime
	EnemyDestroyed    EventType = "EnemyDestroyed"    // an enemy's health reached zero
	EnemyLeaked       EventType = "EnemyLeaked"       // an enemy reached the end of the path
	WaveEnded         EventType = "WaveEnded"
)

// TargetChangedData carries the unit and its new target. TargetID is 0 when
// the unit lost its target.
type TargetChangedData struct {
	UnitID   types.EntityID
	TargetID types.EntityID
}

// UnitAttackedData identifies the attacker and the primary target.
type UnitAttackedData struct {
	UnitID   types.EntityID
	TargetID types.EntityID
}

// ProjectileHitData reports the damage a resolved projectile dealt per victim.
type ProjectileHitData struct {
	UnitID types.EntityID
	Damage int
}

// ProjectileExpiredData identifies the unit whose projectile timed out.
type ProjectileExpiredData struct {
	UnitID types.EntityID
}
