// internal/combat/target.go
package combat

import (
	"go-combat-core/internal/defs"
	"go-combat-core/pkg/vec"
)

// Target is the minimal capability an entity must expose to be targetable.
// Targeting and Aiming consume only this interface and never see concrete
// enemy types.
type Target interface {
	// AimPoint is the stable position shots are aimed at.
	AimPoint() vec.Vec3
	// Alive reports whether the entity is still valid and in play.
	Alive() bool
	// Health is the current health value.
	Health() int
	// DistanceTraveled is the cumulative distance covered along the path.
	DistanceTraveled() float64
	// Speed is the current scalar speed.
	Speed() float64
	// Velocity is the current velocity vector.
	Velocity() vec.Vec3
}

// Damageable is the contract through which the core affects an entity.
type Damageable interface {
	// ApplyDamage deals damage of the given type and returns remaining health.
	ApplyDamage(amount int, kind defs.DamageType) int
	// ApplySlow scales the entity's speed by (1 - factor) for the duration.
	ApplySlow(factor, duration float64)
	// RemoveSlow restores the entity's original speed.
	RemoveSlow()
}
