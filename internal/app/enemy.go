// internal/app/enemy.go
package app

import (
	"go-combat-core/internal/combat"
	"go-combat-core/internal/defs"
	"go-combat-core/internal/event"
	"go-combat-core/internal/types"
	"go-combat-core/pkg/vec"
)

// Enemy is the demo's path-walking entity. It implements the core's Target
// and Damageable contracts and owns its effect tracker; the combat core
// never sees the concrete type.
type Enemy struct {
	ID      types.EntityID
	Def     defs.EnemyDefinition
	Tracker *combat.EffectTracker

	world *combat.World

	pos          vec.Vec3
	waypoints    []vec.Vec3
	nextWaypoint int
	velocity     vec.Vec3

	health     int
	baseSpeed  float64
	slowFactor float64
	traveled   float64
	alive      bool
	reachedEnd bool
}

// NewEnemy spawns an enemy at the head of the waypoint path and registers it
// with the world.
func NewEnemy(world *combat.World, def defs.EnemyDefinition, waypoints []vec.Vec3) *Enemy {
	e := &Enemy{
		Def:          def,
		Tracker:      combat.NewEffectTracker(),
		world:        world,
		pos:          waypoints[0],
		waypoints:    waypoints,
		nextWaypoint: 1,
		health:       def.Health,
		baseSpeed:    def.Speed,
		alive:        true,
	}
	e.ID = world.AddTarget(e, e, e.Tracker, types.CategoryEnemy)
	return e
}

// Target capability.

func (e *Enemy) AimPoint() vec.Vec3        { return e.pos }
func (e *Enemy) Alive() bool               { return e.alive }
func (e *Enemy) Health() int               { return e.health }
func (e *Enemy) DistanceTraveled() float64 { return e.traveled }
func (e *Enemy) Speed() float64            { return e.baseSpeed * (1 - e.slowFactor) }
func (e *Enemy) Velocity() vec.Vec3        { return e.velocity }

// ReachedEnd reports whether the enemy walked off the path's far end.
func (e *Enemy) ReachedEnd() bool { return e.reachedEnd }

// Damageable contract.

func (e *Enemy) ApplyDamage(amount int, kind defs.DamageType) int {
	if !e.alive {
		return 0
	}
	e.health -= combat.MitigateDamage(amount, kind, e.Def.PhysicalArmor, e.Def.MagicalArmor)
	if e.health <= 0 {
		e.health = 0
		e.alive = false
		e.velocity = vec.Zero
		e.world.Events().Dispatch(event.Event{Type: event.EnemyDestroyed, Data: e.ID})
	}
	return e.health
}

// ApplySlow is driven by the effect tracker, which already enforces
// strongest-wins and timing; the enemy just holds the active factor.
func (e *Enemy) ApplySlow(factor, duration float64) { e.slowFactor = factor }

func (e *Enemy) RemoveSlow() { e.slowFactor = 0 }

// Move advances the enemy along its waypoints.
func (e *Enemy) Move(dt float64) {
	if !e.alive || e.nextWaypoint >= len(e.waypoints) {
		return
	}

	remaining := e.Speed() * dt
	for remaining > 0 && e.nextWaypoint < len(e.waypoints) {
		to := e.waypoints[e.nextWaypoint].Sub(e.pos)
		dist := to.Len()
		if dist <= remaining {
			e.pos = e.waypoints[e.nextWaypoint]
			e.traveled += dist
			remaining -= dist
			e.nextWaypoint++
			continue
		}
		dir := to.Norm()
		e.pos = e.pos.Add(dir.Scale(remaining))
		e.traveled += remaining
		e.velocity = dir.Scale(e.Speed())
		return
	}

	if e.nextWaypoint >= len(e.waypoints) {
		e.reachedEnd = true
		e.alive = false
		e.velocity = vec.Zero
		e.world.Events().Dispatch(event.Event{Type: event.EnemyLeaked, Data: e.ID})
	}
}
