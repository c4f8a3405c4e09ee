// internal/combat/unit.go
package combat

import (
	"fmt"
	"log"
	"math"

	"go-combat-core/internal/defs"
	"go-combat-core/internal/types"
	"go-combat-core/pkg/vec"
)

// CombatUnit bundles the per-unit combat components built from one tower
// definition: targeting, optional aiming, and the attack controller. The
// placement layer creates units and removes them when sold; the unit itself
// only fights.
type CombatUnit struct {
	ID  types.EntityID
	Pos vec.Vec3
	Def defs.TowerDefinition

	Targeting *Targeting
	Aiming    *Aiming // nil for units that fire without turret alignment
	Attack    *AttackController
}

// NewCombatUnit wires the combat components for a definition. The mask
// restricts which entity categories the unit engages.
func NewCombatUnit(world *World, def defs.TowerDefinition, pos vec.Vec3, mask types.Category) (*CombatUnit, error) {
	cfg := def.Combat
	if cfg == nil {
		return nil, fmt.Errorf("tower %q has no combat stats", def.ID)
	}

	unit := &CombatUnit{
		ID:  world.newID(),
		Pos: pos,
		Def: def,
	}
	unit.Targeting = NewTargeting(world, unit.ID, pos, cfg.Range, mask, cfg.Priority)

	projectileSpeed := 0.0
	if cfg.ProjectileID != "" {
		if pd, ok := defs.ProjectileDefs[cfg.ProjectileID]; ok {
			projectileSpeed = pd.Speed
			if projectileSpeed <= 0 {
				log.Printf("CombatUnit %d: projectile %q has speed %.2f, lead prediction disabled", unit.ID, cfg.ProjectileID, projectileSpeed)
			}
			world.pools.Register(world, pd)
		} else {
			log.Printf("CombatUnit %d: unknown projectile archetype %q, attacks degrade to direct damage", unit.ID, cfg.ProjectileID)
		}
	}

	if cfg.RequireAim || cfg.TurnSpeedDeg > 0 {
		turnSpeed := cfg.TurnSpeedDeg * math.Pi / 180
		unit.Aiming = NewAiming(unit.Targeting, pos, turnSpeed, projectileSpeed, cfg.YawOnly)
	}

	var gate *Aiming
	if cfg.RequireAim {
		gate = unit.Aiming
	}
	unit.Attack = NewAttackController(world, unit.ID, pos, unit.Targeting, gate, cfg, mask)
	return unit, nil
}

// Update advances the unit one tick: target resolution first, then turret
// rotation, then the attack gate, so the gate sees this tick's aim state.
func (u *CombatUnit) Update(dt float64) {
	u.Targeting.Update(dt)
	if u.Aiming != nil {
		u.Aiming.Update(dt)
	}
	u.Attack.Update(dt)
}
