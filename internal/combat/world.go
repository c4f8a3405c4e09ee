// internal/combat/world.go
package combat

import (
	"log"

	"go-combat-core/internal/config"
	"go-combat-core/internal/defs"
	"go-combat-core/internal/event"
	"go-combat-core/internal/types"
	"go-combat-core/pkg/vec"
)

// TargetEntry is one registered targetable entity. Capability references are
// resolved once at registration; nothing downstream does per-collision type
// queries.
type TargetEntry struct {
	ID         types.EntityID
	Category   types.Category
	Target     Target
	Damageable Damageable
	Tracker    *EffectTracker
}

// World is the simulation context: the target registry, the proximity query
// arena, projectile pools, combat units and the event dispatcher. One World
// per running simulation; everything that needs shared state holds a
// reference to it instead of reaching for globals.
//
// Single-threaded. Update advances one tick: units (targeting, aiming,
// attack in that order), then in-flight projectiles, then effect trackers.
type World struct {
	nextID     types.EntityID
	dispatcher *event.Dispatcher

	entries map[types.EntityID]*TargetEntry
	// Registration order; scans walk this so ties resolve to the first
	// entity encountered, every tick.
	order []*TargetEntry

	units       []*CombatUnit
	pools       *ProjectilePool
	projectiles []*Projectile

	// Reused across every proximity query; deliberately fixed-capacity so
	// the combat tick stays allocation-free.
	queryBuf [config.SpatialQueryCapacity]*TargetEntry
}

func NewWorld() *World {
	return &World{
		nextID:     1,
		dispatcher: event.NewDispatcher(),
		entries:    make(map[types.EntityID]*TargetEntry),
		pools:      NewProjectilePool(),
	}
}

// Events exposes the dispatcher for external VFX/audio/UI hookup.
func (w *World) Events() *event.Dispatcher { return w.dispatcher }

// Pools exposes the per-archetype projectile pools.
func (w *World) Pools() *ProjectilePool { return w.pools }

func (w *World) newID() types.EntityID {
	id := w.nextID
	w.nextID++
	return id
}

// AddTarget registers a targetable entity and returns its ID. The tracker
// may be nil for entities that cannot carry status effects.
func (w *World) AddTarget(target Target, damageable Damageable, tracker *EffectTracker, category types.Category) types.EntityID {
	entry := &TargetEntry{
		ID:         w.newID(),
		Category:   category,
		Target:     target,
		Damageable: damageable,
		Tracker:    tracker,
	}
	w.entries[entry.ID] = entry
	w.order = append(w.order, entry)
	return entry.ID
}

// RemoveTarget unregisters an entity and clears any effects still on it so
// the remove hooks run before the entity leaves play.
func (w *World) RemoveTarget(id types.EntityID) {
	entry, ok := w.entries[id]
	if !ok {
		return
	}
	if entry.Tracker != nil {
		entry.Tracker.ClearAll()
	}
	delete(w.entries, id)
	for i, e := range w.order {
		if e == entry {
			w.order = append(w.order[:i], w.order[i+1:]...)
			break
		}
	}
}

// Entry looks up a registered entity by ID.
func (w *World) Entry(id types.EntityID) (*TargetEntry, bool) {
	entry, ok := w.entries[id]
	return entry, ok
}

// QueryRadius gathers alive entities matching the mask within radius of
// center, in registration order. The result aliases an arena reused by the
// next query; callers must consume it before querying again. When the arena
// fills, excess candidates are silently dropped and a warning is logged.
func (w *World) QueryRadius(center vec.Vec3, radius float64, mask types.Category) []*TargetEntry {
	buf := w.queryBuf[:0]
	radiusSq := radius * radius
	for _, entry := range w.order {
		if !entry.Category.Matches(mask) || !entry.Target.Alive() {
			continue
		}
		if entry.Target.AimPoint().DistSq(center) > radiusSq {
			continue
		}
		buf = append(buf, entry)
		if len(buf) == cap(buf) {
			log.Printf("World: proximity query saturated %d slots, eligible entities may be omitted", cap(buf))
			break
		}
	}
	return buf
}

// AddUnit builds a combat unit from a tower definition and registers it for
// ticking. The mask restricts which entity categories the unit may engage.
func (w *World) AddUnit(def defs.TowerDefinition, pos vec.Vec3, mask types.Category) (*CombatUnit, error) {
	unit, err := NewCombatUnit(w, def, pos, mask)
	if err != nil {
		return nil, err
	}
	w.units = append(w.units, unit)
	return unit, nil
}

// RemoveUnit drops a unit from the tick (sold or destroyed by the placement
// layer).
func (w *World) RemoveUnit(id types.EntityID) {
	for i, u := range w.units {
		if u.ID == id {
			w.units = append(w.units[:i], w.units[i+1:]...)
			return
		}
	}
}

// Units returns the registered combat units.
func (w *World) Units() []*CombatUnit { return w.units }

// launch puts a freshly initialized projectile on the in-flight list.
func (w *World) launch(p *Projectile) {
	w.projectiles = append(w.projectiles, p)
}

// InFlightCount reports how many projectiles are currently flying.
func (w *World) InFlightCount() int { return len(w.projectiles) }

// ForEachProjectile visits every in-flight projectile, for rendering.
func (w *World) ForEachProjectile(fn func(p *Projectile)) {
	for _, p := range w.projectiles {
		fn(p)
	}
}

// Update advances one simulation tick. Order matters: a unit's target is
// resolved before its aiming runs, aiming before its attack gate, all units
// before projectiles, projectiles before effect trackers.
func (w *World) Update(dt float64) {
	for _, unit := range w.units {
		unit.Update(dt)
	}

	kept := w.projectiles[:0]
	for _, p := range w.projectiles {
		p.Update(dt)
		if p.Active() {
			kept = append(kept, p)
		}
	}
	for i := len(kept); i < len(w.projectiles); i++ {
		w.projectiles[i] = nil
	}
	w.projectiles = kept

	for _, entry := range w.order {
		if entry.Tracker != nil {
			entry.Tracker.Update(dt)
		}
	}
}
