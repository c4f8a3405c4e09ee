// internal/combat/projectile.go
package combat

import (
	"math"

	"go-combat-core/internal/defs"
	"go-combat-core/internal/event"
	"go-combat-core/internal/types"
	"go-combat-core/pkg/vec"
)

// Projectile is one pooled in-flight instance. Idle in the pool, InFlight
// after Init, Resolved on hit or expiry, then back to Idle via its
// originating pool. The world, archetype definition and pool back-reference
// survive Reset; everything else is per-flight state.
type Projectile struct {
	world *World
	def   defs.ProjectileDefinition
	pool  *Pool[*Projectile]

	ownerID      types.EntityID
	target       *TargetEntry
	lastKnownPos vec.Vec3
	pos          vec.Vec3
	dir          vec.Vec3
	damage       int
	damageType   defs.DamageType
	aoeRadius    float64
	mask         types.Category
	slow         *defs.SlowDef
	dot          *defs.DotDef
	lifetime     float64
	elapsed      float64
	active       bool

	onHit     []func(damage int)
	onExpired []func()
}

// Archetype is the projectile's definition ID.
func (p *Projectile) Archetype() string { return p.def.ID }

// Pos is the current world position, for rendering.
func (p *Projectile) Pos() vec.Vec3 { return p.pos }

// Dir is the current travel direction.
func (p *Projectile) Dir() vec.Vec3 { return p.dir }

// Active reports whether the projectile is in flight.
func (p *Projectile) Active() bool { return p.active }

// Damage is the damage carried this flight.
func (p *Projectile) Damage() int { return p.damage }

// SetActive toggles flight state. Called by the pool.
func (p *Projectile) SetActive(active bool) { p.active = active }

// Place positions the projectile at the firing point with an initial facing.
// Called by the pool on GetAt.
func (p *Projectile) Place(pos, dir vec.Vec3) {
	p.pos = pos
	p.dir = dir.Norm()
}

// Reset restores the canonical idle state. Mandatory before reuse: stale
// event subscribers on a recycled instance would fire for the wrong flight.
func (p *Projectile) Reset() {
	p.ownerID = 0
	p.target = nil
	p.lastKnownPos = vec.Zero
	p.pos = vec.Zero
	p.dir = vec.Zero
	p.damage = 0
	p.damageType = ""
	p.aoeRadius = 0
	p.mask = 0
	p.slow = nil
	p.dot = nil
	p.lifetime = 0
	p.elapsed = 0
	p.onHit = nil
	p.onExpired = nil
}

// Init arms a freshly acquired projectile for one flight.
func (p *Projectile) Init(ownerID types.EntityID, target *TargetEntry, damage int, damageType defs.DamageType, aoeRadius float64, mask types.Category, slow *defs.SlowDef, dot *defs.DotDef) {
	p.ownerID = ownerID
	p.target = target
	p.lastKnownPos = target.Target.AimPoint()
	p.damage = damage
	p.damageType = damageType
	p.aoeRadius = aoeRadius
	p.mask = mask
	p.slow = slow
	p.dot = dot
	p.lifetime = p.def.Lifetime
	p.elapsed = 0
}

// OnHit registers a hook fired on hit with the damage dealt. Cleared by
// Reset when the instance returns to its pool.
func (p *Projectile) OnHit(fn func(damage int)) { p.onHit = append(p.onHit, fn) }

// OnExpired registers a hook fired when the lifetime runs out.
func (p *Projectile) OnExpired(fn func()) { p.onExpired = append(p.onExpired, fn) }

func (p *Projectile) Update(dt float64) {
	if !p.active {
		return
	}

	p.elapsed += dt
	if p.elapsed >= p.lifetime {
		p.expire()
		return
	}

	// Re-validate the target every tick. A live target refreshes the cached
	// position; a lost one leaves the shot flying ballistically toward the
	// last place it was seen.
	if p.target != nil && p.target.Target.Alive() {
		p.lastKnownPos = p.target.Target.AimPoint()
	}

	to := p.lastKnownPos.Sub(p.pos)
	dist := to.Len()
	desired := to.Norm()
	if desired != vec.Zero {
		if turnRate := p.def.TurnRateDeg * math.Pi / 180; turnRate > 0 {
			p.dir = vec.RotateToward(p.dir, desired, turnRate*dt)
		} else {
			p.dir = desired
		}
	}

	step := p.def.Speed * dt
	if dist <= step {
		p.pos = p.lastKnownPos
	} else {
		p.pos = p.pos.Add(p.dir.Scale(step))
	}

	// Collision: anything eligible inside the hit radius resolves the shot.
	hits := p.world.QueryRadius(p.pos, p.def.HitRadius, p.mask)
	if len(hits) > 0 {
		p.resolveHit(hits[0])
		return
	}

	// Arrived at the last known position with nothing there to hit.
	if dist <= step {
		p.expire()
	}
}

// resolveHit applies damage and payloads, single-target or area.
func (p *Projectile) resolveHit(trigger *TargetEntry) {
	if p.aoeRadius <= 0 {
		trigger.Damageable.ApplyDamage(p.damage, p.damageType)
		applyHitPayloads(trigger, p.slow, p.dot)
	} else {
		// Impact-centered sweep; the trigger entity is inside the radius by
		// construction and is damaged exactly once.
		for _, entry := range p.world.QueryRadius(p.pos, p.aoeRadius, p.mask) {
			entry.Damageable.ApplyDamage(p.damage, p.damageType)
			applyHitPayloads(entry, p.slow, p.dot)
		}
	}

	for _, fn := range p.onHit {
		fn(p.damage)
	}
	p.world.dispatcher.Dispatch(event.Event{
		Type: event.ProjectileHit,
		Data: event.ProjectileHitData{UnitID: p.ownerID, Damage: p.damage},
	})
	p.deactivate()
}

func (p *Projectile) expire() {
	for _, fn := range p.onExpired {
		fn()
	}
	p.world.dispatcher.Dispatch(event.Event{
		Type: event.ProjectileExpired,
		Data: event.ProjectileExpiredData{UnitID: p.ownerID},
	})
	p.deactivate()
}

// deactivate returns the projectile to its pool. Guarded by the active flag
// so a double resolution in one tick cannot double-return.
func (p *Projectile) deactivate() {
	if !p.active {
		return
	}
	p.active = false
	p.pool.Return(p)
}
