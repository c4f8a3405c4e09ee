// internal/combat/attack.go
package combat

import (
	"log"

	"go-combat-core/internal/defs"
	"go-combat-core/internal/event"
	"go-combat-core/internal/types"
	"go-combat-core/pkg/vec"
)

// AttackController gates and executes one unit's attacks. An attack needs a
// valid target, a ready cooldown and, when aiming is required, an aimed
// turret. Firing either launches a pooled projectile or applies damage
// directly; either way the cooldown restarts.
type AttackController struct {
	world     *World
	ownerID   types.EntityID
	firePos   vec.Vec3
	targeting *Targeting
	aiming    *Aiming // nil when the unit fires without aim alignment

	damage          int
	damageType      defs.DamageType
	interval        float64 // seconds between shots
	aoeRadius       float64 // 0 = single target
	mask            types.Category
	archetypeID     string
	pool            *Pool[*Projectile] // nil when no projectile is configured
	slow            *defs.SlowDef
	dot             *defs.DotDef
	poolWarned      bool
	cooldown        float64
	onAttack        []func(target *TargetEntry)
	onProjectileHit []func(damage int)
}

func NewAttackController(world *World, ownerID types.EntityID, firePos vec.Vec3, targeting *Targeting, aiming *Aiming, cfg *defs.CombatStats, mask types.Category) *AttackController {
	a := &AttackController{
		world:       world,
		ownerID:     ownerID,
		firePos:     firePos,
		targeting:   targeting,
		aiming:      aiming,
		damage:      cfg.Damage,
		damageType:  cfg.DamageType,
		aoeRadius:   cfg.AOERadius,
		mask:        mask,
		archetypeID: cfg.ProjectileID,
		slow:        cfg.Slow,
		dot:         cfg.Dot,
	}
	if cfg.FireRate > 0 {
		a.interval = 1.0 / cfg.FireRate
	} else {
		log.Printf("AttackController %d: fire rate %.2f is not positive, unit will never fire", ownerID, cfg.FireRate)
		a.interval = 0
	}
	if a.archetypeID != "" {
		pool, ok := world.pools.Pool(a.archetypeID)
		if ok {
			a.pool = pool
		}
	}
	return a
}

// OnAttack registers a hook fired on every shot or direct strike, for
// external VFX/audio.
func (a *AttackController) OnAttack(fn func(target *TargetEntry)) {
	a.onAttack = append(a.onAttack, fn)
}

// OnProjectileHit registers a hook fired when one of this unit's projectiles
// lands, with the damage dealt.
func (a *AttackController) OnProjectileHit(fn func(damage int)) {
	a.onProjectileHit = append(a.onProjectileHit, fn)
}

// Ready reports whether the cooldown has elapsed.
func (a *AttackController) Ready() bool { return a.cooldown <= 0 && a.interval > 0 }

func (a *AttackController) Update(dt float64) {
	if a.cooldown > 0 {
		a.cooldown -= dt
	}

	target := a.targeting.Current()
	if target == nil || !a.Ready() {
		return
	}
	if a.aiming != nil && !a.aiming.Aimed() {
		return
	}

	a.fire(target)
	a.cooldown = a.interval
}

func (a *AttackController) fire(target *TargetEntry) {
	fired := false
	if a.archetypeID != "" {
		fired = a.fireProjectile(target)
	}
	if !fired {
		a.directDamage(target)
	}

	for _, fn := range a.onAttack {
		fn(target)
	}
	a.world.dispatcher.Dispatch(event.Event{
		Type: event.UnitAttacked,
		Data: event.UnitAttackedData{UnitID: a.ownerID, TargetID: target.ID},
	})
}

func (a *AttackController) fireProjectile(target *TargetEntry) bool {
	if a.pool == nil {
		// A projectile archetype without a registered pool is a
		// configuration error; degrade to direct damage instead of
		// dropping the attack.
		if !a.poolWarned {
			log.Printf("AttackController %d: no pool for projectile archetype %q, falling back to direct damage", a.ownerID, a.archetypeID)
			a.poolWarned = true
		}
		return false
	}

	dir := a.fireDir(target)
	p, ok := a.pool.GetAt(a.firePos, dir)
	if !ok {
		log.Printf("AttackController %d: pool %q exhausted, falling back to direct damage", a.ownerID, a.archetypeID)
		return false
	}

	p.Init(a.ownerID, target, a.damage, a.damageType, a.aoeRadius, a.mask, a.slow, a.dot)
	for _, fn := range a.onProjectileHit {
		p.OnHit(fn)
	}
	a.world.launch(p)
	return true
}

func (a *AttackController) fireDir(target *TargetEntry) vec.Vec3 {
	if a.aiming != nil {
		return a.aiming.Facing()
	}
	return target.Target.AimPoint().Sub(a.firePos).Norm()
}

// directDamage strikes the primary target immediately and, with an AOE
// radius configured, sweeps every other eligible entity around it. The
// primary is excluded from the sweep so it is never damaged twice.
func (a *AttackController) directDamage(primary *TargetEntry) {
	impact := primary.Target.AimPoint()
	primary.Damageable.ApplyDamage(a.damage, a.damageType)
	applyHitPayloads(primary, a.slow, a.dot)

	if a.aoeRadius <= 0 {
		return
	}
	for _, entry := range a.world.QueryRadius(impact, a.aoeRadius, a.mask) {
		if entry == primary {
			continue
		}
		entry.Damageable.ApplyDamage(a.damage, a.damageType)
		applyHitPayloads(entry, a.slow, a.dot)
	}
}

// applyHitPayloads attaches any carried status effects through the target's
// tracker.
func applyHitPayloads(entry *TargetEntry, slow *defs.SlowDef, dot *defs.DotDef) {
	if entry.Tracker == nil {
		return
	}
	if slow != nil {
		entry.Tracker.Add(NewSlowEffect(entry.Damageable, slow.Factor, slow.Duration))
	}
	if dot != nil {
		entry.Tracker.Add(NewDamageOverTimeEffect(entry.Damageable, dot.DamagePerTick, dot.Interval, dot.Duration))
	}
}
