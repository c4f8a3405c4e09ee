// internal/combat/effect.go
package combat

import "go-combat-core/internal/defs"

// EffectKind discriminates effect types for non-stacking lookups.
type EffectKind int

const (
	EffectSlow EffectKind = iota
	EffectDamageOverTime
)

// Effect is one timed modifier attached to a target. Effects are created per
// application and discarded on expiry; they are cheap and never pooled.
type Effect interface {
	Kind() EffectKind
	// CanStack reports whether multiple instances of this kind coexist.
	CanStack() bool
	// Apply runs once when the tracker attaches the effect.
	Apply()
	// Update advances remaining time and runs per-tick behavior.
	Update(dt float64)
	// Expired reports whether remaining time ran out.
	Expired() bool
	// Remove undoes the effect. Runs on expiry and on ClearAll.
	Remove()
	// Refresh merges a new non-stacking application into this instance.
	Refresh(incoming Effect)
}

type baseEffect struct {
	duration  float64
	remaining float64
}

func (b *baseEffect) Update(dt float64) { b.remaining -= dt }
func (b *baseEffect) Expired() bool     { return b.remaining <= 0 }

// SlowEffect scales a target's speed down by its factor. Non-stacking:
// reapplying a slow of at least the current strength replaces factor and
// duration; a weaker one is ignored entirely, duration included.
type SlowEffect struct {
	baseEffect
	target Damageable
	factor float64
}

// NewSlowEffect builds a slow. The factor is clamped to [0,1] regardless of
// input.
func NewSlowEffect(target Damageable, factor, duration float64) *SlowEffect {
	if factor < 0 {
		factor = 0
	} else if factor > 1 {
		factor = 1
	}
	return &SlowEffect{
		baseEffect: baseEffect{duration: duration, remaining: duration},
		target:     target,
		factor:     factor,
	}
}

func (e *SlowEffect) Kind() EffectKind { return EffectSlow }
func (e *SlowEffect) CanStack() bool   { return false }
func (e *SlowEffect) Factor() float64  { return e.factor }

func (e *SlowEffect) Apply()  { e.target.ApplySlow(e.factor, e.duration) }
func (e *SlowEffect) Remove() { e.target.RemoveSlow() }

// Refresh implements strongest-wins: the incoming slow takes over only when
// its factor is >= the active one.
func (e *SlowEffect) Refresh(incoming Effect) {
	in, ok := incoming.(*SlowEffect)
	if !ok {
		return
	}
	if in.factor < e.factor {
		return
	}
	e.factor = in.factor
	e.duration = in.duration
	e.remaining = in.duration
	e.Apply()
}

// DamageOverTimeEffect deals fixed damage on its own tick schedule. Stacking:
// every application ticks independently. Tick accounting subtracts the
// interval instead of resetting so fractional time carries across ticks.
type DamageOverTimeEffect struct {
	baseEffect
	target        Damageable
	damagePerTick int
	interval      float64
	tickTimer     float64
}

func NewDamageOverTimeEffect(target Damageable, damagePerTick int, interval, duration float64) *DamageOverTimeEffect {
	return &DamageOverTimeEffect{
		baseEffect:    baseEffect{duration: duration, remaining: duration},
		target:        target,
		damagePerTick: damagePerTick,
		interval:      interval,
	}
}

func (e *DamageOverTimeEffect) Kind() EffectKind { return EffectDamageOverTime }
func (e *DamageOverTimeEffect) CanStack() bool   { return true }

func (e *DamageOverTimeEffect) Apply()                  {}
func (e *DamageOverTimeEffect) Remove()                 {}
func (e *DamageOverTimeEffect) Refresh(incoming Effect) {}

func (e *DamageOverTimeEffect) Update(dt float64) {
	e.baseEffect.Update(dt)
	if e.interval <= 0 {
		return
	}
	e.tickTimer += dt
	for e.tickTimer >= e.interval {
		e.tickTimer -= e.interval
		e.target.ApplyDamage(e.damagePerTick, defs.DamageTrue)
	}
}
