package combat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-combat-core/internal/defs"
	"go-combat-core/internal/event"
	"go-combat-core/internal/types"
	"go-combat-core/pkg/vec"
)

func directCombatStats() *defs.CombatStats {
	return &defs.CombatStats{
		Damage:     10,
		DamageType: defs.DamagePhysical,
		FireRate:   2.0, // 0.5s interval
		Range:      100,
		Priority:   defs.PriorityNearest,
	}
}

func newAttackFixture(t *testing.T, cfg *defs.CombatStats) (*World, *AttackController, *Targeting) {
	t.Helper()
	w := NewWorld()
	tg := NewTargeting(w, 7, vec.Zero, cfg.Range, types.CategoryAll, cfg.Priority)
	a := NewAttackController(w, 7, vec.Zero, tg, nil, cfg, types.CategoryAll)
	return w, a, tg
}

func TestAttackCooldownGating(t *testing.T) {
	w, a, tg := newAttackFixture(t, directCombatStats())
	s, _ := addStub(w, vec.Vec3{X: 10})
	forceRescan(tg)

	a.Update(0.016)
	require.Len(t, s.hitsTaken, 1, "first shot fires immediately")

	// Cooldown is 0.5s; nothing for the next few ticks.
	a.Update(0.1)
	a.Update(0.1)
	assert.Len(t, s.hitsTaken, 1)

	a.Update(0.3)
	assert.Len(t, s.hitsTaken, 2)
}

func TestAttackRequiresTarget(t *testing.T) {
	w, a, tg := newAttackFixture(t, directCombatStats())
	a.Update(0.016)
	assert.Equal(t, 0, w.InFlightCount())

	s, _ := addStub(w, vec.Vec3{X: 10})
	forceRescan(tg)
	a.Update(0.016)
	assert.Len(t, s.hitsTaken, 1)
}

func TestDirectDamageAppliesArmorLaw(t *testing.T) {
	w, a, tg := newAttackFixture(t, directCombatStats())
	s, _ := addStub(w, vec.Vec3{X: 10})
	s.physArmor = 4
	forceRescan(tg)

	a.Update(0.016)
	require.Len(t, s.hitsTaken, 1)
	assert.Equal(t, 6, s.hitsTaken[0])
}

func TestDirectAOESweepExcludesPrimary(t *testing.T) {
	cfg := directCombatStats()
	cfg.AOERadius = 50
	w, a, tg := newAttackFixture(t, cfg)

	primary, _ := addStub(w, vec.Vec3{X: 10})
	near, _ := addStub(w, vec.Vec3{X: 30})
	far, _ := addStub(w, vec.Vec3{X: 90})
	forceRescan(tg)
	require.NotNil(t, tg.Current())
	require.Same(t, primary, tg.Current().Target)

	a.Update(0.016)

	assert.Len(t, primary.hitsTaken, 1, "primary takes exactly one hit")
	assert.Len(t, near.hitsTaken, 1, "entities within the radius take splash")
	assert.Empty(t, far.hitsTaken, "outside the radius")
}

func TestMissingPoolFallsBackToDirectDamage(t *testing.T) {
	cfg := directCombatStats()
	cfg.ProjectileID = "PROJ_UNREGISTERED"
	w, a, tg := newAttackFixture(t, cfg)
	s, _ := addStub(w, vec.Vec3{X: 10})
	forceRescan(tg)

	a.Update(0.016)

	assert.Len(t, s.hitsTaken, 1, "attack must not be dropped")
	assert.Equal(t, 0, w.InFlightCount())
}

func TestAttackEmitsEventsAndHooks(t *testing.T) {
	w, a, tg := newAttackFixture(t, directCombatStats())
	addStub(w, vec.Vec3{X: 10})
	forceRescan(tg)

	var hookTargets []*TargetEntry
	a.OnAttack(func(target *TargetEntry) { hookTargets = append(hookTargets, target) })

	events := 0
	w.Events().Subscribe(event.UnitAttacked, event.ListenerFunc(func(e event.Event) {
		data := e.Data.(event.UnitAttackedData)
		assert.Equal(t, types.EntityID(7), data.UnitID)
		events++
	}))

	a.Update(0.016)
	assert.Len(t, hookTargets, 1)
	assert.Equal(t, 1, events)
}

func TestAttackFiresProjectileFromPool(t *testing.T) {
	pd := defs.ProjectileDefinition{ID: "PROJ_TEST", Speed: 400, Lifetime: 3, HitRadius: 10, Prewarm: 2}
	cfg := directCombatStats()
	cfg.ProjectileID = "PROJ_TEST"

	w := NewWorld()
	pool := w.Pools().Register(w, pd)
	tg := NewTargeting(w, 7, vec.Zero, cfg.Range, types.CategoryAll, cfg.Priority)
	a := NewAttackController(w, 7, vec.Zero, tg, nil, cfg, types.CategoryAll)

	s, _ := addStub(w, vec.Vec3{X: 60})
	forceRescan(tg)

	a.Update(0.016)
	assert.Equal(t, 1, w.InFlightCount())
	assert.Equal(t, 1, pool.ActiveCount())
	assert.Empty(t, s.hitsTaken, "damage arrives with the projectile, not the trigger pull")
}

func TestAimGateBlocksFiring(t *testing.T) {
	cfg := directCombatStats()
	cfg.RequireAim = true

	w := NewWorld()
	tg := NewTargeting(w, 7, vec.Zero, cfg.Range, types.CategoryAll, cfg.Priority)
	// Slow turret pointed the wrong way.
	aim := NewAiming(tg, vec.Zero, 0.1, 0, false)
	a := NewAttackController(w, 7, vec.Zero, tg, aim, cfg, types.CategoryAll)

	s, _ := addStub(w, vec.Vec3{X: -50}) // behind the initial facing
	forceRescan(tg)

	aim.Update(0.016)
	a.Update(0.016)
	assert.Empty(t, s.hitsTaken, "not aimed yet")

	// Let the turret swing around.
	for i := 0; i < 2000; i++ {
		aim.Update(0.016)
	}
	a.Update(0.016)
	assert.Len(t, s.hitsTaken, 1)
}
