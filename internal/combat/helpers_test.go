package combat

import (
	"go-combat-core/internal/defs"
	"go-combat-core/pkg/vec"
)

// stubTarget is a minimal Target/Damageable implementation for core tests.
type stubTarget struct {
	pos      vec.Vec3
	velocity vec.Vec3
	speed    float64
	health   int
	traveled float64
	alive    bool

	physArmor, magArmor int

	slowFactor  float64
	slowRemoved int
	hitsTaken   []int
}

func newStubTarget(pos vec.Vec3) *stubTarget {
	return &stubTarget{pos: pos, health: 100, alive: true}
}

func (s *stubTarget) AimPoint() vec.Vec3        { return s.pos }
func (s *stubTarget) Alive() bool               { return s.alive }
func (s *stubTarget) Health() int               { return s.health }
func (s *stubTarget) DistanceTraveled() float64 { return s.traveled }
func (s *stubTarget) Speed() float64            { return s.speed * (1 - s.slowFactor) }
func (s *stubTarget) Velocity() vec.Vec3        { return s.velocity }

func (s *stubTarget) ApplyDamage(amount int, kind defs.DamageType) int {
	final := MitigateDamage(amount, kind, s.physArmor, s.magArmor)
	s.hitsTaken = append(s.hitsTaken, final)
	s.health -= final
	if s.health <= 0 {
		s.health = 0
		s.alive = false
	}
	return s.health
}

func (s *stubTarget) ApplySlow(factor, duration float64) { s.slowFactor = factor }

func (s *stubTarget) RemoveSlow() {
	s.slowFactor = 0
	s.slowRemoved++
}

func (s *stubTarget) totalDamage() int {
	total := 0
	for _, d := range s.hitsTaken {
		total += d
	}
	return total
}

// addStub registers a stub with its own tracker and returns both.
func addStub(w *World, pos vec.Vec3) (*stubTarget, *TargetEntry) {
	s := newStubTarget(pos)
	id := w.AddTarget(s, s, NewEffectTracker(), 1)
	entry, _ := w.Entry(id)
	return s, entry
}

// fakeItem is a trivial PoolItem for pool bookkeeping tests.
type fakeItem struct {
	active bool
	resets int
	pos    vec.Vec3
	dir    vec.Vec3
}

func (f *fakeItem) Reset()                  { f.resets++ }
func (f *fakeItem) SetActive(active bool)   { f.active = active }
func (f *fakeItem) Place(pos, dir vec.Vec3) { f.pos, f.dir = pos, dir }

func newFakePool(expandable bool) *Pool[*fakeItem] {
	return NewPool("test", func() *fakeItem { return &fakeItem{} }, expandable)
}
