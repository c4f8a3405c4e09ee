package combat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-combat-core/pkg/vec"
)

func TestSlowFactorClamped(t *testing.T) {
	s := newStubTarget(vec.Zero)

	assert.Equal(t, 1.0, NewSlowEffect(s, 1.5, 1).Factor())
	assert.Equal(t, 0.0, NewSlowEffect(s, -0.2, 1).Factor())
	assert.Equal(t, 0.4, NewSlowEffect(s, 0.4, 1).Factor())
}

func TestSlowStrongerReplacesWeaker(t *testing.T) {
	s := newStubTarget(vec.Zero)
	tracker := NewEffectTracker()

	tracker.Add(NewSlowEffect(s, 0.3, 2.0))
	assert.Equal(t, 0.3, s.slowFactor)

	tracker.Add(NewSlowEffect(s, 0.5, 3.0))
	assert.Equal(t, 0.5, s.slowFactor)
	assert.Equal(t, 1, tracker.ActiveCount())

	// The refreshed slow runs for its own full duration.
	tracker.Update(2.5)
	assert.Equal(t, 0.5, s.slowFactor)
	tracker.Update(0.6)
	assert.Equal(t, 0.0, s.slowFactor)
	assert.Equal(t, 1, s.slowRemoved)
}

func TestSlowWeakerReapplicationIgnored(t *testing.T) {
	s := newStubTarget(vec.Zero)
	tracker := NewEffectTracker()

	tracker.Add(NewSlowEffect(s, 0.5, 2.0))
	tracker.Add(NewSlowEffect(s, 0.3, 10.0))

	assert.Equal(t, 0.5, s.slowFactor)
	assert.Equal(t, 1, tracker.ActiveCount())

	// The weaker slow must not have extended the remaining time either.
	tracker.Update(2.1)
	assert.Equal(t, 0, tracker.ActiveCount())
	assert.Equal(t, 0.0, s.slowFactor)
}

func TestSlowEqualStrengthRefreshesDuration(t *testing.T) {
	s := newStubTarget(vec.Zero)
	tracker := NewEffectTracker()

	tracker.Add(NewSlowEffect(s, 0.5, 1.0))
	tracker.Update(0.9)
	tracker.Add(NewSlowEffect(s, 0.5, 1.0))

	tracker.Update(0.5)
	assert.Equal(t, 0.5, s.slowFactor, "refreshed slow should outlive the original window")
}

func TestDotTicksIndependently(t *testing.T) {
	s := newStubTarget(vec.Zero)
	tracker := NewEffectTracker()

	// Two independent 5-damage-per-second effects: 10 damage per second total.
	tracker.Add(NewDamageOverTimeEffect(s, 5, 1.0, 3.0))
	tracker.Update(0.5)
	tracker.Add(NewDamageOverTimeEffect(s, 5, 1.0, 3.0))
	assert.Equal(t, 2, tracker.ActiveCount())

	tracker.Update(0.5) // first effect ticks at its 1.0s mark
	assert.Equal(t, 5, s.totalDamage())

	tracker.Update(0.5) // second effect reaches its own 1.0s mark
	assert.Equal(t, 10, s.totalDamage())

	tracker.Update(0.5) // first effect's second tick
	assert.Equal(t, 15, s.totalDamage())
}

func TestDotTickCarryover(t *testing.T) {
	s := newStubTarget(vec.Zero)
	tracker := NewEffectTracker()
	tracker.Add(NewDamageOverTimeEffect(s, 3, 0.5, 10.0))

	// 0.3s steps: ticks land at 0.6, 1.2, 1.5... — subtraction keeps the
	// fractional remainder instead of resetting the timer.
	total := 0.0
	for i := 0; i < 5; i++ {
		tracker.Update(0.3)
		total += 0.3
	}
	// 1.5 seconds at one tick per 0.5s = 3 ticks.
	require.InDelta(t, 1.5, total, 1e-9)
	assert.Equal(t, 9, s.totalDamage())
}

func TestDotDamageIsTrue(t *testing.T) {
	s := newStubTarget(vec.Zero)
	s.physArmor, s.magArmor = 50, 50
	tracker := NewEffectTracker()
	tracker.Add(NewDamageOverTimeEffect(s, 5, 1.0, 2.0))

	tracker.Update(1.0)
	assert.Equal(t, 5, s.totalDamage(), "damage over time should bypass armor")
}

func TestExpiryRunsRemoveHook(t *testing.T) {
	s := newStubTarget(vec.Zero)
	tracker := NewEffectTracker()
	tracker.Add(NewSlowEffect(s, 0.4, 1.0))

	tracker.Update(1.1)
	assert.Equal(t, 0, tracker.ActiveCount())
	assert.Equal(t, 1, s.slowRemoved)
	assert.Equal(t, 0.0, s.slowFactor)
}

func TestClearAllRemovesEverything(t *testing.T) {
	s := newStubTarget(vec.Zero)
	tracker := NewEffectTracker()
	tracker.Add(NewSlowEffect(s, 0.4, 5.0))
	tracker.Add(NewDamageOverTimeEffect(s, 2, 0.5, 5.0))

	tracker.ClearAll()
	assert.Equal(t, 0, tracker.ActiveCount())
	assert.Equal(t, 1, s.slowRemoved)
}
