// internal/combat/effect_tracker.go
package combat

// EffectTracker holds the active timed modifiers on one target entity. The
// owning entity updates it once per tick and must call ClearAll on death or
// pool return so no effect state leaks into a recycled occupant.
type EffectTracker struct {
	effects []Effect
}

func NewEffectTracker() *EffectTracker {
	return &EffectTracker{}
}

// Add attaches an effect. Stacking kinds always append a new instance;
// non-stacking kinds refresh the existing instance of the same kind instead.
func (t *EffectTracker) Add(e Effect) {
	if !e.CanStack() {
		for _, existing := range t.effects {
			if existing.Kind() == e.Kind() {
				existing.Refresh(e)
				return
			}
		}
	}
	t.effects = append(t.effects, e)
	e.Apply()
}

// Update advances every effect and removes expired ones, running their
// Remove hook.
func (t *EffectTracker) Update(dt float64) {
	kept := t.effects[:0]
	for _, e := range t.effects {
		e.Update(dt)
		if e.Expired() {
			e.Remove()
			continue
		}
		kept = append(kept, e)
	}
	// Drop trailing references so removed effects can be collected.
	for i := len(kept); i < len(t.effects); i++ {
		t.effects[i] = nil
	}
	t.effects = kept
}

// ClearAll removes every active effect, running each Remove hook.
func (t *EffectTracker) ClearAll() {
	for i, e := range t.effects {
		e.Remove()
		t.effects[i] = nil
	}
	t.effects = t.effects[:0]
}

// ActiveCount reports how many effects are attached.
func (t *EffectTracker) ActiveCount() int { return len(t.effects) }

// Find returns the active effect of the given kind, or nil. For stacking
// kinds this is the earliest attached instance.
func (t *EffectTracker) Find(kind EffectKind) Effect {
	for _, e := range t.effects {
		if e.Kind() == kind {
			return e
		}
	}
	return nil
}
