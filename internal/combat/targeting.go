// internal/combat/targeting.go
package combat

import (
	"go-combat-core/internal/config"
	"go-combat-core/internal/defs"
	"go-combat-core/internal/event"
	"go-combat-core/internal/types"
	"go-combat-core/pkg/vec"
)

// Targeting maintains the current best target for one combat unit. A full
// rescan runs on a throttled interval; in between, the held target is
// revalidated every tick so a dead or escaped enemy is dropped immediately
// rather than surviving until the next rescan.
type Targeting struct {
	world   *World
	ownerID types.EntityID
	pos     vec.Vec3

	attackRange    float64
	mask           types.Category
	priority       defs.TargetPriority
	rescanInterval float64
	rescanTimer    float64

	current         *TargetEntry
	onTargetChanged []func(*TargetEntry)
}

func NewTargeting(world *World, ownerID types.EntityID, pos vec.Vec3, attackRange float64, mask types.Category, priority defs.TargetPriority) *Targeting {
	return &Targeting{
		world:          world,
		ownerID:        ownerID,
		pos:            pos,
		attackRange:    attackRange,
		mask:           mask,
		priority:       priority,
		rescanInterval: config.TargetRescanInterval,
	}
}

// Current returns the held target, or nil.
func (t *Targeting) Current() *TargetEntry { return t.current }

// OnTargetChanged registers a callback fired whenever the selected target
// changes identity. It never fires for a rescan that reselects the same
// target.
func (t *Targeting) OnTargetChanged(fn func(*TargetEntry)) {
	t.onTargetChanged = append(t.onTargetChanged, fn)
}

func (t *Targeting) Update(dt float64) {
	// Cheap per-tick validation between rescans.
	if t.current != nil && !t.eligible(t.current) {
		t.setTarget(nil)
	}

	t.rescanTimer -= dt
	if t.rescanTimer > 0 {
		return
	}
	t.rescanTimer = t.rescanInterval
	t.rescan()
}

func (t *Targeting) eligible(entry *TargetEntry) bool {
	return entry.Target.Alive() &&
		entry.Target.AimPoint().DistSq(t.pos) <= t.attackRange*t.attackRange
}

func (t *Targeting) rescan() {
	candidates := t.world.QueryRadius(t.pos, t.attackRange, t.mask)
	best := t.selectBest(candidates)
	if best != t.current {
		t.setTarget(best)
	}
}

// selectBest picks by priority. Comparisons are strict so the first
// encountered candidate wins ties; candidates arrive in registration order,
// so the winner is stable across rescans.
func (t *Targeting) selectBest(candidates []*TargetEntry) *TargetEntry {
	var best *TargetEntry
	var bestScore float64
	for _, c := range candidates {
		score := t.score(c)
		if best == nil || score > bestScore {
			best = c
			bestScore = score
		}
	}
	return best
}

// score maps every priority onto a maximization so selection stays one loop.
func (t *Targeting) score(entry *TargetEntry) float64 {
	switch t.priority {
	case defs.PriorityFirst:
		return entry.Target.DistanceTraveled()
	case defs.PriorityNearest:
		return -entry.Target.AimPoint().DistSq(t.pos)
	case defs.PriorityStrongest:
		return float64(entry.Target.Health())
	case defs.PriorityWeakest:
		return -float64(entry.Target.Health())
	case defs.PriorityFastest:
		return entry.Target.Speed()
	default:
		return -entry.Target.AimPoint().DistSq(t.pos)
	}
}

func (t *Targeting) setTarget(entry *TargetEntry) {
	t.current = entry
	for _, fn := range t.onTargetChanged {
		fn(entry)
	}
	data := event.TargetChangedData{UnitID: t.ownerID}
	if entry != nil {
		data.TargetID = entry.ID
	}
	t.world.dispatcher.Dispatch(event.Event{Type: event.TargetChanged, Data: data})
}
