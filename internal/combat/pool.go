// internal/combat/pool.go
package combat

import (
	"log"

	"go-combat-core/pkg/vec"
)

// PoolItem is what a Pool can recycle. Reset must restore the canonical
// default state; SetActive toggles participation in the simulation so a
// pooled instance never shows a stray frame.
type PoolItem interface {
	comparable
	Reset()
	SetActive(active bool)
	Place(pos, dir vec.Vec3)
}

// Pool recycles instances of one archetype instead of creating and
// destroying them per use. Single-threaded; called only from the main
// simulation step.
type Pool[T PoolItem] struct {
	name       string
	factory    func() T
	expandable bool

	active   map[T]struct{}
	inactive []T
	created  int
}

// NewPool creates an empty pool. An expandable pool creates new instances
// when drained; a fixed pool reports exhaustion instead.
func NewPool[T PoolItem](name string, factory func() T, expandable bool) *Pool[T] {
	return &Pool[T]{
		name:       name,
		factory:    factory,
		expandable: expandable,
		active:     make(map[T]struct{}),
	}
}

// Prewarm creates n inactive instances up front.
func (p *Pool[T]) Prewarm(n int) {
	for i := 0; i < n; i++ {
		item := p.factory()
		p.created++
		item.Reset()
		item.SetActive(false)
		p.inactive = append(p.inactive, item)
	}
}

// Get reuses an inactive instance, or creates one if the pool is drained and
// expandable. The returned instance is reset and active.
func (p *Pool[T]) Get() (T, bool) {
	var item T
	if n := len(p.inactive); n > 0 {
		item = p.inactive[n-1]
		p.inactive = p.inactive[:n-1]
	} else if p.expandable {
		item = p.factory()
		p.created++
	} else {
		log.Printf("Pool %s: exhausted (%d created, all active)", p.name, p.created)
		var zero T
		return zero, false
	}

	item.Reset()
	p.active[item] = struct{}{}
	item.SetActive(true)
	return item, true
}

// GetAt is Get followed by placing the instance at a position and facing.
func (p *Pool[T]) GetAt(pos, dir vec.Vec3) (T, bool) {
	item, ok := p.Get()
	if !ok {
		return item, false
	}
	item.Place(pos, dir)
	return item, true
}

// Return puts an instance back on the inactive stack. Returning an instance
// the pool does not track as active logs a warning but proceeds.
func (p *Pool[T]) Return(item T) {
	if _, tracked := p.active[item]; !tracked {
		log.Printf("Pool %s: returning untracked instance", p.name)
	} else {
		delete(p.active, item)
	}

	// Deactivate before pushing so the instance never renders between here
	// and its next Get.
	item.SetActive(false)
	item.Reset()
	p.inactive = append(p.inactive, item)
}

// ReturnAll returns every active instance to the pool.
func (p *Pool[T]) ReturnAll() {
	for item := range p.active {
		item.SetActive(false)
		item.Reset()
		p.inactive = append(p.inactive, item)
	}
	clear(p.active)
}

// Clear drops every instance the pool has ever created.
func (p *Pool[T]) Clear() {
	clear(p.active)
	p.inactive = nil
	p.created = 0
}

// ActiveCount reports how many instances are currently checked out.
func (p *Pool[T]) ActiveCount() int { return len(p.active) }

// InactiveCount reports how many instances sit on the free stack.
func (p *Pool[T]) InactiveCount() int { return len(p.inactive) }

// CreatedCount reports how many instances the pool has ever created.
func (p *Pool[T]) CreatedCount() int { return p.created }

// ForEachActive visits every checked-out instance. The visitor must not
// Get or Return on this pool.
func (p *Pool[T]) ForEachActive(fn func(item T)) {
	for item := range p.active {
		fn(item)
	}
}
