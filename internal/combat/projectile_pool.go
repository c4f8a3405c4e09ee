// internal/combat/projectile_pool.go
package combat

import "go-combat-core/internal/defs"

// ProjectilePool keeps one Pool per projectile archetype, keyed by archetype
// ID the same way the definition libraries are.
type ProjectilePool struct {
	pools map[string]*Pool[*Projectile]
}

func NewProjectilePool() *ProjectilePool {
	return &ProjectilePool{
		pools: make(map[string]*Pool[*Projectile]),
	}
}

// Register creates (or returns) the pool for an archetype and prewarms it
// per the definition.
func (pp *ProjectilePool) Register(world *World, def defs.ProjectileDefinition) *Pool[*Projectile] {
	if pool, ok := pp.pools[def.ID]; ok {
		return pool
	}

	var pool *Pool[*Projectile]
	pool = NewPool(def.ID, func() *Projectile {
		return &Projectile{world: world, def: def, pool: pool}
	}, true)
	pp.pools[def.ID] = pool
	pool.Prewarm(def.Prewarm)
	return pool
}

// Pool looks up the pool for an archetype ID.
func (pp *ProjectilePool) Pool(archetypeID string) (*Pool[*Projectile], bool) {
	pool, ok := pp.pools[archetypeID]
	return pool, ok
}

// ReturnAll drains every archetype's active set back into its pool.
func (pp *ProjectilePool) ReturnAll() {
	for _, pool := range pp.pools {
		pool.ReturnAll()
	}
}

// Clear tears down every pool.
func (pp *ProjectilePool) Clear() {
	for _, pool := range pp.pools {
		pool.Clear()
	}
}
