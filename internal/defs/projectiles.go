// internal/defs/projectiles.go
package defs

// ProjectileDefinition holds the static data for one projectile archetype.
// Towers reference archetypes by ID; one pool exists per archetype.
type ProjectileDefinition struct {
	ID          string  `json:"id"`
	Speed       float64 `json:"speed"`    // world units per second
	Lifetime    float64 `json:"lifetime"` // seconds until the shot expires
	HitRadius   float64 `json:"hit_radius"`
	TurnRateDeg float64 `json:"turn_rate_deg,omitempty"` // 0 = faces travel direction instantly
	Prewarm     int     `json:"prewarm,omitempty"`       // instances created at pool setup
	Visuals     Visuals `json:"visuals"`
}

// ProjectileDefs is the library of all projectile archetypes, mapped by ID.
var ProjectileDefs map[string]ProjectileDefinition
