// internal/defs/towers.go
package defs

import "image/color"

// TowerDefinition holds all the static data for a specific type of tower.
type TowerDefinition struct {
	ID      string       `json:"id"`
	Name    string       `json:"name"`
	Combat  *CombatStats `json:"combat,omitempty"`
	Visuals Visuals      `json:"visuals"`
}

// CombatStats contains parameters related to a tower's combat abilities.
type CombatStats struct {
	Damage       int            `json:"damage"`
	DamageType   DamageType     `json:"damage_type"`
	FireRate     float64        `json:"fire_rate"` // Shots per second
	Range        float64        `json:"range"`
	AOERadius    float64        `json:"aoe_radius,omitempty"`    // 0 = single target
	ProjectileID string         `json:"projectile_id,omitempty"` // empty = instantaneous hit
	Priority     TargetPriority `json:"priority"`
	RequireAim   bool           `json:"require_aim,omitempty"`
	TurnSpeedDeg float64        `json:"turn_speed_deg,omitempty"` // turret rotation, degrees/sec
	YawOnly      bool           `json:"yaw_only,omitempty"`       // ground-plane turret
	Slow         *SlowDef       `json:"slow,omitempty"`
	Dot          *DotDef        `json:"dot,omitempty"`
}

// SlowDef describes the slow payload a tower's hits carry.
type SlowDef struct {
	Factor   float64 `json:"factor"` // fraction of speed removed, 0..1
	Duration float64 `json:"duration"`
}

// DotDef describes a damage-over-time payload.
type DotDef struct {
	DamagePerTick int     `json:"damage_per_tick"`
	Interval      float64 `json:"interval"`
	Duration      float64 `json:"duration"`
}

// Visuals contains parameters for rendering a tower.
type Visuals struct {
	Color        color.RGBA `json:"color"`
	RadiusFactor float64    `json:"radius_factor,omitempty"`
	StrokeWidth  float64    `json:"stroke_width,omitempty"`
}

// TowerDefs is the library of all tower definitions, mapped by their ID.
var TowerDefs map[string]TowerDefinition
