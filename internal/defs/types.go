// internal/defs/types.go
package defs

// DamageType defines the type of damage dealt.
type DamageType string

const (
	DamagePhysical DamageType = "PHYSICAL"
	DamageMagical  DamageType = "MAGICAL"
	DamageTrue     DamageType = "TRUE"
)

// TargetPriority selects which candidate a unit locks onto.
type TargetPriority string

const (
	PriorityFirst     TargetPriority = "FIRST"     // furthest along the path
	PriorityNearest   TargetPriority = "NEAREST"   // smallest distance to the unit
	PriorityStrongest TargetPriority = "STRONGEST" // highest current health
	PriorityWeakest   TargetPriority = "WEAKEST"   // lowest current health
	PriorityFastest   TargetPriority = "FASTEST"   // highest current speed
)

// Valid reports whether p is one of the known priorities.
func (p TargetPriority) Valid() bool {
	switch p {
	case PriorityFirst, PriorityNearest, PriorityStrongest, PriorityWeakest, PriorityFastest:
		return true
	}
	return false
}
