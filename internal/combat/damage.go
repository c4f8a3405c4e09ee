// internal/combat/damage.go
package combat

import "go-combat-core/internal/defs"

// MitigateDamage applies armor to incoming damage. Physical and magical
// damage subtract the matching armor value; true damage ignores armor.
// Any positive incoming damage deals at least 1 after mitigation.
func MitigateDamage(damage int, kind defs.DamageType, physicalArmor, magicalArmor int) int {
	if damage <= 0 {
		return 0
	}

	final := damage
	switch kind {
	case defs.DamagePhysical:
		final -= physicalArmor
	case defs.DamageMagical:
		final -= magicalArmor
	case defs.DamageTrue:
		// Not reduced by armor.
	}

	if final < 1 {
		final = 1
	}
	return final
}
