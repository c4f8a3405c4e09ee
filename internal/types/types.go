// internal/types/types.go
package types

// EntityID identifies one simulated entity. 0 is never a valid entity.
type EntityID uint64

// Category is a bitmask restricting spatial queries to a class of entities.
type Category uint32

const (
	CategoryEnemy Category = 1 << iota
	CategoryUnit
	CategoryAll Category = ^Category(0)
)

// Matches reports whether any bit of c overlaps mask.
func (c Category) Matches(mask Category) bool {
	return c&mask != 0
}
