package combat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-combat-core/pkg/vec"
)

func TestPoolAccountingInvariant(t *testing.T) {
	pool := newFakePool(true)
	pool.Prewarm(3)

	a, ok := pool.Get()
	require.True(t, ok)
	b, ok := pool.Get()
	require.True(t, ok)
	require.NotSame(t, a, b)

	assert.Equal(t, 2, pool.ActiveCount())
	assert.Equal(t, 1, pool.InactiveCount())
	assert.Equal(t, 3, pool.CreatedCount())
	assert.Equal(t, pool.CreatedCount(), pool.ActiveCount()+pool.InactiveCount())

	pool.Return(a)
	assert.Equal(t, 1, pool.ActiveCount())
	assert.Equal(t, 2, pool.InactiveCount())
	assert.Equal(t, pool.CreatedCount(), pool.ActiveCount()+pool.InactiveCount())
}

func TestPoolExpandsWhenDrained(t *testing.T) {
	pool := newFakePool(true)

	item, ok := pool.Get()
	require.True(t, ok)
	require.NotNil(t, item)
	assert.Equal(t, 1, pool.CreatedCount())
	assert.True(t, item.active)
}

func TestPoolFixedReportsExhaustion(t *testing.T) {
	pool := newFakePool(false)
	pool.Prewarm(1)

	_, ok := pool.Get()
	require.True(t, ok)
	_, ok = pool.Get()
	assert.False(t, ok)
}

func TestPoolRoundTripYieldsSameResetInstance(t *testing.T) {
	pool := newFakePool(true)
	pool.Prewarm(1)

	a, ok := pool.Get()
	require.True(t, ok)
	resetsBefore := a.resets

	pool.Return(a)
	b, ok := pool.Get()
	require.True(t, ok)

	assert.Same(t, a, b)
	// Reset ran on Return and again on Get.
	assert.Equal(t, resetsBefore+2, b.resets)
	assert.True(t, b.active)
}

func TestPoolReturnDeactivatesBeforeStacking(t *testing.T) {
	pool := newFakePool(true)
	item, ok := pool.Get()
	require.True(t, ok)
	require.True(t, item.active)

	pool.Return(item)
	assert.False(t, item.active)
	assert.Equal(t, 1, pool.InactiveCount())
}

func TestPoolUntrackedReturnProceeds(t *testing.T) {
	pool := newFakePool(true)
	stray := &fakeItem{}

	pool.Return(stray)

	assert.Equal(t, 0, pool.ActiveCount())
	assert.Equal(t, 1, pool.InactiveCount())
	assert.False(t, stray.active)
}

func TestPoolGetAtPlacesInstance(t *testing.T) {
	pool := newFakePool(true)
	pos := vec.Vec3{X: 3, Z: 4}
	dir := vec.Vec3{Z: 1}

	item, ok := pool.GetAt(pos, dir)
	require.True(t, ok)
	assert.Equal(t, pos, item.pos)
	assert.Equal(t, dir, item.dir)
}

func TestPoolReturnAllAndClear(t *testing.T) {
	pool := newFakePool(true)
	pool.Prewarm(2)
	_, ok := pool.Get()
	require.True(t, ok)
	_, ok = pool.Get()
	require.True(t, ok)

	pool.ReturnAll()
	assert.Equal(t, 0, pool.ActiveCount())
	assert.Equal(t, 2, pool.InactiveCount())

	pool.Clear()
	assert.Equal(t, 0, pool.ActiveCount())
	assert.Equal(t, 0, pool.InactiveCount())
	assert.Equal(t, 0, pool.CreatedCount())
}
