package tables

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/dehkit/pkg/types"
)

func TestMobjs_GrownDefaults(t *testing.T) {
	s := newTestSet(t)
	require.NoError(t, s.Mobjs.EnsureCapacity(10))

	for i := 3; i < s.Mobjs.Len(); i++ {
		m, _ := s.Mobjs.Get(i)
		assert.Equal(t, types.MeleeRange, m.MeleeRange, "mobj %d", i)
		assert.Equal(t, types.MTNamedType, m.DroppedItem, "mobj %d", i)
		assert.Equal(t, types.TypeNull, m.DroppedItemType, "mobj %d", i)
		assert.Equal(t, types.NoAltSpeed, m.AltSpeed, "mobj %d", i)
		assert.Equal(t, types.IGDefault, m.InfightingGroup, "mobj %d", i)
		assert.Zero(t, m.SpawnHealth, "mobj %d", i)
	}

	m, _ := s.Mobjs.Get(1)
	assert.Equal(t, int32(3004), m.DoomedNum, "seed record kept")
}

func TestMobjs_NewIndex(t *testing.T) {
	s := newTestSet(t)
	assert.Equal(t, 2, s.Mobjs.Cursor())

	seen := map[int]bool{}
	prev := 2
	for range 20 {
		i, err := s.Mobjs.NewIndex()
		require.NoError(t, err)
		require.False(t, seen[i])
		require.Greater(t, i, prev)
		_, ok := s.Mobjs.Get(i)
		require.True(t, ok)
		seen[i] = true
		prev = i
	}
}

func TestMobjs_EnsureCapacityRaisesCursor(t *testing.T) {
	s := newTestSet(t)

	require.NoError(t, s.Mobjs.EnsureCapacity(1))
	assert.Equal(t, 2, s.Mobjs.Cursor(), "lower limits leave the cursor")

	require.NoError(t, s.Mobjs.EnsureCapacity(30))
	assert.Equal(t, 30, s.Mobjs.Cursor())
	i, err := s.Mobjs.NewIndex()
	require.NoError(t, err)
	assert.Equal(t, 31, i)
}
