package tables

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/dehkit/seed"
)

func TestSet_FreeThenInit(t *testing.T) {
	s := newTestSet(t)

	require.NoError(t, s.States.EnsureCapacity(10))
	s.Sprites.GetDehIndex("AAAA")
	_, err := s.Names.Materialize(s.Names.Lookup("Thing"))
	require.NoError(t, err)

	s.Free()
	for _, st := range s.Stats() {
		assert.Zero(t, st.Len, "%s after Free", st.Kind)
		assert.Equal(t, Seeded, st.Phase)
	}
	assert.Equal(t, 1, s.Names.Len(), "only the null name survives Free")
	assert.Equal(t, 0, s.Names.TypeIndex(1))

	assert.NotPanics(t, func() {
		assert.Equal(t, 1, s.Names.Lookup("Zombie"))
	})

	s.Init(testSeed())
	assert.Equal(t, 3, s.States.Len())
	assert.Equal(t, Seeded, s.States.Phase(), "growth latch resets")
	assert.False(t, s.Sprites.Edited(1), "edit flags reset")
	assert.Equal(t, 1, s.Sprites.GetDehIndex("AAAA"))
	assert.Equal(t, 2, s.Mobjs.Cursor())
	assert.Equal(t, 1, s.Names.Len())

	require.NoError(t, s.States.EnsureCapacity(3))
	assert.Equal(t, 6, s.States.Len(), "first growth after re-init sizes from the seed again")
}

func TestSet_Independent(t *testing.T) {
	a := New(seed.Vanilla())
	b := New(seed.Vanilla())

	require.NoError(t, a.Sounds.EnsureCapacity(500))
	assert.Equal(t, 1, a.Sprites.GetDehIndex("SHTG"))

	assert.Equal(t, 109, b.Sounds.Len())
	assert.False(t, b.Sprites.Edited(1))
	assert.Equal(t, 1, b.Sprites.GetDehIndex("SHTG"))
}

func TestSet_Stats(t *testing.T) {
	s := newTestSet(t)
	require.NoError(t, s.Mobjs.EnsureCapacity(3))

	stats := s.Stats()
	require.Len(t, stats, 5)
	assert.Equal(t, Stats{Kind: KindMobjs, Len: 6, SeedLen: 3, Phase: Grown}, stats[4])
	assert.Equal(t, Stats{Kind: KindSprites, Len: 4, SeedLen: 4, Phase: Seeded}, stats[1])
}

// Every table stays internally consistent through an arbitrary mix of
// growth and edit calls.
func TestSet_MixedOperations(t *testing.T) {
	s := New(seed.Vanilla())

	ops := []func(){
		func() { _ = s.States.EnsureCapacity(1200) },
		func() { s.Sprites.GetOriginalIndex("300") },
		func() { s.Sprites.GetDehIndex("TROO") },
		func() { _, _ = s.Sounds.NewIndex() },
		func() { s.Sounds.GetOriginalIndex("150") },
		func() { s.Sounds.GetDehIndex("pistol") },
		func() { _ = s.Music.EnsureCapacity(80) },
		func() { _, _ = s.Mobjs.NewIndex() },
		func() { _, _ = s.Names.Materialize(s.Names.Lookup("Custom")) },
	}
	for round := range 3 {
		for _, op := range ops {
			op()
		}
		assert.Less(t, s.Sounds.Cursor(), s.Sounds.Len(), "round %d", round)
		assert.Less(t, s.Mobjs.Cursor(), s.Mobjs.Len(), "round %d", round)
	}

	for i := s.States.SeedLen(); i < s.States.Len(); i++ {
		st, _ := s.States.Get(i)
		require.EqualValues(t, i, st.NextState)
	}
	assert.Len(t, s.Sprites.Records(), s.Sprites.Len())
	assert.Equal(t, 1, s.Names.Len()-1, "one distinct name registered")
}
