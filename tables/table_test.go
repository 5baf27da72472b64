package tables

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/dehkit/pkg/types"
	"github.com/joshuapare/dehkit/seed"
)

func TestEnsureCapacity_NoGrowWhenCovered(t *testing.T) {
	s := newTestSet(t)

	for _, limit := range []int{-1, 0, 1, 2} {
		require.NoError(t, s.States.EnsureCapacity(limit))
		assert.Equal(t, 3, s.States.Len(), "limit %d", limit)
	}
	assert.Equal(t, Seeded, s.States.Phase())
}

func TestEnsureCapacity_FirstGrowth(t *testing.T) {
	s := newTestSet(t)

	require.NoError(t, s.States.EnsureCapacity(3))
	assert.Equal(t, 6, s.States.Len(), "first growth sizes to seed length + limit")
	assert.True(t, s.States.Grown())

	// Seed records survive the reallocation.
	st, ok := s.States.Get(1)
	require.True(t, ok)
	assert.Equal(t, int32(10), st.Tics)
}

func TestEnsureCapacity_LaterGrowth(t *testing.T) {
	s := newTestSet(t)

	require.NoError(t, s.States.EnsureCapacity(3))
	require.NoError(t, s.States.EnsureCapacity(10))
	assert.Equal(t, 16, s.States.Len())

	for i := 6; i < 16; i++ {
		st, _ := s.States.Get(i)
		assert.Equal(t, types.StateNum(i), st.NextState)
	}
}

func TestEnsureCapacity_Idempotent(t *testing.T) {
	once := newTestSet(t)
	twice := newTestSet(t)

	require.NoError(t, once.Mobjs.EnsureCapacity(20))
	require.NoError(t, twice.Mobjs.EnsureCapacity(20))
	require.NoError(t, twice.Mobjs.EnsureCapacity(20))

	assert.Equal(t, once.Mobjs.Len(), twice.Mobjs.Len())
	assert.Equal(t, once.Mobjs.Records(), twice.Mobjs.Records())
	assert.Equal(t, once.Mobjs.Cursor(), twice.Mobjs.Cursor())
}

func TestEnsureCapacity_EmptySeed(t *testing.T) {
	s := New(nil)

	require.NoError(t, s.Sprites.EnsureCapacity(0))
	assert.Equal(t, 1, s.Sprites.Len(), "limit 0 needs one slot")

	require.NoError(t, s.Sprites.EnsureCapacity(1))
	assert.Equal(t, 2, s.Sprites.Len())
}

func TestEnsureCapacity_Limit(t *testing.T) {
	s := newTestSet(t, WithLimits(types.Limits{MaxStates: 8}))

	err := s.States.EnsureCapacity(8)
	require.ErrorIs(t, err, ErrLimitExceeded)
	assert.Equal(t, 3, s.States.Len(), "failed growth leaves the table alone")
	assert.Equal(t, Seeded, s.States.Phase())

	// Growth is clamped to the limit but still covers the request.
	require.NoError(t, s.States.EnsureCapacity(7))
	assert.Equal(t, 8, s.States.Len())
}

func TestEnsureCapacity_GrowFunc(t *testing.T) {
	type event struct {
		kind     Kind
		from, to int
	}
	var events []event
	s := newTestSet(t, WithGrowFunc(func(kind Kind, from, to int) {
		events = append(events, event{kind, from, to})
	}))

	require.NoError(t, s.Sounds.EnsureCapacity(2))
	require.NoError(t, s.Sounds.EnsureCapacity(5))
	require.NoError(t, s.Sounds.EnsureCapacity(5))

	assert.Equal(t, []event{{KindSounds, 5, 10}}, events)
}

func TestGetSetUpdate(t *testing.T) {
	s := newTestSet(t)

	_, ok := s.Mobjs.Get(3)
	assert.False(t, ok)
	_, ok = s.Mobjs.Get(-1)
	assert.False(t, ok)

	require.ErrorIs(t, s.Mobjs.Set(3, types.MobjInfo{}), ErrIndexRange)
	require.ErrorIs(t, s.Mobjs.Update(-1, func(*types.MobjInfo) {}), ErrIndexRange)

	require.NoError(t, s.Mobjs.Update(1, func(m *types.MobjInfo) { m.SpawnHealth = 60 }))
	m, _ := s.Mobjs.Get(1)
	assert.Equal(t, int32(60), m.SpawnHealth)
}

func TestSeedIsSnapshot(t *testing.T) {
	sd := testSeed()
	s := New(sd)

	require.NoError(t, s.Sprites.SetName(0, "XXXX"))
	assert.Equal(t, "TROO", sd.Sprites[0], "caller's seed is never written")
	assert.Equal(t, "TROO", s.Sprites.Seed()[0], "snapshot ignores edits")

	sd.Sprites[3] = "ZZZZ"
	assert.Equal(t, 3, s.Sprites.GetOriginalIndex("BOSS"), "snapshot is a copy")
}

func TestParseKind(t *testing.T) {
	for k := KindStates; k <= KindMobjs; k++ {
		got, ok := ParseKind(k.String())
		require.True(t, ok)
		assert.Equal(t, k, got)
	}
	got, ok := ParseKind("Things")
	require.True(t, ok)
	assert.Equal(t, KindMobjs, got)

	_, ok = ParseKind("textures")
	assert.False(t, ok)
}

func TestSetEnsureCapacity_Dispatch(t *testing.T) {
	s := New(seed.Vanilla())
	require.NoError(t, s.EnsureCapacity(KindMusic, 100))
	assert.Equal(t, 168, s.Music.Len())
	require.ErrorIs(t, s.EnsureCapacity(Kind(42), 1), ErrUnknownKind)
}
