package tables

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/dehkit/pkg/action"
	"github.com/joshuapare/dehkit/pkg/types"
)

func TestStates_GrownDefaults(t *testing.T) {
	s := newTestSet(t)
	require.NoError(t, s.States.EnsureCapacity(50))

	for i := 3; i < s.States.Len(); i++ {
		st, ok := s.States.Get(i)
		require.True(t, ok)
		assert.Equal(t, types.SprTNT1, st.Sprite, "state %d", i)
		assert.Equal(t, int32(-1), st.Tics, "state %d", i)
		assert.Equal(t, types.StateNum(i), st.NextState, "state %d", i)
		assert.Equal(t, action.None, st.Action, "state %d", i)
		assert.Zero(t, st.Args, "state %d", i)
	}
}

func TestStates_CodePointer(t *testing.T) {
	s := newTestSet(t)

	assert.Equal(t, action.Look, s.States.CodePointer(1))
	assert.Equal(t, action.Chase, s.States.CodePointer(2))

	// Editing the live record leaves the original pointer alone.
	require.NoError(t, s.States.Update(1, func(st *types.State) { st.Action = action.Scream }))
	assert.Equal(t, action.Look, s.States.CodePointer(1))

	require.NoError(t, s.States.EnsureCapacity(5))
	assert.Equal(t, action.None, s.States.CodePointer(6))
	assert.Equal(t, action.None, s.States.CodePointer(99))
}

func TestStates_ArgsDefined(t *testing.T) {
	s := newTestSet(t)

	require.NoError(t, s.States.SetArgsDefined(2, 0b01))
	require.NoError(t, s.States.SetArgsDefined(2, 0b100))
	assert.Equal(t, uint8(0b101), s.States.ArgsDefined(2))

	require.ErrorIs(t, s.States.SetArgsDefined(3, 1), ErrIndexRange)

	require.NoError(t, s.States.EnsureCapacity(3))
	assert.Zero(t, s.States.ArgsDefined(4), "grown metadata starts zeroed")
	assert.Equal(t, uint8(0b101), s.States.ArgsDefined(2), "growth keeps metadata")
}

func TestStates_Seen(t *testing.T) {
	s := newTestSet(t)

	require.NoError(t, s.States.MarkSeen(1, 2))
	assert.Equal(t, types.StateNum(2), s.States.SeenBy(1))
	assert.Zero(t, s.States.SeenBy(2))

	require.ErrorIs(t, s.States.MarkSeen(-1, 1), ErrIndexRange)

	s.States.ResetSeen()
	assert.Zero(t, s.States.SeenBy(1))
}
