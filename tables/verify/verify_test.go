package verify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"

	"github.com/joshuapare/dehkit/pkg/types"
	"github.com/joshuapare/dehkit/seed"
	"github.com/joshuapare/dehkit/tables"
)

func TestAll_Vanilla(t *testing.T) {
	s := tables.New(seed.Vanilla())
	require.NoError(t, All(s))
}

func TestAll_AfterGrowth(t *testing.T) {
	s := tables.New(seed.Vanilla())

	require.NoError(t, s.States.EnsureCapacity(2000))
	require.NoError(t, s.Sounds.EnsureCapacity(300))
	_, err := s.Names.Materialize(s.Names.Lookup("Custom"))
	require.NoError(t, err)
	_, err = s.Mobjs.NewIndex()
	require.NoError(t, err)

	assert.NoError(t, All(s), "grown defaults are self-consistent")
}

func TestAll_CollectsEveryViolation(t *testing.T) {
	s := tables.New(seed.Vanilla())

	require.NoError(t, s.States.Update(2, func(st *types.State) {
		st.NextState = 5000
		st.Sprite = -1
	}))
	require.NoError(t, s.Mobjs.Update(1, func(m *types.MobjInfo) {
		m.DeathState = 999
		m.PainSound = 400
	}))

	err := All(s)
	require.Error(t, err)

	errs := multierr.Errors(err)
	require.Len(t, errs, 4)

	var verr *ValidationError
	require.ErrorAs(t, errs[0], &verr)
	assert.Equal(t, tables.KindStates, verr.Table)
	assert.Equal(t, 2, verr.Index)
	assert.Contains(t, verr.Error(), "next state 5000")

	assert.Contains(t, errs[2].Error(), "mobjs[1]: deathstate 999")
	assert.Contains(t, errs[3].Error(), "painsound 400")
}

func TestStates_GrownSpriteNeedsTNT1(t *testing.T) {
	s := tables.New(&seed.Seed{Sprites: []string{"TROO"}})
	require.NoError(t, s.States.EnsureCapacity(0))

	err := States(s)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sprite 138 out of range")
}

func TestValidationError_NoIndex(t *testing.T) {
	e := &ValidationError{Table: tables.KindSounds, Index: -1, Message: "broken"}
	assert.Equal(t, "sounds: broken", e.Error())
}

func TestCursorsAndNames_Empty(t *testing.T) {
	s := tables.New(nil)
	assert.NoError(t, Cursors(s))
	assert.NoError(t, Names(s))
}
