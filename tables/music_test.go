package tables

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/dehkit/pkg/types"
)

func TestMusic_GetDehIndex(t *testing.T) {
	s := newTestSet(t)

	assert.Equal(t, 1, s.Music.GetDehIndex("E1M1"))
	assert.Equal(t, 2, s.Music.GetDehIndex("e1m1"))
	assert.Equal(t, NotFound, s.Music.GetDehIndex("e1m1"))
	assert.Equal(t, 3, s.Music.GetDehIndex("runnin"))
	assert.Equal(t, NotFound, s.Music.GetDehIndex("runni"))
	assert.True(t, s.Music.Edited(3))
}

func TestMusic_Growth(t *testing.T) {
	s := newTestSet(t)

	require.NoError(t, s.Music.EnsureCapacity(4))
	assert.Equal(t, 8, s.Music.Len())
	assert.True(t, s.Music.Grown())

	m, _ := s.Music.Get(6)
	assert.Equal(t, types.GrownMusic(), m)

	require.NoError(t, s.Music.Set(6, types.MusicInfo{Name: "d_new", Lump: types.NoLump}))
	assert.Equal(t, 6, s.Music.GetDehIndex("D_NEW"))
}
