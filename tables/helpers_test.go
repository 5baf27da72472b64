package tables

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/dehkit/pkg/action"
	"github.com/joshuapare/dehkit/pkg/types"
	"github.com/joshuapare/dehkit/seed"
)

// testSeed returns a small seed with deliberate duplicate names.
func testSeed() *seed.Seed {
	return &seed.Seed{
		States: []types.State{
			{Sprite: 0, Tics: -1},
			{Sprite: 1, Frame: 0, Tics: 10, Action: action.Look, NextState: 1},
			{Sprite: 1, Frame: 1, Tics: 4, Action: action.Chase, NextState: 1},
		},
		Sprites: []string{"TROO", "AAAA", "AAAA", "BOSS"},
		Sounds: []types.SFXInfo{
			{Lump: types.NoLump},
			{Name: "pistol", Priority: 64, Lump: types.NoLump},
			{Name: "dup", Priority: 70, Lump: types.NoLump},
			{Name: "dup", Priority: 71, Lump: types.NoLump},
			{Name: "shotgn", Priority: 64, Lump: types.NoLump},
		},
		Music: []types.MusicInfo{
			{Lump: types.NoLump},
			{Name: "e1m1", Lump: types.NoLump},
			{Name: "e1m1", Lump: types.NoLump},
			{Name: "runnin", Lump: types.NoLump},
		},
		Mobjs: []types.MobjInfo{
			{},
			{DoomedNum: 3004, SpawnHealth: 20, SpawnState: 1},
			{DoomedNum: 9, SpawnHealth: 30, SpawnState: 2},
		},
	}
}

// newTestSet returns a Set built from testSeed.
func newTestSet(t *testing.T, opts ...Option) *Set {
	t.Helper()
	s := New(testSeed(), opts...)
	require.Equal(t, 3, s.States.Len())
	return s
}
