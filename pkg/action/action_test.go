package action

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		mnemonic string
		want     ID
		ok       bool
	}{
		{"A_Chase", Chase, true},
		{"chase", Chase, true},
		{"A_CHASE", Chase, true},
		{"a_weaponready", WeaponReady, true},
		{"NULL", None, true},
		{"A_WeaponProjectileNamed", WeaponProjectileNamed, true},
		{"A_DoesNotExist", None, false},
		{"", None, false},
	}

	for _, tt := range tests {
		t.Run(tt.mnemonic, func(t *testing.T) {
			got, ok := Lookup(tt.mnemonic)
			require.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNamesRoundTrip(t *testing.T) {
	for id := None + 1; id < Count; id++ {
		got, ok := Lookup(id.String())
		require.True(t, ok, "lookup %s", id)
		assert.Equal(t, id, got)
	}
}

func TestKind(t *testing.T) {
	assert.Equal(t, KindWeapon, FirePistol.Kind())
	assert.Equal(t, KindMobj, Chase.Kind())
	assert.Equal(t, KindNone, None.Kind())
	assert.Equal(t, KindNone, Count.Kind())
	assert.Equal(t, "weapon", GunFlashTo.Kind().String())
}

func TestTakesNameIndex(t *testing.T) {
	assert.True(t, SpawnObjectNamed.TakesNameIndex())
	assert.True(t, WeaponProjectileNamed.TakesNameIndex())
	assert.False(t, SpawnObject.TakesNameIndex())
}

func TestString(t *testing.T) {
	assert.Equal(t, "NULL", None.String())
	assert.Equal(t, "A_Light0", Light0.String())
	assert.Equal(t, "A_Unknown", (Count + 5).String())
}

func TestTextRoundTrip(t *testing.T) {
	var id ID
	require.NoError(t, id.UnmarshalText([]byte("A_Look")))
	assert.Equal(t, Look, id)

	require.NoError(t, id.UnmarshalText([]byte("3")))
	assert.Equal(t, Lower, id)

	require.Error(t, id.UnmarshalText([]byte("A_Nope")))
	require.Error(t, id.UnmarshalText([]byte("65000")))

	text, err := Scream.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "A_Scream", string(text))
}
