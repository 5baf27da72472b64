package tables

import "github.com/joshuapare/dehkit/pkg/types"

// Music is the music track table. Slot 0 is the null track.
type Music struct {
	table[types.MusicInfo, bool] // meta: edited by a patch
}

func (m *Music) init(seed []types.MusicInfo, limit int, onGrow GrowFunc) {
	m.table.init(KindMusic, seed, limit, nil)
	m.fill = func(_ int, rec *types.MusicInfo) {
		*rec = types.GrownMusic()
	}
	m.onGrow = onGrow
}

// Edited reports whether a patch directive has claimed track i.
func (m *Music) Edited(i int) bool {
	if e := m.metaAt(i); e != nil {
		return *e
	}
	return false
}

// GetDehIndex returns the first live track whose whole name is key that no
// earlier directive claimed, and claims it.
func (m *Music) GetDehIndex(key string) int {
	for i := 1; i < len(m.slots); i++ {
		sl := &m.slots[i]
		if sl.rec.Name != "" && !sl.meta && equalFoldASCII(sl.rec.Name, key) {
			sl.meta = true
			return i
		}
	}
	return NotFound
}
