package tables

import "github.com/joshuapare/dehkit/pkg/types"

// Sounds is the sound effect table. Slot 0 is the null sound and is never
// matched by name.
type Sounds struct {
	table[types.SFXInfo, bool] // meta: edited by a patch

	// cursor is the highest index handed out or explicitly requested.
	cursor int
}

func (s *Sounds) init(seed []types.SFXInfo, limit int, onGrow GrowFunc) {
	s.table.init(KindSounds, seed, limit, nil)
	s.fill = func(_ int, rec *types.SFXInfo) {
		*rec = types.GrownSFX()
	}
	s.onGrow = onGrow
	s.cursor = max(len(seed)-1, 0)
}

// EnsureCapacity guarantees slot limit exists and keeps NewIndex from ever
// returning limit or anything below it.
func (s *Sounds) EnsureCapacity(limit int) error {
	if err := s.table.EnsureCapacity(limit); err != nil {
		return err
	}
	s.cursor = max(s.cursor, limit)
	return nil
}

// NewIndex allocates a fresh sound slot and returns its index.
func (s *Sounds) NewIndex() (int, error) {
	next := s.cursor + 1
	if err := s.EnsureCapacity(next); err != nil {
		return NotFound, err
	}
	return next, nil
}

// Cursor returns the last index NewIndex handed out or a caller requested.
func (s *Sounds) Cursor() int { return s.cursor }

// Edited reports whether a patch directive has claimed sound i.
func (s *Sounds) Edited(i int) bool {
	if m := s.metaAt(i); m != nil {
		return *m
	}
	return false
}

// GetDehIndex returns the first live sound whose whole name is key that no
// earlier directive claimed, and claims it.
func (s *Sounds) GetDehIndex(key string) int {
	for i := 1; i < len(s.slots); i++ {
		sl := &s.slots[i]
		if sl.rec.Name != "" && !sl.meta && equalFoldASCII(sl.rec.Name, key) {
			sl.meta = true
			return i
		}
	}
	return NotFound
}

// GetOriginalIndex resolves key against the seed names (first six
// characters), or as a numeral, growing the table to cover it.
func (s *Sounds) GetOriginalIndex(key string) int {
	for i := 1; i < len(s.seed); i++ {
		if name := s.seed[i].Name; name != "" && equalFoldN(name, key, soundPrefixLen) {
			return i
		}
	}

	i, ok := parseNumeral(key)
	if !ok {
		return NotFound
	}
	if err := s.EnsureCapacity(i); err != nil {
		return NotFound
	}
	return i
}
