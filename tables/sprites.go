package tables

// Sprites is the sprite name table. Names are matched on their first four
// characters, case-insensitively. Grown slots have no name until a patch
// assigns one.
type Sprites struct {
	table[string, bool] // meta: edited by a patch
}

func (s *Sprites) init(seed []string, limit int, onGrow GrowFunc) {
	s.table.init(KindSprites, seed, limit, nil)
	s.onGrow = onGrow
}

// Name returns the name of sprite i.
func (s *Sprites) Name(i int) (string, bool) {
	return s.Get(i)
}

// SetName renames sprite i.
func (s *Sprites) SetName(i int, name string) error {
	return s.Set(i, name)
}

// Edited reports whether a patch directive has claimed sprite i.
func (s *Sprites) Edited(i int) bool {
	if m := s.metaAt(i); m != nil {
		return *m
	}
	return false
}

// GetDehIndex returns the first live sprite named key that no earlier
// directive claimed, and claims it. It returns NotFound when none is left.
func (s *Sprites) GetDehIndex(key string) int {
	for i := range s.slots {
		sl := &s.slots[i]
		if sl.rec != "" && !sl.meta && equalFoldN(sl.rec, key, spritePrefixLen) {
			sl.meta = true
			return i
		}
	}
	return NotFound
}

// GetOriginalIndex resolves key against the seed names, or as a numeral.
// A numeral beyond the table grows it. It returns NotFound when key is
// neither, or when the numeral exceeds the table's limit.
func (s *Sprites) GetOriginalIndex(key string) int {
	for i, name := range s.seed {
		if name != "" && equalFoldN(name, key, spritePrefixLen) {
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
