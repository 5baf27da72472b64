package tables

import (
	"fmt"
	"slices"
	"strings"
)

// Kind names a content table.
type Kind uint8

const (
	KindStates Kind = iota
	KindSprites
	KindSounds
	KindMusic
	KindMobjs
)

var kindNames = [...]string{
	KindStates:  "states",
	KindSprites: "sprites",
	KindSounds:  "sounds",
	KindMusic:   "music",
	KindMobjs:   "mobjs",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// ParseKind resolves a table name as printed by Kind.String. The singular
// forms and "things" are accepted too.
func ParseKind(s string) (Kind, bool) {
	switch strings.ToLower(s) {
	case "states", "state", "frames", "frame":
		return KindStates, true
	case "sprites", "sprite":
		return KindSprites, true
	case "sounds", "sound", "sfx":
		return KindSounds, true
	case "music":
		return KindMusic, true
	case "mobjs", "mobj", "things", "thing":
		return KindMobjs, true
	}
	return 0, false
}

// Phase is a table's growth state.
type Phase uint8

const (
	// Seeded tables still hold exactly the seed-sized buffer.
	Seeded Phase = iota
	// Grown tables have outgrown the seed at least once.
	Grown
)

func (p Phase) String() string {
	if p == Grown {
		return "grown"
	}
	return "seeded"
}

// GrowFunc observes table growth. from and to are slot counts.
type GrowFunc func(kind Kind, from, to int)

// slot is one table entry: the record and the metadata that tracks it.
type slot[T, M any] struct {
	rec  T
	meta M
}

// table is the growable sequence shared by every content kind.
type table[T, M any] struct {
	kind  Kind
	seed  []T
	slots []slot[T, M]
	phase Phase
	max   int

	// fill applies the kind's defaults to a zeroed slot created by growth.
	fill   func(i int, rec *T)
	onGrow GrowFunc
}

func (t *table[T, M]) init(kind Kind, seed []T, limit int, meta func(i int, rec T) M) {
	t.kind = kind
	t.seed = slices.Clone(seed)
	t.slots = make([]slot[T, M], len(seed))
	t.phase = Seeded
	t.max = limit
	for i, rec := range seed {
		t.slots[i].rec = rec
		if meta != nil {
			t.slots[i].meta = meta(i, rec)
		}
	}
}

func (t *table[T, M]) free() {
	t.seed = nil
	t.slots = nil
	t.phase = Seeded
}

// EnsureCapacity guarantees slot limit exists. Requests already covered are
// no-ops; otherwise the table grows to Len()+limit slots.
func (t *table[T, M]) EnsureCapacity(limit int) error {
	old := len(t.slots)
	if limit < old {
		return nil
	}
	if limit >= t.max {
		return fmt.Errorf("%w: %s slot %d (max %d)", ErrLimitExceeded, t.kind, limit, t.max-1)
	}

	n := max(old+limit, limit+1)
	n = min(n, t.max)

	if t.phase == Seeded {
		grown := make([]slot[T, M], n)
		copy(grown, t.slots)
		t.slots = grown
		t.phase = Grown
	} else {
		t.slots = append(t.slots, make([]slot[T, M], n-old)...)
	}

	if t.fill != nil {
		for i := old; i < n; i++ {
			t.fill(i, &t.slots[i].rec)
		}
	}
	if t.onGrow != nil {
		t.onGrow(t.kind, old, n)
	}
	return nil
}

// Kind returns the table's content kind.
func (t *table[T, M]) Kind() Kind { return t.kind }

// Len returns the number of valid slots.
func (t *table[T, M]) Len() int { return len(t.slots) }

// Phase returns the table's growth state.
func (t *table[T, M]) Phase() Phase { return t.phase }

// Grown reports whether the table has outgrown its seed.
func (t *table[T, M]) Grown() bool { return t.phase == Grown }

// SeedLen returns the number of records in the seed snapshot.
func (t *table[T, M]) SeedLen() int { return len(t.seed) }

// Get returns the record in slot i.
func (t *table[T, M]) Get(i int) (T, bool) {
	if i < 0 || i >= len(t.slots) {
		var zero T
		return zero, false
	}
	return t.slots[i].rec, true
}

// Set replaces the record in slot i. It does not grow the table.
func (t *table[T, M]) Set(i int, rec T) error {
	if i < 0 || i >= len(t.slots) {
		return t.rangeErr(i)
	}
	t.slots[i].rec = rec
	return nil
}

// Update calls fn with the record in slot i. The pointer is only valid for
// the duration of the call.
func (t *table[T, M]) Update(i int, fn func(rec *T)) error {
	if i < 0 || i >= len(t.slots) {
		return t.rangeErr(i)
	}
	fn(&t.slots[i].rec)
	return nil
}

// Records returns a copy of every live record.
func (t *table[T, M]) Records() []T {
	out := make([]T, len(t.slots))
	for i := range t.slots {
		out[i] = t.slots[i].rec
	}
	return out
}

// Seed returns a copy of the seed snapshot.
func (t *table[T, M]) Seed() []T {
	return slices.Clone(t.seed)
}

// metaAt returns the metadata of slot i, or nil when i is out of range.
func (t *table[T, M]) metaAt(i int) *M {
	if i < 0 || i >= len(t.slots) {
		return nil
	}
	return &t.slots[i].meta
}

func (t *table[T, M]) rangeErr(i int) error {
	return fmt.Errorf("%w: %s slot %d of %d", ErrIndexRange, t.kind, i, len(t.slots))
}
