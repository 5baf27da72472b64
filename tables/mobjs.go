package tables

import "github.com/joshuapare/dehkit/pkg/types"

// Mobjs is the object-type table. Slot 0 is the null type.
type Mobjs struct {
	table[types.MobjInfo, struct{}]

	// cursor is the highest index handed out or explicitly requested.
	cursor int
}

func (m *Mobjs) init(seed []types.MobjInfo, limit int, onGrow GrowFunc) {
	m.table.init(KindMobjs, seed, limit, nil)
	m.fill = func(_ int, rec *types.MobjInfo) {
		*rec = types.GrownMobjInfo()
	}
	m.onGrow = onGrow
	m.cursor = max(len(seed)-1, 0)
}

// EnsureCapacity guarantees slot limit exists and keeps NewIndex from ever
// returning limit or anything below it.
func (m *Mobjs) EnsureCapacity(limit int) error {
	if err := m.table.EnsureCapacity(limit); err != nil {
		return err
	}
	m.cursor = max(m.cursor, limit)
	return nil
}

// NewIndex allocates a fresh object type and returns its index.
func (m *Mobjs) NewIndex() (int, error) {
	next := m.cursor + 1
	if err := m.EnsureCapacity(next); err != nil {
		return NotFound, err
	}
	return next, nil
}

// Cursor returns the last index NewIndex handed out or a caller requested.
func (m *Mobjs) Cursor() int { return m.cursor }
