package tables

import (
	"github.com/joshuapare/dehkit/pkg/action"
	"github.com/joshuapare/dehkit/pkg/types"
)

// stateMeta tracks what patches did to a state.
type stateMeta struct {
	// codePtr is the action the state had before any patch touched it.
	codePtr action.ID
	// argsDefined has bit n set once a patch assigned Args[n].
	argsDefined uint8
	// seenBy is the state whose chain last walked through this one.
	seenBy types.StateNum
}

// States is the animation state table.
type States struct {
	table[types.State, stateMeta]
}

func (s *States) init(seed []types.State, limit int, onGrow GrowFunc) {
	s.table.init(KindStates, seed, limit, func(_ int, rec types.State) stateMeta {
		return stateMeta{codePtr: rec.Action}
	})
	s.fill = func(i int, rec *types.State) {
		*rec = types.GrownState(types.StateNum(i))
	}
	s.onGrow = onGrow
}

// CodePointer returns the action state i carried in the seed. Grown states
// and out-of-range indices report action.None.
func (s *States) CodePointer(i int) action.ID {
	if m := s.metaAt(i); m != nil {
		return m.codePtr
	}
	return action.None
}

// SetArgsDefined records which of state i's arguments a patch has assigned.
func (s *States) SetArgsDefined(i int, mask uint8) error {
	m := s.metaAt(i)
	if m == nil {
		return s.rangeErr(i)
	}
	m.argsDefined |= mask
	return nil
}

// ArgsDefined returns the bitmask of arguments assigned to state i.
func (s *States) ArgsDefined(i int) uint8 {
	if m := s.metaAt(i); m != nil {
		return m.argsDefined
	}
	return 0
}

// MarkSeen tags state i as visited while walking the chain started at by.
func (s *States) MarkSeen(i int, by types.StateNum) error {
	m := s.metaAt(i)
	if m == nil {
		return s.rangeErr(i)
	}
	m.seenBy = by
	return nil
}

// SeenBy returns the chain tag of state i, or 0 when unvisited.
func (s *States) SeenBy(i int) types.StateNum {
	if m := s.metaAt(i); m != nil {
		return m.seenBy
	}
	return 0
}

// ResetSeen clears every chain tag.
func (s *States) ResetSeen() {
	for i := range s.slots {
		s.slots[i].meta.seenBy = 0
	}
}
