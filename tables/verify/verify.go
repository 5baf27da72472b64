package verify

import (
	"fmt"

	"go.uber.org/multierr"

	"github.com/joshuapare/dehkit/pkg/types"
	"github.com/joshuapare/dehkit/tables"
)

// ValidationError describes one broken invariant.
type ValidationError struct {
	Table   tables.Kind
	Index   int // -1 if N/A
	Message string
}

func (e *ValidationError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("%s[%d]: %s", e.Table, e.Index, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Table, e.Message)
}

// All runs every check and combines their failures.
func All(s *tables.Set) error {
	return multierr.Combine(
		States(s),
		Mobjs(s),
		Cursors(s),
		Names(s),
	)
}

// States checks that every state's next state and sprite exist.
func States(s *tables.Set) error {
	var err error
	nStates, nSprites := s.States.Len(), s.Sprites.Len()
	for i := range nStates {
		st, _ := s.States.Get(i)
		if st.NextState < 0 || int(st.NextState) >= nStates {
			err = multierr.Append(err, &ValidationError{
				Table:   tables.KindStates,
				Index:   i,
				Message: fmt.Sprintf("next state %d out of range [0,%d)", st.NextState, nStates),
			})
		}
		if st.Sprite < 0 || int(st.Sprite) >= nSprites {
			err = multierr.Append(err, &ValidationError{
				Table:   tables.KindStates,
				Index:   i,
				Message: fmt.Sprintf("sprite %d out of range [0,%d)", st.Sprite, nSprites),
			})
		}
	}
	return err
}

// Mobjs checks that every object type's state and sound references exist.
func Mobjs(s *tables.Set) error {
	var err error
	nStates, nSounds := s.States.Len(), s.Sounds.Len()
	for i := range s.Mobjs.Len() {
		m, _ := s.Mobjs.Get(i)
		refs := []struct {
			field string
			v     types.StateNum
		}{
			{"spawnstate", m.SpawnState},
			{"seestate", m.SeeState},
			{"painstate", m.PainState},
			{"meleestate", m.MeleeState},
			{"missilestate", m.MissileState},
			{"deathstate", m.DeathState},
			{"xdeathstate", m.XDeathState},
			{"raisestate", m.RaiseState},
		}
		for _, r := range refs {
			if r.v < 0 || int(r.v) >= nStates {
				err = multierr.Append(err, &ValidationError{
					Table:   tables.KindMobjs,
					Index:   i,
					Message: fmt.Sprintf("%s %d out of range [0,%d)", r.field, r.v, nStates),
				})
			}
		}

		sounds := []struct {
			field string
			v     types.SFXNum
		}{
			{"seesound", m.SeeSound},
			{"attacksound", m.AttackSound},
			{"painsound", m.PainSound},
			{"deathsound", m.DeathSound},
			{"activesound", m.ActiveSound},
			{"ripsound", m.RipSound},
		}
		for _, r := range sounds {
			if r.v < 0 || int(r.v) >= nSounds {
				err = multierr.Append(err, &ValidationError{
					Table:   tables.KindMobjs,
					Index:   i,
					Message: fmt.Sprintf("%s %d out of range [0,%d)", r.field, r.v, nSounds),
				})
			}
		}
	}
	return err
}

// Cursors checks that the allocator cursors point at valid slots, so the
// next NewIndex cannot reuse a slot.
func Cursors(s *tables.Set) error {
	var err error
	if c, n := s.Sounds.Cursor(), s.Sounds.Len(); n > 0 && c >= n {
		err = multierr.Append(err, &ValidationError{
			Table:   tables.KindSounds,
			Index:   -1,
			Message: fmt.Sprintf("cursor %d beyond table length %d", c, n),
		})
	}
	if c, n := s.Mobjs.Cursor(), s.Mobjs.Len(); n > 0 && c >= n {
		err = multierr.Append(err, &ValidationError{
			Table:   tables.KindMobjs,
			Index:   -1,
			Message: fmt.Sprintf("cursor %d beyond table length %d", c, n),
		})
	}
	return err
}

// Names checks that materialized names point at distinct, existing types.
func Names(s *tables.Set) error {
	var err error
	owner := make(map[int]string)
	for i := 1; i < s.Names.Len(); i++ {
		typ := s.Names.TypeIndex(i)
		if typ == 0 {
			continue
		}
		name, _ := s.Names.Name(i)
		if typ >= s.Mobjs.Len() {
			err = multierr.Append(err, &ValidationError{
				Table:   tables.KindMobjs,
				Index:   typ,
				Message: fmt.Sprintf("name %q bound to missing type", name),
			})
		}
		if prev, dup := owner[typ]; dup {
			err = multierr.Append(err, &ValidationError{
				Table:   tables.KindMobjs,
				Index:   typ,
				Message: fmt.Sprintf("type bound to both %q and %q", prev, name),
			})
		}
		owner[typ] = name
	}
	return err
}
