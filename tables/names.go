package tables

import (
	"fmt"

	"github.com/joshuapare/dehkit/internal/namecache"
)

// nameEntry binds a declared name to the object type it materialized as.
type nameEntry struct {
	name string
	typ  int // 0 until materialized
}

// Names is the registry of declared object-type names. Index 0 is the null
// name and always resolves to the null type.
type Names struct {
	entries []nameEntry
	index   map[string]int // folded name -> entry index
	mobjs   *Mobjs
}

func (n *Names) init(mobjs *Mobjs) {
	n.entries = []nameEntry{{}}
	n.index = make(map[string]int)
	n.mobjs = mobjs
}

// free drops every registered name, leaving only the null name.
func (n *Names) free() {
	n.entries = []nameEntry{{}}
	n.index = make(map[string]int)
}

// Len returns the number of entries, the null name included.
func (n *Names) Len() int { return len(n.entries) }

// Lookup returns the index of name, registering it first if it is new. Names
// compare case-insensitively. A new name is not bound to any object type
// until Materialize. The empty name is the null name, index 0.
func (n *Names) Lookup(name string) int {
	if name == "" {
		return 0
	}
	key := namecache.Fold(name)
	if i, ok := n.index[key]; ok {
		return i
	}
	if n.index == nil {
		n.init(n.mobjs)
	}
	i := len(n.entries)
	n.entries = append(n.entries, nameEntry{name: name})
	n.index[key] = i
	return i
}

// Name returns the name registered at nameIndex.
func (n *Names) Name(nameIndex int) (string, bool) {
	if nameIndex <= 0 || nameIndex >= len(n.entries) {
		return "", false
	}
	return n.entries[nameIndex].name, true
}

// TypeIndex returns the object type nameIndex materialized as. Unknown and
// unmaterialized names report 0, the null type.
func (n *Names) TypeIndex(nameIndex int) int {
	if nameIndex <= 0 || nameIndex >= len(n.entries) {
		return 0
	}
	return n.entries[nameIndex].typ
}

// Materialize creates a default-filled object type for the name at
// nameIndex and binds the two. The new type comes from the object table's
// allocator, so it never collides with a type handed out by NewIndex.
//
// An index that was never registered, or a name already materialized, is a
// FatalError.
func (n *Names) Materialize(nameIndex int) (int, error) {
	if nameIndex <= 0 || nameIndex >= len(n.entries) {
		return 0, &FatalError{
			Op:  "materialize",
			Err: fmt.Errorf("%w: %d", ErrNameIndexRange, nameIndex),
		}
	}
	e := &n.entries[nameIndex]
	if e.typ != 0 {
		return 0, &FatalError{
			Op:  "materialize",
			Err: fmt.Errorf("%w: thing named %q already exists", ErrAlreadyMaterialized, e.name),
		}
	}

	typ, err := n.mobjs.NewIndex()
	if err != nil {
		return 0, fmt.Errorf("materialize %q: %w", e.name, err)
	}
	e.typ = typ
	return typ, nil
}

// Bindings returns every materialized name with its object type.
func (n *Names) Bindings() map[string]int {
	out := make(map[string]int)
	for _, e := range n.entries[min(1, len(n.entries)):] {
		if e.typ != 0 {
			out[e.name] = e.typ
		}
	}
	return out
}
