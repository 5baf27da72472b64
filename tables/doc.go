// Package tables implements the extensible content tables patches edit while
// they load: states, sprite names, sound effects, music tracks and object
// types, plus the registry that lets patches declare object types by name.
//
// # Overview
//
// Every table starts as a copy of its seed (the engine's compiled-in
// defaults) and only ever grows. A table holds one slice of slots; each slot
// carries the record and its per-slot metadata (edited flag, original code
// pointer, ...) together, so the metadata can never fall out of step with the
// records.
//
// # Growth
//
// EnsureCapacity(limit) guarantees slot limit exists:
//
//	if err := set.States.EnsureCapacity(4000); err != nil {
//	    return err
//	}
//	st, _ := set.States.Get(4000) // invisible, infinite, loops on itself
//
// A request already covered is a no-op. Otherwise the table grows to
// Len()+limit slots. The first growth replaces the seed-sized buffer with an
// exactly sized one and moves the table from Seeded to Grown; later growth
// appends. New slots are zeroed, then filled with the kind's defaults:
//
//   - states: invisible sprite (TNT1), tics -1, next state = own index
//   - sounds: priority 127, no lump
//   - music: no lump
//   - object types: named dropped item, default groups, no alt speed, melee range
//
// Records are addressed by index. Growth may reallocate, so pointers into a
// table are never handed out; use Get, Set and Update.
//
// # Lookups
//
// GetDehIndex finds the next slot a patch directive edits: the first live slot
// whose name matches and that no earlier directive claimed. The slot is then
// marked edited, so two directives naming the same sprite bind two different
// slots.
//
// GetOriginalIndex resolves a reference against the seed snapshot, ignoring
// later edits. A key that matches no seed name but is a plain decimal numeral
// is taken as an index, and the table grows to cover it.
//
// NewIndex hands out fresh sound and object-type slots from a monotonic
// cursor that never repeats, even when patches also grow the table with
// explicit indices.
//
// Lookups return NotFound when nothing matches.
//
// # Named object types
//
// Names is a case-insensitive registry. Lookup registers a name (or returns
// its existing index); Materialize later binds it to a fresh object type.
// Materializing twice, or materializing an index that was never registered,
// is a FatalError: the patch load must stop.
//
// # Thread Safety
//
// Tables are not safe for concurrent use. Patches load serially before play
// begins; callers that need otherwise must synchronize externally.
package tables
