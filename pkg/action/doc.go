// Package action enumerates the engine's action functions ("code pointers").
//
// States reference action functions by ID. This package only names them;
// dispatching an ID to executable game logic belongs to the simulation layer.
//
// # Mnemonics
//
// Patches spell code pointers either with or without the "A_" prefix, in any
// case. Lookup accepts every spelling:
//
//	id, ok := action.Lookup("A_Chase")   // Chase, true
//	id, ok = action.Lookup("chase")      // Chase, true
//
// # Kinds
//
// Weapon pointers run against a player sprite; mobj pointers run against a
// map object. The declarate "*Named" pointers take a name index from the
// object-type name registry instead of a concrete type index.
package action
