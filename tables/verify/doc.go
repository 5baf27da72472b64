// Package verify checks the cross-table invariants of a tables.Set.
//
// # Overview
//
// Patches edit records freely; nothing stops a state from naming a next state
// that does not exist yet. Loaders call All after the last patch to find
// every dangling reference before play begins:
//
//	if err := verify.All(set); err != nil {
//	    for _, e := range multierr.Errors(err) {
//	        log.Println(e)
//	    }
//	}
//
// Unlike a fail-fast validator, All reports every violation at once. Each one
// is a *ValidationError naming the table and slot.
//
// Checks:
//   - States: next state and sprite in range
//   - Mobjs: every state and sound reference in range
//   - Cursors: allocator cursors below table length
//   - Names: materialized bindings in range and unique
package verify
