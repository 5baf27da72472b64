// Package dsdh is the entry point a patch loader uses to extend the content
// tables while it reads a DSDHacked patch.
//
// Every method is named after the patch-parser hook it serves, so loaders
// read like the patch format:
//
//	t := dsdh.InitTables(seed.Vanilla(), dsdh.WithLogger(logger))
//	defer t.FreeTables()
//
//	if err := t.EnsureStatesCapacity(stateNum); err != nil {
//	    return err
//	}
//	sfx := t.GetDehSFXIndex(name, len(name))
//
// Tables logs growth at debug level and fatal conditions at error level.
// Fatal errors satisfy tables.IsFatal; the loader must abort on them.
package dsdh
