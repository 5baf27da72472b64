// Package types defines the record shapes held by the extensible content
// tables, the index types that reference them, and the fill constants applied
// to slots created by growth.
//
// Records reference each other by index (StateNum, SpriteNum, SFXNum,
// MobjType), never by pointer, so growing a table cannot invalidate a
// reference issued before the growth.
//
// This package has no dependencies beyond the standard library and
// pkg/action.
package types
