package types

// ============================================================================
// Table Limits
// ============================================================================
// Patches may ask for any slot index, including absurd ones. Limits caps how
// far each table is allowed to grow so a typo in a patch cannot allocate
// gigabytes.

const (
	// DefaultMaxStates is the default cap on the state table. DSDHacked
	// patches routinely use state numbers in the tens of thousands.
	DefaultMaxStates = 1 << 20

	// DefaultMaxSprites is the default cap on the sprite name table.
	DefaultMaxSprites = 1 << 16

	// DefaultMaxSounds is the default cap on the sound effect table.
	DefaultMaxSounds = 1 << 16

	// DefaultMaxMusic is the default cap on the music table.
	DefaultMaxMusic = 1 << 16

	// DefaultMaxMobjTypes is the default cap on the object-type table.
	DefaultMaxMobjTypes = 1 << 16
)

// Limits caps the number of slots each table may hold. A zero field means
// the corresponding default.
type Limits struct {
	MaxStates    int
	MaxSprites   int
	MaxSounds    int
	MaxMusic     int
	MaxMobjTypes int
}

// DefaultLimits returns the default table caps.
func DefaultLimits() Limits {
	return Limits{
		MaxStates:    DefaultMaxStates,
		MaxSprites:   DefaultMaxSprites,
		MaxSounds:    DefaultMaxSounds,
		MaxMusic:     DefaultMaxMusic,
		MaxMobjTypes: DefaultMaxMobjTypes,
	}
}

// WithDefaults returns l with every zero field replaced by its default.
func (l Limits) WithDefaults() Limits {
	d := DefaultLimits()
	if l.MaxStates <= 0 {
		l.MaxStates = d.MaxStates
	}
	if l.MaxSprites <= 0 {
		l.MaxSprites = d.MaxSprites
	}
	if l.MaxSounds <= 0 {
		l.MaxSounds = d.MaxSounds
	}
	if l.MaxMusic <= 0 {
		l.MaxMusic = d.MaxMusic
	}
	if l.MaxMobjTypes <= 0 {
		l.MaxMobjTypes = d.MaxMobjTypes
	}
	return l
}
