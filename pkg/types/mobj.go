package types

// MobjType indexes the object-type table.
type MobjType int32

// RefType tells how a MobjInfo reference field is resolved.
type RefType uint8

const (
	// TypeNull means the reference is unset.
	TypeNull RefType = iota
	// TypeIndex means the reference is an object-type index.
	TypeIndex
	// TypeName means the reference is a name index in the name registry.
	TypeName
)

// FracUnit is 1.0 in the engine's 16.16 fixed point.
const FracUnit = 1 << 16

const (
	// MTNull is the null object type. Slot 0 of the table is never spawned.
	MTNull MobjType = 0

	// MTNamedType marks a reference that is resolved through its RefType
	// rather than read as a concrete type.
	MTNamedType MobjType = -1

	// IGDefault is the default infighting group.
	IGDefault int32 = 0

	// PGDefault is the default projectile group.
	PGDefault int32 = 0

	// SGDefault is the default splash group.
	SGDefault int32 = 0

	// NoAltSpeed disables the fast-monsters speed override.
	NoAltSpeed int32 = -1

	// MeleeRange is the engine's melee reach, 64 map units.
	MeleeRange int32 = 64 * FracUnit
)

// MobjInfo describes one object type.
type MobjInfo struct {
	DoomedNum       int32    `yaml:"doomednum"`
	SpawnState      StateNum `yaml:"spawnstate"`
	SpawnHealth     int32    `yaml:"spawnhealth"`
	SeeState        StateNum `yaml:"seestate"`
	SeeSound        SFXNum   `yaml:"seesound"`
	ReactionTime    int32    `yaml:"reactiontime"`
	AttackSound     SFXNum   `yaml:"attacksound"`
	PainState       StateNum `yaml:"painstate"`
	PainChance      int32    `yaml:"painchance"`
	PainSound       SFXNum   `yaml:"painsound"`
	MeleeState      StateNum `yaml:"meleestate"`
	MissileState    StateNum `yaml:"missilestate"`
	DeathState      StateNum `yaml:"deathstate"`
	XDeathState     StateNum `yaml:"xdeathstate"`
	DeathSound      SFXNum   `yaml:"deathsound"`
	Speed           int32    `yaml:"speed"`
	Radius          int32    `yaml:"radius"`
	Height          int32    `yaml:"height"`
	Mass            int32    `yaml:"mass"`
	Damage          int32    `yaml:"damage"`
	ActiveSound     SFXNum   `yaml:"activesound"`
	Flags           uint32   `yaml:"flags"`
	Flags2          uint32   `yaml:"flags2,omitempty"`
	RaiseState      StateNum `yaml:"raisestate"`
	DroppedItem     MobjType `yaml:"droppeditem"`
	DroppedItemType RefType  `yaml:"droppeditem_type,omitempty"`
	InfightingGroup int32    `yaml:"infighting_group,omitempty"`
	ProjectileGroup int32    `yaml:"projectile_group,omitempty"`
	SplashGroup     int32    `yaml:"splash_group,omitempty"`
	RipSound        SFXNum   `yaml:"ripsound,omitempty"`
	AltSpeed        int32    `yaml:"altspeed"`
	MeleeRange      int32    `yaml:"meleerange"`
}

// GrownMobjInfo returns the record a freshly grown object-type slot holds.
func GrownMobjInfo() MobjInfo {
	return MobjInfo{
		DroppedItem:     MTNamedType,
		DroppedItemType: TypeNull,
		InfightingGroup: IGDefault,
		ProjectileGroup: PGDefault,
		SplashGroup:     SGDefault,
		AltSpeed:        NoAltSpeed,
		MeleeRange:      MeleeRange,
	}
}
