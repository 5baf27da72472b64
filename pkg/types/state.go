package types

import "github.com/joshuapare/dehkit/pkg/action"

// StateNum indexes the state table.
type StateNum int32

// SpriteNum indexes the sprite name table.
type SpriteNum int32

// StateFlags holds per-state behaviour bits.
type StateFlags uint32

const (
	// StateSkill5Fast halves the state's tics on nightmare skill.
	StateSkill5Fast StateFlags = 1 << iota
)

// MaxStateArgs is the number of integer arguments a state passes to its
// action function.
const MaxStateArgs = 8

const (
	// SNull is the null state every table starts with.
	SNull StateNum = 0

	// SprTNT1 is the invisible sprite. Grown states display it until a patch
	// assigns a real sprite.
	SprTNT1 SpriteNum = 138

	// InfiniteTics marks a state that never advances on its own.
	InfiniteTics int32 = -1
)

// State is one animation frame definition.
type State struct {
	Sprite    SpriteNum           `yaml:"sprite"`
	Frame     int32               `yaml:"frame"`
	Tics      int32               `yaml:"tics"`
	Action    action.ID           `yaml:"action"`
	NextState StateNum            `yaml:"nextstate"`
	Misc1     int32               `yaml:"misc1,omitempty"`
	Misc2     int32               `yaml:"misc2,omitempty"`
	Flags     StateFlags          `yaml:"flags,omitempty"`
	Args      [MaxStateArgs]int32 `yaml:"args,flow,omitempty"`
}

// GrownState returns the record a freshly grown state slot holds: an
// invisible frame that loops on itself forever.
func GrownState(self StateNum) State {
	return State{
		Sprite:    SprTNT1,
		Tics:      InfiniteTics,
		NextState: self,
	}
}
