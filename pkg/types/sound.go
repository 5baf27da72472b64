package types

// SFXNum indexes the sound effect table. Slot 0 is the null sound.
type SFXNum int32

// MusicNum indexes the music table. Slot 0 is the null track.
type MusicNum int32

const (
	// NoLump marks a sound or track whose resource has not been resolved.
	NoLump int32 = -1

	// DefaultSFXPriority is the priority given to sounds created by growth.
	DefaultSFXPriority int32 = 127
)

// SFXInfo describes one sound effect.
type SFXInfo struct {
	Name        string `yaml:"name"`
	Singularity bool   `yaml:"singularity,omitempty"`
	Priority    int32  `yaml:"priority"`
	Link        SFXNum `yaml:"link,omitempty"`
	Pitch       int32  `yaml:"pitch,omitempty"`
	Volume      int32  `yaml:"volume,omitempty"`
	Lump        int32  `yaml:"lump"`
}

// GrownSFX returns the record a freshly grown sound slot holds.
func GrownSFX() SFXInfo {
	return SFXInfo{
		Priority: DefaultSFXPriority,
		Lump:     NoLump,
	}
}

// MusicInfo describes one music track.
type MusicInfo struct {
	Name string `yaml:"name"`
	Lump int32  `yaml:"lump"`
}

// GrownMusic returns the record a freshly grown music slot holds.
func GrownMusic() MusicInfo {
	return MusicInfo{Lump: NoLump}
}
