// Package seed holds the engine's compiled-in content tables: the read-only
// snapshot every extensible table is initialised from.
//
// A Seed is normally supplied by the surrounding engine. Tools and tests can
// decode one from YAML, or use Vanilla, an excerpt of the original tables.
package seed

import (
	"bytes"
	_ "embed"
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/joshuapare/dehkit/pkg/types"
)

//go:embed vanilla.yaml
var vanillaYAML []byte

// Seed is the set of default tables. Index 0 of Sounds and Music is the null
// entry and carries no name.
type Seed struct {
	States  []types.State
	Sprites []string
	Sounds  []types.SFXInfo
	Music   []types.MusicInfo
	Mobjs   []types.MobjInfo
}

// document is the on-disk layout. Record lists are decoded node by node so
// each record starts from the engine's defaults rather than from zero.
type document struct {
	States  []types.State `yaml:"states"`
	Sprites []string      `yaml:"sprites"`
	Sounds  []yaml.Node   `yaml:"sounds"`
	Music   []yaml.Node   `yaml:"music"`
	Mobjs   []yaml.Node   `yaml:"mobjs"`
}

// Vanilla returns a fresh copy of the embedded vanilla excerpt.
func Vanilla() *Seed {
	s, err := Load(bytes.NewReader(vanillaYAML))
	if err != nil {
		panic(errors.Wrap(err, "embedded vanilla seed"))
	}
	return s
}

// LoadFile decodes a seed from a YAML file.
func LoadFile(path string) (*Seed, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open seed")
	}
	defer f.Close()

	s, err := Load(f)
	if err != nil {
		return nil, errors.Wrapf(err, "seed %s", path)
	}
	return s, nil
}

// Load decodes a seed from YAML and validates it.
func Load(r io.Reader) (*Seed, error) {
	var doc document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil && err != io.EOF {
		return nil, errors.Wrap(err, "decode seed")
	}

	s := &Seed{
		States:  doc.States,
		Sprites: doc.Sprites,
	}

	var err error
	if s.Sounds, err = decodeEach(doc.Sounds, seedSFX); err != nil {
		return nil, errors.Wrap(err, "sounds")
	}
	if s.Music, err = decodeEach(doc.Music, types.GrownMusic); err != nil {
		return nil, errors.Wrap(err, "music")
	}
	if s.Mobjs, err = decodeEach(doc.Mobjs, types.GrownMobjInfo); err != nil {
		return nil, errors.Wrap(err, "mobjs")
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// seedSFX is the base a seed sound is decoded onto. Unlike a grown slot, a
// seed sound states its own priority.
func seedSFX() types.SFXInfo {
	return types.SFXInfo{Lump: types.NoLump}
}

func decodeEach[T any](nodes []yaml.Node, base func() T) ([]T, error) {
	if len(nodes) == 0 {
		return nil, nil
	}
	out := make([]T, len(nodes))
	for i := range nodes {
		out[i] = base()
		if err := nodes[i].Decode(&out[i]); err != nil {
			return nil, errors.Wrapf(err, "entry %d", i)
		}
	}
	return out, nil
}

// Validate checks the structural rules every seed must satisfy.
func (s *Seed) Validate() error {
	for i, name := range s.Sprites {
		if name == "" {
			return errors.Errorf("sprite %d has no name", i)
		}
	}
	if len(s.Sounds) > 0 && s.Sounds[0].Name != "" {
		return errors.Errorf("sound 0 is the null sound and must be nameless, got %q", s.Sounds[0].Name)
	}
	if len(s.Music) > 0 && s.Music[0].Name != "" {
		return errors.Errorf("music 0 is the null track and must be nameless, got %q", s.Music[0].Name)
	}
	for i, st := range s.States {
		if !st.Action.Valid() {
			return errors.Errorf("state %d has unknown action %d", i, st.Action)
		}
	}
	return nil
}

// Clone returns a deep copy of s.
func (s *Seed) Clone() *Seed {
	return &Seed{
		States:  append([]types.State(nil), s.States...),
		Sprites: append([]string(nil), s.Sprites...),
		Sounds:  append([]types.SFXInfo(nil), s.Sounds...),
		Music:   append([]types.MusicInfo(nil), s.Music...),
		Mobjs:   append([]types.MobjInfo(nil), s.Mobjs...),
	}
}
