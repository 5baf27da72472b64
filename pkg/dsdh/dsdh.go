package dsdh

import (
	"io"
	"log/slog"

	"github.com/joshuapare/dehkit/pkg/types"
	"github.com/joshuapare/dehkit/seed"
	"github.com/joshuapare/dehkit/tables"
	"github.com/joshuapare/dehkit/tables/verify"
)

// Tables is one patch-load session over a set of content tables.
type Tables struct {
	set *tables.Set
	log *slog.Logger
}

type options struct {
	logger *slog.Logger
	limits types.Limits
}

// Option configures InitTables.
type Option func(*options)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithLimits caps table growth.
func WithLimits(l types.Limits) Option {
	return func(o *options) { o.limits = l }
}

// InitTables seeds every table from sd. A nil seed yields empty tables.
func InitTables(sd *seed.Seed, opts ...Option) *Tables {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	t := &Tables{log: o.logger}
	t.set = tables.New(sd,
		tables.WithLimits(o.limits),
		tables.WithGrowFunc(t.logGrowth),
	)
	t.log.Debug("tables initialised", "stats", t.set.Stats())
	return t
}

// FreeTables releases every table. Set returns nil afterwards.
func (t *Tables) FreeTables() {
	if t.set == nil {
		return
	}
	t.set.Free()
	t.set = nil
	t.log.Debug("tables freed")
}

// Set exposes the underlying tables for record edits.
func (t *Tables) Set() *tables.Set { return t.set }

func (t *Tables) logGrowth(kind tables.Kind, from, to int) {
	t.log.Debug("table grown", "table", kind.String(), "from", from, "to", to)
}

func (t *Tables) fail(op string, err error) error {
	if tables.IsFatal(err) {
		t.log.Error("fatal table error", "op", op, "error", err)
	} else {
		t.log.Warn("table request failed", "op", op, "error", err)
	}
	return err
}

func (t *Tables) ensure(op string, kind tables.Kind, limit int) error {
	if err := t.set.EnsureCapacity(kind, limit); err != nil {
		return t.fail(op, err)
	}
	return nil
}

// EnsureStatesCapacity makes state limit addressable.
func (t *Tables) EnsureStatesCapacity(limit int) error {
	return t.ensure("EnsureStatesCapacity", tables.KindStates, limit)
}

// EnsureSpritesCapacity makes sprite limit addressable.
func (t *Tables) EnsureSpritesCapacity(limit int) error {
	return t.ensure("EnsureSpritesCapacity", tables.KindSprites, limit)
}

// EnsureSFXCapacity makes sound limit addressable and reserves it from
// GetNewSFXIndex.
func (t *Tables) EnsureSFXCapacity(limit int) error {
	return t.ensure("EnsureSFXCapacity", tables.KindSounds, limit)
}

// EnsureMusicCapacity makes music track limit addressable.
func (t *Tables) EnsureMusicCapacity(limit int) error {
	return t.ensure("EnsureMusicCapacity", tables.KindMusic, limit)
}

// EnsureMobjInfoCapacity makes object type limit addressable and reserves it
// from GetNewMobjInfoIndex.
func (t *Tables) EnsureMobjInfoCapacity(limit int) error {
	return t.ensure("EnsureMobjInfoCapacity", tables.KindMobjs, limit)
}

// GetDehSpriteIndex claims the first unedited sprite whose name matches key.
func (t *Tables) GetDehSpriteIndex(key string) int {
	return t.set.Sprites.GetDehIndex(key)
}

// GetDehSFXIndex claims the first unedited sound named by the first length
// bytes of key.
func (t *Tables) GetDehSFXIndex(key string, length int) int {
	name, ok := prefix(key, length)
	if !ok {
		return tables.NotFound
	}
	return t.set.Sounds.GetDehIndex(name)
}

// GetDehMusicIndex claims the first unedited music track named by the first
// length bytes of key.
func (t *Tables) GetDehMusicIndex(key string, length int) int {
	name, ok := prefix(key, length)
	if !ok {
		return tables.NotFound
	}
	return t.set.Music.GetDehIndex(name)
}

// GetOriginalSpriteIndex resolves a seed sprite name or a sprite numeral.
func (t *Tables) GetOriginalSpriteIndex(key string) int {
	return t.set.Sprites.GetOriginalIndex(key)
}

// GetOriginalSFXIndex resolves a seed sound name or a sound numeral.
func (t *Tables) GetOriginalSFXIndex(key string) int {
	return t.set.Sounds.GetOriginalIndex(key)
}

// GetNewSFXIndex allocates a fresh sound slot.
func (t *Tables) GetNewSFXIndex() (int, error) {
	i, err := t.set.Sounds.NewIndex()
	if err != nil {
		return tables.NotFound, t.fail("GetNewSFXIndex", err)
	}
	return i, nil
}

// GetNewMobjInfoIndex allocates a fresh object type.
func (t *Tables) GetNewMobjInfoIndex() (int, error) {
	i, err := t.set.Mobjs.NewIndex()
	if err != nil {
		return tables.NotFound, t.fail("GetNewMobjInfoIndex", err)
	}
	return i, nil
}

// LookupNameIndex returns the registry index of name, registering it if new.
func (t *Tables) LookupNameIndex(name string) int {
	return t.set.Names.Lookup(name)
}

// LookupTypeIndex returns the object type a name index materialized as, or 0.
func (t *Tables) LookupTypeIndex(nameIndex int) int {
	return t.set.Names.TypeIndex(nameIndex)
}

// DeclareNamedMobj materializes the name at nameIndex as a new object type.
func (t *Tables) DeclareNamedMobj(nameIndex int) (int, error) {
	typ, err := t.set.Names.Materialize(nameIndex)
	if err != nil {
		return 0, t.fail("DeclareNamedMobj", err)
	}
	name, _ := t.set.Names.Name(nameIndex)
	t.log.Debug("named thing declared", "name", name, "type", typ)
	return typ, nil
}

// Verify checks every cross-table reference.
func (t *Tables) Verify() error {
	if err := verify.All(t.set); err != nil {
		t.log.Warn("table verification failed", "error", err)
		return err
	}
	return nil
}

// prefix returns the first length bytes of key. A name must be exactly length
// bytes long to match, so a key shorter than length matches nothing.
func prefix(key string, length int) (string, bool) {
	if length < 0 || length > len(key) {
		return "", false
	}
	return key[:length], true
}
