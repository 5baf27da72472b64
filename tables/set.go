package tables

import (
	"github.com/joshuapare/dehkit/pkg/types"
	"github.com/joshuapare/dehkit/seed"
)

// Set owns one independent group of content tables: everything a patch
// load edits. A Set must not be copied after Init.
type Set struct {
	States  States
	Sprites Sprites
	Sounds  Sounds
	Music   Music
	Mobjs   Mobjs
	Names   Names

	opts options
}

type options struct {
	limits types.Limits
	onGrow GrowFunc
}

// Option configures a Set.
type Option func(*options)

// WithLimits caps table growth. Zero fields keep their defaults.
func WithLimits(l types.Limits) Option {
	return func(o *options) { o.limits = l }
}

// WithGrowFunc registers fn to observe every table growth.
func WithGrowFunc(fn GrowFunc) Option {
	return func(o *options) { o.onGrow = fn }
}

// New creates a Set initialised from sd.
func New(sd *seed.Seed, opts ...Option) *Set {
	s := &Set{}
	for _, opt := range opts {
		opt(&s.opts)
	}
	s.Init(sd)
	return s
}

// Init (re)creates every table from sd. A nil seed yields empty tables.
// Init may be called again after Free, or at any time to discard all edits.
func (s *Set) Init(sd *seed.Seed) {
	if sd == nil {
		sd = &seed.Seed{}
	}
	l := s.opts.limits.WithDefaults()

	s.States.init(sd.States, l.MaxStates, s.opts.onGrow)
	s.Sprites.init(sd.Sprites, l.MaxSprites, s.opts.onGrow)
	s.Sounds.init(sd.Sounds, l.MaxSounds, s.opts.onGrow)
	s.Music.init(sd.Music, l.MaxMusic, s.opts.onGrow)
	s.Mobjs.init(sd.Mobjs, l.MaxMobjTypes, s.opts.onGrow)
	s.Names.init(&s.Mobjs)
}

// Free releases every table. The Set is empty afterwards until the next Init.
func (s *Set) Free() {
	s.States.free()
	s.Sprites.free()
	s.Sounds.free()
	s.Music.free()
	s.Mobjs.free()
	s.Names.free()
	s.Sounds.cursor = 0
	s.Mobjs.cursor = 0
}

// Stats summarises one table.
type Stats struct {
	Kind    Kind
	Len     int
	SeedLen int
	Phase   Phase
}

// Stats returns a summary of every table, in Kind order.
func (s *Set) Stats() []Stats {
	return []Stats{
		{KindStates, s.States.Len(), s.States.SeedLen(), s.States.Phase()},
		{KindSprites, s.Sprites.Len(), s.Sprites.SeedLen(), s.Sprites.Phase()},
		{KindSounds, s.Sounds.Len(), s.Sounds.SeedLen(), s.Sounds.Phase()},
		{KindMusic, s.Music.Len(), s.Music.SeedLen(), s.Music.Phase()},
		{KindMobjs, s.Mobjs.Len(), s.Mobjs.SeedLen(), s.Mobjs.Phase()},
	}
}

// EnsureCapacity dispatches to the table of the given kind.
func (s *Set) EnsureCapacity(kind Kind, limit int) error {
	switch kind {
	case KindStates:
		return s.States.EnsureCapacity(limit)
	case KindSprites:
		return s.Sprites.EnsureCapacity(limit)
	case KindSounds:
		return s.Sounds.EnsureCapacity(limit)
	case KindMusic:
		return s.Music.EnsureCapacity(limit)
	case KindMobjs:
		return s.Mobjs.EnsureCapacity(limit)
	}
	return ErrUnknownKind
}
