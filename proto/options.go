package proto

import (
	"github.com/gofrs/uuid"
	"github.com/rs/zerolog"

	"github.com/deepnoodle-ai/gizmo/store"
)

// Option configures a new Object.
type Option func(*config)

type config struct {
	base   *store.Store
	id     uuid.UUID
	logger zerolog.Logger
}

func collectOptions(opts ...Option) *config {
	cfg := &config{logger: zerolog.Nop()}
	for _, opt := range opts {
		if opt != nil {
			opt(cfg)
		}
	}
	if cfg.base == nil {
		cfg.base = store.New()
	}
	if cfg.id == uuid.Nil {
		cfg.id = uuid.Must(uuid.NewV4())
	}
	return cfg
}

// WithBase seeds the object's own properties with a shallow copy of m.
// Keys are added in sorted order. This option replaces any earlier
// WithBase or WithStore.
func WithBase(m map[string]any) Option {
	return func(cfg *config) {
		cfg.base = store.FromMap(m)
	}
}

// WithStore seeds the object's own properties with a shallow copy of s,
// preserving its key order. This option replaces any earlier WithBase or
// WithStore.
func WithStore(s *store.Store) Option {
	return func(cfg *config) {
		if s != nil {
			cfg.base = s.Clone()
		}
	}
}

// WithID assigns the object's identifier instead of generating a random one.
// Callers are responsible for keeping identifiers unique.
func WithID(id uuid.UUID) Option {
	return func(cfg *config) {
		cfg.id = id
	}
}

// WithLogger sets the logger used for debug output about delegate changes
// and listener failures.
func WithLogger(logger zerolog.Logger) Option {
	return func(cfg *config) {
		cfg.logger = logger
	}
}
