package gizmo

import (
	"github.com/rs/zerolog"

	"github.com/deepnoodle-ai/gizmo/errz"
	"github.com/deepnoodle-ai/gizmo/proto"
)

// Option configures a Factory.
type Option func(*config)

type config struct {
	logger     zerolog.Logger
	objectOpts []proto.Option
}

// WithLogger sets the logger used by the factory and by the objects it
// creates.
func WithLogger(logger zerolog.Logger) Option {
	return func(cfg *config) {
		cfg.logger = logger
	}
}

// WithObjectOptions supplies options applied to every object the factory
// allocates. This option is additive.
func WithObjectOptions(opts ...proto.Option) Option {
	return func(cfg *config) {
		cfg.objectOpts = append(cfg.objectOpts, opts...)
	}
}

// Factory creates delegating objects from definitions.
type Factory struct {
	logger     zerolog.Logger
	objectOpts []proto.Option
}

// NewFactory returns a Factory configured with the given options.
func NewFactory(opts ...Option) *Factory {
	cfg := &config{logger: zerolog.Nop()}
	for _, opt := range opts {
		if opt != nil {
			opt(cfg)
		}
	}
	return &Factory{logger: cfg.logger, objectOpts: cfg.objectOpts}
}

// Create allocates an empty delegating object and runs def against it as a
// top-level construction.
func (f *Factory) Create(def *Definition, args ...any) (*proto.Object, error) {
	if def == nil {
		return nil, errz.New(errz.InvalidDefinition, "definition is nil")
	}
	opts := append([]proto.Option{proto.WithLogger(f.logger)}, f.objectOpts...)
	obj := proto.New(opts...)
	if err := def.Construct(obj, args...); err != nil {
		f.logger.Debug().Err(err).Str("object", obj.ID().String()).Msg("construction failed")
		return nil, err
	}
	f.logger.Debug().
		Str("object", obj.ID().String()).
		Int("properties", len(obj.Keys())).
		Msg("object created")
	return obj, nil
}

var defaultFactory = NewFactory()

// Create runs def against a new delegating object using the default
// factory.
func Create(def *Definition, args ...any) (*proto.Object, error) {
	return defaultFactory.Create(def, args...)
}
