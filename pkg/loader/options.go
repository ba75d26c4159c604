package loader

import (
	"github.com/oneconcern/corpusy/pkg/corpus"
	"github.com/oneconcern/corpusy/pkg/presets"
)

// Option for the loader
type Option func(*settings)

type settings struct {
	name     *string
	root     *string
	download *bool
	config   *corpus.Config
	env      *presets.Env
}

// Name of the corpus to load, possibly composite ("JVS&VCTK==ver0_92")
func Name(name string) Option {
	return func(s *settings) {
		s.name = &name
	}
}

// Root address of archives
func Root(root string) Option {
	return func(s *settings) {
		s.root = &root
	}
}

// Download enables fetching archives from their origin
func Download(enabled bool) Option {
	return func(s *settings) {
		s.download = &enabled
	}
}

// WithConfig provides a whole configuration object.
//
// Values also given explicitly with Name, Root or Download must agree with it.
func WithConfig(cfg corpus.Config) Option {
	return func(s *settings) {
		s.config = &cfg
	}
}

// WithEnv sets the environment handed to presets. Defaults to presets.NewEnv.
func WithEnv(env *presets.Env) Option {
	return func(s *settings) {
		s.env = env
	}
}
