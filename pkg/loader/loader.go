// Package loader builds corpus handles from a preset name, possibly composite.
package loader

import (
	"strings"

	"github.com/oneconcern/corpusy/pkg/address"
	"github.com/oneconcern/corpusy/pkg/corpus"
	"github.com/oneconcern/corpusy/pkg/errors"
	"github.com/oneconcern/corpusy/pkg/presets"
)

var (
	// ErrConfigurationConflict is returned when an explicit value disagrees with the configuration object
	ErrConfigurationConflict = errors.New("configuration conflict")

	// ErrUnknownPreset is returned when a unit of the name is not a registered preset
	ErrUnknownPreset = errors.New("unknown preset")

	// ErrNoName is returned when no corpus name is given
	ErrNoName = errors.New("no corpus name")
)

// Load a corpus from the registry.
//
// The name is split on "&": each unit is built from its own preset, sharing root and download.
// A single unit is returned as is, several units are composed in order.
// Without WithEnv, presets get the default environment: the OS file system under address.DefaultLocalRoot.
func Load(reg presets.Registry, opts ...Option) (corpus.Handle, error) {
	var s settings
	for _, apply := range opts {
		apply(&s)
	}

	cfg, err := s.resolve()
	if err != nil {
		return nil, err
	}
	if cfg.Name == "" {
		return nil, ErrNoName
	}

	if s.env == nil {
		s.env = presets.NewEnv(nil)
	}

	units := strings.Split(cfg.Name, corpus.TagSeparator)
	handles := make([]corpus.Handle, 0, len(units))
	for _, unit := range units {
		name, _ := address.ExtractNameAndVariant(unit, "")
		factory, ok := reg.Lookup(name)
		if !ok {
			return nil, ErrUnknownPreset.Wrapf("corpus %q is not supported. Supported presets: %s", name, strings.Join(reg.Names(), ", "))
		}
		unitCfg := cfg
		unitCfg.Name = unit
		h, err := factory(unitCfg, s.env)
		if err != nil {
			return nil, err
		}
		handles = append(handles, h)
	}

	if len(handles) == 1 {
		return handles[0], nil
	}
	return corpus.Compose(handles...)
}

// resolve merges explicit values with the configuration object
func (s settings) resolve() (corpus.Config, error) {
	if s.config == nil {
		var cfg corpus.Config
		if s.name != nil {
			cfg.Name = *s.name
		}
		if s.root != nil {
			cfg.Root = *s.root
		}
		if s.download != nil {
			cfg.Download = *s.download
		}
		return cfg, nil
	}

	cfg := *s.config
	if s.name != nil && *s.name != cfg.Name {
		return cfg, ErrConfigurationConflict.Wrapf("name: %q given, but configured as %q", *s.name, cfg.Name)
	}
	if s.root != nil && *s.root != cfg.Root {
		return cfg, ErrConfigurationConflict.Wrapf("root: %q given, but configured as %q", *s.root, cfg.Root)
	}
	if s.download != nil && *s.download != cfg.Download {
		return cfg, ErrConfigurationConflict.Wrapf("download: %t given, but configured as %t", *s.download, cfg.Download)
	}
	return cfg, nil
}
