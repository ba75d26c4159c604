// Package presets knows the layout and the origin of every supported corpus.
//
// Presets are registered in an immutable Registry, which is handed to the loader.
package presets

import (
	"sort"

	"github.com/oneconcern/corpusy/pkg/corpus"
)

// Factory builds a corpus handle from its configuration.
//
// The configuration name is a single unit, possibly with a variant ("VCTK==ver0_92").
type Factory func(corpus.Config, *Env) (corpus.Handle, error)

// Registry maps preset names to their factory. It is read-only once built.
type Registry struct {
	factories map[string]Factory
}

// NewRegistry builds a registry from a set of factories
func NewRegistry(factories map[string]Factory) Registry {
	r := Registry{factories: make(map[string]Factory, len(factories))}
	for name, factory := range factories {
		r.factories[name] = factory
	}
	return r
}

// Lookup a preset by name
func (r Registry) Lookup(name string) (Factory, bool) {
	factory, ok := r.factories[name]
	return factory, ok
}

// Names of all registered presets, sorted
func (r Registry) Names() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Default registry, with all the supported presets
func Default() Registry {
	return NewRegistry(map[string]Factory{
		"JSUT":       NewJSUT,
		"JVS":        NewJVS,
		"LJ":         NewLJ,
		"VCTK":       NewVCTK,
		"VCC20":      NewVCC20,
		"Act100TKYM": NewAct100TKYM,
		"RHN46ZND":   NewRHN46ZND,
		"TEST":       NewTEST,
		"TESTbeta":   NewTESTbeta,
		"AdHoc":      NewAdHoc,
	})
}
