package registry

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/vk/trainconfgo/internal/baseconfig"
)

// Profile is the contract a model family fulfils on top of the base
// configuration: the architecture record and tokenizer for its size.
type Profile interface {
	ModelConfig() *baseconfig.ModelConfig
	TokenizerConfig() *baseconfig.TokenizerConfig
	Base() *baseconfig.Basic
}

// Builder constructs a family profile from an assembled base configuration.
// It fails when the family does not define the requested size.
type Builder func(b *baseconfig.Basic) (Profile, error)

// Module is the interface every family package implements to be registered.
type Module interface {
	Register(r *Registry)
}

// Registry holds the registered family builders for a single application
// instance.
type Registry struct {
	builders map[string]Builder
}

// New creates and initializes a new Registry instance.
func New() *Registry {
	return &Registry{
		builders: make(map[string]Builder),
	}
}

// Register registers a builder under a family name. Duplicate registration
// is a programmer error and panics.
func (r *Registry) Register(family string, fn Builder) {
	if _, exists := r.builders[family]; exists {
		panic(fmt.Sprintf("model family '%s' already registered", family))
	}
	slog.Debug("Registering model family.", "family", family)
	r.builders[family] = fn
}

// Build resolves the named family and constructs its profile.
func (r *Registry) Build(family string, b *baseconfig.Basic) (Profile, error) {
	fn, ok := r.builders[family]
	if !ok {
		return nil, fmt.Errorf("unknown model family %q (registered: %v)", family, r.Families())
	}
	return fn(b)
}

// Families returns the registered family names in sorted order.
func (r *Registry) Families() []string {
	names := make([]string, 0, len(r.builders))
	for name := range r.builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
