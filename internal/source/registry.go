package source

import "fmt"

// Constructor builds a Source from provider settings.
type Constructor func(Config) (Source, error)

var registry = map[string]Constructor{}

// Register adds a source constructor under the given provider name.
func Register(name string, ctor Constructor) {
	registry[name] = ctor
}

// Open builds the source for the given config's provider.
func Open(cfg Config) (Source, error) {
	ctor, ok := registry[cfg.Provider]
	if !ok {
		return nil, fmt.Errorf("unknown source provider: %s", cfg.Provider)
	}
	return ctor(cfg)
}

// Providers returns the names of all registered source providers.
func Providers() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	return names
}
