package provider

import (
	"fmt"

	"sintese/internal/config"
	"sintese/internal/domain"
	"sintese/internal/port"
)

// Factory is a function that creates a TextCompleter from the loaded config.
type Factory func(cfg *config.Config) (port.TextCompleter, error)

// registry of backend factories, populated by init() in each client package.
var registry = map[domain.Provider]Factory{}

// Register registers a backend factory for a provider mode.
func Register(mode domain.Provider, factory Factory) {
	registry[mode] = factory
}

// New creates the TextCompleter for a provider mode using the registered
// factory. The caller is expected to blank-import the client packages so
// their init() registration runs.
func New(cfg *config.Config, mode domain.Provider) (port.TextCompleter, error) {
	factory, ok := registry[mode]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownProvider, mode)
	}
	return factory(cfg)
}
