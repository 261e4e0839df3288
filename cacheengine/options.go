package cacheengine

import "github.com/hashicorp/go-hclog"

// Option configures an Engine at construction.
type Option func(*Engine)

// WithLogger sets the logger the engine reports cache hits, misses and compiles through. The default is a
// no-op logger.
func WithLogger(logger hclog.Logger) Option {
	return func(e *Engine) { e.logger = logger }
}
