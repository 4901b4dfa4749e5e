// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package renderer

import (
	"fmt"
	"log"
)

type Option func(r *Renderer) error

// WithMaxDepth limits how deeply nodes may nest below the root.
func WithMaxDepth(depth int) Option {
	return func(r *Renderer) error {
		if depth < 1 {
			return fmt.Errorf("max depth must be positive: got %d", depth)
		}
		r.maxDepth = depth
		return nil
	}
}

// WithLogger sets the logger used for verbose and debug output.
// A nil logger restores the default.
func WithLogger(logger *log.Logger) Option {
	return func(r *Renderer) error {
		if logger == nil {
			logger = log.Default()
		}
		r.logger = logger
		return nil
	}
}

// WithDebug logs each node as it is rendered.
func WithDebug(flag bool) Option {
	return func(r *Renderer) error {
		r.debug = flag
		return nil
	}
}

// WithVerbose logs node counts, output size, and timing.
func WithVerbose(flag bool) Option {
	return func(r *Renderer) error {
		r.verbose = flag
		return nil
	}
}
