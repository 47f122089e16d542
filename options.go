// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package containers

import "github.com/ava-labs/avalanchego/utils/logging"

// Config is the resolved configuration of a collection.
type Config struct {
	// Log receives buffer-growth events at [logging.Debug] and clears at
	// [logging.Verbo]. It is never nil after [NewConfig].
	Log logging.Logger
}

// An Option configures a collection at construction.
type Option func(*Config)

// WithLogger sets the [Config.Log] logger. A nil logger is ignored.
func WithLogger(l logging.Logger) Option {
	return func(c *Config) {
		if l != nil {
			c.Log = l
		}
	}
}

// NewConfig applies all options, in order, over the defaults.
func NewConfig(opts ...Option) Config {
	c := Config{
		Log: logging.NoLog{},
	}
	for _, o := range opts {
		o(&c)
	}
	return c
}
