// SPDX-License-Identifier: MIT

package bootstrap

import (
	"github.com/rs/zerolog"

	"github.com/katalvlaran/lvtopo/zigzag"
)

// Option configures Zigzag.
type Option func(*options)

type options struct {
	logger  zerolog.Logger
	tracker []zigzag.Option
}

func gatherOptions(opts []Option) options {
	o := options{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithLogger sets the per-stage logger.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithTrackerOptions forwards options to the underlying zigzag.Tracker.
func WithTrackerOptions(opts ...zigzag.Option) Option {
	return func(o *options) {
		o.tracker = append(o.tracker, opts...)
	}
}
