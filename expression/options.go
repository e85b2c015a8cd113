// SPDX-License-Identifier: MIT

package expression

// Option configures Compile.
type Option func(*Options)

// Options holds the effective Compile configuration.
type Options struct {
	stripZeroSuffix bool
}

// WithStripZeroSuffix removes a trailing "= 0" before compiling, so that
// "x^2 - 2 = 0" and "x^2 - 2" compile to the same program.
func WithStripZeroSuffix() Option {
	return func(o *Options) { o.stripZeroSuffix = true }
}

// gatherOptions applies user options over the defaults (no stripping).
func gatherOptions(user ...Option) Options {
	var o Options
	for _, set := range user {
		set(&o)
	}

	return o
}
