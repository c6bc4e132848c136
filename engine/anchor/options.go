package anchor

import (
	"github.com/npillmayer/schuko/gconf"
)

// Options configure an engine.
type Options struct {
	// AutoTransform switches linking elements to absolute positioning, or to
	// fixed positioning if linked to the viewport. Defaults to true.
	AutoTransform bool
	// OnError is called for errors during resolution, which are not
	// returned to a caller.
	OnError func(error)
}

// Option is a functional option for New.
type Option func(*Options)

// WithAutoTransform sets option AutoTransform.
func WithAutoTransform(on bool) Option {
	return func(o *Options) {
		o.AutoTransform = on
	}
}

// WithErrorHandler sets a handler for resolution errors.
func WithErrorHandler(h func(error)) Option {
	return func(o *Options) {
		o.OnError = h
	}
}

// OptionsFromConfig reads options from the global configuration.
// Key 'anchor.auto-transform' sets AutoTransform, if present.
func OptionsFromConfig() []Option {
	var opts []Option
	if gconf.IsSet("anchor.auto-transform") {
		opts = append(opts, WithAutoTransform(gconf.GetBool("anchor.auto-transform")))
	}
	return opts
}

func defaultOptions() Options {
	return Options{AutoTransform: true}
}
