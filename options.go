package beans

import (
	"log/slog"
)

// Options configures how a Registry is built.
type Options struct {
	// Lifetime selects the instance caching policy. Defaults to Singleton.
	Lifetime Lifetime

	// Eager instantiates every definition in registration order during
	// Build, failing the build if any factory fails. Requires Singleton.
	Eager bool

	// Logger receives debug records about the build and instance creation.
	// Nil discards them.
	Logger *slog.Logger
}

// DefaultOptions returns the options used by Collection.Build.
func DefaultOptions() *Options {
	return &Options{
		Lifetime: Singleton,
		Logger:   slog.New(slog.DiscardHandler),
	}
}

// Validate checks the options for consistency.
func (o *Options) Validate() error {
	if !o.Lifetime.IsValid() {
		return BuildError{
			Phase:   "options",
			Details: "lifetime",
			Cause:   LifetimeError{Value: o.Lifetime},
		}
	}

	if o.Eager && o.Lifetime != Singleton {
		return BuildError{
			Phase:   "options",
			Details: "eager instantiation",
			Cause:   LifetimeError{Value: o.Lifetime},
		}
	}

	return nil
}

// withDefaults returns a copy of o with nil fields filled in.
func (o *Options) withDefaults() *Options {
	if o == nil {
		return DefaultOptions()
	}

	out := *o
	if out.Logger == nil {
		out.Logger = slog.New(slog.DiscardHandler)
	}
	return &out
}
