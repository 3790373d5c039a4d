package beans

import "sync/atomic"

// defaultRegistry holds the default Registry.
var defaultRegistry atomic.Pointer[Registry]

// SetDefault sets the default Registry returned by Default.
// This is similar to slog.SetDefault. Pass nil to remove the default.
func SetDefault(r Registry) {
	if r == nil {
		defaultRegistry.Store(nil)
		return
	}
	defaultRegistry.Store(&r)
}

// Default returns the current default Registry.
// Returns nil if no default registry has been set.
func Default() Registry {
	if r := defaultRegistry.Load(); r != nil {
		return *r
	}
	return nil
}
