package storage

// Option configures an Engine during creation.
type Option func(*Engine)

// WithObserver registers the observer notified at the close of each batch.
func WithObserver(o Observer) Option {
	return func(e *Engine) {
		e.observer = o
	}
}

// WithHeaderKind registers the supplementary kind used by the header
// convenience setters.
func WithHeaderKind(kind string) Option {
	return func(e *Engine) {
		e.headerKind = kind
	}
}

// WithFooterKind registers the supplementary kind used by the footer
// convenience setters.
func WithFooterKind(kind string) Option {
	return func(e *Engine) {
		e.footerKind = kind
	}
}

// WithItemEquality sets the equality function used by item search. The
// default is reflect.DeepEqual, which handles heterogeneous and
// non-comparable item types.
func WithItemEquality(eq func(a, b any) bool) Option {
	return func(e *Engine) {
		if eq != nil {
			e.equal = eq
		}
	}
}

// WithDiagnostics sets a trace function for operations that are abandoned
// silently, such as an item move with an unresolvable position. Default is
// no tracing.
func WithDiagnostics(f func(format string, args ...any)) Option {
	return func(e *Engine) {
		e.diagf = f
	}
}
