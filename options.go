package attrail

// Option configures an instance at instrumentation time.
type Option func(*options)

type options struct {
	token     string
	gen       TokenGenerator
	observers []Observer
}

func buildOptions(opts []Option) options {
	o := options{gen: UUIDv7Generator{}}
	for _, fn := range opts {
		fn(&o)
	}
	return o
}

// WithToken fixes the instance's identity token. Takes precedence over any
// generator.
func WithToken(token string) Option {
	return func(o *options) {
		o.token = token
	}
}

// WithTokenGenerator selects the generator used to mint the instance's
// token. The default is UUIDv7Generator.
func WithTokenGenerator(g TokenGenerator) Option {
	return func(o *options) {
		o.gen = g
	}
}

// WithObserver registers an observer for every change recorded on the
// instance. May be given multiple times; observers run in registration
// order.
func WithObserver(fn Observer) Option {
	return func(o *options) {
		o.observers = append(o.observers, fn)
	}
}
