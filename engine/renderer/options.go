package renderer

type options struct {
	pollErrors bool
}

// Option configures a render manager.
type Option func(*options)

// WithErrorPolling makes the manager read the driver error queue after every
// frame and log whatever it finds.
func WithErrorPolling(enabled bool) Option {
	return func(o *options) {
		o.pollErrors = enabled
	}
}

func applyOptions(opts []Option) options {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// ErrorPoller is implemented by managers whose error polling can be toggled
// while running.
type ErrorPoller interface {
	SetErrorPolling(enabled bool)
}

func (r *DefaultRenderManager) SetErrorPolling(enabled bool) {
	r.opts.pollErrors = enabled
}

func (r *PrototypeRenderManager) SetErrorPolling(enabled bool) {
	r.opts.pollErrors = enabled
}
