package buckets

import "go.uber.org/zap"

// Option configures a table when it is created.
// Options are applied after any Config passed alongside them.
type Option func(*options)

type options struct {
	cfg    Config
	logger *zap.Logger
}

// WithInitialCapacity sets the initial number of buckets,
// which must be a power of two.
func WithInitialCapacity(n int) Option {
	return func(o *options) {
		o.cfg.InitialCapacity = n
	}
}

// WithLoadFactor sets the load factor that triggers growth.
func WithLoadFactor(f float64) Option {
	return func(o *options) {
		o.cfg.LoadFactor = f
	}
}

// WithLogger sets the logger that records growth and clear events
// at debug level. A nil logger disables logging, as does
// not supplying this option at all.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}
