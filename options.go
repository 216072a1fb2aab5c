package eventchan

import (
	"github.com/joeycumines/logiface"
)

// channelOptions holds configuration for New.
type channelOptions struct {
	logger   *logiface.Logger[logiface.Event]
	capacity int
}

// Option configures an [EventChannel] instance.
type Option interface {
	applyChannel(*channelOptions)
}

// optionImpl implements Option.
type optionImpl struct {
	applyChannelFunc func(*channelOptions)
}

func (x *optionImpl) applyChannel(opts *channelOptions) {
	x.applyChannelFunc(opts)
}

// WithCapacity sets the initial capacity, in events, of the channel's ring
// buffer. The buffer only ever grows by doubling, so capacity remains a
// power-of-two multiple of this value.
// **Defaults to [DefaultCapacity], if 0.**
//
// WARNING: New will panic if the capacity is set to a value less than 2.
func WithCapacity(capacity int) Option {
	return &optionImpl{func(opts *channelOptions) {
		opts.capacity = capacity
	}}
}

// WithLogger sets an optional structured logger, receiving debug events on
// buffer growth and trace events on reader lifecycle changes. A nil logger
// (the default) disables logging.
func WithLogger(logger *logiface.Logger[logiface.Event]) Option {
	return &optionImpl{func(opts *channelOptions) {
		opts.logger = logger
	}}
}

// resolveChannelOptions applies Option instances to channelOptions.
func resolveChannelOptions(opts []Option) *channelOptions {
	cfg := &channelOptions{
		capacity: DefaultCapacity,
	}
	for _, opt := range opts {
		if opt == nil {
			continue // skip nil options gracefully
		}
		opt.applyChannel(cfg)
	}
	if cfg.capacity == 0 {
		cfg.capacity = DefaultCapacity
	}
	return cfg
}
