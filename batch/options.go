package batch

import (
	"runtime"

	"github.com/hupe1980/fixedvec"
)

type options struct {
	concurrency int
	logger      *fixedvec.Logger
}

// Option configures a batch call.
type Option func(*options)

// WithConcurrency limits the number of vectors processed at once.
// Values <= 0 fall back to runtime.GOMAXPROCS(0).
func WithConcurrency(n int) Option {
	return func(o *options) {
		o.concurrency = n
	}
}

// WithLogger sets the logger that receives one record per batch call.
// If nil is passed, logging is disabled.
func WithLogger(l *fixedvec.Logger) Option {
	return func(o *options) {
		if l == nil {
			l = fixedvec.NoopLogger()
		}
		o.logger = l
	}
}

func applyOptions(opts []Option) options {
	o := options{
		concurrency: runtime.GOMAXPROCS(0),
		logger:      fixedvec.NoopLogger(),
	}
	for _, fn := range opts {
		fn(&o)
	}
	if o.concurrency <= 0 {
		o.concurrency = runtime.GOMAXPROCS(0)
	}
	return o
}
