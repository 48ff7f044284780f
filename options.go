package composite

// Option configures a Compositor during creation.
//
// Example:
//
//	// Default: one worker per CPU.
//	c := composite.NewCompositor()
//
//	// Pin the pass to a fixed number of workers.
//	c := composite.NewCompositor(composite.WithWorkers(2))
type Option func(*compositorOptions)

// compositorOptions holds optional configuration for Compositor creation.
type compositorOptions struct {
	workers int
}

// defaultOptions returns the default compositor options.
func defaultOptions() compositorOptions {
	return compositorOptions{
		workers: 0, // 0 = GOMAXPROCS
	}
}

// WithWorkers sets the number of worker goroutines used to fan out row
// strips. Values <= 0 select GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(o *compositorOptions) {
		o.workers = n
	}
}
