package vendorblobs

// runConfig holds the resolved configuration for a dedupe run.
type runConfig struct {
	logger Logger
}

// Option configures a dedupe operation.
type Option func(*runConfig)

// WithLogger routes the deduplicator's progress messages (entry counts,
// per-removal lines) to l. By default they are discarded.
func WithLogger(l Logger) Option {
	return func(c *runConfig) {
		c.logger = l
	}
}

func applyOpts(opts []Option) *runConfig {
	cfg := &runConfig{}
	for _, o := range opts {
		o(cfg)
	}
	return cfg
}
