package orient

import "github.com/rs/zerolog"

// config holds the functional-option-configurable behavior of an Engine,
// mirroring the teacher's builderConfig pattern (builder/config.go).
type config struct {
	logger zerolog.Logger
}

// Option customizes an Engine's behavior before it runs.
type Option func(*config)

// WithLogger attaches a zerolog.Logger that receives verbose diagnostic
// debug events: the selected seed entry and each entry left with
// unoriented components; individual propagation steps are not logged. The
// zero value (zerolog.Logger{}) behaves like zerolog.Nop() — silent.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

func newConfig(opts ...Option) *config {
	c := &config{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}
