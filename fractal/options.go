package fractal

import "github.com/katalvlaran/fracperc/field"

// LevelHook observes the final field right after level k has been overlaid.
// The field must not be modified or retained past the call.
type LevelHook func(level int, f *field.Binary)

// Option customizes Build.
type Option func(*buildConfig)

// buildConfig aggregates the knobs used by Build.
type buildConfig struct {
	levelHook LevelHook
}

func newBuildConfig(opts ...Option) buildConfig {
	var cfg buildConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithLevelHook registers fn to run after every level. Panics on nil.
func WithLevelHook(fn LevelHook) Option {
	if fn == nil {
		panic("fractal: WithLevelHook(nil)")
	}
	return func(c *buildConfig) {
		c.levelHook = fn
	}
}
