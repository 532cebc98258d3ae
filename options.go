package binafft

import (
	"github.com/rs/zerolog"

	"github.com/cwbudde/binafft/internal/cpu"
	"github.com/cwbudde/binafft/internal/memory"
)

// Option configures plans, twiddle tables and the one-shot transforms.
type Option func(*config)

type config struct {
	logger     zerolog.Logger
	allocator  Allocator
	level      SIMDLevel
	levelSet   bool
	noSmall    bool
	features   cpu.Features
	featureSet bool
}

func newConfig(opts []Option) config {
	cfg := config{
		logger:    zerolog.Nop(),
		allocator: memory.Default,
	}

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// WithLogger routes setup diagnostics to logger. The default discards them.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithAllocator draws tables and scratch space from a instead of the Go
// heap. A nil allocator restores the default.
func WithAllocator(a Allocator) Option {
	return func(c *config) {
		if a == nil {
			a = memory.Default
		}

		c.allocator = a
	}
}

// WithSIMDLevel caps the lane width of the selected kernels. Levels wider
// than the CPU supports are ignored; SIMDNone forces scalar butterflies.
func WithSIMDLevel(level SIMDLevel) Option {
	return func(c *config) {
		c.level = level
		c.levelSet = true
	}
}

// WithoutSmallKernels routes N <= 8 through the general stage pipeline
// instead of the closed-form kernels.
func WithoutSmallKernels() Option {
	return func(c *config) {
		c.noSmall = true
	}
}

// withFeatures overrides CPU detection.
func withFeatures(f cpu.Features) Option {
	return func(c *config) {
		c.features = f
		c.featureSet = true
	}
}

func (c config) cpuFeatures() cpu.Features {
	f := c.features
	if !c.featureSet {
		f = cpu.DetectFeatures()
	}

	if c.levelSet {
		f = f.Cap(c.level)
	}

	return f
}
