package core

// ProcessorConfig defines common acquisition settings shared by signal
// generation and analysis components.
type ProcessorConfig struct {
	SampleRate float64
	// FixedPointScale is the factor applied to real-valued samples
	// before they enter integer filters and removed afterwards.
	FixedPointScale int64
}

// ProcessorOption mutates a ProcessorConfig.
type ProcessorOption func(*ProcessorConfig)

// DefaultProcessorConfig returns defaults suited to biosignal acquisition.
func DefaultProcessorConfig() ProcessorConfig {
	return ProcessorConfig{
		SampleRate:      500,
		FixedPointScale: 1000,
	}
}

// WithSampleRate sets the acquisition sample rate in Hz.
func WithSampleRate(sampleRate float64) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if sampleRate > 0 {
			cfg.SampleRate = sampleRate
		}
	}
}

// WithFixedPointScale sets the fixed-point scale factor.
func WithFixedPointScale(scale int64) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if scale > 0 {
			cfg.FixedPointScale = scale
		}
	}
}

// ApplyProcessorOptions applies zero or more options to the default config.
func ApplyProcessorOptions(opts ...ProcessorOption) ProcessorConfig {
	cfg := DefaultProcessorConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
