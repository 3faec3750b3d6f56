package mockskema

import (
	"time"

	"go.uber.org/zap"
)

// Defaults applied by DefaultOptions.
const (
	DefaultArrayCount           = 3
	DefaultLocale               = "en"
	DefaultOptionalsProbability = 0.8
)

// Options controls a generation request.
type Options struct {
	// ArrayCount is the upper item count for arrays without maxItems.
	ArrayCount int
	// Seed initialises the PRNG. Equal seeds give equal output.
	Seed int64
	// Locale is accepted for compatibility; generated content does not depend
	// on it. Advisory validation can render messages in this language.
	Locale string
	// FillProperties is accepted and currently has no effect.
	FillProperties bool
	// OptionalsProbability is the chance that a non-required property is
	// emitted. Clamped to [0, 1].
	OptionalsProbability float64
	// MaxDepth bounds properties/items/additionalProperties nesting during
	// generation. Zero means unbounded.
	MaxDepth int

	logger *zap.Logger
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the defaults with a time-derived seed.
func DefaultOptions() Options {
	return Options{
		ArrayCount:           DefaultArrayCount,
		Seed:                 time.Now().UnixNano(),
		Locale:               DefaultLocale,
		FillProperties:       true,
		OptionalsProbability: DefaultOptionalsProbability,
		logger:               zap.NewNop(),
	}
}

// WithSeed fixes the PRNG seed.
func WithSeed(seed int64) Option { return func(o *Options) { o.Seed = seed } }

// WithArrayCount sets the default maximum array length. Negative values are
// treated as zero.
func WithArrayCount(n int) Option { return func(o *Options) { o.ArrayCount = n } }

// WithLocale sets the locale.
func WithLocale(locale string) Option { return func(o *Options) { o.Locale = locale } }

// WithFillProperties sets FillProperties.
func WithFillProperties(fill bool) Option { return func(o *Options) { o.FillProperties = fill } }

// WithOptionalsProbability sets the inclusion probability of optional properties.
func WithOptionalsProbability(p float64) Option {
	return func(o *Options) { o.OptionalsProbability = p }
}

// WithMaxDepth turns on a nesting ceiling during generation; exceeding it
// fails with *DepthLimitError.
func WithMaxDepth(n int) Option { return func(o *Options) { o.MaxDepth = n } }

// WithLogger attaches a logger for debug traces. nil restores the no-op logger.
func WithLogger(l *zap.Logger) Option { return func(o *Options) { o.logger = l } }

// WithOptions replaces every field with the given Options (logger excluded).
func WithOptions(in Options) Option {
	return func(o *Options) {
		l := o.logger
		*o = in
		o.logger = l
	}
}

func resolveOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}
	if o.ArrayCount < 0 {
		o.ArrayCount = 0
	}
	if o.OptionalsProbability < 0 || o.OptionalsProbability != o.OptionalsProbability {
		o.OptionalsProbability = 0
	}
	if o.OptionalsProbability > 1 {
		o.OptionalsProbability = 1
	}
	if o.Locale == "" {
		o.Locale = DefaultLocale
	}
	if o.MaxDepth < 0 {
		o.MaxDepth = 0
	}
	if o.logger == nil {
		o.logger = zap.NewNop()
	}
	return o
}
