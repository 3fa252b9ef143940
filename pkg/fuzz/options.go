// file: pkg/fuzz/options.go
// version: 1.0.0
// guid: 5964ffb1-edb5-4acd-bb5d-fd82c6a8a8f6

package fuzz

import "github.com/jdfalk/fuzzymatch/pkg/processor"

// Option configures a single scorer call.
type Option func(*options)

type options struct {
	processor processor.Func
	cutoff    float64
}

// WithProcessor normalizes both inputs with p before scoring.
func WithProcessor(p processor.Func) Option {
	return func(o *options) { o.processor = p }
}

// WithScoreCutoff reports scores below cutoff as 0.
func WithScoreCutoff(cutoff float64) Option {
	return func(o *options) { o.cutoff = cutoff }
}

// Scorer is the shape shared by every ratio in this package.
type Scorer func(s1, s2 string, opts ...Option) float64

// run applies the options around a raw scorer working on processed text.
func run(s1, s2 string, opts []Option, raw func(a, b string) float64) float64 {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.processor != nil {
		s1, s2 = o.processor(s1), o.processor(s2)
	}
	score := raw(s1, s2)
	if score < o.cutoff {
		return 0
	}
	return score
}
