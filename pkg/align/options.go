package align

import (
	"github.com/addaleax/remarkup/pkg/filter"
	"github.com/addaleax/remarkup/pkg/metric"
)

// Option adjusts an aligner at construction.
type Option func(*Aligner)

// WithFilters replaces the attribute filter pipeline applied to original
// elements before scoring. The default strips everything but identity and
// reserved-family attributes.
func WithFilters(pipeline *filter.Pipeline) Option {
	return func(a *Aligner) {
		a.pipeline = pipeline
	}
}

// WithMetric replaces the element metric.
func WithMetric(fn metric.Func) Option {
	return func(a *Aligner) {
		a.metricFn = fn
	}
}

// WithMissingChildPenalty sets the cost charged per child count
// difference between two aligned elements.
func WithMissingChildPenalty(penalty float64) Option {
	return func(a *Aligner) {
		a.penalty = penalty
	}
}
