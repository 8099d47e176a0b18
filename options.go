package remarkup

import (
	"github.com/addaleax/remarkup/pkg/align"
	"github.com/addaleax/remarkup/pkg/errors"
	"github.com/addaleax/remarkup/pkg/filter"
	"github.com/addaleax/remarkup/pkg/metric"
	"github.com/addaleax/remarkup/pkg/rules"
)

// options configures a Remarkup instance.
type options struct {
	filters    []filter.Filter
	filtersSet bool
	identity   []string
	semantic   rules.Set
	preserve   rules.Set
	penalty    float64
	metricFn   metric.Func
}

func defaultOptions() *options {
	return &options{
		identity: metric.DefaultIdentityAttributes(),
		penalty:  align.DefaultMissingChildPenalty,
	}
}

// Option is a function that configures a Remarkup instance.
type Option func(*options) error

func (options *options) apply(opts ...Option) (*options, error) {
	for _, opt := range opts {
		if err := opt(options); err != nil {
			return nil, err
		}
	}
	return options, nil
}

// newOptions returns remarkup options with default values.
func newOptions(opts ...Option) (*options, error) {
	return defaultOptions().apply(opts...)
}

// WithFilters replaces the default attribute filter pipeline with the
// given filters, applied in order. Passing no filters disables attribute
// stripping entirely.
func WithFilters(filters ...filter.Filter) Option {
	return func(o *options) error {
		for _, f := range filters {
			if f == nil {
				return &errors.ValidationError{
					Field:   "filters",
					Message: "cannot contain nil filters",
				}
			}
		}
		o.filters = filters
		o.filtersSet = true
		return nil
	}
}

// WithIdentityAttributes replaces the attribute names whose shared value
// forces an exact element correspondence.
func WithIdentityAttributes(names ...string) Option {
	return func(o *options) error {
		if len(names) == 0 {
			return &errors.ValidationError{
				Field:   "identity_attributes",
				Message: "cannot be empty",
			}
		}
		for _, name := range names {
			if name == "" {
				return &errors.ValidationError{
					Field:   "identity_attributes",
					Message: "cannot contain empty names",
				}
			}
		}
		o.identity = names
		return nil
	}
}

// WithSemanticAttributes sets the rules identifying attributes whose
// values the edit is expected to rewrite. Semantic attributes are never
// overwritten during reconciliation and never contribute to element
// dissimilarity.
func WithSemanticAttributes(semantic ...rules.Rule) Option {
	return func(o *options) error {
		for _, r := range semantic {
			if r == nil {
				return &errors.ValidationError{
					Field:   "semantic_attributes",
					Message: "cannot contain nil rules",
				}
			}
		}
		o.semantic = semantic
		return nil
	}
}

// WithSemanticPatterns sets the semantic attribute rules from their
// textual forms: exact names, "prefix:"-prefixed name prefixes, or
// "pattern:"-prefixed regular expressions.
func WithSemanticPatterns(specs ...string) Option {
	return func(o *options) error {
		set, err := rules.ParseAll(specs...)
		if err != nil {
			return &errors.ValidationError{
				Field:   "semantic_attributes",
				Message: err.Error(),
			}
		}
		o.semantic = set
		return nil
	}
}

// WithPreservePatterns adds attribute rules, given in textual form, to
// the set the default filter pipeline preserves. The rules have no
// effect when WithFilters replaces the pipeline.
func WithPreservePatterns(specs ...string) Option {
	return func(o *options) error {
		set, err := rules.ParseAll(specs...)
		if err != nil {
			return &errors.ValidationError{
				Field:   "preserve_patterns",
				Message: err.Error(),
			}
		}
		o.preserve = append(o.preserve, set...)
		return nil
	}
}

// WithMissingChildPenalty sets the cost charged per child count
// difference during subtree alignment.
func WithMissingChildPenalty(penalty float64) Option {
	return func(o *options) error {
		if penalty < 0 {
			return &errors.ValidationError{
				Field:   "missing_child_penalty",
				Value:   penalty,
				Message: "cannot be negative",
			}
		}
		o.penalty = penalty
		return nil
	}
}

// WithMetric replaces the element metric used during alignment.
func WithMetric(fn metric.Func) Option {
	return func(o *options) error {
		if fn == nil {
			return &errors.ValidationError{
				Field:   "metric",
				Message: "cannot be nil",
			}
		}
		o.metricFn = fn
		return nil
	}
}
