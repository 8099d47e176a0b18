// Package remarkup strips attribute noise from HTML fragments for human
// editing and reconciles the edited result with the original afterwards.
//
// Machine-managed attributes make markup hard to edit and easy to break.
// Unmark removes every attribute that is not explicitly preserved,
// producing a clean fragment an editor or translator can work on. Remark
// takes the original fragment and the edited fragment and re-attaches the
// stripped attributes onto the elements they most likely belong to, even
// when the edit reordered, added, or removed elements. Correspondence is
// decided by a recursive subtree alignment combined with one global
// minimum-cost assignment, so every attribute set moves onto at most one
// destination element.
package remarkup

import (
	"github.com/addaleax/remarkup/pkg/filter"
	"github.com/addaleax/remarkup/pkg/metric"
	"github.com/addaleax/remarkup/pkg/rules"
)

// Remarkup unmarks and reconciles HTML fragments. Configuration is
// immutable for the lifetime of the instance, and every call builds its
// own trees and memo state, so a single instance is safe for concurrent
// use as long as any custom filters and metric are.
type Remarkup struct {
	pipeline *filter.Pipeline
	identity []string
	semantic rules.Set
	penalty  float64
	metricFn metric.Func
}

// New creates a Remarkup instance with the given options.
func New(opts ...Option) (*Remarkup, error) {
	options, err := newOptions(opts...)
	if err != nil {
		return nil, err
	}

	r := &Remarkup{
		identity: options.identity,
		semantic: options.semantic,
		penalty:  options.penalty,
		metricFn: options.metricFn,
	}

	if options.filtersSet {
		r.pipeline = filter.NewPipeline(options.filters...)
	} else {
		r.pipeline = filter.NewPipeline(filter.StripAttributes(defaultPreserve(options)))
	}

	if r.metricFn == nil {
		r.metricFn = metric.New(
			metric.WithIdentityAttributes(r.identity...),
			metric.WithSemanticAttributes(r.semantic...),
		)
	}

	return r, nil
}

// defaultPreserve builds the preserve set of the default pipeline: the
// configured identity attributes, the reserved attribute families, every
// semantic attribute, and any extra preserve rules.
func defaultPreserve(options *options) rules.Set {
	extra := make([]rules.Rule, 0, len(options.identity)+len(options.semantic)+len(options.preserve))
	for _, name := range options.identity {
		extra = append(extra, rules.Exact(name))
	}
	extra = append(extra, options.semantic...)
	extra = append(extra, options.preserve...)
	return filter.DefaultPreserve(extra...)
}
