package metric

import (
	"github.com/addaleax/remarkup/pkg/rules"
)

// Default weights of the metric built by New.
const (
	DefaultBaseCost        = 1.0
	DefaultTagMismatchCost = 10.0
	DefaultAttrCost        = 1.0
	DefaultValueDiffWeight = 2.0
	DefaultPositionWeight  = 1.0
)

// DefaultIdentityAttributes returns the attribute names whose shared
// non-empty value forces an exact correspondence between two elements.
func DefaultIdentityAttributes() []string {
	return []string{"id", "translate-id", "remarkup-id"}
}

// config holds the weights and rule sets of one metric.
type config struct {
	baseCost        float64
	tagMismatchCost float64
	attrCost        float64
	valueDiffWeight float64
	positionWeight  float64
	identityAttrs   []string
	semantic        rules.Set
}

func defaultConfig() *config {
	return &config{
		baseCost:        DefaultBaseCost,
		tagMismatchCost: DefaultTagMismatchCost,
		attrCost:        DefaultAttrCost,
		valueDiffWeight: DefaultValueDiffWeight,
		positionWeight:  DefaultPositionWeight,
		identityAttrs:   DefaultIdentityAttributes(),
	}
}

// Option adjusts the metric built by New.
type Option func(*config)

// WithBaseCost sets the minimum cost charged to any pair without a shared
// identity.
func WithBaseCost(cost float64) Option {
	return func(c *config) {
		c.baseCost = cost
	}
}

// WithTagMismatchCost sets the penalty added when tag names differ.
func WithTagMismatchCost(cost float64) Option {
	return func(c *config) {
		c.tagMismatchCost = cost
	}
}

// WithAttrCost sets the penalty added per attribute present on exactly
// one side.
func WithAttrCost(cost float64) Option {
	return func(c *config) {
		c.attrCost = cost
	}
}

// WithValueDiffWeight sets the weight of the edit-distance term charged
// when an attribute carries differing values on the two sides.
func WithValueDiffWeight(weight float64) Option {
	return func(c *config) {
		c.valueDiffWeight = weight
	}
}

// WithPositionWeight sets the weight of the positional drift term.
func WithPositionWeight(weight float64) Option {
	return func(c *config) {
		c.positionWeight = weight
	}
}

// WithIdentityAttributes replaces the identity attribute names.
func WithIdentityAttributes(names ...string) Option {
	return func(c *config) {
		c.identityAttrs = names
	}
}

// WithSemanticAttributes sets the rules identifying attributes whose
// values are expected to diverge and which are excluded from scoring.
func WithSemanticAttributes(semantic ...rules.Rule) Option {
	return func(c *config) {
		c.semantic = semantic
	}
}
