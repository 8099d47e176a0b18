// Package filter provides element-mutating attribute filters and the
// ordered pipeline that normalizes an element subtree to its unmarked
// form. Filters mutate in place and removal is irreversible; callers that
// need the original must operate on a deep copy.
package filter

import (
	"golang.org/x/net/html"

	"github.com/addaleax/remarkup/pkg/rules"
)

// Filter mutates a single element in place, removing zero or more
// attributes or normalizing its direct children. Recursion into child
// elements is the pipeline's responsibility.
type Filter interface {
	// Name returns the filter name.
	Name() string

	// Apply mutates el in place.
	Apply(el *html.Node)
}

// Func adapts a plain function into a Filter.
type Func func(el *html.Node)

// Name returns the filter name.
func (f Func) Name() string { return "func" }

// Apply mutates el in place.
func (f Func) Apply(el *html.Node) { f(el) }

// Pipeline manages an ordered chain of filters.
type Pipeline struct {
	filters []Filter
}

// NewPipeline creates a new filter pipeline. Filters run in the given
// order against each element.
func NewPipeline(filters ...Filter) *Pipeline {
	return &Pipeline{filters: filters}
}

// Filters returns the filters in application order.
func (p *Pipeline) Filters() []Filter {
	return p.filters
}

// Apply runs every filter against one element, in order.
func (p *Pipeline) Apply(el *html.Node) {
	for _, f := range p.filters {
		f.Apply(el)
	}
}

// ApplyTree walks the subtree rooted at root, applying every filter to
// each element before descending into its children.
func (p *Pipeline) ApplyTree(root *html.Node) {
	if root.Type == html.ElementNode {
		p.Apply(root)
	}
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		p.ApplyTree(c)
	}
}

// stripFilter drops every attribute not covered by the preserve set.
type stripFilter struct {
	preserve rules.Set
}

// StripAttributes creates the default unmarking rule: every attribute not
// matched by the preserve set is removed from the element.
func StripAttributes(preserve rules.Set) Filter {
	return &stripFilter{preserve: preserve}
}

// Name returns the filter name.
func (f *stripFilter) Name() string { return "strip-attributes" }

// Apply removes non-preserved attributes, keeping the order of survivors.
func (f *stripFilter) Apply(el *html.Node) {
	kept := el.Attr[:0]
	for _, a := range el.Attr {
		if f.preserve.Matches(a.Key, el) {
			kept = append(kept, a)
		}
	}
	el.Attr = kept
}

// DefaultPreserve returns the attribute rules the default pipeline keeps:
// the id attribute plus the translate- and remarkup- attribute families.
// Extra rules, typically the configured semantic attributes, are appended.
func DefaultPreserve(extra ...rules.Rule) rules.Set {
	set := rules.Set{
		rules.Exact("id"),
		rules.Prefix("translate-"),
		rules.Prefix("remarkup-"),
	}
	return append(set, extra...)
}
