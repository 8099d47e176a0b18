package filter

import (
	"golang.org/x/net/html"

	"github.com/addaleax/remarkup/pkg/dom"
)

// whitespaceFilter collapses whitespace runs in direct text children.
type whitespaceFilter struct{}

// CollapseTextWhitespace creates a filter that collapses every run of
// whitespace in the element's direct text children to a single space.
// It is not part of the default pipeline.
func CollapseTextWhitespace() Filter {
	return whitespaceFilter{}
}

// Name returns the filter name.
func (whitespaceFilter) Name() string { return "collapse-whitespace" }

// Apply normalizes the direct text children of el.
func (whitespaceFilter) Apply(el *html.Node) {
	for c := el.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			c.Data = dom.CollapseWhitespace(c.Data)
		}
	}
}
