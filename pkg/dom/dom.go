// Package dom provides the HTML fragment model for the remarkup system.
// Fragments are parsed in body context into a forest of detached root
// nodes, flattened into a document-order element list that the metric and
// aligner address elements by.
package dom

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/addaleax/remarkup/pkg/errors"
)

// Tree holds a parsed HTML fragment: the ordered list of root nodes plus a
// document-order flattening of every element in the fragment.
type Tree struct {
	roots    []*html.Node
	elements []*html.Node
	index    map[*html.Node]int
}

// ParseFragment parses markup as an HTML fragment in body context.
// The returned tree owns a forest of detached root nodes; text, comments
// and elements all appear as roots, in source order.
func ParseFragment(markup string) (*Tree, error) {
	ctx := &html.Node{
		Type:     html.ElementNode,
		Data:     "body",
		DataAtom: atom.Body,
	}
	roots, err := html.ParseFragment(strings.NewReader(markup), ctx)
	if err != nil {
		return nil, errors.NewParseError("html", "", err.Error(), err)
	}

	t := &Tree{roots: roots}
	t.flatten()
	return t, nil
}

// flatten rebuilds the document-order element list and its reverse index.
func (t *Tree) flatten() {
	t.elements = t.elements[:0]
	t.index = make(map[*html.Node]int)
	for _, root := range t.roots {
		t.collect(root)
	}
}

func (t *Tree) collect(n *html.Node) {
	if n.Type == html.ElementNode {
		t.index[n] = len(t.elements)
		t.elements = append(t.elements, n)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		t.collect(c)
	}
}

// Roots returns the fragment's root nodes in source order.
func (t *Tree) Roots() []*html.Node {
	return t.roots
}

// Elements returns every element of the fragment in document order.
func (t *Tree) Elements() []*html.Node {
	return t.elements
}

// Len returns the number of elements in the fragment.
func (t *Tree) Len() int {
	return len(t.elements)
}

// Index returns the document-order index of el. Nodes that are not
// elements of this tree fail fast with a not-found error.
func (t *Tree) Index(el *html.Node) (int, error) {
	if i, ok := t.index[el]; ok {
		return i, nil
	}
	name := "?"
	if el != nil && el.Data != "" {
		name = el.Data
	}
	return 0, errors.NewNotFoundError("element", "<"+name+">")
}

// SiblingCount returns how many elements share el's parent, el included.
// Top-level elements count against the other top-level elements.
func (t *Tree) SiblingCount(el *html.Node) int {
	if el.Parent != nil {
		return len(Children(el.Parent))
	}
	n := 0
	for _, root := range t.roots {
		if root.Type == html.ElementNode {
			n++
		}
	}
	return n
}

// Render serializes the fragment back to markup.
func (t *Tree) Render() (string, error) {
	var sb strings.Builder
	for _, root := range t.roots {
		if err := html.Render(&sb, root); err != nil {
			return "", errors.WrapIO("render", "", err)
		}
	}
	return sb.String(), nil
}
