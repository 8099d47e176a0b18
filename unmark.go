package remarkup

import (
	"github.com/addaleax/remarkup/pkg/dom"
)

// Unmark strips non-preserved attributes from every element of markup,
// producing the form handed to human editors. Markup without any elements
// is returned unchanged.
func (r *Remarkup) Unmark(markup string) (string, error) {
	tree, err := dom.ParseFragment(markup)
	if err != nil {
		return "", err
	}
	if tree.Len() == 0 {
		return markup, nil
	}

	for _, root := range tree.Roots() {
		r.pipeline.ApplyTree(root)
	}

	return tree.Render()
}
