package remarkup

import (
	"context"

	"golang.org/x/net/html"

	"github.com/addaleax/remarkup/pkg/align"
	"github.com/addaleax/remarkup/pkg/assign"
	"github.com/addaleax/remarkup/pkg/dom"
	"github.com/addaleax/remarkup/pkg/logging"
)

// Remark re-attaches attributes from the original fragment onto the
// elements of the edited fragment they most likely correspond to.
//
// Both fragments are parsed, every pair of elements is scored by subtree
// alignment, and one global minimum-cost assignment decides the element
// correspondence. For each matched pair the original element's attributes
// are copied onto the edited element; semantic attributes stay untouched
// on both sides. When either fragment holds no elements there is nothing
// to reconcile and the edited input is returned unchanged.
func (r *Remarkup) Remark(ctx context.Context, original, edited string) (string, error) {
	logger := logging.FromContext(ctx)

	origTree, err := dom.ParseFragment(original)
	if err != nil {
		return "", err
	}
	editedTree, err := dom.ParseFragment(edited)
	if err != nil {
		return "", err
	}

	if origTree.Len() == 0 || editedTree.Len() == 0 {
		logger.Debug().
			Int("original_elements", origTree.Len()).
			Int("edited_elements", editedTree.Len()).
			Msg("Nothing to reconcile")
		return edited, nil
	}

	pairs, _, err := r.solve(ctx, origTree, editedTree)
	if err != nil {
		return "", err
	}
	logger.Debug().
		Int("original_elements", origTree.Len()).
		Int("edited_elements", editedTree.Len()).
		Int("matched_pairs", len(pairs)).
		Msg("Solved global element assignment")

	origEls := origTree.Elements()
	editedEls := editedTree.Elements()
	for _, p := range pairs {
		r.transfer(origEls[p.Row], editedEls[p.Col])
	}

	return editedTree.Render()
}

// solve builds the full alignment matrix for the tree pair and runs the
// global assignment over it.
func (r *Remarkup) solve(ctx context.Context, origTree, editedTree *dom.Tree) ([]assign.Pair, [][]float64, error) {
	aligner := align.New(origTree, editedTree,
		align.WithFilters(r.pipeline),
		align.WithMetric(r.metricFn),
		align.WithMissingChildPenalty(r.penalty),
	)

	matrix, err := aligner.Matrix(ctx)
	if err != nil {
		return nil, nil, err
	}

	return assign.Solve(matrix), matrix, nil
}

// transfer copies every attribute of the original element onto the edited
// element, overwriting same-named attributes. Attributes that are
// semantic on either element are skipped, so values the edit legitimately
// rewrote survive.
func (r *Remarkup) transfer(origEl, editedEl *html.Node) {
	for _, a := range origEl.Attr {
		if r.semantic.Matches(a.Key, origEl) || r.semantic.Matches(a.Key, editedEl) {
			continue
		}
		dom.SetAttr(editedEl, a.Key, a.Val)
	}
}
