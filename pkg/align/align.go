// Package align scores the dissimilarity of whole subtrees.
//
// An Aligner is built per reconciliation call over one fixed pair of
// parsed trees. It combines per-child minimum-cost matching with the
// element metric recursively, memoizing every (original, edited) pair in
// a distance matrix so that each subtree alignment is computed at most
// once for the aligner's lifetime.
package align

import (
	"context"
	"fmt"

	"golang.org/x/net/html"

	"github.com/addaleax/remarkup/pkg/assign"
	"github.com/addaleax/remarkup/pkg/dom"
	"github.com/addaleax/remarkup/pkg/errors"
	"github.com/addaleax/remarkup/pkg/filter"
	"github.com/addaleax/remarkup/pkg/metric"
)

// DefaultMissingChildPenalty is charged once per child count difference
// between two aligned elements.
const DefaultMissingChildPenalty = 10.0

// Aligner computes memoized subtree dissimilarities over one pair of
// trees. It owns the distance matrix and the filtered clones for its
// lifetime and is not safe for concurrent use.
type Aligner struct {
	orig   *dom.Tree
	edited *dom.Tree

	pipeline *filter.Pipeline
	metricFn metric.Func
	penalty  float64

	costs    [][]float64
	computed [][]bool
	clones   []*html.Node
}

// New creates an aligner over the given original and edited trees.
func New(orig, edited *dom.Tree, opts ...Option) *Aligner {
	a := &Aligner{
		orig:     orig,
		edited:   edited,
		pipeline: filter.NewPipeline(filter.StripAttributes(filter.DefaultPreserve())),
		metricFn: metric.New(),
		penalty:  DefaultMissingChildPenalty,
	}

	for _, opt := range opts {
		opt(a)
	}

	a.costs = make([][]float64, orig.Len())
	a.computed = make([][]bool, orig.Len())
	for i := range a.costs {
		a.costs[i] = make([]float64, edited.Len())
		a.computed[i] = make([]bool, edited.Len())
	}
	a.clones = make([]*html.Node, orig.Len())

	return a
}

// Align returns the dissimilarity of the subtree rooted at origEl against
// the subtree rooted at editedEl. Both elements must belong to the trees
// the aligner was created over; a foreign element fails fast.
func (a *Aligner) Align(origEl, editedEl *html.Node) (float64, error) {
	i, err := a.orig.Index(origEl)
	if err != nil {
		return 0, err
	}
	j, err := a.edited.Index(editedEl)
	if err != nil {
		return 0, err
	}
	return a.align(i, j)
}

// Matrix computes the full pairwise distance matrix over the flattened
// element lists of the two trees; row i holds the costs of original
// element i against every edited element. The context is checked between
// cells, and cancellation surfaces as errors.ErrCanceled.
func (a *Aligner) Matrix(ctx context.Context) ([][]float64, error) {
	origEls := a.orig.Elements()
	editedEls := a.edited.Elements()

	matrix := make([][]float64, len(origEls))
	for i := range origEls {
		matrix[i] = make([]float64, len(editedEls))
		for j := range editedEls {
			if err := ctx.Err(); err != nil {
				return nil, fmt.Errorf("%w: %w", errors.ErrCanceled, err)
			}
			cost, err := a.align(i, j)
			if err != nil {
				return nil, err
			}
			matrix[i][j] = cost
		}
	}
	return matrix, nil
}

func (a *Aligner) align(i, j int) (float64, error) {
	if a.computed[i][j] {
		return a.costs[i][j], nil
	}

	origEl := a.orig.Elements()[i]
	editedEl := a.edited.Elements()[j]

	origChildren := dom.Children(origEl)
	editedChildren := dom.Children(editedEl)

	var childCost float64
	if len(origChildren) > 0 && len(editedChildren) > 0 {
		local := make([][]float64, len(origChildren))
		for ci, origChild := range origChildren {
			local[ci] = make([]float64, len(editedChildren))
			for cj, editedChild := range editedChildren {
				oi, err := a.orig.Index(origChild)
				if err != nil {
					return 0, err
				}
				ej, err := a.edited.Index(editedChild)
				if err != nil {
					return 0, err
				}
				cost, err := a.align(oi, ej)
				if err != nil {
					return 0, err
				}
				local[ci][cj] = cost
			}
		}
		for _, p := range assign.Solve(local) {
			childCost += local[p.Row][p.Col]
		}
	}

	// Any size mismatch the assignment cannot absorb is charged per
	// missing child.
	diff := len(origChildren) - len(editedChildren)
	if diff < 0 {
		diff = -diff
	}
	childCost += a.penalty * float64(diff)

	total := childCost + a.metricFn(a.filteredClone(i, origEl), editedEl,
		i, j, a.orig.SiblingCount(origEl), a.edited.SiblingCount(editedEl))

	a.costs[i][j] = total
	a.computed[i][j] = true
	return total, nil
}

// filteredClone returns the attribute-filtered deep copy of the original
// element at index i, computed once per aligner. The clone models what
// the element looked like after unmarking, so the metric compares like
// with like.
func (a *Aligner) filteredClone(i int, el *html.Node) *html.Node {
	if a.clones[i] == nil {
		clone := dom.Clone(el)
		a.pipeline.ApplyTree(clone)
		a.clones[i] = clone
	}
	return a.clones[i]
}
