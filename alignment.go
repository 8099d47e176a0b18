package remarkup

import (
	"context"

	"github.com/addaleax/remarkup/pkg/dom"
)

// Alignment describes one matched element pair from the global assignment.
// Indices refer to the document-order element sequence of each fragment.
type Alignment struct {
	OriginalIndex int     `json:"original_index" yaml:"original_index"`
	OriginalTag   string  `json:"original_tag" yaml:"original_tag"`
	EditedIndex   int     `json:"edited_index" yaml:"edited_index"`
	EditedTag     string  `json:"edited_tag" yaml:"edited_tag"`
	Cost          float64 `json:"cost" yaml:"cost"`
}

// Alignments reports the element correspondence Remark would use for the
// fragment pair, without transferring any attributes. Lower costs mean
// more confident matches; a cost of zero means the pair shares an
// identity attribute. When either fragment holds no elements the result
// is empty.
func (r *Remarkup) Alignments(ctx context.Context, original, edited string) ([]Alignment, error) {
	origTree, err := dom.ParseFragment(original)
	if err != nil {
		return nil, err
	}
	editedTree, err := dom.ParseFragment(edited)
	if err != nil {
		return nil, err
	}

	if origTree.Len() == 0 || editedTree.Len() == 0 {
		return nil, nil
	}

	pairs, matrix, err := r.solve(ctx, origTree, editedTree)
	if err != nil {
		return nil, err
	}

	origEls := origTree.Elements()
	editedEls := editedTree.Elements()
	alignments := make([]Alignment, 0, len(pairs))
	for _, p := range pairs {
		alignments = append(alignments, Alignment{
			OriginalIndex: p.Row,
			OriginalTag:   origEls[p.Row].Data,
			EditedIndex:   p.Col,
			EditedTag:     editedEls[p.Col].Data,
			Cost:          matrix[p.Row][p.Col],
		})
	}
	return alignments, nil
}
