// Package metric scores the dissimilarity of two elements.
//
// The metric is the innermost cost function of reconciliation: subtree
// alignment charges it once per candidate pair after child alignment.
// The default metric built by New combines tag, attribute, and positional
// signals into one non-negative cost; a shared identity attribute value
// forces the cost to zero regardless of every other signal.
package metric

import (
	"math"

	"github.com/agnivade/levenshtein"
	"golang.org/x/net/html"

	"github.com/addaleax/remarkup/pkg/dom"
)

// Func scores the dissimilarity of an original element against an edited
// element. orig must already be attribute-filtered by the caller. The
// indices are positions in the document-order flattened element lists of
// the two trees; the sibling counts are the sizes of the respective
// sibling lists. Implementations return a cost >= 0 and must not mutate
// either element.
type Func func(orig, edited *html.Node, origIndex, editedIndex, origSiblings, editedSiblings int) float64

// New builds the default metric. Cost terms, in order:
//
//  1. identity short-circuit: the same non-empty value for any identity
//     attribute on both sides returns 0 immediately.
//  2. the base cost, plus the tag mismatch penalty when tag names differ.
//  3. the attribute cost once per non-semantic attribute present on
//     exactly one side.
//  4. for non-semantic attributes present on both sides with differing
//     values, the value weight times ln of the edit distance between the
//     two values. A single-character difference contributes nothing.
//  5. the position weight times ln of the absolute index drift, when the
//     indices differ.
func New(opts ...Option) Func {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	return func(orig, edited *html.Node, origIndex, editedIndex, _, _ int) float64 {
		// An explicit shared identity wins over every other signal.
		if cfg.sharesIdentity(orig, edited) {
			return 0
		}

		cost := cfg.baseCost
		if orig.Data != edited.Data {
			cost += cfg.tagMismatchCost
		}

		for _, a := range orig.Attr {
			editedVal, ok := dom.LookupAttr(edited, a.Key)
			if !ok {
				if !cfg.semantic.Matches(a.Key, orig) {
					cost += cfg.attrCost
				}
				continue
			}
			if editedVal == a.Val {
				continue
			}
			// A semantic attribute on either carrier is expected to
			// diverge and never contributes to the score.
			if cfg.semantic.Matches(a.Key, orig) || cfg.semantic.Matches(a.Key, edited) {
				continue
			}
			d := levenshtein.ComputeDistance(a.Val, editedVal)
			cost += cfg.valueDiffWeight * math.Log(float64(d))
		}

		for _, a := range edited.Attr {
			if _, ok := dom.LookupAttr(orig, a.Key); ok {
				continue
			}
			if !cfg.semantic.Matches(a.Key, edited) {
				cost += cfg.attrCost
			}
		}

		if origIndex != editedIndex {
			drift := math.Abs(float64(origIndex - editedIndex))
			cost += cfg.positionWeight * math.Log(drift)
		}

		return cost
	}
}

// sharesIdentity reports whether both elements carry the same non-empty
// value for any identity attribute.
func (c *config) sharesIdentity(orig, edited *html.Node) bool {
	for _, name := range c.identityAttrs {
		v, ok := dom.LookupAttr(orig, name)
		if !ok || v == "" {
			continue
		}
		if editedVal, ok := dom.LookupAttr(edited, name); ok && editedVal == v {
			return true
		}
	}
	return false
}
