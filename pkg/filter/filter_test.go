package filter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	"github.com/addaleax/remarkup/pkg/dom"
	"github.com/addaleax/remarkup/pkg/filter"
	"github.com/addaleax/remarkup/pkg/rules"
)

func parseFirst(t *testing.T, markup string) (*dom.Tree, *html.Node) {
	t.Helper()
	tree, err := dom.ParseFragment(markup)
	require.NoError(t, err)
	require.NotZero(t, tree.Len())
	return tree, tree.Elements()[0]
}

func attrKeys(n *html.Node) []string {
	keys := make([]string, 0, len(n.Attr))
	for _, a := range n.Attr {
		keys = append(keys, a.Key)
	}
	return keys
}

func TestStripAttributes(t *testing.T) {
	t.Run("default preserve set", func(t *testing.T) {
		_, el := parseFirst(t, `<p id="a" class="big" style="color:red" translate-note="n" remarkup-id="r">x</p>`)

		filter.StripAttributes(filter.DefaultPreserve()).Apply(el)

		assert.Equal(t, []string{"id", "translate-note", "remarkup-id"}, attrKeys(el))
	})

	t.Run("extra preserved rules", func(t *testing.T) {
		_, el := parseFirst(t, `<img src="x.png" alt="a sunset" width="100">`)

		preserve := filter.DefaultPreserve(rules.Exact("alt"))
		filter.StripAttributes(preserve).Apply(el)

		assert.Equal(t, []string{"alt"}, attrKeys(el))
	})

	t.Run("no attributes", func(t *testing.T) {
		_, el := parseFirst(t, `<p>x</p>`)
		filter.StripAttributes(filter.DefaultPreserve()).Apply(el)
		assert.Empty(t, el.Attr)
	})

	t.Run("does not descend", func(t *testing.T) {
		_, el := parseFirst(t, `<div class="outer"><p class="inner">x</p></div>`)
		filter.StripAttributes(filter.DefaultPreserve()).Apply(el)

		assert.Empty(t, el.Attr)
		assert.Equal(t, []string{"class"}, attrKeys(el.FirstChild))
	})
}

func TestPipeline(t *testing.T) {
	t.Run("filters run in order", func(t *testing.T) {
		var order []string
		p := filter.NewPipeline(
			filter.Func(func(*html.Node) { order = append(order, "first") }),
			filter.Func(func(*html.Node) { order = append(order, "second") }),
		)

		_, el := parseFirst(t, `<p>x</p>`)
		p.Apply(el)

		assert.Equal(t, []string{"first", "second"}, order)
	})

	t.Run("ApplyTree visits every element before descending", func(t *testing.T) {
		var visited []string
		p := filter.NewPipeline(filter.Func(func(el *html.Node) {
			visited = append(visited, el.Data)
		}))

		tree, _ := parseFirst(t, `<div><p>a<b>c</b></p><span>b</span></div>`)
		for _, root := range tree.Roots() {
			p.ApplyTree(root)
		}

		assert.Equal(t, []string{"div", "p", "b", "span"}, visited)
	})

	t.Run("ApplyTree strips recursively", func(t *testing.T) {
		tree, el := parseFirst(t, `<div class="a"><p class="b" id="keep"><em class="c">x</em></p></div>`)
		p := filter.NewPipeline(filter.StripAttributes(filter.DefaultPreserve()))
		p.ApplyTree(el)

		out, err := tree.Render()
		require.NoError(t, err)
		assert.Equal(t, `<div><p id="keep"><em>x</em></p></div>`, out)
	})

	t.Run("removal is irreversible without a clone", func(t *testing.T) {
		_, el := parseFirst(t, `<p class="x">t</p>`)
		clone := dom.Clone(el)

		filter.NewPipeline(filter.StripAttributes(filter.DefaultPreserve())).ApplyTree(el)

		assert.Empty(t, el.Attr)
		assert.Equal(t, "x", dom.Attr(clone, "class"), "clone keeps the stripped attribute")
	})

	t.Run("Filters exposes the chain", func(t *testing.T) {
		p := filter.NewPipeline(filter.StripAttributes(nil), filter.CollapseTextWhitespace())
		require.Len(t, p.Filters(), 2)
		assert.Equal(t, "strip-attributes", p.Filters()[0].Name())
		assert.Equal(t, "collapse-whitespace", p.Filters()[1].Name())
	})
}

func TestCollapseTextWhitespace(t *testing.T) {
	t.Run("direct text children only", func(t *testing.T) {
		_, el := parseFirst(t, "<p>a  b\n\tc<em>d  e</em></p>")

		filter.CollapseTextWhitespace().Apply(el)

		assert.Equal(t, "a b c", el.FirstChild.Data)
		em := dom.Children(el)[0]
		assert.Equal(t, "d  e", em.FirstChild.Data, "nested text untouched without recursion")
	})

	t.Run("recursive through pipeline", func(t *testing.T) {
		_, el := parseFirst(t, "<p>a  b<em>d  e</em></p>")

		filter.NewPipeline(filter.CollapseTextWhitespace()).ApplyTree(el)

		em := dom.Children(el)[0]
		assert.Equal(t, "d e", em.FirstChild.Data)
	})
}
