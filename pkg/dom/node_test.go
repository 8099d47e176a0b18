package dom_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/addaleax/remarkup/pkg/dom"
)

func TestClone(t *testing.T) {
	tree := mustParse(t, `<div class="outer"><p id="x">hello <b>world</b></p></div>`)
	orig := tree.Elements()[0]

	clone := dom.Clone(orig)

	t.Run("detached", func(t *testing.T) {
		assert.Nil(t, clone.Parent)
		assert.Nil(t, clone.PrevSibling)
		assert.Nil(t, clone.NextSibling)
	})

	t.Run("structure preserved", func(t *testing.T) {
		require.NotNil(t, clone.FirstChild)
		assert.Equal(t, "p", clone.FirstChild.Data)
		assert.Equal(t, "x", dom.Attr(clone.FirstChild, "id"))
	})

	t.Run("attribute independence", func(t *testing.T) {
		dom.SetAttr(clone, "class", "changed")
		assert.Equal(t, "outer", dom.Attr(orig, "class"))

		dom.RemoveAttr(clone.FirstChild, "id")
		assert.Equal(t, "x", dom.Attr(orig.FirstChild, "id"))
	})

	t.Run("child independence", func(t *testing.T) {
		clone.FirstChild.FirstChild.Data = "edited "
		assert.Equal(t, "hello ", orig.FirstChild.FirstChild.Data)
	})
}

func TestChildren(t *testing.T) {
	tree := mustParse(t, `<div>text <p>a</p> more <em>b</em></div>`)
	div := tree.Elements()[0]

	kids := dom.Children(div)
	require.Len(t, kids, 2)
	assert.Equal(t, "p", kids[0].Data)
	assert.Equal(t, "em", kids[1].Data)

	assert.Empty(t, dom.Children(kids[0].FirstChild))
}

func TestAttrHelpers(t *testing.T) {
	tree := mustParse(t, `<p class="x" data-n="1">hi</p>`)
	p := tree.Elements()[0]

	t.Run("Attr and LookupAttr", func(t *testing.T) {
		assert.Equal(t, "x", dom.Attr(p, "class"))
		assert.Equal(t, "", dom.Attr(p, "missing"))

		v, ok := dom.LookupAttr(p, "data-n")
		assert.True(t, ok)
		assert.Equal(t, "1", v)

		_, ok = dom.LookupAttr(p, "missing")
		assert.False(t, ok)
	})

	t.Run("SetAttr overwrites in place", func(t *testing.T) {
		dom.SetAttr(p, "class", "y")
		assert.Equal(t, "y", dom.Attr(p, "class"))
		assert.Equal(t, "class", p.Attr[0].Key, "position kept")
	})

	t.Run("SetAttr appends new", func(t *testing.T) {
		dom.SetAttr(p, "title", "t")
		assert.Equal(t, "t", dom.Attr(p, "title"))
		assert.Equal(t, "title", p.Attr[len(p.Attr)-1].Key)
	})

	t.Run("RemoveAttr", func(t *testing.T) {
		assert.True(t, dom.RemoveAttr(p, "data-n"))
		assert.Equal(t, "", dom.Attr(p, "data-n"))
		assert.False(t, dom.RemoveAttr(p, "data-n"))
	})
}

func TestCollapseWhitespace(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no whitespace", "abc", "abc"},
		{"single spaces kept", "a b c", "a b c"},
		{"runs collapse", "a  b\t\tc", "a b c"},
		{"newlines and tabs", "a\n\t b", "a b"},
		{"leading run", "  a", " a"},
		{"trailing run", "a  ", "a "},
		{"only whitespace", " \n\t ", " "},
		{"empty", "", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, dom.CollapseWhitespace(tc.in))
		})
	}
}
