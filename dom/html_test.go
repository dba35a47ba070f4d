package dom_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	"github.com/hasbyte1/go-amp-utils/dom"
)

const page = `<!DOCTYPE html>
<html>
<body>
  <form id="profile" class="edit">
    <div class="row">
      <label for="name">Name</label>
      <button type="submit" class="save primary">Save</button>
    </div>
  </form>
  <p>Footer</p>
</body>
</html>`

func parse(t *testing.T) *html.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(page))
	require.NoError(t, err)
	return doc
}

func button(t *testing.T) *dom.Node {
	t.Helper()
	btn, err := dom.QuerySelector(parse(t), "button.save")
	require.NoError(t, err)
	require.NotNil(t, btn)
	return btn
}

func TestQuerySelector(t *testing.T) {
	doc := parse(t)

	el, err := dom.QuerySelector(doc, "label[for=name]")
	require.NoError(t, err)
	require.NotNil(t, el)
	assert.Equal(t, "label", el.HTML().Data)

	el, err = dom.QuerySelector(doc, "table")
	require.NoError(t, err)
	assert.Nil(t, el)
}

func TestHTMLMatches(t *testing.T) {
	btn := button(t)

	tests := []struct {
		selector string
		want     bool
	}{
		{selector: "button", want: true},
		{selector: ".primary.save", want: true},
		{selector: "[type=submit]", want: true},
		{selector: "form button", want: true},
		{selector: "div > button", want: true},
		{selector: "form > button", want: false},
		{selector: "a, button", want: true},
		{selector: "label", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.selector, func(t *testing.T) {
			ok, err := dom.Matches(btn, tt.selector)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ok)
		})
	}
}

func TestHTMLClosest(t *testing.T) {
	btn := button(t)

	tests := []struct {
		selector string
		want     string
	}{
		{selector: ".row", want: "div"},
		{selector: "form#profile", want: "form"},
		{selector: "body", want: "body"},
		{selector: "html", want: "html"},
		{selector: "button", want: ""},
		{selector: "p", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.selector, func(t *testing.T) {
			got, err := dom.Closest(btn, tt.selector)
			require.NoError(t, err)
			if tt.want == "" {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tt.want, got.(*dom.Node).HTML().Data)
		})
	}
}

func TestHTMLInvalidSelector(t *testing.T) {
	btn := button(t)

	_, err := dom.Matches(btn, "button[")
	assert.ErrorIs(t, err, dom.ErrInvalidSelector)

	_, err = dom.Closest(btn, "form[")
	assert.ErrorIs(t, err, dom.ErrInvalidSelector)

	_, err = dom.QuerySelector(parse(t), "#")
	assert.ErrorIs(t, err, dom.ErrInvalidSelector)
}

func TestFromHTML(t *testing.T) {
	doc := parse(t)
	assert.Nil(t, dom.FromHTML(nil))
	assert.Nil(t, dom.FromHTML(doc), "the document node is not an element")

	root := dom.FromHTML(doc.FirstChild.NextSibling)
	require.NotNil(t, root)
	assert.Equal(t, "html", root.HTML().Data)
	assert.Nil(t, root.Parent())
}

func TestNilNode(t *testing.T) {
	var n *dom.Node
	assert.Nil(t, n.Parent())
	assert.Nil(t, n.HTML())

	ok, err := n.MatchesSelector("div")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestConcurrentMatching(t *testing.T) {
	btn := button(t)
	errs := make(chan error, 16)
	for i := 0; i < cap(errs); i++ {
		go func() {
			_, err := dom.Closest(btn, "form.edit:not(.readonly)")
			errs <- err
		}()
	}
	for i := 0; i < cap(errs); i++ {
		assert.NoError(t, <-errs)
	}
}
