package dom

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func TestSelectorCacheIsBounded(t *testing.T) {
	doc, err := html.Parse(strings.NewReader(`<p class="c7">x</p>`))
	require.NoError(t, err)

	for i := 0; i < maxSelectors+100; i++ {
		_, err := compile(fmt.Sprintf("p.c%d", i))
		require.NoError(t, err)
	}
	assert.LessOrEqual(t, cached.Load(), int64(maxSelectors))

	n := 0
	selectors.Range(func(_, _ any) bool { n++; return true })
	assert.LessOrEqual(t, n, maxSelectors)

	// Selectors past the cap still work.
	el, err := QuerySelector(doc, fmt.Sprintf("p.c%d, p.c7", maxSelectors+50))
	require.NoError(t, err)
	require.NotNil(t, el)
	assert.Equal(t, "p", el.HTML().Data)
}
