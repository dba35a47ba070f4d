package dom

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
	"golang.org/x/sync/singleflight"
)

// Node adapts an element of a parsed HTML tree to [Element].
type Node struct {
	n *html.Node
}

var _ Element = (*Node)(nil)

// FromHTML wraps n. It returns nil unless n is an element node.
func FromHTML(n *html.Node) *Node {
	if n == nil || n.Type != html.ElementNode {
		return nil
	}
	return &Node{n: n}
}

// HTML returns the wrapped node.
func (e *Node) HTML() *html.Node {
	if e == nil {
		return nil
	}
	return e.n
}

// Parent returns the parent element. Document and fragment roots are not
// elements, so the walk stops at <html>.
func (e *Node) Parent() Element {
	if e == nil {
		return nil
	}
	if p := FromHTML(e.n.Parent); p != nil {
		return p
	}
	return nil
}

// MatchesSelector reports whether the node matches selector. A nil *Node
// matches nothing.
func (e *Node) MatchesSelector(selector string) (bool, error) {
	sel, err := compile(selector)
	if err != nil {
		return false, err
	}
	return e != nil && sel.Match(e.n), nil
}

// QuerySelector returns the first element below root, in document order,
// that matches selector, or nil if there is none.
func QuerySelector(root *html.Node, selector string) (*Node, error) {
	sel, err := compile(selector)
	if err != nil {
		return nil, err
	}
	return FromHTML(cascadia.Query(root, sel)), nil
}

// maxSelectors bounds the compiled-selector cache. Selectors seen after the
// cache is full are compiled on every use.
const maxSelectors = 512

// selectors caches compiled selectors by source text; concurrent first uses
// of the same selector share one compilation.
var (
	selectors sync.Map
	cached    atomic.Int64
	compiling singleflight.Group
)

func compile(selector string) (cascadia.Selector, error) {
	if v, ok := selectors.Load(selector); ok {
		return v.(cascadia.Selector), nil
	}
	v, err, _ := compiling.Do(selector, func() (any, error) {
		sel, err := cascadia.Compile(selector)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %w", ErrInvalidSelector, selector, err)
		}
		if cached.Add(1) <= maxSelectors {
			if _, loaded := selectors.LoadOrStore(selector, sel); loaded {
				cached.Add(-1)
			}
		} else {
			cached.Add(-1)
		}
		return sel, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(cascadia.Selector), nil
}
