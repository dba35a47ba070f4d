// Package dom answers two questions about elements in a document tree:
// does an element match a CSS selector, and which of its ancestors is the
// nearest one that does.
//
// The tree itself is abstracted behind [Element], a two-method capability
// interface, so the walking logic does not depend on any particular DOM
// implementation. An adapter for [golang.org/x/net/html] trees is provided;
// its selectors are compiled with [github.com/andybalholm/cascadia].
//
//	doc, _ := html.Parse(strings.NewReader(page))
//	btn, _ := dom.QuerySelector(doc, "button.save")
//	form, _ := dom.Closest(btn, "form")
package dom
