package dom

// Element is the capability a host tree must offer.
type Element interface {
	// Parent returns the enclosing element, or nil at the top of the tree.
	Parent() Element

	// MatchesSelector reports whether the element matches a CSS selector.
	MatchesSelector(selector string) (bool, error)
}

// Matches reports whether el matches selector. A nil element never matches.
func Matches(el Element, selector string) (bool, error) {
	if el == nil {
		return false, nil
	}
	return el.MatchesSelector(selector)
}

// Closest returns the nearest ancestor of start that matches selector. start
// itself is not tested. It returns nil when the top of the tree is reached
// without a match.
//
//	// <form><div><button/></div></form>
//	Closest(button, "form") // the <form> element
//	Closest(button, "button") // nil
func Closest(start Element, selector string) (Element, error) {
	if start == nil {
		return nil, nil
	}
	for el := start.Parent(); el != nil; el = el.Parent() {
		ok, err := el.MatchesSelector(selector)
		if err != nil {
			return nil, err
		}
		if ok {
			return el, nil
		}
	}
	return nil, nil
}
