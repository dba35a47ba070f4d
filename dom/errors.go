package dom

import "errors"

// ErrInvalidSelector is returned when a CSS selector cannot be parsed. The
// parser's own error is wrapped alongside it.
var ErrInvalidSelector = errors.New("dom: invalid CSS selector")
