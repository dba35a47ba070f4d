package querystring

import "errors"

// ErrMalformedEscape is returned by [Lookup] when a parameter value contains
// an invalid percent-encoding such as "%zz" or a truncated "%4".
var ErrMalformedEscape = errors.New("querystring: malformed percent-encoding")
