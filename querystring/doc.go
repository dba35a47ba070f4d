// Package querystring reads and rewrites individual parameters in a URI's
// query string without parsing the URI into a structured form.
//
// The input is treated as opaque text, so fragments, relative references and
// bare query strings ("?a=1&b=2") all work:
//
//	v, ok := querystring.Get("?a=1&b=2", "a")        // "1", true
//	uri  := querystring.Set("/list?page=1", "page", "2") // "/list?page=2"
//
// [Set] does not percent-encode the value it writes; encode it first (for
// example with [net/url.QueryEscape]) when it may contain reserved
// characters.
package querystring
