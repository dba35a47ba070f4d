package object

import (
	"fmt"
	"strings"

	"github.com/PaesslerAG/jsonpath"
)

// Query evaluates a JSONPath expression against v and returns the selected
// value. Expressions without wildcards select a single value; wildcards,
// slices and recursive descent select an []any.
//
// Where [ByPath] reads one dot-separated chain of keys, Query also reaches
// into slices:
//
//	doc := map[string]any{"items": []any{
//	    map[string]any{"name": "a"},
//	    map[string]any{"name": "b"},
//	}}
//	Query(doc, "$.items[1].name")   // "b"
//	Query(doc, "$.items[*].name")   // []any{"a", "b"}
//
// A missing key or out-of-range index is an error wrapping [ErrQuery], as is
// a malformed expression.
func Query(v any, expr string) (any, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return nil, fmt.Errorf("%w: empty expression", ErrQuery)
	}
	out, err := jsonpath.Get(expr, v)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrQuery, expr, err)
	}
	return out, nil
}
