// Package object provides helpers for plain map[string]any trees: deep
// merging, configuration defaults, dot-notation path access, deep cloning and
// structural equality.
//
// # Data model
//
// A "plain object" is a non-nil map[string]any whose leaves are JSON-like
// values (strings, numbers, booleans, nil, []any and nested maps). [Is]
// reports whether a value is one.
//
// # Deep merge
//
// [Merge] folds one or more sources into a target, left to right. Nested maps
// are merged key by key; slices and scalars are replaced wholesale, never
// concatenated:
//
//	object.Merge(
//	    map[string]any{"db": map[string]any{"host": "localhost"}, "tags": []any{"a"}},
//	    map[string]any{"db": map[string]any{"port": 5432}, "tags": []any{"b"}},
//	)
//	// → {"db": {"host": "localhost", "port": 5432}, "tags": ["b"]}
//
// [Options] builds a fresh configuration map from defaults and overrides
// without mutating either.
//
// # Path access
//
//	m := map[string]any{"say": map[string]any{"hello": "Hello"}}
//	object.ByPath(m, "say.hello")                    // → "Hello", nil
//	object.ByPath(m, []string{"say", "hello"}, "Hola") // → "Hola", nil (set)
//
// # Clone and equality
//
// [Clone] and [Equal] walk the in-memory value tree directly.
// Round-tripping through a serializer instead is available through
// [CloneJSON], [EqualJSON] or a [Cloner] configured with [Serialized] mode;
// it drops or rejects anything the codec cannot represent.
package object
