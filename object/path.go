package object

import (
	"fmt"
	"reflect"
	"strings"
)

// ─────────────────────────────────────────────────────────────────────────────
// Dot-notation path access
//
// A path is either a dot-delimited string ("a.b.c") or a pre-split list of
// segments ([]string{"a", "b", "c"}). Splitting never trims or drops empty
// segments, so "" addresses the key "" and "a..b" has three segments.
// ─────────────────────────────────────────────────────────────────────────────

// Path is the set of path forms accepted by [ByPath].
type Path interface {
	~string | ~[]string
}

// SplitPath splits a dot-delimited path into its segments.
func SplitPath(path string) []string {
	return strings.Split(path, ".")
}

// ByPath reads or writes a nested value addressed by path.
//
// With no value argument it is a getter: it returns the value at path, or
// nil when any segment is missing or an intermediate value is not a map. It
// never returns an error in get mode. An empty segment list returns m itself.
//
// With a value argument (nil included) it is a setter: intermediate maps are
// created as needed, value is stored at the terminal segment and returned.
// The return value is the value passed in, not m.
//
//	m := map[string]any{"say": map[string]any{"hello": "Hello"}}
//	v, _ := ByPath(m, "say.hello")           // "Hello"
//	v, _ = ByPath(m, "say.hello", "Hola")    // "Hola"; m["say"]["hello"] == "Hola"
func ByPath[P Path](m map[string]any, path P, value ...any) (any, error) {
	segments := segmentsOf(path)

	if len(value) == 0 {
		if len(segments) == 0 {
			return m, nil
		}
		v, _ := GetPath(m, segments)
		return v, nil
	}
	return SetPath(m, segments, value[0])
}

func segmentsOf[P Path](path P) []string {
	switch p := any(path).(type) {
	case string:
		return SplitPath(p)
	case []string:
		return p
	}
	// Named types such as `type Key string`.
	v := reflect.ValueOf(path)
	if v.Kind() == reflect.String {
		return SplitPath(v.String())
	}
	return v.Convert(reflect.TypeOf([]string(nil))).Interface().([]string)
}

// Get retrieves the value at a dot-notation path. The second result is false
// when the path does not resolve.
//
//	Get(m, "user.address.city") // "London", true
//	Get(m, "user.missing.city") // nil, false
func Get(m map[string]any, path string) (any, bool) {
	return GetPath(m, SplitPath(path))
}

// GetPath is [Get] for a pre-split path. An empty segment list resolves to m.
func GetPath(m map[string]any, segments []string) (any, bool) {
	if len(segments) == 0 {
		return m, m != nil
	}
	current := m
	last := len(segments) - 1
	for i, seg := range segments {
		val, ok := current[seg]
		if !ok {
			return nil, false
		}
		if i == last {
			return val, true
		}
		nested, ok := val.(map[string]any)
		if !ok || nested == nil {
			return nil, false
		}
		current = nested
	}
	return nil, false
}

// Set writes value at a dot-notation path, creating intermediate maps as
// needed, and returns value.
//
// It returns [ErrNotAMap] when an intermediate segment exists but holds
// something other than a map; m is left untouched in that case.
func Set(m map[string]any, path string, value any) (any, error) {
	return SetPath(m, SplitPath(path), value)
}

// SetPath is [Set] for a pre-split path.
func SetPath(m map[string]any, segments []string, value any) (any, error) {
	if len(segments) == 0 {
		return nil, ErrEmptyPath
	}
	if m == nil {
		return nil, fmt.Errorf("%w: root is nil", ErrNotAMap)
	}
	parent, err := descend(m, segments[:len(segments)-1])
	if err != nil {
		return nil, err
	}
	parent[segments[len(segments)-1]] = value
	return value, nil
}

// descend walks segments from m and returns the map at the end, creating
// missing maps. Nothing is created unless the whole walk can succeed.
func descend(m map[string]any, segments []string) (map[string]any, error) {
	current := m
	for i, seg := range segments {
		val, ok := current[seg]
		if !ok || val == nil {
			return create(current, segments[i:]), nil
		}
		nested, ok := val.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: %q holds %T", ErrNotAMap,
				strings.Join(segments[:i+1], "."), val)
		}
		if nested == nil {
			return create(current, segments[i:]), nil
		}
		current = nested
	}
	return current, nil
}

func create(m map[string]any, segments []string) map[string]any {
	for _, seg := range segments {
		next := make(map[string]any)
		m[seg] = next
		m = next
	}
	return m
}

// Has reports whether the dot-notation path resolves in m.
// A path whose terminal value is nil still exists.
func Has(m map[string]any, path string) bool {
	_, ok := Get(m, path)
	return ok
}

// Forget removes the value at the dot-notation path. Missing paths are a
// no-op and emptied intermediate maps are kept.
func Forget(m map[string]any, path string) {
	segments := SplitPath(path)
	parent, ok := GetPath(m, segments[:len(segments)-1])
	if !ok {
		return
	}
	if pm, ok := parent.(map[string]any); ok {
		delete(pm, segments[len(segments)-1])
	}
}
