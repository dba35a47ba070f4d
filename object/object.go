package object

// Is reports whether v is a plain object: a non-nil map[string]any.
// Slices, scalars and nil are not objects.
//
//	Is(map[string]any{}) // true
//	Is("a string")       // false
//	Is([]any{1, 2})      // false
func Is(v any) bool {
	m, ok := v.(map[string]any)
	return ok && m != nil
}

// Merge deep-merges each source into target, left to right, and returns
// target.
//
// For every key in a source:
//   - a plain-object value is merged recursively into target[key]; when
//     target[key] is absent or not a plain object it is first replaced by a
//     fresh map, so source maps are never aliased into target.
//   - any other value (scalars, slices, nil) overwrites target[key].
//
// A nil target is replaced by a new map when at least one source is given.
// With no sources target is returned unchanged.
func Merge(target map[string]any, sources ...map[string]any) map[string]any {
	if len(sources) == 0 {
		return target
	}
	if target == nil {
		target = make(map[string]any)
	}
	for _, src := range sources {
		mergeInto(target, src)
	}
	return target
}

func mergeInto(dst, src map[string]any) {
	for k, v := range src {
		nested, ok := v.(map[string]any)
		if !ok || nested == nil {
			dst[k] = v
			continue
		}
		existing, ok := dst[k].(map[string]any)
		if !ok || existing == nil {
			existing = make(map[string]any, len(nested))
			dst[k] = existing
		}
		mergeInto(existing, nested)
	}
}

// Options builds a configuration map from defaults overlaid with config.
// It is equivalent to Merge(map[string]any{}, defaults, config): keys in
// config win, defaults fill the gaps, and neither input is mutated.
//
//	Options(map[string]any{"a": 1}, map[string]any{"a": 3, "b": 2})
//	// → {"a": 3, "b": 2}
func Options(defaults, config map[string]any) map[string]any {
	return Merge(make(map[string]any, len(defaults)+len(config)), defaults, config)
}
