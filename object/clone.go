package object

import (
	"bytes"
	"fmt"
	"maps"
	"reflect"
)

// Mode selects how a [Cloner] copies and compares values.
type Mode int

const (
	// Structural walks the in-memory value tree. Cycles, functions and
	// non-finite numbers survive a clone; numbers compare by value across
	// Go numeric types.
	Structural Mode = iota

	// Serialized round-trips values through a [Codec]. Anything the codec
	// cannot represent is dropped, coerced or rejected with [ErrSerialize].
	Serialized
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case Structural:
		return "structural"
	case Serialized:
		return "serialized"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// CloneOptions configures a [Cloner].
type CloneOptions struct {
	// Mode selects structural or serialized behavior.
	Mode Mode

	// Codec is the serializer used in [Serialized] mode. Ignored otherwise.
	Codec Codec
}

// DefaultCloneOptions returns structural mode with a JSON codec on standby.
func DefaultCloneOptions() CloneOptions {
	return CloneOptions{Mode: Structural, Codec: JSONCodec{}}
}

// Cloner clones and compares values according to its [CloneOptions].
// A Cloner is immutable and safe for concurrent use.
type Cloner struct {
	opts CloneOptions
}

// NewCloner validates opts and returns a Cloner.
//
// Returns [ErrInvalidOption] for an unknown mode and [ErrNilCodec] when
// [Serialized] mode has no codec.
func NewCloner(opts CloneOptions) (*Cloner, error) {
	switch opts.Mode {
	case Structural:
	case Serialized:
		if opts.Codec == nil {
			return nil, ErrNilCodec
		}
	default:
		return nil, fmt.Errorf("%w: mode %d", ErrInvalidOption, int(opts.Mode))
	}
	return &Cloner{opts: opts}, nil
}

// Mode returns the configured mode.
func (c *Cloner) Mode() Mode { return c.opts.Mode }

// Clone returns a deep copy of v. In [Structural] mode the error is always
// nil.
func (c *Cloner) Clone(v any) (any, error) {
	if c.opts.Mode == Serialized {
		return serializedClone(c.opts.Codec, v)
	}
	return Clone(v), nil
}

// Equal reports whether a and b are structurally equal. In [Serialized] mode
// the encoded forms are compared byte for byte.
func (c *Cloner) Equal(a, b any) (bool, error) {
	if c.opts.Mode == Serialized {
		return serializedEqual(c.opts.Codec, a, b)
	}
	return Equal(a, b), nil
}

// CloneJSON deep-copies v by encoding it to JSON and decoding the result
// into an any. The copy only holds JSON types: numbers become float64,
// structs become maps, functions and channels make the call fail, and a
// cyclic value fails with the encoder's error wrapped in [ErrSerialize].
func CloneJSON(v any) (any, error) {
	return serializedClone(JSONCodec{}, v)
}

// EqualJSON compares the JSON encodings of a and b. Map keys are encoded in
// sorted order, so key insertion order never matters; everything the
// encoder drops or coerces is invisible to the comparison.
func EqualJSON(a, b any) (bool, error) {
	return serializedEqual(JSONCodec{}, a, b)
}

func serializedClone(codec Codec, v any) (any, error) {
	data, err := codec.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerialize, err)
	}
	var out any
	if err := codec.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerialize, err)
	}
	return out, nil
}

func serializedEqual(codec Codec, a, b any) (bool, error) {
	da, err := codec.Marshal(a)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrSerialize, err)
	}
	db, err := codec.Marshal(b)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrSerialize, err)
	}
	return bytes.Equal(da, db), nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Structural clone
// ─────────────────────────────────────────────────────────────────────────────

// Clone returns a deep copy of v.
//
// Maps, slices, arrays, pointers and interface values are copied
// recursively; shared and cyclic references are preserved in the copy.
// Exported struct fields are copied deeply, unexported ones shallowly.
// Functions and channels are copied by reference.
func Clone[T any](v T) T {
	src := reflect.ValueOf(&v).Elem()
	dst := reflect.New(src.Type()).Elem()
	c := copier{seen: make(map[refKey]reflect.Value)}
	c.copy(dst, src)
	return *dst.Addr().Interface().(*T)
}

type refKey struct {
	ptr uintptr
	typ reflect.Type
	n   int
}

type copier struct {
	seen map[refKey]reflect.Value
}

func (c *copier) copy(dst, src reflect.Value) {
	switch src.Kind() {
	case reflect.Interface:
		if src.IsNil() {
			return
		}
		elem := src.Elem()
		cp := reflect.New(elem.Type()).Elem()
		c.copy(cp, elem)
		dst.Set(cp)

	case reflect.Pointer:
		if src.IsNil() {
			return
		}
		key := refKey{ptr: src.Pointer(), typ: src.Type()}
		if prev, ok := c.seen[key]; ok {
			dst.Set(prev)
			return
		}
		p := reflect.New(src.Type().Elem())
		c.seen[key] = p
		c.copy(p.Elem(), src.Elem())
		dst.Set(p)

	case reflect.Map:
		if src.IsNil() {
			return
		}
		key := refKey{ptr: src.Pointer(), typ: src.Type()}
		if prev, ok := c.seen[key]; ok {
			dst.Set(prev)
			return
		}
		m := reflect.MakeMapWithSize(src.Type(), src.Len())
		c.seen[key] = m
		elemType := src.Type().Elem()
		iter := src.MapRange()
		for iter.Next() {
			v := reflect.New(elemType).Elem()
			c.copy(v, iter.Value())
			m.SetMapIndex(iter.Key(), v)
		}
		dst.Set(m)

	case reflect.Slice:
		if src.IsNil() {
			return
		}
		n := src.Len()
		key := refKey{ptr: src.Pointer(), typ: src.Type(), n: n}
		if n > 0 {
			if prev, ok := c.seen[key]; ok {
				dst.Set(prev)
				return
			}
		}
		s := reflect.MakeSlice(src.Type(), n, n)
		if n > 0 {
			c.seen[key] = s
		}
		for i := 0; i < n; i++ {
			c.copy(s.Index(i), src.Index(i))
		}
		dst.Set(s)

	case reflect.Array:
		for i := 0; i < src.Len(); i++ {
			c.copy(dst.Index(i), src.Index(i))
		}

	case reflect.Struct:
		dst.Set(src)
		for i := 0; i < src.NumField(); i++ {
			if f := dst.Field(i); f.CanSet() {
				c.copy(f, src.Field(i))
			}
		}

	default:
		dst.Set(src)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Structural equality
// ─────────────────────────────────────────────────────────────────────────────

// Equal reports whether a and b hold the same value tree.
//
// Unlike [reflect.DeepEqual] it treats the value model loosely where JSON
// would: numbers compare by value regardless of Go type (1 == 1.0 ==
// uint8(1)), strings and maps compare by content across named types, slices
// and arrays compare element-wise, and nil equals a nil map, slice or
// pointer. Map key order never matters.
func Equal(a, b any) bool {
	e := equaler{seen: make(map[pairKey]bool)}
	return e.equal(reflect.ValueOf(a), reflect.ValueOf(b))
}

type pairKey struct {
	a, b uintptr
	typ  reflect.Type
}

type equaler struct {
	seen map[pairKey]bool
}

func (e *equaler) equal(a, b reflect.Value) bool {
	a, b = unwrap(a), unwrap(b)
	aNil, bNil := isNil(a), isNil(b)
	if aNil || bNil {
		return aNil && bNil
	}

	if isNumber(a) && isNumber(b) {
		return numbersEqual(a, b)
	}

	switch {
	case a.Kind() == reflect.String && b.Kind() == reflect.String:
		return a.String() == b.String()
	case a.Kind() == reflect.Bool && b.Kind() == reflect.Bool:
		return a.Bool() == b.Bool()
	case a.Kind() == reflect.Map && b.Kind() == reflect.Map:
		return e.mapsEqual(a, b)
	case isSequence(a) && isSequence(b):
		return e.sequencesEqual(a, b)
	case a.Kind() == reflect.Pointer && b.Kind() == reflect.Pointer:
		if a.Type() != b.Type() {
			return false
		}
		if a.Pointer() == b.Pointer() || e.visited(a, b) {
			return true
		}
		return e.equal(a.Elem(), b.Elem())
	case a.Kind() == reflect.Struct && b.Kind() == reflect.Struct:
		if a.Type() != b.Type() {
			return false
		}
		for i := 0; i < a.NumField(); i++ {
			if !e.equal(a.Field(i), b.Field(i)) {
				return false
			}
		}
		return true
	case a.Kind() == reflect.Complex64 || a.Kind() == reflect.Complex128:
		return (b.Kind() == reflect.Complex64 || b.Kind() == reflect.Complex128) &&
			a.Complex() == b.Complex()
	case a.Kind() == b.Kind() && (a.Kind() == reflect.Chan || a.Kind() == reflect.UnsafePointer):
		return a.Type() == b.Type() && a.Pointer() == b.Pointer()
	}
	// Non-nil functions are never equal, as with reflect.DeepEqual.
	return false
}

func (e *equaler) mapsEqual(a, b reflect.Value) bool {
	if a.Len() != b.Len() {
		return false
	}
	if a.Pointer() == b.Pointer() && a.Type() == b.Type() {
		return true
	}
	if e.visited(a, b) {
		return true
	}
	aKey, bKey := a.Type().Key(), b.Type().Key()
	switch {
	case aKey == bKey:
	case aKey.Kind() == reflect.String && bKey.Kind() == reflect.String:
	default:
		return e.mapsEqualByKey(a, b)
	}
	iter := a.MapRange()
	for iter.Next() {
		k := iter.Key()
		if k.Type() != bKey {
			k = k.Convert(bKey)
		}
		bv := b.MapIndex(k)
		if !bv.IsValid() || !e.equal(iter.Value(), bv) {
			return false
		}
	}
	return true
}

// mapsEqualByKey pairs up the keys of two maps whose key types differ by
// comparing the keys with equal, so map[int]any{1: x} matches
// map[float64]any{1: x} but never map[string]any{"\x01": x}. Each key of b
// is used at most once. Candidate pairs are compared on a copy of the seen
// set so a failed attempt leaves no pairs marked as visited.
func (e *equaler) mapsEqualByKey(a, b reflect.Value) bool {
	bKeys := b.MapKeys()
	used := make([]bool, len(bKeys))
	iter := a.MapRange()
	for iter.Next() {
		matched := false
		for i, bk := range bKeys {
			if used[i] {
				continue
			}
			trial := equaler{seen: maps.Clone(e.seen)}
			if !trial.equal(iter.Key(), bk) || !trial.equal(iter.Value(), b.MapIndex(bk)) {
				continue
			}
			e.seen = trial.seen
			used[i], matched = true, true
			break
		}
		if !matched {
			return false
		}
	}
	return true
}

func (e *equaler) sequencesEqual(a, b reflect.Value) bool {
	if a.Len() != b.Len() {
		return false
	}
	if a.Kind() == reflect.Slice && b.Kind() == reflect.Slice && a.Len() > 0 {
		if a.Pointer() == b.Pointer() && a.Type() == b.Type() {
			return true
		}
		if e.visited(a, b) {
			return true
		}
	}
	for i := 0; i < a.Len(); i++ {
		if !e.equal(a.Index(i), b.Index(i)) {
			return false
		}
	}
	return true
}

// visited records the (a, b) reference pair and reports whether it was
// already being compared higher up the tree.
func (e *equaler) visited(a, b reflect.Value) bool {
	key := pairKey{a: a.Pointer(), b: b.Pointer(), typ: a.Type()}
	if e.seen[key] {
		return true
	}
	e.seen[key] = true
	return false
}

func unwrap(v reflect.Value) reflect.Value {
	for v.IsValid() && v.Kind() == reflect.Interface {
		if v.IsNil() {
			return reflect.Value{}
		}
		v = v.Elem()
	}
	return v
}

func isNil(v reflect.Value) bool {
	if !v.IsValid() {
		return true
	}
	switch v.Kind() {
	case reflect.Map, reflect.Slice, reflect.Pointer, reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return v.IsNil()
	}
	return false
}

func isSequence(v reflect.Value) bool {
	return v.Kind() == reflect.Slice || v.Kind() == reflect.Array
}

func isNumber(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

func numbersEqual(a, b reflect.Value) bool {
	ka, kb := numberClass(a), numberClass(b)
	switch {
	case ka == classInt && kb == classInt:
		return a.Int() == b.Int()
	case ka == classUint && kb == classUint:
		return a.Uint() == b.Uint()
	case ka == classInt && kb == classUint:
		return a.Int() >= 0 && uint64(a.Int()) == b.Uint()
	case ka == classUint && kb == classInt:
		return b.Int() >= 0 && a.Uint() == uint64(b.Int())
	}
	return toFloat(a) == toFloat(b)
}

const (
	classInt = iota
	classUint
	classFloat
)

func numberClass(v reflect.Value) int {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return classInt
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return classUint
	}
	return classFloat
}

func toFloat(v reflect.Value) float64 {
	switch numberClass(v) {
	case classInt:
		return float64(v.Int())
	case classUint:
		return float64(v.Uint())
	}
	return v.Float()
}
