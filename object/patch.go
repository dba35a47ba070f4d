package object

import (
	"encoding/hex"
	"encoding/json"
	"fmt"

	jsonpatch "github.com/evanphx/json-patch/v5"
	"golang.org/x/crypto/blake2b"
)

// MergePatch applies an RFC 7386 JSON merge patch to target and returns the
// result as a new map; target is not modified.
//
// It differs from [Merge] in one rule: a nil value in patch deletes the key
// instead of storing nil. Values pass through JSON, so numbers come back as
// float64.
//
//	MergePatch(map[string]any{"a": 1, "b": 2}, map[string]any{"b": nil, "c": 3})
//	// → {"a": 1, "c": 3}
func MergePatch(target, patch map[string]any) (map[string]any, error) {
	doc, err := marshalObject(target)
	if err != nil {
		return nil, err
	}
	p, err := marshalObject(patch)
	if err != nil {
		return nil, err
	}
	merged, err := jsonpatch.MergePatch(doc, p)
	if err != nil {
		return nil, fmt.Errorf("object: apply merge patch: %w", err)
	}
	return unmarshalObject(merged)
}

// Diff returns the RFC 7386 merge patch that turns original into modified.
// Applying it with [MergePatch] to original yields a value [Equal] to
// modified. Keys removed in modified appear with a nil value.
func Diff(original, modified map[string]any) (map[string]any, error) {
	a, err := marshalObject(original)
	if err != nil {
		return nil, err
	}
	b, err := marshalObject(modified)
	if err != nil {
		return nil, err
	}
	patch, err := jsonpatch.CreateMergePatch(a, b)
	if err != nil {
		return nil, fmt.Errorf("object: create merge patch: %w", err)
	}
	return unmarshalObject(patch)
}

// Fingerprint returns a hex-encoded BLAKE2b-256 digest of v's canonical JSON
// encoding. Values that are [EqualJSON] share a fingerprint regardless of map
// insertion order or Go numeric type.
func Fingerprint(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrSerialize, err)
	}
	sum := blake2b.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}

func marshalObject(m map[string]any) ([]byte, error) {
	if m == nil {
		return []byte("{}"), nil
	}
	data, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerialize, err)
	}
	return data, nil
}

func unmarshalObject(data []byte) (map[string]any, error) {
	out := make(map[string]any)
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerialize, err)
	}
	return out, nil
}
