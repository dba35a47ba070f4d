package arr

import "errors"

// ErrNotHashable is returned by [UniqueDeep] when an element cannot be
// fingerprinted (functions, channels, cyclic values, NaN).
var ErrNotHashable = errors.New("arr: element cannot be fingerprinted")
