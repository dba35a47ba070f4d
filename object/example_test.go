package object_test

import (
	"fmt"

	"github.com/hasbyte1/go-amp-utils/object"
)

func ExampleMerge() {
	m := object.Merge(
		map[string]any{"a": map[string]any{"x": 1}},
		map[string]any{"a": map[string]any{"y": 2}},
	)
	fmt.Println(m)
	// Output: map[a:map[x:1 y:2]]
}

func ExampleOptions() {
	defaults := map[string]any{"a": 1}
	cfg := object.Options(defaults, map[string]any{"a": 3, "b": 2})
	fmt.Println(cfg, defaults)
	// Output: map[a:3 b:2] map[a:1]
}

func ExampleByPath() {
	m := map[string]any{"say": map[string]any{"hello": "Hello"}}

	v, _ := object.ByPath(m, "say.hello")
	fmt.Println(v)

	v, _ = object.ByPath(m, []string{"say", "hello"}, "Hola")
	fmt.Println(v, m)
	// Output:
	// Hello
	// Hola map[say:map[hello:Hola]]
}

func ExampleClone() {
	src := map[string]any{"tags": []any{"a"}}
	cp := object.Clone(src)
	cp["tags"].([]any)[0] = "b"
	fmt.Println(src, cp, object.Equal(src, cp))
	// Output: map[tags:[a]] map[tags:[b]] false
}

func ExampleMergePatch() {
	m, _ := object.MergePatch(
		map[string]any{"a": 1, "b": 2},
		map[string]any{"b": nil, "c": 3},
	)
	fmt.Println(m)
	// Output: map[a:1 c:3]
}
