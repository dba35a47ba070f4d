package object

import (
	"bytes"
	"encoding/json"
	"fmt"

	"go.yaml.in/yaml/v4"
)

// Codec encodes values to bytes and back. It is the serializer behind the
// [Serialized] clone mode and [LoadOptions].
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
}

// JSONCodec is a [Codec] backed by encoding/json. Decoded numbers are
// float64 and map keys are encoded in sorted order.
type JSONCodec struct{}

// Marshal implements [Codec].
func (JSONCodec) Marshal(v any) ([]byte, error) { return json.Marshal(v) }

// Unmarshal implements [Codec].
func (JSONCodec) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }

// YAMLCodec is a [Codec] backed by go.yaml.in/yaml/v4. Decoded integers stay
// int and mappings decode to map[string]any.
type YAMLCodec struct{}

// Marshal implements [Codec].
func (YAMLCodec) Marshal(v any) ([]byte, error) { return yaml.Marshal(v) }

// Unmarshal implements [Codec].
func (YAMLCodec) Unmarshal(data []byte, v any) error { return yaml.Unmarshal(data, v) }

// LoadOptions decodes a configuration document with codec and overlays it on
// defaults, as [Options] does. An empty or whitespace-only document yields a
// copy of defaults.
//
//	defaults := map[string]any{"server": map[string]any{"port": 8080, "host": "0.0.0.0"}}
//	cfg, err := object.LoadOptions(object.YAMLCodec{}, defaults, []byte("server:\n  port: 9090\n"))
//	// cfg → {"server": {"port": 9090, "host": "0.0.0.0"}}
func LoadOptions(codec Codec, defaults map[string]any, data []byte) (map[string]any, error) {
	if codec == nil {
		return nil, ErrNilCodec
	}
	var config map[string]any
	if len(bytes.TrimSpace(data)) > 0 {
		if err := codec.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrSerialize, err)
		}
	}
	return Options(defaults, config), nil
}
