package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/hasbyte1/go-amp-utils/object"
)

func (a *app) mergeCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "merge FILE...",
		Short: "Deep-merge JSON or YAML documents, later files winning",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			out, err := codecNamed(format)
			if err != nil {
				return err
			}
			cfg := map[string]any{}
			for _, path := range args {
				if cfg, err = a.loadInto(cfg, path); err != nil {
					return err
				}
			}
			data, err := out.Marshal(cfg)
			if err != nil {
				return fmt.Errorf("encode %s: %w", format, err)
			}
			_, err = c.OutOrStdout().Write(withNewline(data))
			return err
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "yaml", "output format: yaml or json")
	return cmd
}

func (a *app) getCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get FILE PATH",
		Short: "Print the value at a dot path or JSONPath expression",
		Long: "Print the value at PATH in a JSON or YAML document. PATH is a dot path " +
			"such as server.port, or a JSONPath expression when it starts with '$'.",
		Args: cobra.ExactArgs(2),
		RunE: func(c *cobra.Command, args []string) error {
			doc, err := a.loadInto(nil, args[0])
			if err != nil {
				return err
			}
			path := args[1]

			var v any
			if strings.HasPrefix(path, "$") {
				if v, err = object.Query(doc, path); err != nil {
					return err
				}
			} else {
				var ok bool
				if v, ok = object.Get(doc, path); !ok {
					return fmt.Errorf("path %q not found", path)
				}
			}
			return printValue(c, v)
		},
	}
}

// loadInto decodes the document at path and merges it over base.
func (a *app) loadInto(base map[string]any, path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	codec := codecFor(path)
	cfg, err := object.LoadOptions(codec, base, data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	a.log.WithFields(logrus.Fields{"file": path, "codec": fmt.Sprintf("%T", codec)}).Debug("loaded document")
	return cfg, nil
}

func codecFor(path string) object.Codec {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return object.YAMLCodec{}
	}
	return object.JSONCodec{}
}

func codecNamed(name string) (object.Codec, error) {
	switch strings.ToLower(name) {
	case "yaml", "yml":
		return object.YAMLCodec{}, nil
	case "json":
		return object.JSONCodec{}, nil
	}
	return nil, fmt.Errorf("unknown format %q", name)
}

func printValue(c *cobra.Command, v any) error {
	if s, ok := v.(string); ok {
		_, err := fmt.Fprintln(c.OutOrStdout(), s)
		return err
	}
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	_, err = c.OutOrStdout().Write(withNewline(data))
	return err
}

func withNewline(b []byte) []byte {
	if len(b) > 0 && b[len(b)-1] == '\n' {
		return b
	}
	return append(b, '\n')
}
