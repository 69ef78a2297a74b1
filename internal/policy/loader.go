package policy

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ExtensionList is a list of extensions that also accepts a single string in YAML.
type ExtensionList []string

// UnmarshalYAML accepts either a single string or a sequence of strings.
// An empty string or empty sequence yields an empty, non-nil list.
func (l *ExtensionList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var str string

		err := node.Decode(&str)
		if err != nil {
			return err
		}

		if str != "" {
			*l = ExtensionList{str}
		} else {
			*l = ExtensionList{}
		}

		return nil

	case yaml.SequenceNode:
		var arr []string

		err := node.Decode(&arr)
		if err != nil {
			return err
		}

		*l = append(ExtensionList{}, arr...)

		return nil

	default:
		return fmt.Errorf("expected string or list of extensions, got %v", node.Kind)
	}
}

// IsZero reports whether the list is absent, so that omitempty keeps an
// explicitly empty list.
func (l ExtensionList) IsZero() bool {
	return l == nil
}

// LoadFile loads and parses a YAML options file from the given path.
func LoadFile(path string) (*Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	opts, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return opts, nil
}

// Parse parses YAML data into Options. Keys absent from the document stay nil.
func Parse(data []byte) (*Options, error) {
	var opts Options

	err := yaml.Unmarshal(data, &opts)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	return &opts, nil
}

// Marshal serializes Options to YAML.
func Marshal(opts *Options) ([]byte, error) {
	return yaml.Marshal(opts)
}
