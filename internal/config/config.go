// Package config provides the read-only property stores that identity
// detection consults.
//
// Properties come from two places, checked in this order:
//  1. The process environment (EnvProperties)
//  2. A YAML properties file, if one is found
//
// Properties file locations (priority order):
//  1. $APPINFO_PROPERTIES
//  2. ./appinfo.yaml
//  3. $XDG_CONFIG_HOME/appinfo/properties.yaml
//  4. ~/.config/appinfo/properties.yaml
//  5. /etc/appinfo/properties.yaml
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// FileProperties holds properties read from a YAML file. Nested mappings
// are flattened into dotted keys, so
//
//	archaius:
//	  deployment:
//	    applicationId: foo-svc
//
// and
//
//	archaius.deployment.applicationId: foo-svc
//
// are equivalent.
type FileProperties struct {
	values map[string]string
}

// Lookup implements Properties
func (f *FileProperties) Lookup(key string) (string, bool) {
	if f == nil {
		return "", false
	}
	v, ok := f.values[key]
	return v, ok
}

// Len returns the number of properties in the file
func (f *FileProperties) Len() int {
	if f == nil {
		return 0
	}
	return len(f.values)
}

// Load finds the properties file and returns the environment layered over
// it. The returned path is empty when no file was found.
func Load() (Properties, string, error) {
	path := FindPropertiesPath()

	if path == "" {
		// No file - environment only
		return EnvProperties{}, "", nil
	}

	file, err := LoadFromPath(path)
	if err != nil {
		return nil, path, err
	}

	return Chain(EnvProperties{}, file), path, nil
}

// LoadFromPath reads properties from a specific YAML file
func LoadFromPath(path string) (*FileProperties, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read properties: %w", err)
	}

	return Parse(bytes.NewReader(data))
}

// Parse reads YAML properties from r. An empty document yields an empty set.
func Parse(r io.Reader) (*FileProperties, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return &FileProperties{values: map[string]string{}}, nil
		}
		return nil, fmt.Errorf("parse properties: %w", err)
	}

	values := make(map[string]string)
	root := &doc
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("parse properties: top level must be a mapping, got %s", kindName(root.Kind))
	}

	flatten("", root, values)

	return &FileProperties{values: values}, nil
}

// flatten walks a mapping node and records every scalar leaf under its
// dotted path. Null values are skipped so the key reads as unset.
func flatten(prefix string, node *yaml.Node, out map[string]string) {
	if node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}

	switch node.Kind {
	case yaml.MappingNode:
		for i := 0; i+1 < len(node.Content); i += 2 {
			key := node.Content[i].Value
			if prefix != "" {
				key = prefix + "." + key
			}
			flatten(key, node.Content[i+1], out)
		}
	case yaml.SequenceNode:
		items := make([]string, 0, len(node.Content))
		for _, item := range node.Content {
			if item.Kind == yaml.ScalarNode {
				items = append(items, item.Value)
			}
		}
		out[prefix] = strings.Join(items, ",")
	case yaml.ScalarNode:
		if node.Tag == "!!null" {
			return
		}
		out[prefix] = node.Value
	}
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.SequenceNode:
		return "sequence"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "document"
	}
}
