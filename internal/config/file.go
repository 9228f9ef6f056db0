/*********************************************************************
 * Copyright (c) Rackops Authors 2026
 * SPDX-License-Identifier: Apache-2.0
 **********************************************************************/

package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/rack-management-toolkit/rackops/pkg/utils"
	"gopkg.in/yaml.v3"
)

// Value is one node of the configuration tree: either a leaf string or a
// section keyed by lowercased names. Exactly one of the two is populated.
type Value struct {
	Leaf    string
	Section map[string]Value
}

// IsSection reports whether the node is a branch rather than a leaf string.
func (v Value) IsSection() bool {
	return v.Section != nil
}

// UnmarshalYAML normalizes the document recursively: mapping keys are
// lowercased at every depth, scalars keep their literal string form.
// Anything that is neither a scalar nor a mapping is malformed.
func (v *Value) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		v.Leaf = node.Value

		return nil
	case yaml.MappingNode:
		v.Section = make(map[string]Value, len(node.Content)/2)

		for i := 0; i+1 < len(node.Content); i += 2 {
			var child Value
			if err := node.Content[i+1].Decode(&child); err != nil {
				return err
			}

			v.Section[strings.ToLower(node.Content[i].Value)] = child
		}

		return nil
	case yaml.AliasNode:
		return node.Alias.Decode(v)
	default:
		return fmt.Errorf("line %d: expected a value or a section", node.Line)
	}
}

// File is the parsed configuration file: lowercased section and key names,
// arbitrary nesting depth.
type File map[string]Value

// Load parses the configuration file at path. The file is optional: a
// missing or unreadable path yields an empty File and no error. Malformed
// content is terminal and surfaces as ConfigParseError.
func Load(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, nil
	}

	var root Value

	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, utils.ConfigParseError.WithDetails(err.Error())
	}

	if root.Section == nil {
		if root.Leaf != "" {
			return nil, utils.ConfigParseError.WithDetails("top level must be a mapping")
		}

		// empty file
		return File{}, nil
	}

	return File(root.Section), nil
}

// Lookup flattens the section structure for the resolution precedence
// chain: a top-level leaf wins, then a leaf inside the "rackops" section.
// Keys are matched case-insensitively.
func (f File) Lookup(key string) (string, bool) {
	key = strings.ToLower(key)

	if v, ok := f[key]; ok && !v.IsSection() {
		return v.Leaf, true
	}

	if sec, ok := f[utils.ConfigSection]; ok && sec.IsSection() {
		if v, ok := sec.Section[key]; ok && !v.IsSection() {
			return v.Leaf, true
		}
	}

	return "", false
}
