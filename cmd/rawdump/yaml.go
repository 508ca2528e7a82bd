// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"gopkg.in/yaml.v3"

	"github.com/bufbuild/gridlang/red"
)

type yamlFile struct {
	Path string   `yaml:"path"`
	Root yamlTree `yaml:"root"`
}

type yamlTree struct {
	Kind     string     `yaml:"kind"`
	Span     [2]int     `yaml:"span,flow"`
	Text     yamlText   `yaml:"text,omitempty"`
	Children []yamlTree `yaml:"children,omitempty"`
}

// yamlText is token text. It is always double-quoted, since block scalars
// cannot hold text that is nothing but line breaks.
type yamlText string

// MarshalYAML implements [yaml.Marshaler].
func (t yamlText) MarshalYAML() (any, error) {
	return &yaml.Node{
		Kind:  yaml.ScalarNode,
		Style: yaml.DoubleQuotedStyle,
		Tag:   "!!str",
		Value: string(t),
	}, nil
}

func toYAML(path string, root *red.Node) yamlFile {
	return yamlFile{Path: path, Root: nodeToYAML(root)}
}

func nodeToYAML(n *red.Node) yamlTree {
	tree := yamlTree{Kind: n.Kind().String(), Span: [2]int{n.Offset(), n.End()}}
	for child := range n.ChildrenWithTokens() {
		switch child := child.(type) {
		case *red.Node:
			tree.Children = append(tree.Children, nodeToYAML(child))
		case *red.Token:
			tree.Children = append(tree.Children, yamlTree{
				Kind: child.Kind().String(),
				Span: [2]int{child.Offset(), child.End()},
				Text: yamlText(child.Text()),
			})
		}
	}
	return tree
}
