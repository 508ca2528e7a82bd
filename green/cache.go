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

package green

import (
	"github.com/bufbuild/gridlang/internal/intern"
	"github.com/bufbuild/gridlang/syntax"
)

// maxCachedChildren is the largest node that [Cache] deduplicates. Larger
// nodes are rarely repeated, and hashing them costs more than it saves.
const maxCachedChildren = 3

// Cache deduplicates green tokens and small green nodes, so that structurally
// identical subtrees share one allocation.
//
// Nodes are keyed by their children's pointers, which is sound because their
// children went through the same cache first.
//
// A zero Cache is empty and ready to use.
type Cache struct {
	table  intern.Table
	tokens map[tokenKey]*Token
	nodes  map[nodeKey]*Node
}

type tokenKey struct {
	kind syntax.Kind
	text intern.ID
}

type nodeKey struct {
	kind     syntax.Kind
	len      int
	children [maxCachedChildren]Element
}

// Table returns the interning table that backs this cache's tokens.
func (c *Cache) Table() *intern.Table {
	return &c.table
}

// Token returns a token with the given kind and text.
func (c *Cache) Token(kind syntax.Kind, text string) *Token {
	key := tokenKey{kind: kind, text: c.table.Intern(text)}
	if tok, ok := c.tokens[key]; ok {
		return tok
	}

	tok := &Token{kind: kind, text: key.text, width: len(text)}
	if c.tokens == nil {
		c.tokens = make(map[tokenKey]*Token)
	}
	c.tokens[key] = tok
	return tok
}

// Node returns a node with the given kind and children.
//
// children is copied; the caller may reuse it.
func (c *Cache) Node(kind syntax.Kind, children []Element) *Node {
	if len(children) > maxCachedChildren {
		return newNode(kind, children)
	}

	key := nodeKey{kind: kind, len: len(children)}
	copy(key.children[:], children)
	if node, ok := c.nodes[key]; ok {
		return node
	}

	node := newNode(kind, children)
	if c.nodes == nil {
		c.nodes = make(map[nodeKey]*Node)
	}
	c.nodes[key] = node
	return node
}

func newNode(kind syntax.Kind, children []Element) *Node {
	node := &Node{
		kind:     kind,
		children: append([]Element(nil), children...),
	}
	for _, child := range children {
		node.width += child.Width()
	}
	return node
}
