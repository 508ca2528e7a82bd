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

// Package green provides the immutable half of the syntax tree.
//
// A green tree stores only kinds, text and widths. It has no parent pointers
// and no absolute offsets, which is what allows identical subtrees to be
// shared: the same *[Node] can appear at many places in a tree, and in many
// trees. Position-aware traversal is the job of package red.
//
// Green trees are built with a [Builder]. Once built, nothing in this package
// mutates a tree, so a tree can be read from any number of goroutines.
package green

import (
	"fmt"
	"iter"
	"strings"

	"github.com/bufbuild/gridlang/internal/intern"
	"github.com/bufbuild/gridlang/syntax"
)

// Element is either a *[Node] or a *[Token].
//
// The interface is closed: no types outside of this package implement it.
type Element interface {
	// Kind returns this element's syntax kind.
	Kind() syntax.Kind
	// Width returns the length of the text under this element, in bytes.
	Width() int

	element()
}

// Token is a leaf of a green tree.
type Token struct {
	kind  syntax.Kind
	text  intern.ID
	width int
}

// Kind implements [Element].
func (t *Token) Kind() syntax.Kind { return t.kind }

// Width implements [Element].
func (t *Token) Width() int { return t.width }

// TextID returns the interned text of this token.
func (t *Token) TextID() intern.ID { return t.text }

// Text returns this token's text, resolved through the table that interned it.
func (t *Token) Text(table *intern.Table) string {
	return table.Value(t.text)
}

func (*Token) element() {}

// Node is a composite node of a green tree.
type Node struct {
	kind     syntax.Kind
	width    int
	children []Element
}

// Kind implements [Element].
func (n *Node) Kind() syntax.Kind { return n.kind }

// Width implements [Element].
func (n *Node) Width() int { return n.width }

func (*Node) element() {}

// NumChildren returns the number of children of this node, tokens included.
func (n *Node) NumChildren() int { return len(n.children) }

// Child returns the ith child of this node.
func (n *Node) Child(i int) Element { return n.children[i] }

// Children returns an iterator over this node's children, tokens included.
func (n *Node) Children() iter.Seq2[int, Element] {
	return func(yield func(int, Element) bool) {
		for i, child := range n.children {
			if !yield(i, child) {
				return
			}
		}
	}
}

// Tokens returns an iterator over every token under this node, in document
// order.
func (n *Node) Tokens() iter.Seq[*Token] {
	return func(yield func(*Token) bool) {
		n.tokens(yield)
	}
}

func (n *Node) tokens(yield func(*Token) bool) bool {
	for _, child := range n.children {
		switch child := child.(type) {
		case *Token:
			if !yield(child) {
				return false
			}
		case *Node:
			if !child.tokens(yield) {
				return false
			}
		}
	}
	return true
}

// Text reconstructs the source text under this node.
func (n *Node) Text(table *intern.Table) string {
	var buf strings.Builder
	buf.Grow(n.width)
	for tok := range n.Tokens() {
		buf.WriteString(tok.Text(table))
	}
	return buf.String()
}

// Equal compares two green trees structurally.
//
// Shared subtrees are compared by pointer first, so comparing two trees built
// from the same [Cache] is usually cheap.
func (n *Node) Equal(m *Node) bool {
	if n == m {
		return true
	}
	if n == nil || m == nil {
		return false
	}
	if n.kind != m.kind || n.width != m.width || len(n.children) != len(m.children) {
		return false
	}
	for i, a := range n.children {
		if !elementsEqual(a, m.children[i]) {
			return false
		}
	}
	return true
}

// Equal compares two tokens by kind and interned text.
//
// Only tokens interned through the same table can compare equal.
func (t *Token) Equal(u *Token) bool {
	if t == u {
		return true
	}
	if t == nil || u == nil {
		return false
	}
	return t.kind == u.kind && t.text == u.text && t.width == u.width
}

func elementsEqual(a, b Element) bool {
	switch a := a.(type) {
	case *Node:
		b, ok := b.(*Node)
		return ok && a.Equal(b)
	case *Token:
		b, ok := b.(*Token)
		return ok && a.Equal(b)
	default:
		return false
	}
}

// String implements [fmt.Stringer].
func (n *Node) String() string {
	return fmt.Sprintf("%v@%d", n.kind, n.width)
}

// String implements [fmt.Stringer].
func (t *Token) String() string {
	return fmt.Sprintf("%v@%d", t.kind, t.width)
}
