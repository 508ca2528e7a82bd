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

// Package red provides cursors over green trees.
//
// A red [Node] is a green node plus the things a green node cannot know about
// itself: its parent, its index within that parent, and its absolute byte
// offset in the file. Cursors are created lazily while walking down from
// [NewRoot], are cheap, and are never canonical: deriving the same cursor
// twice yields two equal-but-distinct values. Compare cursors with Is, not
// ==.
//
// Cursors never mutate the green tree, so any number of them, on any number
// of goroutines, may walk the same tree.
package red

import (
	"fmt"
	"iter"

	"github.com/bufbuild/gridlang/green"
	"github.com/bufbuild/gridlang/internal/intern"
	"github.com/bufbuild/gridlang/syntax"
)

// Element is either a *[Node] or a *[Token].
type Element interface {
	// Kind returns the syntax kind of this element.
	Kind() syntax.Kind
	// Parent returns the node containing this element. Nil for the root.
	Parent() *Node
	// Index returns the index of this element among its parent's children.
	Index() int
	// Offset returns the byte offset at which this element starts.
	Offset() int
	// End returns the byte offset just past the end of this element.
	End() int
	// Text returns the source text under this element.
	Text() string

	element()
}

// Node is a cursor pointing at a green node.
type Node struct {
	green  *green.Node
	parent *Node
	table  *intern.Table
	index  int
	offset int
}

// NewRoot returns a cursor for the root of a tree, whose text is resolved
// through table.
func NewRoot(root *green.Node, table *intern.Table) *Node {
	return &Node{green: root, table: table}
}

// Kind implements [Element].
func (n *Node) Kind() syntax.Kind { return n.green.Kind() }

// Green returns the green node this cursor points at.
func (n *Node) Green() *green.Node { return n.green }

// Table returns the interning table of the tree this cursor walks.
func (n *Node) Table() *intern.Table { return n.table }

// Parent implements [Element].
func (n *Node) Parent() *Node { return n.parent }

// Index implements [Element].
func (n *Node) Index() int { return n.index }

// Offset implements [Element].
func (n *Node) Offset() int { return n.offset }

// End implements [Element].
func (n *Node) End() int { return n.offset + n.green.Width() }

// Text implements [Element].
func (n *Node) Text() string { return n.green.Text(n.table) }

// Root walks up to the root of this cursor's tree.
func (n *Node) Root() *Node {
	for n.parent != nil {
		n = n.parent
	}
	return n
}

// Is returns whether two cursors point at the same place in the same tree.
func (n *Node) Is(m *Node) bool {
	if n == nil || m == nil {
		return n == m
	}
	return n.green == m.green && n.offset == m.offset
}

// NumChildren returns the number of children of this node, tokens included.
func (n *Node) NumChildren() int { return n.green.NumChildren() }

// ChildAt returns a cursor for the ith child of this node.
//
// This walks the preceding children to compute the child's offset.
func (n *Node) ChildAt(i int) Element {
	offset := n.offset
	for j := range i {
		offset += n.green.Child(j).Width()
	}
	return n.child(i, offset)
}

func (n *Node) child(i, offset int) Element {
	switch g := n.green.Child(i).(type) {
	case *green.Node:
		return &Node{green: g, parent: n, table: n.table, index: i, offset: offset}
	case *green.Token:
		return &Token{green: g, parent: n, index: i, offset: offset}
	default:
		panic(fmt.Sprintf("gridlang/red: unexpected green element %T", g))
	}
}

// ChildrenWithTokens returns an iterator over cursors for this node's
// children, tokens included.
func (n *Node) ChildrenWithTokens() iter.Seq[Element] {
	return func(yield func(Element) bool) {
		offset := n.offset
		for i := range n.green.NumChildren() {
			child := n.child(i, offset)
			if !yield(child) {
				return
			}
			offset = child.End()
		}
	}
}

// Children returns an iterator over cursors for this node's child nodes,
// skipping tokens.
func (n *Node) Children() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		for child := range n.ChildrenWithTokens() {
			if node, ok := child.(*Node); ok && !yield(node) {
				return
			}
		}
	}
}

// Descendants returns an iterator over this node and every node below it,
// in preorder.
func (n *Node) Descendants() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		n.descendants(yield)
	}
}

func (n *Node) descendants(yield func(*Node) bool) bool {
	if !yield(n) {
		return false
	}
	for child := range n.Children() {
		if !child.descendants(yield) {
			return false
		}
	}
	return true
}

// Tokens returns an iterator over every token under this node, in document
// order.
func (n *Node) Tokens() iter.Seq[*Token] {
	return func(yield func(*Token) bool) {
		n.tokens(yield)
	}
}

func (n *Node) tokens(yield func(*Token) bool) bool {
	for child := range n.ChildrenWithTokens() {
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

// FirstToken returns the first token under this node, or nil if it has none.
func (n *Node) FirstToken() *Token {
	for tok := range n.Tokens() {
		return tok
	}
	return nil
}

// Ancestors returns an iterator over this node's ancestors, starting with its
// parent.
func (n *Node) Ancestors() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		for p := n.parent; p != nil; p = p.parent {
			if !yield(p) {
				return
			}
		}
	}
}

// NextSibling returns the element after this one in its parent, or nil.
func (n *Node) NextSibling() Element { return nextSibling(n) }

// PrevSibling returns the element before this one in its parent, or nil.
func (n *Node) PrevSibling() Element { return prevSibling(n) }

// String implements [fmt.Stringer].
func (n *Node) String() string {
	return fmt.Sprintf("%v@%d..%d", n.Kind(), n.Offset(), n.End())
}

func (*Node) element() {}

// Token is a cursor pointing at a green token.
type Token struct {
	green  *green.Token
	parent *Node
	index  int
	offset int
}

// Kind implements [Element].
func (t *Token) Kind() syntax.Kind { return t.green.Kind() }

// Green returns the green token this cursor points at.
func (t *Token) Green() *green.Token { return t.green }

// Parent implements [Element].
func (t *Token) Parent() *Node { return t.parent }

// Index implements [Element].
func (t *Token) Index() int { return t.index }

// Offset implements [Element].
func (t *Token) Offset() int { return t.offset }

// End implements [Element].
func (t *Token) End() int { return t.offset + t.green.Width() }

// Text implements [Element].
func (t *Token) Text() string { return t.green.Text(t.parent.table) }

// Is returns whether two cursors point at the same token in the same tree.
func (t *Token) Is(u *Token) bool {
	if t == nil || u == nil {
		return t == u
	}
	return t.green == u.green && t.offset == u.offset
}

// NextSibling returns the element after this one in its parent, or nil.
func (t *Token) NextSibling() Element { return nextSibling(t) }

// PrevSibling returns the element before this one in its parent, or nil.
func (t *Token) PrevSibling() Element { return prevSibling(t) }

// String implements [fmt.Stringer].
func (t *Token) String() string {
	return fmt.Sprintf("%v@%d..%d %q", t.Kind(), t.Offset(), t.End(), t.Text())
}

func (*Token) element() {}

func nextSibling(e Element) Element {
	p := e.Parent()
	if p == nil || e.Index()+1 >= p.NumChildren() {
		return nil
	}
	return p.child(e.Index()+1, e.End())
}

func prevSibling(e Element) Element {
	p := e.Parent()
	if p == nil || e.Index() == 0 {
		return nil
	}
	i := e.Index() - 1
	return p.child(i, e.Offset()-p.green.Child(i).Width())
}
