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

package ast

import (
	"fmt"
	"iter"

	"github.com/bufbuild/gridlang/grid"
	"github.com/bufbuild/gridlang/red"
	"github.com/bufbuild/gridlang/syntax"
)

// Node is implemented by every wrapper type in this package.
type Node interface {
	// Syntax returns the wrapped node, or nil for a zero wrapper.
	Syntax() *red.Node
	IsZero() bool
}

// ParseCell decodes a cell token into grid coordinates.
func ParseCell(tok *red.Token) (grid.Cell, error) {
	if tok == nil || tok.Kind() != syntax.Cell {
		return grid.Cell{}, fmt.Errorf("ast: not a cell token: %v", tok)
	}
	return grid.ParseCell(tok.Text())
}

// Bounds decodes both ends of this range.
func (x CellRange) Bounds() (start, end grid.Cell, err error) {
	start, err = ParseCell(x.Start())
	if err != nil {
		return grid.Cell{}, grid.Cell{}, err
	}
	end, err = ParseCell(x.End())
	if err != nil {
		return grid.Cell{}, grid.Cell{}, err
	}
	return start, end, nil
}

// nthChild returns the i-th child of n with the given kind.
func nthChild(n *red.Node, kind syntax.Kind, i int) *red.Node {
	if n == nil {
		return nil
	}
	for child := range n.Children() {
		if child.Kind() != kind {
			continue
		}
		if i == 0 {
			return child
		}
		i--
	}
	return nil
}

// nthToken is like nthChild, but for tokens.
func nthToken(n *red.Node, kind syntax.Kind, i int) *red.Token {
	if n == nil {
		return nil
	}
	for child := range n.ChildrenWithTokens() {
		tok, ok := child.(*red.Token)
		if !ok || tok.Kind() != kind {
			continue
		}
		if i == 0 {
			return tok
		}
		i--
	}
	return nil
}

func castAll[T any](n *red.Node, kind syntax.Kind, cast func(*red.Node) T) iter.Seq[T] {
	return func(yield func(T) bool) {
		if n == nil {
			return
		}
		for child := range n.Children() {
			if child.Kind() == kind && !yield(cast(child)) {
				return
			}
		}
	}
}

// variantOf returns the first child of n that is not trivia. This is what
// an enum node holds.
func variantOf(n *red.Node) red.Element {
	if n == nil {
		return nil
	}
	for child := range n.ChildrenWithTokens() {
		if !child.Kind().IsTrivia() {
			return child
		}
	}
	return nil
}

func variantNode(n *red.Node) *red.Node {
	node, _ := variantOf(n).(*red.Node)
	return node
}

func variantToken(n *red.Node, kind syntax.Kind) *red.Token {
	tok, ok := variantOf(n).(*red.Token)
	if !ok || tok.Kind() != kind {
		return nil
	}
	return tok
}
