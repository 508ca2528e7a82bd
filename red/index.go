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

package red

import (
	"github.com/tidwall/btree"
)

// Index answers offset queries against a tree.
//
// Building an index walks every token once; afterwards, lookups are
// logarithmic in the number of tokens.
type Index struct {
	root *Node
	// Tokens keyed by their end offset, so that the first entry whose key is
	// past some offset is the token containing it.
	tokens btree.Map[int, *Token]
}

// NewIndex builds an index over the tree containing root.
func NewIndex(root *Node) *Index {
	x := &Index{root: root.Root()}
	for tok := range x.root.Tokens() {
		if tok.End() == tok.Offset() {
			continue
		}
		x.tokens.Set(tok.End(), tok)
	}
	return x
}

// Root returns the root of the indexed tree.
func (x *Index) Root() *Node { return x.root }

// Len returns the number of non-empty tokens in the index.
func (x *Index) Len() int { return x.tokens.Len() }

// TokenAt returns the token containing the byte at offset, or nil if offset
// is out of bounds.
func (x *Index) TokenAt(offset int) *Token {
	if offset < 0 {
		return nil
	}
	iter := x.tokens.Iter()
	if !iter.Seek(offset + 1) {
		return nil
	}
	return iter.Value()
}

// Covering returns the smallest element that contains the byte range
// [start, end). Returns nil if the range is not within the tree.
func (x *Index) Covering(start, end int) Element {
	if start > end || start < 0 || end > x.root.End() {
		return nil
	}
	tok := x.TokenAt(start)
	if tok == nil {
		if start == x.root.End() {
			return x.root
		}
		return nil
	}
	if end <= tok.End() {
		return tok
	}
	for p := tok.Parent(); p != nil; p = p.Parent() {
		if p.Offset() <= start && end <= p.End() {
			return p
		}
	}
	return x.root
}
