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
	"fmt"

	"github.com/bufbuild/gridlang/internal/intern"
	"github.com/bufbuild/gridlang/syntax"
)

// Builder constructs a green tree from a stream of start/token/finish events.
//
// A Builder has exactly one writer. All siblings at every open depth live in
// one flat slice; each open node remembers where its first child starts. This
// is what makes [Builder.Checkpoint] free: a checkpoint is just a length.
//
// Misusing a Builder (finishing a node that was never started, starting a
// node at a checkpoint from another depth, and so on) is a bug in the caller
// and panics.
type Builder struct {
	cache    *Cache
	parents  []frame
	children []Element
	done     bool
}

type frame struct {
	kind  syntax.Kind
	first int
}

// Checkpoint marks a position among the siblings of the node currently being
// built. See [Builder.StartNodeAt] and [Builder.Revert].
type Checkpoint struct {
	depth, index int
}

// NewBuilder returns a new builder with a fresh [Cache].
func NewBuilder() *Builder {
	return NewBuilderWithCache(new(Cache))
}

// NewBuilderWithCache returns a new builder that interns through cache.
func NewBuilderWithCache(cache *Cache) *Builder {
	return &Builder{cache: cache}
}

// Depth returns the number of nodes that have been started but not finished.
func (b *Builder) Depth() int {
	return len(b.parents)
}

// StartNode starts a new node, which becomes the parent of every element
// added until the matching [Builder.FinishNode].
func (b *Builder) StartNode(kind syntax.Kind) {
	b.checkLive()
	if !kind.IsNode() {
		panic(fmt.Sprintf("gridlang/green: StartNode called with non-node kind %v", kind))
	}
	b.parents = append(b.parents, frame{kind: kind, first: len(b.children)})
}

// Token adds a token to the current node.
func (b *Builder) Token(kind syntax.Kind, text string) {
	b.checkLive()
	if !kind.IsToken() {
		panic(fmt.Sprintf("gridlang/green: Token called with non-token kind %v", kind))
	}
	b.children = append(b.children, b.cache.Token(kind, text))
}

// FinishNode finishes the current node and attaches it to its parent.
//
// Panics if there is no node to finish.
func (b *Builder) FinishNode() {
	b.checkLive()
	if len(b.parents) == 0 {
		panic("gridlang/green: FinishNode called without a matching StartNode")
	}

	top := b.parents[len(b.parents)-1]
	b.parents = b.parents[:len(b.parents)-1]

	node := b.cache.Node(top.kind, b.children[top.first:])
	clear(b.children[top.first:])
	b.children = append(b.children[:top.first], node)
}

// Checkpoint returns a marker for the current position among the siblings of
// the current node.
func (b *Builder) Checkpoint() Checkpoint {
	return Checkpoint{depth: len(b.parents), index: len(b.children)}
}

// StartNodeAt starts a new node whose children are every sibling added since
// cp was taken. The new node stays open until the matching
// [Builder.FinishNode].
//
// This is how a parser wraps elements in a node it only knows exists after
// having parsed them.
func (b *Builder) StartNodeAt(cp Checkpoint, kind syntax.Kind) {
	b.checkLive()
	b.checkCheckpoint("StartNodeAt", cp)
	if !kind.IsNode() {
		panic(fmt.Sprintf("gridlang/green: StartNodeAt called with non-node kind %v", kind))
	}
	b.parents = append(b.parents, frame{kind: kind, first: cp.index})
}

// Revert discards every sibling added since cp was taken.
func (b *Builder) Revert(cp Checkpoint) {
	b.checkLive()
	b.checkCheckpoint("Revert", cp)
	clear(b.children[cp.index:])
	b.children = b.children[:cp.index]
}

// Finish returns the finished tree, along with the table that interns its
// text. The builder may not be used afterwards.
//
// The table is a snapshot of the cache's table, so later builds through the
// same [Cache] never mutate a table that Finish has already returned.
//
// Panics if any node is still open, or if the builder did not produce exactly
// one root node.
func (b *Builder) Finish() (*Node, *intern.Table) {
	b.checkLive()
	if len(b.parents) != 0 {
		panic(fmt.Sprintf("gridlang/green: Finish called with %d unfinished nodes", len(b.parents)))
	}
	if len(b.children) != 1 {
		panic(fmt.Sprintf("gridlang/green: Finish called with %d root elements, want 1", len(b.children)))
	}
	root, ok := b.children[0].(*Node)
	if !ok {
		panic("gridlang/green: Finish called on a builder whose root is a token")
	}

	b.done = true
	b.children = nil
	return root, b.cache.Table().Snapshot()
}

func (b *Builder) checkLive() {
	if b.done {
		panic("gridlang/green: Builder used after Finish")
	}
}

func (b *Builder) checkCheckpoint(op string, cp Checkpoint) {
	if cp.depth != len(b.parents) {
		panic(fmt.Sprintf("gridlang/green: %s called with a checkpoint from depth %d at depth %d", op, cp.depth, len(b.parents)))
	}
	if cp.index > len(b.children) {
		panic(fmt.Sprintf("gridlang/green: %s called with a checkpoint past the last sibling", op))
	}
	if len(b.parents) > 0 && cp.index < b.parents[len(b.parents)-1].first {
		panic(fmt.Sprintf("gridlang/green: %s called with a checkpoint from before the current node", op))
	}
}
