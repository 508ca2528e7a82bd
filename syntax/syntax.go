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

// Package syntax is the registry of syntax kinds shared by every layer of the
// tree: the builder, the red cursors, and the generated AST wrappers.
//
// Tree layers pass kinds around as raw uint16 values; [FromRaw] is the only
// way back from a raw value to a [Kind], and it always checks the value
// against [Root].
package syntax

import "fmt"

//go:generate go run github.com/bufbuild/gridlang/internal/enum kind.yaml

// FirstNode is the first node kind; every kind before it is a token kind.
const FirstNode = CellRange

// ordinals maps a raw kind back to its [Kind]. It is indexed by raw value and
// covers exactly the range [0, Root].
var ordinals = func() [Root + 1]Kind {
	var table [Root + 1]Kind
	for i := range table {
		table[i] = Kind(i)
	}
	return table
}()

// ErrInvalidKind is returned by [FromRaw] for a raw value beyond [Root].
type ErrInvalidKind struct {
	Raw uint16
}

// Error implements [error].
func (e *ErrInvalidKind) Error() string {
	return fmt.Sprintf("invalid syntax kind %d: greater than %v (%d)", e.Raw, Root, Root.Raw())
}

// FromRaw converts a raw kind into a [Kind].
//
// Returns an error if raw is greater than [Root].
func FromRaw(raw uint16) (Kind, error) {
	if raw > uint16(Root) {
		return 0, &ErrInvalidKind{Raw: raw}
	}
	return ordinals[raw], nil
}

// MustFromRaw is like [FromRaw], but panics on an invalid kind.
func MustFromRaw(raw uint16) Kind {
	k, err := FromRaw(raw)
	if err != nil {
		panic("gridlang/syntax: " + err.Error())
	}
	return k
}

// Raw returns the raw value for this kind.
func (k Kind) Raw() uint16 {
	return uint16(k)
}

// Valid returns whether this is one of the kinds in the registry.
func (k Kind) Valid() bool {
	return k <= Root
}

// IsToken returns whether this is a leaf kind.
func (k Kind) IsToken() bool {
	return k < FirstNode
}

// IsNode returns whether this is a composite kind.
func (k Kind) IsNode() bool {
	return k >= FirstNode && k <= Root
}

// IsTrivia returns whether this kind carries no meaning for the grammar:
// horizontal whitespace and line endings.
func (k Kind) IsTrivia() bool {
	return k == Whitespace || k == Newline
}

// All returns every valid kind, in order.
func All() []Kind {
	return append([]Kind(nil), ordinals[:]...)
}
