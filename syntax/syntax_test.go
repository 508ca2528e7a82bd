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

package syntax_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/gridlang/syntax"
)

func TestFromRaw(t *testing.T) {
	t.Parallel()

	for _, k := range syntax.All() {
		got, err := syntax.FromRaw(k.Raw())
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}

	for _, raw := range []uint16{syntax.Root.Raw() + 1, 100, math.MaxUint16} {
		_, err := syntax.FromRaw(raw)
		var invalid *syntax.ErrInvalidKind
		require.ErrorAs(t, err, &invalid)
		assert.Equal(t, raw, invalid.Raw)
	}

	assert.Panics(t, func() { syntax.MustFromRaw(syntax.Root.Raw() + 1) })
	assert.Equal(t, syntax.Assign, syntax.MustFromRaw(syntax.Assign.Raw()))
}

func TestOrdering(t *testing.T) {
	t.Parallel()

	all := syntax.All()
	assert.Equal(t, syntax.Root, all[len(all)-1], "ROOT must be the last kind")

	// Raw values are injective and dense.
	seen := make(map[uint16]syntax.Kind)
	for i, k := range all {
		assert.Equal(t, uint16(i), k.Raw())
		_, dup := seen[k.Raw()]
		assert.False(t, dup)
		seen[k.Raw()] = k
	}

	// Node kinds are contiguous and end at ROOT.
	var nodes bool
	for _, k := range all {
		if k.IsNode() {
			nodes = true
		} else {
			assert.False(t, nodes, "token kind %v after a node kind", k)
			assert.True(t, k.IsToken())
		}
	}

	assert.False(t, syntax.Kind(syntax.Root+1).Valid())
	assert.False(t, syntax.Kind(syntax.Root+1).IsNode())
}

func TestNames(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "CELL_RANGE", syntax.CellRange.String())
	assert.Equal(t, "ALIAS_TOK", syntax.AliasTok.String())
	assert.Equal(t, "syntax.Root", syntax.Root.GoString())
	assert.Equal(t, "Kind(500)", syntax.Kind(500).String())

	for _, k := range syntax.All() {
		got, ok := syntax.KindFromName(k.String())
		assert.True(t, ok)
		assert.Equal(t, k, got)
	}
	_, ok := syntax.KindFromName("NOPE")
	assert.False(t, ok)

	assert.True(t, syntax.Whitespace.IsTrivia())
	assert.True(t, syntax.Newline.IsTrivia())
	assert.False(t, syntax.Cell.IsTrivia())
}
