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

package grid_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/gridlang/grid"
)

func TestColString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		col  grid.Col
		want string
	}{
		{0, "A"},
		{1, "B"},
		{25, "Z"},
		{26, "AA"},
		{27, "AB"},
		{51, "AZ"},
		{52, "BA"},
		{701, "ZZ"},
		{702, "AAA"},
		{16383, "XFD"},
		{math.MaxUint64, "GKGWBYLWRXTLPP"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.col.String(), "%d", uint64(tt.col))

		if tt.col == math.MaxUint64 {
			continue
		}
		col, err := grid.ParseCol(tt.want)
		require.NoError(t, err)
		assert.Equal(t, tt.col, col)
	}
}

func TestParseCol(t *testing.T) {
	t.Parallel()

	col, err := grid.ParseCol("xfd")
	require.NoError(t, err)
	assert.Equal(t, grid.Col(16383), col)

	_, err = grid.ParseCol("")
	require.ErrorIs(t, err, grid.ErrSyntax)
	_, err = grid.ParseCol("A1")
	require.ErrorIs(t, err, grid.ErrSyntax)
	_, err = grid.ParseCol("ZZZZZZZZZZZZZZZ")
	require.ErrorIs(t, err, grid.ErrRange)
	assert.EqualError(t, err, `grid.ParseCol: parsing "ZZZZZZZZZZZZZZZ": out of range`)
}

func TestParseCell(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text string
		want grid.Cell
		err  error
	}{
		{text: "A1", want: grid.Cell{Col: 0, Row: 1}},
		{text: "ab12", want: grid.Cell{Col: 27, Row: 12}},
		{text: "ZZ300", want: grid.Cell{Col: 701, Row: 300}},
		{text: "A0", err: grid.ErrRange},
		{text: "A99999999999999999999", err: grid.ErrRange},
		{text: "ZZZZZZZZZZZZZZZ1", err: grid.ErrRange},
		{text: "A", err: grid.ErrSyntax},
		{text: "12", err: grid.ErrSyntax},
		{text: "A1B", err: grid.ErrSyntax},
		{text: "A+1", err: grid.ErrSyntax},
		{text: "", err: grid.ErrSyntax},
	}
	for _, tt := range tests {
		cell, err := grid.ParseCell(tt.text)
		if tt.err != nil {
			assert.ErrorIs(t, err, tt.err, "%q", tt.text)
			continue
		}
		require.NoError(t, err, "%q", tt.text)
		assert.Equal(t, tt.want, cell, "%q", tt.text)
	}

	assert.Equal(t, "AB12", grid.Cell{Col: 27, Row: 12}.String())
}

func TestArithmetic(t *testing.T) {
	t.Parallel()

	row, ok := grid.FirstRow.Add(9)
	assert.True(t, ok)
	assert.Equal(t, grid.Row(10), row)
	assert.Equal(t, "10", row.String())

	_, ok = grid.FirstRow.Sub(1)
	assert.False(t, ok, "row zero is not a row")
	row, ok = row.Sub(9)
	assert.True(t, ok)
	assert.Equal(t, grid.FirstRow, row)
	_, ok = grid.Row(math.MaxUint64).Add(1)
	assert.False(t, ok)
	assert.False(t, grid.Row(0).Valid())

	col, ok := grid.FirstCol.Add(26)
	assert.True(t, ok)
	assert.Equal(t, "AA", col.String())
	_, ok = grid.FirstCol.Sub(1)
	assert.False(t, ok)
	col, ok = col.Sub(26)
	assert.True(t, ok)
	assert.Equal(t, grid.FirstCol, col)
	_, ok = grid.Col(math.MaxUint64).Add(1)
	assert.False(t, ok)
}
