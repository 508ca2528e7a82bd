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

package ast_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/gridlang/ast"
	"github.com/bufbuild/gridlang/grid"
	"github.com/bufbuild/gridlang/parser"
	"github.com/bufbuild/gridlang/syntax"
)

func parse(t *testing.T, text string) (ast.Root, *parser.Result) {
	t.Helper()
	result := parser.Parse(text)
	root := ast.CastRoot(result.Red())
	require.False(t, root.IsZero())
	return root, result
}

func TestStatements(t *testing.T) {
	t.Parallel()

	root, result := parse(t, "A1:B3 = 5\nalias foo = $bar\nC2 = enum D4\nE5 = $foo\n")
	require.True(t, result.OK())

	stmts := slices.Collect(root.Statements())
	require.Len(t, stmts, 4)

	assign := stmts[0].AsAssign()
	assert.Equal(t, ast.StatementAssign, stmts[0].Kind())
	assert.True(t, stmts[0].AsAliasStmt().IsZero())
	assert.Equal(t, ast.PlaceCellRange, assign.Place().Kind())
	cells := assign.Place().AsCellRange()
	assert.Equal(t, "A1", cells.Start().Text())
	assert.Equal(t, "B3", cells.End().Text())
	start, end, err := cells.Bounds()
	require.NoError(t, err)
	assert.Equal(t, grid.Cell{Col: 0, Row: 1}, start)
	assert.Equal(t, grid.Cell{Col: 1, Row: 3}, end)
	assert.Equal(t, ast.ExprInt, assign.Expr().Kind())
	assert.Equal(t, "5", assign.Expr().AsInt().Text())
	assert.Nil(t, assign.Expr().AsPlace().Syntax())

	alias := stmts[1].AsAliasStmt()
	assert.Equal(t, ast.StatementAliasStmt, stmts[1].Kind())
	assert.Equal(t, "foo", alias.Name().Text())
	assert.Equal(t, ast.PlaceAliasExpr, alias.Place().Kind())
	assert.Equal(t, "bar", alias.Place().AsAliasExpr().Name().Text())

	assign = stmts[2].AsAssign()
	assert.Equal(t, "C2", assign.Place().AsCell().Text())
	assert.Equal(t, ast.ExprEnumExpr, assign.Expr().Kind())
	assert.Equal(t, "D4", assign.Expr().AsEnumExpr().Place().AsCell().Text())

	assign = stmts[3].AsAssign()
	assert.Equal(t, ast.ExprPlace, assign.Expr().Kind())
	assert.Equal(t, "foo", assign.Expr().AsPlace().AsAliasExpr().Name().Text())
	assert.Equal(t, syntax.Assign, assign.Syntax().Kind())
}

func TestRecovered(t *testing.T) {
	t.Parallel()

	root, result := parse(t, "A1 = 3 4\n@B2\nA1:=2\n")
	require.Len(t, result.Errors, 3)

	stmts := slices.Collect(root.Statements())
	require.Len(t, stmts, 3)

	// Trailing junk does not hide the assignment.
	assert.Equal(t, "3", stmts[0].AsAssign().Expr().AsInt().Text())

	// Nothing parsed at all.
	assert.Equal(t, ast.StatementInvalid, stmts[1].Kind())
	assert.True(t, stmts[1].AsAssign().IsZero())
	assert.True(t, stmts[1].AsAssign().Place().AsCellRange().IsZero())

	// A range missing its end.
	cells := stmts[2].AsAssign().Place().AsCellRange()
	require.False(t, cells.IsZero())
	assert.Equal(t, "A1", cells.Start().Text())
	assert.Nil(t, cells.End())
	_, _, err := cells.Bounds()
	require.Error(t, err)
	assert.Equal(t, ast.ExprInvalid, stmts[2].AsAssign().Expr().Kind())
}

func TestZero(t *testing.T) {
	t.Parallel()

	var assign ast.Assign
	assert.True(t, assign.IsZero())
	assert.Nil(t, assign.Syntax())
	assert.True(t, assign.Place().IsZero())
	assert.Equal(t, ast.PlaceInvalid, assign.Place().Kind())
	assert.Nil(t, assign.Place().AsCell())
	assert.Nil(t, ast.CellRange{}.Start())
	assert.Empty(t, slices.Collect(ast.Root{}.Statements()))
	assert.True(t, ast.CastAssign(nil).IsZero())

	root, _ := parse(t, "A1=1\n")
	assert.True(t, ast.CastAssign(root.Syntax()).IsZero(), "wrong kind")

	nodes := []ast.Node{assign, root}
	assert.True(t, nodes[0].IsZero())
	assert.False(t, nodes[1].IsZero())
}

func TestKindString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "PlaceCell", ast.PlaceCell.String())
	assert.Equal(t, "StatementInvalid", ast.StatementInvalid.String())
	assert.Equal(t, "PlaceKind(42)", ast.PlaceKind(42).String())
	assert.Equal(t, "ExprKind(-1)", ast.ExprKind(-1).String())
}

func TestParseCell(t *testing.T) {
	t.Parallel()

	root, _ := parse(t, "alias x = AA10\n")
	stmt := slices.Collect(root.Statements())[0].AsAliasStmt()

	cell, err := ast.ParseCell(stmt.Place().AsCell())
	require.NoError(t, err)
	assert.Equal(t, grid.Cell{Col: 26, Row: 10}, cell)

	_, err = ast.ParseCell(stmt.Name())
	require.Error(t, err)
	_, err = ast.ParseCell(nil)
	require.Error(t, err)
}
