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

package main

import (
	goast "go/ast"
	"go/parser"
	"go/token"
	"os"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGrammar(t *testing.T) {
	t.Parallel()

	g, err := ParseGrammar("// A comment.\nRoot = Item*\nItem = Pair | '#int'\nPair = key:'#ident' '=' (Item)?\n")
	require.NoError(t, err)

	want := &Grammar{Defs: []*Def{
		{Name: "Root", Pos: Pos{2, 1}, Rule: &RepRule{Rule: &NodeRule{Name: "Item"}}},
		{Name: "Item", Pos: Pos{3, 1}, Rule: &AltRule{Rules: []Rule{
			&NodeRule{Name: "Pair"},
			&TokenRule{Name: "#int"},
		}}},
		{Name: "Pair", Pos: Pos{4, 1}, Rule: &SeqRule{Rules: []Rule{
			&LabeledRule{Label: "key", Rule: &TokenRule{Name: "#ident"}},
			&TokenRule{Name: "="},
			&OptRule{Rule: &NodeRule{Name: "Item"}},
		}}},
	}}
	if diff := cmp.Diff(want, g); diff != "" {
		t.Errorf("grammar mismatch (-want +got):\n%s", diff)
	}
	assert.Same(t, g.Defs[2], g.Def("Pair"))
	assert.Nil(t, g.Def("Missing"))
}

func TestParseGrammarErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text, err string
	}{
		{"A = ", "1:5: expected rule, found end of file"},
		{"A = 'x", "1:5: unterminated token"},
		{"A = ''", "1:5: empty token"},
		{"A = @", "1:5: unexpected '@'"},
		{"= A", "1:1: expected definition name, found `=`"},
		{"A = (B", "1:7: expected `)`, found end of file"},
		{"A = B", "1:1: A refers to undefined node B"},
		{"A = 'x'\nA = 'y'", "2:1: A redefined; previous definition at 1:1"},
	}
	for _, tt := range tests {
		_, err := ParseGrammar(tt.text)
		assert.EqualError(t, err, tt.err, "%q", tt.text)
	}
}

func TestLower(t *testing.T) {
	t.Parallel()

	text, err := os.ReadFile("../../ast/nodes.ungram")
	require.NoError(t, err)
	g, err := ParseGrammar(string(text))
	require.NoError(t, err)
	m, err := Lower(g)
	require.NoError(t, err)

	want := &Model{Types: []Type{
		{Name: "Root", Kind: "syntax.Root", Fields: []Field{
			{Name: "statements", Type: "Statement", Kind: "syntax.Statement", Cardinality: Many},
		}},
		{Name: "Statement", Kind: "syntax.Statement", Enum: true, Variants: []Variant{
			{Name: "AliasStmt", Kind: "syntax.AliasStmt", Node: true},
			{Name: "Assign", Kind: "syntax.Assign", Node: true},
		}},
		{Name: "AliasStmt", Kind: "syntax.AliasStmt", Fields: []Field{
			{Name: "name", Kind: "syntax.Ident"},
			{Name: "place", Type: "Place", Kind: "syntax.Place"},
		}},
		{Name: "Assign", Kind: "syntax.Assign", Fields: []Field{
			{Name: "place", Type: "Place", Kind: "syntax.Place"},
			{Name: "expr", Type: "Expr", Kind: "syntax.Expr"},
		}},
		{Name: "Place", Kind: "syntax.Place", Enum: true, Variants: []Variant{
			{Name: "CellRange", Kind: "syntax.CellRange", Node: true},
			{Name: "AliasExpr", Kind: "syntax.AliasExpr", Node: true},
			{Name: "Cell", Kind: "syntax.Cell"},
		}},
		{Name: "CellRange", Kind: "syntax.CellRange", Fields: []Field{
			{Name: "start", Kind: "syntax.Cell"},
			{Name: "end", Kind: "syntax.Cell", Index: 1},
		}},
		{Name: "AliasExpr", Kind: "syntax.AliasExpr", Fields: []Field{
			{Name: "name", Kind: "syntax.Ident"},
		}},
		{Name: "EnumExpr", Kind: "syntax.EnumExpr", Fields: []Field{
			{Name: "place", Type: "Place", Kind: "syntax.Place"},
		}},
		{Name: "Expr", Kind: "syntax.Expr", Enum: true, Variants: []Variant{
			{Name: "EnumExpr", Kind: "syntax.EnumExpr", Node: true},
			{Name: "Int", Kind: "syntax.Int"},
			{Name: "Place", Kind: "syntax.Place", Node: true},
		}},
	}}
	if diff := cmp.Diff(want, m); diff != "" {
		t.Errorf("model mismatch (-want +got):\n%s", diff)
	}
}

func TestLowerErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text, err string
	}{
		{"Assign = (Place | Expr) '=' Expr\nPlace = '#cell'\nExpr = '#int'", "alternations must be a definition of their own"},
		{"Assign = Place '=' Place\nPlace = '#cell'", "duplicate field place"},
		{"Assign = kind:Place\nPlace = '#cell'", "Kind is a reserved method name"},
		{"Assign = x:(Place Expr)\nPlace = '#cell'\nExpr = '#int'", "cannot label a sequence"},
		{"Thing = '#cell'", "no syntax kind for Thing"},
		{"Place = '#bogus'", "no syntax kind for Bogus"},
		{"Root = Statement* Statement\nStatement = '#int'", "cannot share its kind"},
		{"Root = '#int'*", "only nodes may be repeated"},
		{"Place = Expr | '='\nExpr = '#int'", "carries no data"},
		{"Place = Expr | Expr\nExpr = '#int'", "duplicate enum variant Expr"},
		{"Place = Invalid | Expr\nInvalid = '#int'\nExpr = '#int'", "Invalid is reserved"},
	}
	for _, tt := range tests {
		g, err := ParseGrammar(tt.text)
		require.NoError(t, err, "%q", tt.text)
		_, err = Lower(g)
		assert.ErrorContains(t, err, tt.err, "%q", tt.text)
	}
}

func TestCaseConversion(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "cell_range", toLowerSnakeCase("CellRange"))
	assert.Equal(t, "ALIAS_STMT", toScreamingSnakeCase("AliasStmt"))
	assert.Equal(t, "CellRange", toPascalCase("cell_range"))
	assert.Equal(t, "Int", toPascalCase("int"))
	assert.Equal(t, "statements", pluralize(toLowerSnakeCase("Statement")))
}

func TestGenerate(t *testing.T) {
	t.Parallel()

	out := generate(t)
	text := string(out)

	assert.Contains(t, text, "// Code generated by github.com/bufbuild/gridlang/internal/astgen nodes.ungram. DO NOT EDIT.")
	assert.Contains(t, text, "func (x Root) Statements() iter.Seq[Statement] {")
	assert.Contains(t, text, "return nthToken(x.node, syntax.Cell, 1)")
	assert.Contains(t, text, "func (x Place) AsCell() *red.Token {")
	assert.Contains(t, text, "PlaceCell\n")
	assert.Contains(t, text, "// Expr wraps a [syntax.Expr] node holding one of\n// [EnumExpr], a [syntax.Int] token, or [Place].")

	// The checked-in wrappers must declare the same things.
	current, err := os.ReadFile("../../ast/nodes.go")
	require.NoError(t, err)
	assert.Equal(t, decls(t, current), decls(t, out))
}

func TestGenerateDeterministic(t *testing.T) {
	t.Parallel()

	assert.Equal(t, string(generate(t)), string(generate(t)))
}

func TestGenerateImports(t *testing.T) {
	t.Parallel()

	g, err := ParseGrammar("AliasExpr = '$' name:'#ident'")
	require.NoError(t, err)
	m, err := Lower(g)
	require.NoError(t, err)

	out, err := Generate(Input{Binary: "astgen", Package: "ast", Config: "x.ungram", Model: m})
	require.NoError(t, err)
	assert.NotContains(t, string(out), `"iter"`)
	assert.NotContains(t, string(out), `"fmt"`)
}

func TestMainRejectsExtension(t *testing.T) {
	t.Parallel()

	require.EqualError(t, Main("nodes.yaml"), "file argument must end in .ungram")
}

func generate(t *testing.T) []byte {
	t.Helper()

	text, err := os.ReadFile("../../ast/nodes.ungram")
	require.NoError(t, err)
	g, err := ParseGrammar(string(text))
	require.NoError(t, err)
	m, err := Lower(g)
	require.NoError(t, err)

	out, err := Generate(Input{
		Binary:  "github.com/bufbuild/gridlang/internal/astgen",
		Package: "ast",
		Config:  "nodes.ungram",
		Model:   m,
	})
	require.NoError(t, err)
	return out
}

// decls lists the top-level declarations in a Go file, with methods
// qualified by their receiver.
func decls(t *testing.T, src []byte) []string {
	t.Helper()

	f, err := parser.ParseFile(token.NewFileSet(), "nodes.go", src, parser.SkipObjectResolution)
	require.NoError(t, err, "source:\n%s", src)

	var out []string
	for _, decl := range f.Decls {
		switch decl := decl.(type) {
		case *goast.FuncDecl:
			name := decl.Name.Name
			if decl.Recv != nil {
				if recv, ok := decl.Recv.List[0].Type.(*goast.Ident); ok {
					name = recv.Name + "." + name
				}
			}
			out = append(out, name)
		case *goast.GenDecl:
			for _, spec := range decl.Specs {
				switch spec := spec.(type) {
				case *goast.TypeSpec:
					out = append(out, spec.Name.Name)
				case *goast.ValueSpec:
					for _, name := range spec.Names {
						out = append(out, name.Name)
					}
				}
			}
		}
	}
	slices.Sort(out)
	return out
}
