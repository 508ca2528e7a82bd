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

package parser

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/bufbuild/gridlang/syntax"
)

// Tokens.
var (
	newline  = leaf(syntax.Newline, "newline", matchRune('\n'))
	eq       = leaf(syntax.Eq, "`=`", matchRune('='))
	colon    = leaf(syntax.Colon, "`:`", matchRune(':'))
	dollar   = leaf(syntax.Dollar, "`$`", matchRune('$'))
	integer  = leaf(syntax.Int, "integer", matchInt)
	cell     = leaf(syntax.Cell, "cell", matchCell)
	ident    = leaf(syntax.Ident, "identifier", matchIdent)
	aliasTok = leaf(syntax.AliasTok, "`alias`", matchKeyword("alias"))
	enumTok  = leaf(syntax.EnumTok, "`enum`", matchKeyword("enum"))
)

// Nodes.
var (
	// A1:A3
	cellRange = node(syntax.CellRange, seq(cell, colon, cell))
	// $foo
	aliasExpr = node(syntax.AliasExpr, seq(dollar, ident))
	place     = node(syntax.Place, choice(cellRange, aliasExpr, cell))
	enumExpr  = node(syntax.EnumExpr, seq(enumTok, place))
	expr      = node(syntax.Expr, choice(enumExpr, integer, place))
	// A1 = 3
	assign = node(syntax.Assign, seq(place, eq, expr))
	// alias foo = A1
	aliasStmt = node(syntax.AliasStmt, seq(aliasTok, ident, eq, place))

	// statement is not wrapped in its own node here, because line recovery
	// needs to add tokens to it after the fact.
	statement = seq(choice(aliasStmt, assign), newline)

	program = many(line)
)

// line parses a blank line or a statement, recovering from syntax errors by
// skipping to the end of the line. It only fails at the end of the text.
func line(p *parser) bool {
	if p.Done() {
		return false
	}
	p.furthest, p.expected = -1, p.expected[:0]

	if newline(p) {
		return true
	}

	cp := p.builder.Checkpoint()
	if !statement(p) {
		p.errors = append(p.errors, p.newError())

		// Run the statement again to rebuild whatever prefix of it parsed,
		// then throw away the rest of the line.
		p.partial = true
		statement(p)
		p.partial, p.reached, p.halted = false, false, false
		p.skipLine()
	}
	p.builder.StartNodeAt(cp, syntax.Statement)
	p.builder.FinishNode()
	return true
}

// skipLine consumes the rest of the current line, including its newline, as
// an ERROR token with whitespace on either side.
func (p *parser) skipLine() {
	if ws := p.TakeWhile(isSpace); ws != "" {
		p.builder.Token(syntax.Whitespace, ws)
	}
	if rest := p.TakeWhile(func(r rune) bool { return r != '\n' }); rest != "" {
		p.builder.Token(syntax.Error, rest)
	}
	if p.Peek() == '\n' {
		p.builder.Token(syntax.Newline, p.Take(1))
	}
}

// newError builds an error for the furthest failure on the current line.
func (p *parser) newError() *Error {
	err := &Error{
		Start:    p.furthest,
		End:      p.furthest,
		Expected: append([]string(nil), p.expected...),
	}

	r, n := utf8.DecodeRuneInString(p.text[p.furthest:])
	if n == 0 {
		err.AtEOF = true
	} else {
		err.Found = r
		err.End += n
	}
	return err
}

func matchRune(want rune) matcher {
	return func(text string) int {
		r, n := utf8.DecodeRuneInString(text)
		if n == 0 || r != want {
			return 0
		}
		return n
	}
}

func isDigit(r rune) bool  { return '0' <= r && r <= '9' }
func isLetter(r rune) bool { return 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z' }

func isIdentStart(r rune) bool { return r == '_' || unicode.IsLetter(r) }
func isIdentPart(r rune) bool  { return isIdentStart(r) || unicode.IsDigit(r) }

// matchInt matches a run of decimal digits.
func matchInt(text string) int {
	return prefixLen(text, isDigit)
}

// matchCell matches a cell reference: ASCII letters followed by decimal
// digits, such as A1 or ZZ300.
func matchCell(text string) int {
	letters := prefixLen(text, isLetter)
	if letters == 0 {
		return 0
	}
	digits := matchInt(text[letters:])
	if digits == 0 {
		return 0
	}
	return letters + digits
}

func matchIdent(text string) int {
	r, n := utf8.DecodeRuneInString(text)
	if n == 0 || !isIdentStart(r) {
		return 0
	}
	return n + prefixLen(text[n:], isIdentPart)
}

// matchKeyword returns a matcher for the keyword kw. Like every other token,
// a keyword is matched on its own text alone, so "enumB2" lexes as `enum`
// followed by a cell.
func matchKeyword(kw string) matcher {
	return func(text string) int {
		if !strings.HasPrefix(text, kw) {
			return 0
		}
		return len(kw)
	}
}
