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
	"slices"
	"unicode"

	"github.com/bufbuild/gridlang/green"
	"github.com/bufbuild/gridlang/syntax"
)

// parser is the state of a single parse.
type parser struct {
	cursor
	builder *green.Builder
	errors  []*Error

	// The furthest position at which a leaf failed to match while parsing the
	// current line, and what was expected there, in the order it was tried.
	furthest int
	expected []string

	// Recovery state. While partial is set, the parser is re-running a line
	// that it already knows fails at furthest. reached is set once a leaf
	// fails there, and halted once a sequence has stopped at that failure,
	// keeping what it already built.
	partial, reached, halted bool
}

// rule is a parser combinator. It reports whether it matched.
//
// A rule that fails must leave the cursor and builder as it found them,
// unless the parser has halted.
type rule func(p *parser) bool

// matcher returns the length in bytes of the token at the start of text, or
// zero if there is none.
type matcher func(text string) int

// isSpace returns whether r is horizontal whitespace.
func isSpace(r rune) bool {
	return r != '\n' && unicode.IsSpace(r)
}

// fail records that label was expected at offset.
func (p *parser) fail(offset int, label string) {
	if p.partial {
		p.reached = p.reached || offset == p.furthest
		return
	}

	switch {
	case offset < p.furthest:
		return
	case offset > p.furthest:
		p.furthest = offset
		p.expected = p.expected[:0]
	}
	if !slices.Contains(p.expected, label) {
		p.expected = append(p.expected, label)
	}
}

// leaf returns a rule that skips horizontal whitespace and then emits one
// token of the given kind. label names the token in error messages.
//
// The whitespace is only emitted, as a WHITESPACE token, if the token itself
// matches.
func leaf(kind syntax.Kind, label string, match matcher) rule {
	return func(p *parser) bool {
		ws := prefixLen(p.Rest(), isSpace)
		n := match(p.Rest()[ws:])
		if n == 0 {
			p.fail(p.Offset()+ws, label)
			return false
		}

		if ws > 0 {
			p.builder.Token(syntax.Whitespace, p.Take(ws))
		}
		p.builder.Token(kind, p.Take(n))
		return true
	}
}

// node returns a rule that wraps everything r emits in a node of the given
// kind.
//
// If r fails after the parser has halted, the partial node is kept.
func node(kind syntax.Kind, r rule) rule {
	return func(p *parser) bool {
		cp := p.builder.Checkpoint()
		ok := r(p)
		if ok || p.halted {
			p.builder.StartNodeAt(cp, kind)
			p.builder.FinishNode()
		}
		return ok
	}
}

// seq returns a rule that matches each of rules in order.
func seq(rules ...rule) rule {
	return func(p *parser) bool {
		mark, cp := p.Mark(), p.builder.Checkpoint()
		for _, r := range rules {
			if r(p) {
				continue
			}

			switch {
			case p.halted:
			case p.partial && p.reached && p.Offset() > mark.pos:
				p.halted = true
			default:
				p.Rewind(mark)
				p.builder.Revert(cp)
			}
			return false
		}
		return true
	}
}

// choice returns a rule that matches the first of rules that matches.
func choice(rules ...rule) rule {
	return func(p *parser) bool {
		for _, r := range rules {
			if r(p) {
				return true
			}
			if p.halted {
				return false
			}
		}
		return false
	}
}

// many returns a rule that matches r zero or more times. It stops early if r
// matches without consuming anything.
func many(r rule) rule {
	return func(p *parser) bool {
		for {
			start := p.Offset()
			if !r(p) {
				return !p.halted
			}
			if p.Offset() == start {
				return true
			}
		}
	}
}
