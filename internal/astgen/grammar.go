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
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Grammar is a parsed ungrammar file: a list of node definitions.
//
// The format is a small EBNF dialect:
//
//	// Comments run to the end of the line.
//	Name = rule
//
// where rules are built from
//
//	Node          a reference to another definition
//	'token'       a token; tokens starting with # carry data
//	label:rule    a labeled rule
//	a b           a sequence
//	a | b         an alternation
//	rule? rule*   optional and repeated rules
//	( rule )      grouping
type Grammar struct {
	Defs []*Def
}

// Def is a single definition in a [Grammar].
type Def struct {
	Name string
	Rule Rule
	Pos  Pos
}

// Pos is a position in a grammar file.
type Pos struct {
	Line, Col int
}

func (p Pos) String() string { return fmt.Sprintf("%d:%d", p.Line, p.Col) }

// Rule is one of the *Rule types in this file.
type Rule interface{ rule() }

type (
	NodeRule    struct{ Name string }
	TokenRule   struct{ Name string }
	LabeledRule struct {
		Label string
		Rule  Rule
	}
	SeqRule struct{ Rules []Rule }
	AltRule struct{ Rules []Rule }
	OptRule struct{ Rule Rule }
	RepRule struct{ Rule Rule }
)

func (*NodeRule) rule()    {}
func (*TokenRule) rule()   {}
func (*LabeledRule) rule() {}
func (*SeqRule) rule()     {}
func (*AltRule) rule()     {}
func (*OptRule) rule()     {}
func (*RepRule) rule()     {}

// Def returns the definition with the given name, or nil.
func (g *Grammar) Def(name string) *Def {
	for _, def := range g.Defs {
		if def.Name == name {
			return def
		}
	}
	return nil
}

// ParseGrammar parses an ungrammar file.
func ParseGrammar(text string) (*Grammar, error) {
	toks, err := lex(text)
	if err != nil {
		return nil, err
	}

	p := &grammarParser{toks: toks}
	g := new(Grammar)
	for !p.at(tokEOF) {
		def, err := p.def()
		if err != nil {
			return nil, err
		}
		if prev := g.Def(def.Name); prev != nil {
			return nil, fmt.Errorf("%v: %s redefined; previous definition at %v", def.Pos, def.Name, prev.Pos)
		}
		g.Defs = append(g.Defs, def)
	}

	// Check that every node reference resolves.
	for _, def := range g.Defs {
		var err error
		walkRules(def.Rule, func(r Rule) {
			if n, ok := r.(*NodeRule); ok && err == nil && g.Def(n.Name) == nil {
				err = fmt.Errorf("%v: %s refers to undefined node %s", def.Pos, def.Name, n.Name)
			}
		})
		if err != nil {
			return nil, err
		}
	}
	return g, nil
}

// walkRules calls yield on r and every rule nested within it.
func walkRules(r Rule, yield func(Rule)) {
	yield(r)
	switch r := r.(type) {
	case *LabeledRule:
		walkRules(r.Rule, yield)
	case *OptRule:
		walkRules(r.Rule, yield)
	case *RepRule:
		walkRules(r.Rule, yield)
	case *SeqRule:
		for _, r := range r.Rules {
			walkRules(r, yield)
		}
	case *AltRule:
		for _, r := range r.Rules {
			walkRules(r, yield)
		}
	}
}

type tokKind int

const (
	tokEOF tokKind = iota
	tokIdent
	tokToken // A quoted 'token'.
	tokPunct // One of = | ? * ( ) :
)

type tok struct {
	kind tokKind
	text string
	pos  Pos
}

func (t tok) String() string {
	switch t.kind {
	case tokEOF:
		return "end of file"
	case tokToken:
		return "'" + t.text + "'"
	default:
		return "`" + t.text + "`"
	}
}

// lex splits an ungrammar file into tokens.
func lex(text string) ([]tok, error) {
	var toks []tok
	pos := Pos{Line: 1, Col: 1}
	advance := func(n int) {
		for _, r := range text[:n] {
			if r == '\n' {
				pos.Line++
				pos.Col = 1
			} else {
				pos.Col++
			}
		}
		text = text[n:]
	}

	for text != "" {
		r, n := utf8.DecodeRuneInString(text)
		switch {
		case unicode.IsSpace(r):
			advance(n)

		case strings.HasPrefix(text, "//"):
			end := strings.IndexByte(text, '\n')
			if end == -1 {
				end = len(text)
			}
			advance(end)

		case strings.ContainsRune("=|?*():", r):
			toks = append(toks, tok{kind: tokPunct, text: text[:n], pos: pos})
			advance(n)

		case r == '\'':
			end := strings.IndexAny(text[1:], "'\n")
			if end == -1 || text[1+end] != '\'' {
				return nil, fmt.Errorf("%v: unterminated token", pos)
			}
			if end == 0 {
				return nil, fmt.Errorf("%v: empty token", pos)
			}
			toks = append(toks, tok{kind: tokToken, text: text[1 : 1+end], pos: pos})
			advance(end + 2)

		case r == '_' || unicode.IsLetter(r):
			end := strings.IndexFunc(text, func(r rune) bool {
				return r != '_' && !unicode.IsLetter(r) && !unicode.IsDigit(r)
			})
			if end == -1 {
				end = len(text)
			}
			toks = append(toks, tok{kind: tokIdent, text: text[:end], pos: pos})
			advance(end)

		default:
			return nil, fmt.Errorf("%v: unexpected %q", pos, r)
		}
	}
	return append(toks, tok{kind: tokEOF, pos: pos}), nil
}

type grammarParser struct {
	toks []tok
}

func (p *grammarParser) peek(n int) tok {
	if n >= len(p.toks) {
		return p.toks[len(p.toks)-1]
	}
	return p.toks[n]
}

func (p *grammarParser) at(kind tokKind, text ...string) bool {
	next := p.peek(0)
	return next.kind == kind && (len(text) == 0 || next.text == text[0])
}

func (p *grammarParser) next() tok {
	t := p.peek(0)
	if t.kind != tokEOF {
		p.toks = p.toks[1:]
	}
	return t
}

func (p *grammarParser) expect(kind tokKind, text, what string) (tok, error) {
	ok := p.at(kind)
	if text != "" {
		ok = p.at(kind, text)
	}
	if !ok {
		t := p.peek(0)
		return t, fmt.Errorf("%v: expected %s, found %v", t.pos, what, t)
	}
	return p.next(), nil
}

// atDefStart returns whether the next tokens begin a new definition.
func (p *grammarParser) atDefStart() bool {
	return p.peek(0).kind == tokIdent && p.peek(1).kind == tokPunct && p.peek(1).text == "="
}

func (p *grammarParser) def() (*Def, error) {
	name, err := p.expect(tokIdent, "", "definition name")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(tokPunct, "=", "`=`"); err != nil {
		return nil, err
	}
	rule, err := p.alt()
	if err != nil {
		return nil, err
	}
	return &Def{Name: name.text, Rule: rule, Pos: name.pos}, nil
}

func (p *grammarParser) alt() (Rule, error) {
	var rules []Rule
	for {
		rule, err := p.seq()
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
		if !p.at(tokPunct, "|") {
			break
		}
		p.next()
	}

	if len(rules) == 1 {
		return rules[0], nil
	}
	return &AltRule{Rules: rules}, nil
}

func (p *grammarParser) seq() (Rule, error) {
	var rules []Rule
	for !p.atDefStart() && (p.at(tokIdent) || p.at(tokToken) || p.at(tokPunct, "(")) {
		rule, err := p.postfix()
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}

	switch len(rules) {
	case 0:
		t := p.peek(0)
		return nil, fmt.Errorf("%v: expected rule, found %v", t.pos, t)
	case 1:
		return rules[0], nil
	default:
		return &SeqRule{Rules: rules}, nil
	}
}

func (p *grammarParser) postfix() (Rule, error) {
	rule, err := p.atom()
	if err != nil {
		return nil, err
	}
	for {
		switch {
		case p.at(tokPunct, "?"):
			p.next()
			rule = &OptRule{Rule: rule}
		case p.at(tokPunct, "*"):
			p.next()
			rule = &RepRule{Rule: rule}
		default:
			return rule, nil
		}
	}
}

func (p *grammarParser) atom() (Rule, error) {
	t := p.next()
	switch {
	case t.kind == tokIdent && p.at(tokPunct, ":"):
		p.next()
		rule, err := p.postfix()
		if err != nil {
			return nil, err
		}
		return &LabeledRule{Label: t.text, Rule: rule}, nil

	case t.kind == tokIdent:
		return &NodeRule{Name: t.text}, nil

	case t.kind == tokToken:
		return &TokenRule{Name: t.text}, nil

	case t.kind == tokPunct && t.text == "(":
		rule, err := p.alt()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(tokPunct, ")", "`)`"); err != nil {
			return nil, err
		}
		return rule, nil

	default:
		return nil, fmt.Errorf("%v: expected rule, found %v", t.pos, t)
	}
}
