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

	"github.com/bufbuild/gridlang/syntax"
)

// Model is the lowered form of a [Grammar]: one Go type per definition.
type Model struct {
	Types []Type
}

// Type is a generated wrapper type.
//
// A definition whose rule is an alternation becomes an enum, with one variant
// per alternative. Anything else becomes a struct with one field per node
// reference or data-bearing token.
type Type struct {
	Name string
	Kind string // Go expression for the syntax kind, e.g. syntax.Assign.

	Enum     bool
	Fields   []Field
	Variants []Variant
}

// Cardinality is how many times a field may occur in its parent.
type Cardinality int

const (
	Optional Cardinality = iota
	Many
)

// Field is an accessor on a struct type.
type Field struct {
	Name        string // lower_snake_case; the accessor is the Pascal form.
	Type        string // The wrapper type, or empty for a token.
	Kind        string // Go expression for the field's syntax kind.
	Cardinality Cardinality

	// Which occurrence of Kind among the parent's children this field reads,
	// for non-repeated fields.
	Index int
}

// Repeated returns whether this field's accessor yields every occurrence.
func (f Field) Repeated() bool {
	return f.Cardinality == Many
}

// Variant is one alternative of an enum type.
type Variant struct {
	Name string
	Kind string
	Node bool // Whether this variant is a node rather than a token.
}

// reserved are names generated on every type, which fields may not shadow.
var reserved = []string{"Kind", "Syntax", "IsZero", "String"}

// Lower converts a grammar into the model used for code generation.
func Lower(g *Grammar) (*Model, error) {
	m := new(Model)
	for _, def := range g.Defs {
		ty, err := lowerDef(def)
		if err != nil {
			return nil, fmt.Errorf("%v: %s: %w", def.Pos, def.Name, err)
		}
		m.Types = append(m.Types, ty)
	}
	return m, nil
}

func lowerDef(def *Def) (Type, error) {
	kind, err := kindFor(def.Name)
	if err != nil {
		return Type{}, err
	}
	ty := Type{Name: def.Name, Kind: kind}

	if alt, ok := def.Rule.(*AltRule); ok {
		ty.Enum = true
		for _, rule := range alt.Rules {
			var v Variant
			switch rule := rule.(type) {
			case *NodeRule:
				v = Variant{Name: rule.Name, Node: true}
			case *TokenRule:
				name, ok := strings.CutPrefix(rule.Name, "#")
				if !ok {
					return Type{}, fmt.Errorf("enum variant '%s' carries no data", rule.Name)
				}
				v = Variant{Name: toPascalCase(name)}
			default:
				return Type{}, fmt.Errorf("enum variants must be nodes or tokens, got %T", rule)
			}

			if v.Name == "Invalid" {
				return Type{}, fmt.Errorf("enum variant name Invalid is reserved")
			}
			if v.Kind, err = kindFor(v.Name); err != nil {
				return Type{}, err
			}
			for _, prev := range ty.Variants {
				if prev.Kind == v.Kind {
					return Type{}, fmt.Errorf("duplicate enum variant %s", v.Name)
				}
			}
			ty.Variants = append(ty.Variants, v)
		}
		return ty, nil
	}

	l := &lowerer{counts: make(map[string]int), many: make(map[string]bool)}
	if err := l.lower(def.Rule, ""); err != nil {
		return Type{}, err
	}
	ty.Fields = l.fields
	return ty, nil
}

type lowerer struct {
	fields []Field
	counts map[string]int  // Non-repeated fields seen so far, per kind.
	many   map[string]bool // Kinds with a repeated field.
}

func (l *lowerer) lower(rule Rule, label string) error {
	switch rule := rule.(type) {
	case *LabeledRule:
		return l.lower(rule.Rule, rule.Label)

	case *NodeRule:
		name := label
		if name == "" {
			name = toLowerSnakeCase(rule.Name)
		}
		return l.add(Field{Name: name, Type: rule.Name}, rule.Name)

	case *TokenRule:
		token, ok := strings.CutPrefix(rule.Name, "#")
		if !ok {
			return nil // Punctuation and keywords get no accessor.
		}
		name := label
		if name == "" {
			name = toLowerSnakeCase(token)
		}
		return l.add(Field{Name: name}, toPascalCase(token))

	case *RepRule:
		node, ok := rule.Rule.(*NodeRule)
		if !ok {
			return fmt.Errorf("only nodes may be repeated, got %T", rule.Rule)
		}
		name := label
		if name == "" {
			name = pluralize(toLowerSnakeCase(node.Name))
		}
		return l.add(Field{Name: name, Type: node.Name, Cardinality: Many}, node.Name)

	case *OptRule:
		return l.lower(rule.Rule, label)

	case *SeqRule:
		if label != "" {
			return fmt.Errorf("label %s: cannot label a sequence", label)
		}
		for _, rule := range rule.Rules {
			if err := l.lower(rule, ""); err != nil {
				return err
			}
		}
		return nil

	case *AltRule:
		return fmt.Errorf("alternations must be a definition of their own")

	default:
		return fmt.Errorf("unexpected rule %T", rule)
	}
}

func (l *lowerer) add(f Field, kindName string) error {
	kind, err := kindFor(kindName)
	if err != nil {
		return err
	}
	f.Kind = kind

	method := toPascalCase(f.Name)
	for _, name := range reserved {
		if method == name {
			return fmt.Errorf("field %s: %s is a reserved method name", f.Name, method)
		}
	}
	for _, prev := range l.fields {
		if prev.Name == f.Name {
			return fmt.Errorf("duplicate field %s", f.Name)
		}
	}

	if l.many[kind] || (f.Cardinality == Many && l.counts[kind] > 0) {
		return fmt.Errorf("field %s: repeated %s cannot share its kind with another field", f.Name, kindName)
	}
	if f.Cardinality == Many {
		l.many[kind] = true
	} else {
		f.Index = l.counts[kind]
		l.counts[kind]++
	}

	l.fields = append(l.fields, f)
	return nil
}

// kindFor resolves a Pascal-case name to the Go expression for its syntax
// kind.
func kindFor(name string) (string, error) {
	kind, ok := syntax.KindFromName(toScreamingSnakeCase(name))
	if !ok {
		return "", fmt.Errorf("no syntax kind for %s", name)
	}
	return kind.GoString(), nil
}

func pluralize(s string) string {
	return s + "s"
}

// toLowerSnakeCase converts a CamelCase name into snake_case.
func toLowerSnakeCase(s string) string {
	var out strings.Builder
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				out.WriteByte('_')
			}
			r = unicode.ToLower(r)
		}
		out.WriteRune(r)
	}
	return out.String()
}

func toScreamingSnakeCase(s string) string {
	return strings.ToUpper(toLowerSnakeCase(s))
}

// toPascalCase converts a snake_case name into PascalCase.
func toPascalCase(s string) string {
	var out strings.Builder
	upper := true
	for _, r := range s {
		switch {
		case r == '_':
			upper = true
		case upper:
			out.WriteRune(unicode.ToUpper(r))
			upper = false
		default:
			out.WriteRune(r)
		}
	}
	return out.String()
}
