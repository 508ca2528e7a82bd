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
	"github.com/bufbuild/gridlang/green"
	"github.com/bufbuild/gridlang/internal/intern"
	"github.com/bufbuild/gridlang/red"
	"github.com/bufbuild/gridlang/report"
	"github.com/bufbuild/gridlang/syntax"
)

// Result is the result of parsing a file.
type Result struct {
	// The root of the syntax tree. Its kind is always ROOT and its text is
	// always the parsed text.
	Root *green.Node
	// Syntax errors, in source order.
	Errors []*Error
	// The table that token text is interned in.
	Table *intern.Table
}

// Parse parses text into a syntax tree.
//
// Parse always succeeds; syntax errors are recorded in the result, and the
// lines they occur on are kept in the tree.
func Parse(text string) *Result {
	return ParseWithCache(text, new(green.Cache))
}

// ParseWithCache is like [Parse], but builds the tree using the given cache,
// so that identical subtrees are shared with other trees built using it.
//
// A cache must not be used by more than one parse at a time. Each result gets
// its own snapshot of the cache's intern table, so a result stays valid and
// unchanged while later parses keep using the cache.
func ParseWithCache(text string, cache *green.Cache) *Result {
	p := &parser{
		cursor:  cursor{text: text},
		builder: green.NewBuilderWithCache(cache),
	}

	p.builder.StartNode(syntax.Root)
	program(p)
	if !p.Done() {
		panic("gridlang/parser: parser stopped before the end of the text")
	}
	p.builder.FinishNode()

	root, table := p.builder.Finish()
	return &Result{Root: root, Errors: p.errors, Table: table}
}

// OK returns whether parsing produced no errors.
func (r *Result) OK() bool { return len(r.Errors) == 0 }

// Red returns a cursor for the root of the syntax tree.
func (r *Result) Red() *red.Node {
	return red.NewRoot(r.Root, r.Table)
}

// Text returns the text of the syntax tree, which is the parsed text.
func (r *Result) Text() string {
	return r.Root.Text(r.Table)
}

// Report returns a report containing this result's errors, as diagnostics
// against file. file's text should be the parsed text.
func (r *Result) Report(file *report.File) *report.Report {
	rep := new(report.Report)
	for _, err := range r.Errors {
		rep.Error(err.in(file))
	}
	return rep
}
