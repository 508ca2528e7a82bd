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
	"fmt"
	"slices"
	"unicode"

	"github.com/bufbuild/gridlang/internal/oxford"
	"github.com/bufbuild/gridlang/report"
)

// Error is a syntax error: the parser found something other than what it
// expected, or ran out of input.
type Error struct {
	// The byte range of the offending rune. Empty at the end of input.
	Start, End int

	// The rune that was found. Only meaningful if AtEOF is false.
	Found rune
	// Whether the parser ran out of input.
	AtEOF bool

	// Descriptions of what would have been accepted at Start, in the order
	// the parser tried them.
	Expected []string

	file *report.File
}

var _ report.Diagnose = (*Error)(nil)

// Error implements [error].
func (e *Error) Error() string {
	switch {
	case e.AtEOF:
		return "unexpected end of input"
	case e.Found == '\n':
		return "unexpected newline"
	case !unicode.IsPrint(e.Found):
		return fmt.Sprintf("unexpected %U", e.Found)
	default:
		return fmt.Sprintf("unexpected `%c`", e.Found)
	}
}

// Span returns the span of this error in file.
func (e *Error) Span(file *report.File) report.Span {
	return file.Span(e.Start, e.End)
}

// Diagnose implements [report.Diagnose].
func (e *Error) Diagnose(d *report.Diagnostic) {
	if e.file == nil {
		if len(e.Expected) > 0 {
			d.With(report.Note("expected %v", oxford.Or(e.Expected...)))
		}
		return
	}

	span := e.Span(e.file)
	if len(e.Expected) > 0 {
		d.With(report.Snippetf(span, "expected %v", oxford.Or(e.Expected...)))
	} else {
		d.With(report.Snippet(span))
	}
	if e.AtEOF && slices.Contains(e.Expected, "newline") {
		d.With(report.Help("every statement must end with a newline"))
	}
}

// in returns a copy of this error that diagnoses itself against file.
func (e *Error) in(file *report.File) *Error {
	c := *e
	c.file = file
	return &c
}
