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

package report_test

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/gridlang/report"
)

var ansiEscapePat = regexp.MustCompile("\033\\[([\\d;]*)m")

// ansiToMarkup converts ANSI escapes we care about in `text` into markup that is hopefully
// easier for humans to parse.
func ansiToMarkup(text string) string {
	return ansiEscapePat.ReplaceAllStringFunc(text, func(needle string) string {
		code := ansiEscapePat.FindStringSubmatch(needle)[1]
		colors := []string{"blk", "red", "grn", "ylw", "blu", "mta", "cyn", "wht"}

		if code == "0" {
			return "⟨reset⟩"
		}
		parts := strings.SplitN(code, ";", 2)
		var name strings.Builder
		if parts[0] == "1" {
			name.WriteString("b.")
		}
		name.WriteString(colors[parts[1][1]-'0'])
		return "⟨" + name.String() + "⟩"
	})
}

// syntaxError is a minimal [report.Diagnose] for tests.
type syntaxError struct {
	span report.Span
	msg  string
	why  string
}

func (e *syntaxError) Error() string { return e.msg }

func (e *syntaxError) Diagnose(d *report.Diagnostic) {
	d.With(report.Snippetf(e.span, "%s", e.why))
}

func TestLocation(t *testing.T) {
	t.Parallel()

	f := report.NewFile("a.grid", "A1=1\n\tB2 = 名字\n")
	assert.Equal(t, 3, f.Lines())
	assert.Equal(t, "A1=1", f.Line(1))
	assert.Equal(t, "\tB2 = 名字", f.Line(2))
	assert.Empty(t, f.Line(3))

	tests := []struct {
		offset       int
		line, column int
	}{
		{0, 1, 1},
		{4, 1, 5},
		{5, 2, 1},
		{6, 2, 5},             // After a tab.
		{11, 2, 10},           // Start of 名.
		{14, 2, 12},           // 名 is two columns wide.
		{len(f.Text()), 3, 1}, // EOF.
		{100, 3, 1},           // Clamped.
	}
	for _, tt := range tests {
		loc := f.Location(tt.offset)
		assert.Equal(t, tt.line, loc.Line, "offset %d", tt.offset)
		assert.Equal(t, tt.column, loc.Column, "offset %d", tt.offset)
	}

	assert.Panics(t, func() { f.Span(3, 2) })
	assert.Panics(t, func() { f.Line(0) })
}

func TestSpan(t *testing.T) {
	t.Parallel()

	f := report.NewFile("a.grid", "A1:B2=1\n")
	a, b := f.Span(0, 2), f.Span(3, 5)
	assert.Equal(t, "A1", a.Text())
	assert.Equal(t, "A1:B2", report.Join(a, b).Text())
	assert.Equal(t, b, report.Join(report.Span{}, b))
	assert.Equal(t, "a.grid:1:4", b.String())
	assert.Equal(t, "<nil>", report.Span{}.String())
	assert.Panics(t, func() { report.Join(a, report.NewFile("b.grid", "").Span(0, 0)) })
}

func TestRender(t *testing.T) {
	t.Parallel()

	f := report.NewFile("testdata/missing_expr.grid", "A1=\n")
	r := new(report.Report)
	r.Error(&syntaxError{
		span: f.Span(3, 4),
		msg:  "unexpected newline",
		why:  "expected `enum`, integer, cell, or `$`",
	}).With(report.Note("statements are terminated by newlines"))

	text, errs, warns := report.Renderer{}.RenderString(r)
	assert.Equal(t, 1, errs)
	assert.Equal(t, 0, warns)
	assert.Equal(t, `error: unexpected newline
  --> testdata/missing_expr.grid:1:4
   |
 1 | A1=
   |    ^ expected `+"`enum`, integer, cell, or `$`"+`
   = note: statements are terminated by newlines

encountered 1 error
`, text)

	text, _, _ = report.Renderer{Compact: true}.RenderString(r)
	assert.Equal(t, "error: testdata/missing_expr.grid:1:4: unexpected newline\n", text)

	text, _, _ = report.Renderer{Compact: true, Colorize: true}.RenderString(r)
	assert.Equal(t, "⟨red⟩error: testdata/missing_expr.grid:1:4: unexpected newline⟨reset⟩\n", ansiToMarkup(text))
}

func TestRenderMany(t *testing.T) {
	t.Parallel()

	var text strings.Builder
	for i := range 12 {
		text.WriteString("A1=1\n")
		if i == 9 {
			text.WriteString("\tB2=  x\n")
		}
	}
	f := report.NewFile("big.grid", text.String())
	start := strings.Index(f.Text(), "x")

	r := new(report.Report)
	r.Error(&syntaxError{span: f.Span(start, start+1), msg: "unexpected `x`"}).With(
		report.Snippetf(f.Span(0, 2), "first assignment here"),
	)
	r.Warnf("file is large").With(report.InFile("big.grid"))
	r.Remarkf("hidden")

	out, errs, warns := report.Renderer{}.RenderString(r)
	assert.Equal(t, 1, errs)
	assert.Equal(t, 1, warns)
	assert.Equal(t, `error: unexpected `+"`x`"+`
  --> big.grid:11:10
   |
 1 | A1=1
   | -- first assignment here
   ...
11 |     B2=  x
   |          ^

warning: file is large
  --> big.grid

encountered 1 error and 1 warning
`, out)

	out, errs, _ = report.Renderer{Compact: true, WarningsAreErrors: true, ShowRemarks: true}.RenderString(r)
	assert.Equal(t, 2, errs)
	assert.Equal(t, `error: big.grid:11:10: unexpected `+"`x`"+`
error: big.grid: file is large
remark: hidden
`, out)
	assert.Equal(t, 1, r.Errors())
}

func TestRenderNonPrint(t *testing.T) {
	t.Parallel()

	f := report.NewFile("np.grid", "A1=\x01\n")
	r := new(report.Report)
	r.Error(&syntaxError{span: f.Span(3, 4), msg: "unexpected `\\x01`"})

	out, _, _ := report.Renderer{}.RenderString(r)
	assert.Contains(t, out, " 1 | A1=<U+0001>\n   |    ^^^^^^^^\n")
}

func TestDebug(t *testing.T) {
	t.Parallel()

	r := new(report.Report)
	d := r.Errorf("oops").With(report.Debug("state: %d", 42), report.Help("try again"))
	require.EqualError(t, d.Err, "oops")
	assert.Equal(t, report.Error, d.Level)

	out, _, _ := report.Renderer{ShowDebug: true}.RenderString(r)
	assert.Contains(t, out, "error: oops\n   = help: try again\n   = debug: state: 42\n")

	out, _, _ = report.Renderer{}.RenderString(r)
	assert.NotContains(t, out, "debug")
}
