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

package report

import (
	"cmp"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
)

// Renderer configures a diagnostic rendering operation.
type Renderer struct {
	// If set, uses a compact one-line format for each diagnostic.
	Compact bool

	// If set, rendering results are enriched with ANSI color escapes.
	Colorize bool

	// Upgrades all warnings to errors.
	WarningsAreErrors bool

	// If set, remark diagnostics will be printed.
	ShowRemarks bool

	// If set, rendering a diagnostic will show the debug footer.
	ShowDebug bool
}

// Render renders a diagnostic report.
//
// In addition to returning the rendering result, returns the number of errors
// and warnings in the report. The error return is an error when writing to
// the writer.
func (r Renderer) Render(report *Report, out io.Writer) (errorCount, warningCount int, err error) {
	for _, diagnostic := range report.Diagnostics {
		if !r.ShowRemarks && diagnostic.Level == Remark {
			continue
		}

		_, err = fmt.Fprintln(out, r.Diagnostic(diagnostic))
		if err != nil {
			return errorCount, warningCount, err
		}

		if !r.Compact {
			_, err = fmt.Fprintln(out)
			if err != nil {
				return errorCount, warningCount, err
			}
		}

		switch {
		case diagnostic.Level == Error:
			errorCount++
		case diagnostic.Level == Warning && r.WarningsAreErrors:
			errorCount++
		case diagnostic.Level == Warning:
			warningCount++
		}
	}
	if r.Compact {
		return errorCount, warningCount, nil
	}

	c := newStylesheet(&r)
	pluralize := func(count int, what string) string {
		if count == 1 {
			return "1 " + what
		}
		return fmt.Sprint(count, " ", what, "s")
	}

	switch {
	case errorCount > 0 && warningCount > 0:
		_, err = fmt.Fprint(out, c.bError, "encountered ", pluralize(errorCount, "error"),
			" and ", pluralize(warningCount, "warning"), c.reset, "\n")
	case errorCount > 0:
		_, err = fmt.Fprint(out, c.bError, "encountered ", pluralize(errorCount, "error"), c.reset, "\n")
	case warningCount > 0:
		_, err = fmt.Fprint(out, c.bWarning, "encountered ", pluralize(warningCount, "warning"), c.reset, "\n")
	}
	return errorCount, warningCount, err
}

// RenderString is a helper for calling [Renderer.Render] with a [strings.Builder].
func (r Renderer) RenderString(report *Report) (text string, errorCount, warningCount int) {
	var buf strings.Builder
	e, w, _ := r.Render(report, &buf)
	return buf.String(), e, w
}

// Diagnostic renders a single diagnostic to a string.
func (r *Renderer) Diagnostic(d Diagnostic) string {
	var level string
	switch d.Level {
	case Error:
		level = "error"
	case Warning:
		if r.WarningsAreErrors {
			level = "error"
		} else {
			level = "warning"
		}
	case Remark:
		level = "remark"
	}

	c := newStylesheet(r)

	// For the compact style, we imitate the Go compiler.
	if r.Compact {
		primary := d.Primary()
		switch {
		case !primary.IsZero():
			start := primary.StartLoc()
			return fmt.Sprintf("%s%s: %s:%d:%d: %s%s",
				c.ColorForLevel(d.Level), level,
				primary.File.Path(), start.Line, start.Column,
				d.Err.Error(), c.reset)
		case d.InFile != "":
			return fmt.Sprintf("%s%s: %s: %s%s",
				c.ColorForLevel(d.Level), level, d.InFile, d.Err.Error(), c.reset)
		default:
			return fmt.Sprintf("%s%s: %s%s",
				c.ColorForLevel(d.Level), level, d.Err.Error(), c.reset)
		}
	}

	// For the other styles, we imitate the Rust compiler.
	var out strings.Builder
	fmt.Fprint(&out, c.BoldForLevel(d.Level), level, ": ", d.Err.Error(), c.reset)

	// Figure out how wide the line bar needs to be. This is given by
	// the width of the largest line value among the annotations.
	var greatestLine int
	for _, snip := range d.Annotations {
		greatestLine = max(greatestLine, snip.EndLoc().Line)
	}
	lineBarWidth := max(2, len(strconv.Itoa(greatestLine)))

	for i, group := range groupByFile(d.Annotations) {
		out.WriteByte('\n')
		out.WriteString(c.nAccent)
		padBy(&out, lineBarWidth)

		start := group[0].StartLoc()
		arrow := "-->"
		if i > 0 {
			arrow = ":::"
		}
		fmt.Fprintf(&out, "%s %s:%d:%d", arrow, group[0].File.Path(), start.Line, start.Column)

		// Add a blank line after the file. This gives the diagnostic window some
		// visual breathing room.
		out.WriteByte('\n')
		padBy(&out, lineBarWidth)
		out.WriteString(" |")

		renderWindow(&out, d.Level, group, lineBarWidth, &c)
	}

	// Render a remedial file name for spanless errors.
	if len(d.Annotations) == 0 && d.InFile != "" {
		out.WriteByte('\n')
		out.WriteString(c.nAccent)
		padBy(&out, lineBarWidth)
		fmt.Fprintf(&out, "--> %s", d.InFile)
	}

	footers := make([][3]string, 0, len(d.Notes)+len(d.Help)+len(d.Debug))
	for _, note := range d.Notes {
		footers = append(footers, [3]string{c.bRemark, "note", note})
	}
	for _, help := range d.Help {
		footers = append(footers, [3]string{c.bRemark, "help", help})
	}
	if r.ShowDebug {
		for _, debug := range d.Debug {
			footers = append(footers, [3]string{c.bError, "debug", debug})
		}
		if len(d.trace) > 0 {
			var trace strings.Builder
			for i, frame := range d.trace {
				if i > 0 {
					trace.WriteByte('\n')
				}
				fmt.Fprintf(&trace, "at %s\n  %s:%d", frame.Function, frame.File, frame.Line)
			}
			footers = append(footers, [3]string{c.bError, "debug", trace.String()})
		}
	}
	for _, footer := range footers {
		out.WriteByte('\n')
		out.WriteString(c.nAccent)
		padBy(&out, lineBarWidth)
		out.WriteString(" = ")
		fmt.Fprint(&out, footer[0], footer[1], ": ", c.reset)
		for i, line := range strings.Split(footer[2], "\n") {
			if i > 0 {
				out.WriteByte('\n')
				padBy(&out, lineBarWidth+3+len(footer[1])+2)
			}
			out.WriteString(line)
		}
	}

	out.WriteString(c.reset)
	return out.String()
}

// groupByFile splits annotations into runs that point into the same file.
func groupByFile(annotations []Annotation) [][]Annotation {
	var groups [][]Annotation
	for i, a := range annotations {
		if i == 0 || a.File != annotations[i-1].File {
			groups = append(groups, nil)
		}
		groups[len(groups)-1] = append(groups[len(groups)-1], a)
	}
	return groups
}

// renderWindow renders the source lines that the given annotations start on,
// each followed by one underline per annotation.
//
// Annotations spanning several lines are underlined up to the end of their
// first line.
func renderWindow(out *strings.Builder, level Level, annotations []Annotation, lineBarWidth int, c *stylesheet) {
	type underline struct {
		line, start, end int
		primary          bool
		message          string
	}

	underlines := make([]underline, 0, len(annotations))
	for _, a := range annotations {
		start, end := a.StartLoc(), a.EndLoc()
		ul := underline{
			line:    start.Line,
			start:   start.Column,
			end:     end.Column,
			primary: a.Primary,
			message: a.Message,
		}
		if end.Line != start.Line {
			ul.end = stringWidth(0, a.File.Line(start.Line), false, nil) + 1
		}
		ul.end = max(ul.end, ul.start+1)
		underlines = append(underlines, ul)
	}
	slices.SortStableFunc(underlines, func(a, b underline) int {
		return cmp.Or(cmp.Compare(a.line, b.line), cmp.Compare(a.start, b.start))
	})

	file := annotations[0].File
	prev := 0
	for i, ul := range underlines {
		if i == 0 || ul.line != prev {
			if prev != 0 && ul.line > prev+1 {
				out.WriteByte('\n')
				out.WriteString(c.nAccent)
				padBy(out, lineBarWidth)
				out.WriteString(" ...")
			}
			prev = ul.line

			out.WriteByte('\n')
			out.WriteString(c.nAccent)
			fmt.Fprintf(out, "%*d |", lineBarWidth, ul.line)
			out.WriteString(c.reset)
			if text := file.Line(ul.line); text != "" {
				out.WriteByte(' ')
				stringWidth(0, text, false, out)
			}
		}

		color, mark := c.nAccent, "-"
		if ul.primary {
			color, mark = c.BoldForLevel(level), "^"
		}
		out.WriteByte('\n')
		out.WriteString(c.nAccent)
		padBy(out, lineBarWidth)
		out.WriteString(" | ")
		padBy(out, ul.start-1)
		out.WriteString(color)
		out.WriteString(strings.Repeat(mark, ul.end-ul.start))
		if ul.message != "" {
			out.WriteByte(' ')
			out.WriteString(ul.message)
		}
		out.WriteString(c.reset)
	}
}
