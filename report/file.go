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
	"fmt"
	"slices"
	"strings"
)

// File is a source file that diagnostics can point into.
type File struct {
	path, text string

	// Byte offsets at which each line starts. The first entry is always zero.
	lines []int
}

// Location is a user-displayable location within a file.
type Location struct {
	// The byte offset for this location.
	Offset int

	// The line and column for this location, one-indexed.
	//
	// Column is measured in display width, not bytes or runes: tabs advance
	// to the next tabstop, and wide characters count twice.
	Line, Column int
}

// NewFile returns a new file with the given path and contents.
func NewFile(path, text string) *File {
	f := &File{path: path, text: text, lines: []int{0}}
	for i := range len(text) {
		if text[i] == '\n' {
			f.lines = append(f.lines, i+1)
		}
	}
	return f
}

// Path returns this file's path.
func (f *File) Path() string { return f.path }

// Text returns this file's contents.
func (f *File) Text() string { return f.text }

// Lines returns the number of lines in this file. A trailing newline starts
// an empty final line.
func (f *File) Lines() int { return len(f.lines) }

// Line returns the text of the given one-indexed line, not including its
// terminating newline.
func (f *File) Line(n int) string {
	if n < 1 || n > len(f.lines) {
		panic(fmt.Sprintf("gridlang/report: line %d out of range [1, %d]", n, len(f.lines)))
	}
	start := f.lines[n-1]
	end := len(f.text)
	if n < len(f.lines) {
		end = f.lines[n] - 1
	}
	return strings.TrimSuffix(f.text[start:end], "\r")
}

// Location converts a byte offset into a [Location].
//
// Offsets past the end of the file are clamped to it.
func (f *File) Location(offset int) Location {
	offset = max(0, min(offset, len(f.text)))

	line, found := slices.BinarySearch(f.lines, offset)
	if !found {
		line--
	}
	start := f.lines[line]
	return Location{
		Offset: offset,
		Line:   line + 1,
		Column: stringWidth(0, f.text[start:offset], false, nil) + 1,
	}
}

// Span returns a span for the given byte range of this file.
func (f *File) Span(start, end int) Span {
	if start < 0 || start > end || end > len(f.text) {
		panic(fmt.Sprintf("gridlang/report: span [%d, %d) out of range [0, %d]", start, end, len(f.text)))
	}
	return Span{File: f, Start: start, End: end}
}
