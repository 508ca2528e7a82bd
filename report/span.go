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

import "fmt"

// Span is a byte range within a [File].
type Span struct {
	File       *File
	Start, End int
}

// Spanner is any type that has a [Span].
type Spanner interface {
	Span() Span
}

// Span implements [Spanner].
func (s Span) Span() Span { return s }

// IsZero returns whether this is the zero span, which is not in any file.
func (s Span) IsZero() bool { return s.File == nil }

// Text returns the text this span covers.
func (s Span) Text() string {
	if s.IsZero() {
		return ""
	}
	return s.File.text[s.Start:s.End]
}

// StartLoc returns the location of this span's start.
func (s Span) StartLoc() Location { return s.File.Location(s.Start) }

// EndLoc returns the location of this span's end.
func (s Span) EndLoc() Location { return s.File.Location(s.End) }

// Join returns the smallest span containing both s and t.
//
// Both spans must be in the same file.
func Join(s, t Span) Span {
	switch {
	case s.IsZero():
		return t
	case t.IsZero():
		return s
	case s.File != t.File:
		panic("gridlang/report: joined spans from different files")
	}
	return Span{File: s.File, Start: min(s.Start, t.Start), End: max(s.End, t.End)}
}

// String implements [fmt.Stringer].
func (s Span) String() string {
	if s.IsZero() {
		return "<nil>"
	}
	start := s.StartLoc()
	return fmt.Sprintf("%s:%d:%d", s.File.path, start.Line, start.Column)
}
