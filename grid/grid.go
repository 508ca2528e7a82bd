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

// Package grid provides coordinates for the cells of a spreadsheet grid.
//
// Rows are numbered from 1 and columns from 0, but columns are displayed
// using letters: A through Z, then AA through ZZ, then AAA, and so on. A
// cell reference such as "AB12" names a column and a row.
package grid

import (
	"errors"
	"fmt"
	"strconv"

	"golang.org/x/exp/constraints" //nolint:exptostd // No stdlib replacement for Unsigned yet.
)

var (
	// ErrSyntax is returned when parsing text that is not a cell reference.
	ErrSyntax = errors.New("invalid syntax")
	// ErrRange is returned when parsing a cell reference that is out of range.
	ErrRange = errors.New("out of range")
)

// Row is a one-indexed row number. The zero Row is not a valid row.
type Row uint64

// Col is a zero-indexed column number.
type Col uint64

// The top-left corner of the grid.
const (
	FirstRow Row = 1
	FirstCol Col = 0
)

// Add returns r+n, or false if that overflows.
func (r Row) Add(n uint64) (Row, bool) {
	return checkedAdd(r, Row(n))
}

// Sub returns r-n, or false if that is not a valid row.
func (r Row) Sub(n uint64) (Row, bool) {
	v, ok := checkedSub(r, Row(n))
	if !ok || v == 0 {
		return 0, false
	}
	return v, true
}

// Valid returns whether r is a valid row.
func (r Row) Valid() bool { return r != 0 }

// String implements [fmt.Stringer].
func (r Row) String() string {
	return strconv.FormatUint(uint64(r), 10)
}

// Add returns c+n, or false if that overflows.
func (c Col) Add(n uint64) (Col, bool) {
	return checkedAdd(c, Col(n))
}

// Sub returns c-n, or false if that would be before the first column.
func (c Col) Sub(n uint64) (Col, bool) {
	return checkedSub(c, Col(n))
}

// String implements [fmt.Stringer].
//
// Columns are written in bijective base 26: 0 is A, 25 is Z, 26 is AA, and
// 701 is ZZ.
func (c Col) String() string {
	var buf [14]byte // 26^14 > 2^64.
	i := len(buf)
	v := uint64(c)
	for {
		i--
		buf[i] = 'A' + byte(v%26)
		v /= 26
		if v == 0 {
			break
		}
		v--
	}
	return string(buf[i:])
}

// ParseCol parses a column name such as "AB". Lowercase letters are
// accepted.
func ParseCol(s string) (Col, error) {
	if s == "" {
		return 0, &ParseError{Func: "ParseCol", Text: s, Err: ErrSyntax}
	}

	var v uint64
	for i := range len(s) {
		d, ok := letter(s[i])
		if !ok {
			return 0, &ParseError{Func: "ParseCol", Text: s, Err: ErrSyntax}
		}

		var ok1, ok2 bool
		v, ok1 = checkedMul(v, 26)
		v, ok2 = checkedAdd(v, d+1)
		if !ok1 || !ok2 {
			return 0, &ParseError{Func: "ParseCol", Text: s, Err: ErrRange}
		}
	}
	return Col(v - 1), nil
}

// Cell is the coordinate of a single cell.
type Cell struct {
	Col Col
	Row Row
}

// ParseCell parses a cell reference such as "AB12".
func ParseCell(s string) (Cell, error) {
	letters := 0
	for letters < len(s) {
		if _, ok := letter(s[letters]); !ok {
			break
		}
		letters++
	}
	if letters == 0 || letters == len(s) {
		return Cell{}, &ParseError{Func: "ParseCell", Text: s, Err: ErrSyntax}
	}

	col, err := ParseCol(s[:letters])
	if err != nil {
		return Cell{}, &ParseError{Func: "ParseCell", Text: s, Err: errors.Unwrap(err)}
	}

	row, err := strconv.ParseUint(s[letters:], 10, 64)
	switch {
	case errors.Is(err, strconv.ErrRange):
		return Cell{}, &ParseError{Func: "ParseCell", Text: s, Err: ErrRange}
	case err != nil:
		return Cell{}, &ParseError{Func: "ParseCell", Text: s, Err: ErrSyntax}
	case row == 0:
		return Cell{}, &ParseError{Func: "ParseCell", Text: s, Err: ErrRange}
	}

	return Cell{Col: col, Row: Row(row)}, nil
}

// String implements [fmt.Stringer].
func (c Cell) String() string {
	return c.Col.String() + c.Row.String()
}

// ParseError records a failed conversion.
type ParseError struct {
	Func string // The failing function (ParseCol, ParseCell).
	Text string // The input.
	Err  error  // The reason the conversion failed (ErrSyntax, ErrRange).
}

// Error implements [error].
func (e *ParseError) Error() string {
	return fmt.Sprintf("grid.%s: parsing %q: %v", e.Func, e.Text, e.Err)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error { return e.Err }

// letter returns the zero-indexed position of b in the alphabet.
func letter(b byte) (uint64, bool) {
	switch {
	case 'A' <= b && b <= 'Z':
		return uint64(b - 'A'), true
	case 'a' <= b && b <= 'z':
		return uint64(b - 'a'), true
	default:
		return 0, false
	}
}

func checkedAdd[T constraints.Unsigned](a, b T) (T, bool) {
	c := a + b
	return c, c >= a
}

func checkedSub[T constraints.Unsigned](a, b T) (T, bool) {
	return a - b, a >= b
}

func checkedMul[T constraints.Unsigned](a, b T) (T, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	c := a * b
	return c, c/b == a
}
