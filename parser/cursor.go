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
	"unicode/utf8"
)

// cursor is a position within the text being parsed.
type cursor struct {
	text string
	pos  int
}

// cursorMark is the return value of [cursor.Mark], which marks a position
// that the cursor can be rewound to.
type cursorMark struct {
	owner *cursor
	pos   int
}

// Mark makes a mark on this cursor to indicate a place that can be rewound
// to.
func (c *cursor) Mark() cursorMark {
	return cursorMark{owner: c, pos: c.pos}
}

// Rewind moves this cursor back to the position described by mark.
//
// Panics if mark was not created using this cursor's Mark method.
func (c *cursor) Rewind(mark cursorMark) {
	if c != mark.owner {
		panic("gridlang/parser: rewound cursor using the wrong cursor's mark")
	}
	c.pos = mark.pos
}

// Offset returns the byte offset of this cursor.
func (c *cursor) Offset() int { return c.pos }

// Rest returns the unconsumed text.
func (c *cursor) Rest() string { return c.text[c.pos:] }

// Done returns whether the cursor has consumed all of its text.
func (c *cursor) Done() bool { return c.pos >= len(c.text) }

// Peek returns the next rune without consuming it, or -1 at the end of the
// text.
func (c *cursor) Peek() rune {
	r, n := utf8.DecodeRuneInString(c.Rest())
	if n == 0 {
		return -1
	}
	return r
}

// Take consumes the next n bytes and returns them.
func (c *cursor) Take(n int) string {
	if n < 0 || c.pos+n > len(c.text) {
		panic(fmt.Sprintf("gridlang/parser: took %d bytes with %d remaining", n, len(c.text)-c.pos))
	}
	text := c.text[c.pos : c.pos+n]
	c.pos += n
	return text
}

// TakeWhile consumes runes for which keep returns true and returns them.
func (c *cursor) TakeWhile(keep func(rune) bool) string {
	return c.Take(prefixLen(c.Rest(), keep))
}

// prefixLen returns the length in bytes of the longest prefix of text whose
// runes all satisfy keep.
func prefixLen(text string, keep func(rune) bool) int {
	for i, r := range text {
		if !keep(r) {
			return i
		}
	}
	return len(text)
}
