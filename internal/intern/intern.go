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

// Package intern provides the text interning table that backs the tokens of
// a green tree.
package intern

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// ID is an interned string in a particular [Table].
//
// IDs can be compared very cheaply. The zero value of ID always
// corresponds to the empty string.
type ID int32

// String implements [fmt.Stringer].
//
// Note that this will not convert the ID back into a string; to do that, you
// must call [Table.Value].
func (id ID) String() string {
	if id == 0 {
		return `intern.ID("")`
	}
	return fmt.Sprintf("intern.ID(%d)", int(id))
}

// GoString implements [fmt.GoStringer].
func (id ID) GoString() string {
	return id.String()
}

// Table is an interning table.
//
// A table is written to by exactly one tree builder; once the builder has
// finished, the table is only ever read, and may be shared by any number of
// goroutines.
//
// The zero value of Table is empty and ready to use.
type Table struct {
	index map[string]ID
	table []string
	bytes int
}

// Intern interns the given string into this table.
func (t *Table) Intern(s string) ID {
	if s == "" {
		return 0
	}
	if id, ok := t.index[s]; ok {
		return id
	}

	// Source text is usually a slice of a much larger buffer. Cloning avoids
	// keeping the whole buffer alive through the table.
	s = strings.Clone(s)
	t.table = append(t.table, s)
	t.bytes += len(s)

	// The first ID will have value 1. ID 0 is reserved for "".
	id := ID(len(t.table))
	if id < 0 {
		panic(fmt.Sprintf("gridlang/intern: %d interning IDs exhausted", len(t.table)))
	}

	if t.index == nil {
		t.index = make(map[string]ID)
	}
	t.index[s] = id
	return id
}

// Snapshot returns a copy of this table that later calls to [Table.Intern]
// on t do not affect. Every ID valid in t is valid in the copy.
func (t *Table) Snapshot() *Table {
	return &Table{
		index: maps.Clone(t.index),
		table: slices.Clip(t.table),
		bytes: t.bytes,
	}
}

// Query will query whether s has already been interned.
//
// The empty string is always interned.
func (t *Table) Query(s string) (ID, bool) {
	if s == "" {
		return 0, true
	}
	id, ok := t.index[s]
	return id, ok
}

// Value converts an [ID] back into its corresponding string.
//
// If id was created by a different [Table], the results are unspecified,
// including potentially a panic.
func (t *Table) Value(id ID) string {
	if id == 0 {
		return ""
	}
	return t.table[int(id)-1]
}

// Len returns the number of distinct non-empty strings in this table.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.table)
}

// Bytes returns the total number of bytes held by this table.
func (t *Table) Bytes() int {
	if t == nil {
		return 0
	}
	return t.bytes
}
