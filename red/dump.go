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

package red

import (
	"fmt"
	"io"
	"strings"
)

// Dump writes a debug rendering of the tree rooted at n to w.
//
// Each element gets one line, indented two spaces per level of depth:
// nodes are written as KIND@start..end, and tokens additionally carry their
// quoted text.
func (n *Node) Dump(w io.Writer) error {
	d := dumper{w: w}
	d.node(n, 0)
	return d.err
}

// DumpString is like [Node.Dump], but returns a string.
func (n *Node) DumpString() string {
	var buf strings.Builder
	_ = n.Dump(&buf)
	return buf.String()
}

type dumper struct {
	w   io.Writer
	err error
}

func (d *dumper) node(n *Node, depth int) {
	d.printf("%s%v\n", strings.Repeat("  ", depth), n)
	for child := range n.ChildrenWithTokens() {
		if d.err != nil {
			return
		}
		switch child := child.(type) {
		case *Node:
			d.node(child, depth+1)
		case *Token:
			d.printf("%s%v\n", strings.Repeat("  ", depth+1), child)
		}
	}
}

func (d *dumper) printf(format string, args ...any) {
	if d.err != nil {
		return
	}
	_, d.err = fmt.Fprintf(d.w, format, args...)
}
