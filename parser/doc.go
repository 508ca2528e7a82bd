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

// Package parser turns grid source text into a lossless concrete syntax tree.
//
// Parsing never fails outright: [Parse] always produces a tree whose text is
// exactly the input, plus a list of syntax errors. Lines that do not parse
// are kept in the tree as STATEMENT nodes containing whatever prefix was
// recognized and an ERROR token for the rest of the line.
//
// The grammar is written with a handful of recursive-descent combinators
// (leaf, node, seq, choice, many) that emit directly into a [green.Builder].
package parser
