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

// Package ast provides typed views over the red tree produced by the parser.
//
// Every wrapper is a small value holding a [red.Node]. The zero value of a
// wrapper stands for a missing node, and every accessor on it returns another
// zero value (or a nil token), so chains such as
//
//	stmt.AsAssign().Place().AsCellRange().Start()
//
// never panic, even on trees recovered from syntax errors.
//
// The wrappers in nodes.go are generated from nodes.ungram.
package ast

//go:generate go run github.com/bufbuild/gridlang/internal/astgen nodes.ungram
