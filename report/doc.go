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

// Package report provides a robust diagnostics framework.
//
// The central type is [Report], a collection of [Diagnostic]s. Code that
// finds problems in a file pushes them onto a report, which is later handed
// to a [Renderer] to be shown to a user. Diagnostics refer to source code
// through [Span]s into a [File].
//
// Setting the environment variable GRIDLANG_DEBUG to a non-empty value makes
// every diagnostic record a stack trace of the code that created it, which a
// renderer shows when [Renderer.ShowDebug] is set.
package report
