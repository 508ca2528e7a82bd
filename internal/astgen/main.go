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

// astgen generates typed wrappers over the red tree from an ungrammar file.
//
// To generate wrappers for a package, use
//
//	//go:generate go run github.com/bufbuild/gridlang/internal/astgen nodes.ungram
//
// See [Grammar] for the input format. The output is written next to the
// input, with the .ungram extension replaced by .go. Every definition name,
// and every data-bearing token, must name a kind in the syntax package.
package main

import (
	"bytes"
	"debug/buildinfo"
	_ "embed"
	"errors"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"strings"
	"text/template"
)

//go:embed nodes.go.tmpl
var tmplText string

// Input is the data passed to the template.
type Input struct {
	Binary, Package, Path, Config string
	Model                         *Model
}

// HasEnums returns whether the output needs the fmt import.
func (in Input) HasEnums() bool {
	for _, ty := range in.Model.Types {
		if ty.Enum {
			return true
		}
	}
	return false
}

// HasMany returns whether the output needs the iter import.
func (in Input) HasMany() bool {
	for _, ty := range in.Model.Types {
		for _, f := range ty.Fields {
			if f.Repeated() {
				return true
			}
		}
	}
	return false
}

// variantList describes the variants of an enum for its doc comment.
func variantList(ty Type) string {
	items := make([]string, len(ty.Variants))
	for i, v := range ty.Variants {
		if v.Node {
			items[i] = "[" + v.Name + "]"
		} else {
			items[i] = "a [" + v.Kind + "] token"
		}
	}

	switch len(items) {
	case 1:
		return items[0]
	case 2:
		return items[0] + " or " + items[1]
	default:
		return strings.Join(items[:len(items)-1], ", ") + ", or " + items[len(items)-1]
	}
}

// Generate renders the Go source for input.
func Generate(input Input) ([]byte, error) {
	tmpl, err := template.New("nodes.go.tmpl").Funcs(template.FuncMap{
		"pascal":      toPascalCase,
		"variantList": variantList,
	}).Parse(tmplText)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "nodes.go.tmpl", input); err != nil {
		return nil, err
	}

	out, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("formatting generated code: %w", err)
	}
	return out, nil
}

func Main(config string) error {
	if filepath.Ext(config) != ".ungram" {
		return errors.New("file argument must end in .ungram")
	}

	input := Input{
		Package: os.Getenv("GOPACKAGE"),
		Config:  config,
		Path:    strings.TrimSuffix(config, ".ungram") + ".go",
	}

	info, err := buildinfo.ReadFile(os.Args[0])
	if err != nil {
		return err
	}
	input.Binary = info.Path

	text, err := os.ReadFile(config)
	if err != nil {
		return err
	}
	grammar, err := ParseGrammar(string(text))
	if err != nil {
		return fmt.Errorf("parsing grammar: %w", err)
	}
	if input.Model, err = Lower(grammar); err != nil {
		return fmt.Errorf("lowering grammar: %w", err)
	}

	out, err := Generate(input)
	if err != nil {
		return err
	}
	return os.WriteFile(input.Path, out, 0o644)
}

func main() {
	var failed bool
	for _, config := range os.Args[1:] {
		if err := Main(config); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", config, err)
			failed = true
		}
	}

	if failed {
		os.Exit(1)
	}
}
