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

// rawdump prints the syntax tree of gridlang files, followed by any syntax
// errors. It exits with a non-zero status if any file fails to parse cleanly.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/bufbuild/gridlang/parser"
	"github.com/bufbuild/gridlang/red"
	"github.com/bufbuild/gridlang/report"
)

// errSyntax is returned once syntax errors have been printed.
var errSyntax = errors.New("syntax errors")

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errSyntax) {
			fmt.Fprintln(os.Stderr, "rawdump:", err)
		}
		os.Exit(1)
	}
}

type options struct {
	format  string
	compact bool
	color   bool
	jobs    int
	at      string
}

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "rawdump [flags] FILE...",
		Short: "Dump the syntax tree of gridlang files",
		Long: `Parse each file and print its lossless syntax tree to stdout.

Syntax errors are rendered to stderr once every tree has been printed.
Files are parsed concurrently, but always printed in argument order.

With --at, only the smallest element covering the given byte offset or
START:END range is printed, followed by each of its ancestors.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.OutOrStdout(), cmd.ErrOrStderr(), args, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.format, "format", "f", "tree", "output format (tree, yaml)")
	flags.BoolVar(&opts.compact, "compact", false, "print one line per diagnostic")
	flags.BoolVar(&opts.color, "color", false, "colorize diagnostics")
	flags.IntVarP(&opts.jobs, "jobs", "j", runtime.GOMAXPROCS(0), "number of files to parse at once")
	flags.StringVar(&opts.at, "at", "", "print the element covering `START[:END]` and its ancestors")

	return cmd
}

type parsed struct {
	file   *report.File
	result *parser.Result
}

func run(stdout, stderr io.Writer, paths []string, opts options) error {
	if opts.format != "tree" && opts.format != "yaml" {
		return fmt.Errorf("unknown format: %s (expected tree or yaml)", opts.format)
	}
	if opts.jobs < 1 {
		return fmt.Errorf("--jobs must be at least 1, got %d", opts.jobs)
	}
	var span *[2]int
	if opts.at != "" {
		if opts.format != "tree" {
			return errors.New("--at requires --format tree")
		}
		start, end, err := parseSpan(opts.at)
		if err != nil {
			return err
		}
		span = &[2]int{start, end}
	}

	files := make([]parsed, len(paths))
	var group errgroup.Group
	group.SetLimit(opts.jobs)
	for i, path := range paths {
		group.Go(func() error {
			text, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			files[i] = parsed{
				file:   report.NewFile(path, string(text)),
				result: parser.Parse(string(text)),
			}
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return err
	}

	var (
		diagnostics report.Report
		enc         *yaml.Encoder
	)
	if opts.format == "yaml" {
		enc = yaml.NewEncoder(stdout)
		enc.SetIndent(2)
	}
	for _, f := range files {
		switch opts.format {
		case "tree":
			if len(files) > 1 {
				fmt.Fprintf(stdout, "==> %s <==\n", f.file.Path())
			}
			if span != nil {
				if err := dumpAt(stdout, f, span[0], span[1]); err != nil {
					return err
				}
				break
			}
			if err := f.result.Red().Dump(stdout); err != nil {
				return err
			}
		case "yaml":
			if err := enc.Encode(toYAML(f.file.Path(), f.result.Red())); err != nil {
				return fmt.Errorf("encode yaml: %w", err)
			}
		}
		diagnostics.Diagnostics = append(diagnostics.Diagnostics, f.result.Report(f.file).Diagnostics...)
	}
	if enc != nil {
		if err := enc.Close(); err != nil {
			return err
		}
	}

	if len(diagnostics.Diagnostics) == 0 {
		return nil
	}
	renderer := report.Renderer{Compact: opts.compact, Colorize: opts.color}
	if _, _, err := renderer.Render(&diagnostics, stderr); err != nil {
		return err
	}
	return errSyntax
}

// parseSpan parses an --at argument, either OFFSET or START:END.
func parseSpan(arg string) (start, end int, err error) {
	first, last, isRange := strings.Cut(arg, ":")
	start, err = strconv.Atoi(first)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid --at %q: %w", arg, err)
	}
	end = start
	if isRange {
		end, err = strconv.Atoi(last)
		if err != nil {
			return 0, 0, fmt.Errorf("invalid --at %q: %w", arg, err)
		}
	}
	if start < 0 || end < start {
		return 0, 0, fmt.Errorf("invalid --at %q: want 0 <= START <= END", arg)
	}
	return start, end, nil
}

// dumpAt prints the element of f covering [start, end), then its ancestors
// from the innermost outwards.
func dumpAt(w io.Writer, f parsed, start, end int) error {
	elem := red.NewIndex(f.result.Red()).Covering(start, end)
	if elem == nil {
		return fmt.Errorf("%s: --at %d:%d is past the end of the file (%d bytes)",
			f.file.Path(), start, end, len(f.file.Text()))
	}
	if _, err := fmt.Fprintln(w, elem); err != nil {
		return err
	}
	for p := elem.Parent(); p != nil; p = p.Parent() {
		if _, err := fmt.Fprintln(w, p); err != nil {
			return err
		}
	}
	return nil
}
