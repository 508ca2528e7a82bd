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

// Package oxford formats lists for diagnostics.
package oxford

import "fmt"

// List is a formattable value that prints a slice joined with commas, joining
// the last element with Conjunction (such as "or"). The comma before the
// conjunction is only included when there are more than two elements.
type List[T any] struct {
	Conjunction string
	Elements    []T
}

var _ fmt.Formatter = List[int]{}

// Or returns a list joined with "or".
func Or[T any](elems ...T) List[T] {
	return List[T]{Conjunction: "or", Elements: elems}
}

// Format implements [fmt.Formatter].
func (l List[T]) Format(out fmt.State, verb rune) {
	if verb != 'v' || out.Flag('#') {
		fmt.Fprintf(out, "%#v", struct {
			Conjunction string
			Elements    []T
		}(l))
		return
	}

	switch len(l.Elements) {
	case 0:
	case 1:
		fmt.Fprintf(out, "%v", l.Elements[0])
	case 2:
		fmt.Fprintf(out, "%v %s %v", l.Elements[0], l.Conjunction, l.Elements[1])
	default:
		for _, v := range l.Elements[:len(l.Elements)-1] {
			fmt.Fprintf(out, "%v, ", v)
		}
		fmt.Fprintf(out, "%s %v", l.Conjunction, l.Elements[len(l.Elements)-1])
	}
}
