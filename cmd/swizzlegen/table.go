// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"strings"

	"github.com/samber/lo"
)

// Alphabets are the component name sets a swizzle may draw from. Letters are
// never mixed across alphabets.
var Alphabets = []string{"xyzw", "rgba"}

// Swizzle maps an accessor name to the component positions it selects.
type Swizzle struct {
	Name    string // "XZY"
	Indices []int  // [0 2 1]
}

// Table returns every swizzle of a dim-component vector: all selections of 2
// to dim distinct components, for each alphabet in turn. Within an alphabet
// the order is a depth-first walk that emits each prefix before its
// extensions (xy, xyz, xyzw, xyw, xywz, xz, ...).
func Table(dim int) []Swizzle {
	var out []Swizzle
	positions := lo.Range(dim)
	for _, alphabet := range Alphabets {
		letters := alphabet[:dim]
		var walk func(prefix []int)
		walk = func(prefix []int) {
			if len(prefix) >= 2 {
				out = append(out, Swizzle{
					Name:    swizzleName(letters, prefix),
					Indices: append([]int(nil), prefix...),
				})
			}
			for _, p := range lo.Without(positions, prefix...) {
				walk(append(prefix[:len(prefix):len(prefix)], p))
			}
		}
		for _, p := range positions {
			walk([]int{p})
		}
	}
	return out
}

func swizzleName(letters string, indices []int) string {
	return strings.ToUpper(strings.Join(lo.Map(indices, func(p int, _ int) string {
		return letters[p : p+1]
	}), ""))
}
