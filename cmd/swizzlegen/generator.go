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
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"
	"golang.org/x/tools/imports"
)

// Generator renders the named swizzle accessors of the vector types into a
// single Go file.
type Generator struct {
	OutputDir string // Output directory
	Package   string // Output package name
	FileName  string // Output file name
	Dims      []int  // Vector dimensions to cover, in output order
	Verbose   bool   // Print one line per rendered dimension
}

// Run renders one section per dimension, formats the result and writes it to
// OutputDir/FileName.
func (g *Generator) Run(ctx context.Context) error {
	if len(g.Dims) == 0 {
		return fmt.Errorf("no vector dimensions requested")
	}

	sections := make([]string, len(g.Dims))
	eg, ctx := errgroup.WithContext(ctx)
	for i, dim := range g.Dims {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			section, err := renderSection(dim)
			if err != nil {
				return err
			}
			sections[i] = section
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}

	filename := filepath.Join(g.OutputDir, g.FileName)
	formatted, err := imports.Process(filename, Render(g.Package, sections), nil)
	if err != nil {
		return fmt.Errorf("format %s: %w", filename, err)
	}
	if err := os.WriteFile(filename, formatted, 0644); err != nil {
		return fmt.Errorf("write swizzles: %w", err)
	}

	if g.Verbose {
		for _, dim := range g.Dims {
			fmt.Printf("  Vector%d: %d swizzles\n", dim, len(Table(dim)))
		}
	}
	return nil
}

// Render assembles the generated file from pre-rendered sections.
func Render(pkg string, sections []string) []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by swizzlegen. DO NOT EDIT.\n")
	fmt.Fprintf(&buf, "\npackage %s\n\n", pkg)
	for _, s := range sections {
		buf.WriteString(s)
	}
	return buf.Bytes()
}

// renderSection emits a getter and a pointer setter for every swizzle of a
// dim-component vector.
func renderSection(dim int) (string, error) {
	if dim < 2 || dim > 4 {
		return "", fmt.Errorf("unsupported vector dimension %d", dim)
	}

	var buf strings.Builder
	recv := fmt.Sprintf("Vector%d[T]", dim)
	fmt.Fprintf(&buf, "// Vector%d swizzles.\n\n", dim)
	for _, s := range Table(dim) {
		result := fmt.Sprintf("Vector%d[T]", len(s.Indices))
		lanes := make([]string, len(s.Indices))
		sources := make([]string, len(s.Indices))
		for k, p := range s.Indices {
			lanes[k] = fmt.Sprintf("v[%d]", p)
			sources[k] = fmt.Sprintf("s[%d]", k)
		}
		selected := strings.Join(lanes, ", ")
		fmt.Fprintf(&buf, "func (v %s) %s() %s { return %s{%s} }\n\n",
			recv, s.Name, result, result, selected)
		fmt.Fprintf(&buf, "func (v *%s) Set%s(s %s) { %s = %s }\n\n",
			recv, s.Name, result, selected, strings.Join(sources, ", "))
	}
	return buf.String(), nil
}
